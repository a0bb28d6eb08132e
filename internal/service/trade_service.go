package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dushixiang/quill/internal/analytics"
	"github.com/dushixiang/quill/internal/config"
	"github.com/dushixiang/quill/internal/models"
	"github.com/dushixiang/quill/internal/repo"
	"github.com/dushixiang/quill/internal/telegram"
	"github.com/dushixiang/quill/internal/xe"
	"github.com/go-orz/orz"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TradeService 交易日志管理服务
type TradeService struct {
	logger *zap.Logger

	*orz.Service
	*repo.TradeRepo

	feed         *FeedService
	tg           *telegram.Telegram
	telegramConf config.TelegramConf
}

// NewTradeService 创建交易日志服务
func NewTradeService(db *gorm.DB, feed *FeedService, tg *telegram.Telegram,
	logger *zap.Logger, conf *config.Config) *TradeService {
	return &TradeService{
		logger:       logger,
		Service:      orz.NewService(db),
		TradeRepo:    repo.NewTradeRepo(db),
		feed:         feed,
		tg:           tg,
		telegramConf: conf.Telegram,
	}
}

// TradeRequest 新建/编辑交易请求（编辑为全量替换）
type TradeRequest struct {
	Ticker    string `json:"ticker" validate:"required,max=20"`
	AssetType string `json:"asset_type" validate:"required"`
	Position  string `json:"position" validate:"required,oneof=Long Short"`

	OpenDate  time.Time  `json:"open_date" validate:"required"`
	CloseDate *time.Time `json:"close_date"`

	EntryPrice   float64  `json:"entry_price" validate:"required,gt=0"`
	ExitPrice    *float64 `json:"exit_price" validate:"omitempty,gt=0"`
	PositionSize float64  `json:"position_size" validate:"required,gt=0"`

	StopLossPrice   *float64 `json:"stop_loss_price" validate:"omitempty,gt=0"`
	TakeProfitPrice *float64 `json:"take_profit_price" validate:"omitempty,gt=0"`
	Commission      *float64 `json:"commission" validate:"omitempty,gte=0"`

	Tags        []string `json:"tags"`
	EntryReason string   `json:"entry_reason"`

	ImageURLBefore string `json:"image_url_before"`
	ImageURLAfter  string `json:"image_url_after"`
}

// CloseTradeRequest 平仓请求，只允许设置平仓价格和平仓日期
type CloseTradeRequest struct {
	ExitPrice float64   `json:"exit_price" validate:"required,gt=0"`
	CloseDate time.Time `json:"close_date" validate:"required"`
}

// validate 写入时校验：资产类型合法，平仓价格与平仓日期同生同灭
func (r *TradeRequest) validate() error {
	validAsset := false
	for _, t := range models.AssetTypes {
		if t == r.AssetType {
			validAsset = true
			break
		}
	}
	if !validAsset {
		return xe.ErrInvalidAssetType
	}

	// 平仓状态的唯一事实来源是ExitPrice，写入时强制两个字段保持一致，
	// 数据库里不会出现只有其中之一的记录
	if (r.ExitPrice != nil) != (r.CloseDate != nil) {
		return xe.ErrInvalidCloseState
	}
	return nil
}

// apply 把请求内容写入模型
func (r *TradeRequest) apply(t *models.Trade) {
	t.Ticker = strings.ToUpper(strings.TrimSpace(r.Ticker))
	t.AssetType = r.AssetType
	t.Position = r.Position
	t.OpenDate = r.OpenDate
	t.CloseDate = r.CloseDate
	t.EntryPrice = r.EntryPrice
	t.ExitPrice = r.ExitPrice
	t.PositionSize = r.PositionSize
	t.StopLossPrice = r.StopLossPrice
	t.TakeProfitPrice = r.TakeProfitPrice
	t.Commission = r.Commission
	t.Tags = datatypes.NewJSONSlice(r.Tags)
	t.EntryReason = r.EntryReason
	t.ImageURLBefore = r.ImageURLBefore
	t.ImageURLAfter = r.ImageURLAfter
}

// CreateTrade 新建交易记录
func (s *TradeService) CreateTrade(ctx context.Context, userID string, req TradeRequest) (*models.Trade, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	trade := &models.Trade{
		ID:     ulid.Make().String(),
		UserID: userID,
	}
	req.apply(trade)

	if err := s.TradeRepo.Create(ctx, trade); err != nil {
		return nil, err
	}

	s.feed.Bump()
	s.logger.Info("trade created",
		zap.String("trade_id", trade.ID),
		zap.String("ticker", trade.Ticker),
		zap.String("user_id", userID))

	return trade, nil
}

// UpdateTrade 编辑交易记录（全量替换）
func (s *TradeService) UpdateTrade(ctx context.Context, userID, tradeID string, req TradeRequest) (*models.Trade, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	trade, err := s.findOwned(ctx, userID, tradeID)
	if err != nil {
		return nil, err
	}

	req.apply(trade)

	if err := s.TradeRepo.Save(ctx, trade); err != nil {
		return nil, err
	}

	s.feed.Bump()
	s.logger.Info("trade updated",
		zap.String("trade_id", trade.ID),
		zap.String("user_id", userID))

	return trade, nil
}

// CloseTrade 平仓：只写入平仓价格和平仓日期两个字段
func (s *TradeService) CloseTrade(ctx context.Context, userID, tradeID string, req CloseTradeRequest) (*models.Trade, error) {
	trade, err := s.findOwned(ctx, userID, tradeID)
	if err != nil {
		return nil, err
	}

	if trade.IsClosed() {
		return nil, xe.ErrTradeAlreadyClosed
	}

	exitPrice := req.ExitPrice
	closeDate := req.CloseDate
	trade.ExitPrice = &exitPrice
	trade.CloseDate = &closeDate

	if err := s.TradeRepo.Save(ctx, trade); err != nil {
		return nil, err
	}

	s.feed.Bump()
	s.logger.Info("trade closed",
		zap.String("trade_id", trade.ID),
		zap.String("ticker", trade.Ticker),
		zap.Float64("pnl", trade.Pnl()),
		zap.String("user_id", userID))

	s.notifyTradeClosed(trade)

	return trade, nil
}

// DeleteTrade 删除交易记录
func (s *TradeService) DeleteTrade(ctx context.Context, userID, tradeID string) error {
	trade, err := s.findOwned(ctx, userID, tradeID)
	if err != nil {
		return err
	}

	if err := s.TradeRepo.DeleteById(ctx, trade.ID); err != nil {
		return err
	}

	s.feed.Bump()
	s.logger.Info("trade deleted",
		zap.String("trade_id", tradeID),
		zap.String("user_id", userID))
	return nil
}

// GetTrade 查看单条交易记录
func (s *TradeService) GetTrade(ctx context.Context, userID, tradeID string) (*models.Trade, error) {
	return s.findOwned(ctx, userID, tradeID)
}

// FindTrades 按筛选条件列出交易记录，按开仓日期倒序
func (s *TradeService) FindTrades(ctx context.Context, userID string, f analytics.Filter) ([]models.Trade, error) {
	trades, err := s.TradeRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.FilterTrades(trades, f), nil
}

// FindOpenTrades 列出未平仓交易
func (s *TradeService) FindOpenTrades(ctx context.Context, userID string) ([]models.Trade, error) {
	return s.TradeRepo.FindOpenByUserID(ctx, userID)
}

// findOwned 加载并校验归属，非本人数据一律返回无权限
func (s *TradeService) findOwned(ctx context.Context, userID, tradeID string) (*models.Trade, error) {
	trade, err := s.TradeRepo.FindById(ctx, tradeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xe.ErrRecordNotFound
		}
		return nil, err
	}
	if trade.UserID != userID {
		return nil, xe.ErrPermissionDenied
	}
	return &trade, nil
}

// notifyTradeClosed 平仓后推送Telegram通知，失败只记日志
func (s *TradeService) notifyTradeClosed(trade *models.Trade) {
	if s.tg == nil || s.telegramConf.ChatID == "" {
		return
	}

	go func() {
		if err := s.tg.NotifyTradeClosed(s.telegramConf.ChatID, trade); err != nil {
			s.logger.Warn("failed to send trade closed notification",
				zap.String("trade_id", trade.ID),
				zap.Error(err))
		}
	}()
}
