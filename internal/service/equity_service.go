package service

import (
	"context"
	"time"

	"github.com/dushixiang/quill/internal/analytics"
	"github.com/dushixiang/quill/internal/models"
	"github.com/dushixiang/quill/internal/repo"
	"github.com/go-orz/orz"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EquityService 资金流水管理服务
type EquityService struct {
	logger *zap.Logger

	*orz.Service
	*repo.EquityTransactionRepo

	tradeRepo *repo.TradeRepo
	feed      *FeedService
}

// NewEquityService 创建资金流水服务
func NewEquityService(db *gorm.DB, feed *FeedService, logger *zap.Logger) *EquityService {
	return &EquityService{
		logger:                logger,
		Service:               orz.NewService(db),
		EquityTransactionRepo: repo.NewEquityTransactionRepo(db),
		tradeRepo:             repo.NewTradeRepo(db),
		feed:                  feed,
	}
}

// EquityTransactionRequest 入金/出金请求
type EquityTransactionRequest struct {
	Type   string    `json:"type" validate:"required,oneof=deposit withdraw"`
	Amount float64   `json:"amount" validate:"required,gt=0"`
	Date   time.Time `json:"date" validate:"required"`
	Notes  string    `json:"notes"`
}

// CreateTransaction 记录一笔入金/出金，流水创建后不可修改
func (s *EquityService) CreateTransaction(ctx context.Context, userID string, req EquityTransactionRequest) (*models.EquityTransaction, error) {
	transaction := &models.EquityTransaction{
		ID:     ulid.Make().String(),
		UserID: userID,
		Type:   req.Type,
		Amount: req.Amount,
		Date:   req.Date,
		Notes:  req.Notes,
	}

	if err := s.EquityTransactionRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	s.feed.Bump()
	s.logger.Info("equity transaction created",
		zap.String("transaction_id", transaction.ID),
		zap.String("type", transaction.Type),
		zap.Float64("amount", transaction.Amount),
		zap.String("user_id", userID))

	return transaction, nil
}

// FindTransactions 列出用户全部资金流水，按日期倒序
func (s *EquityService) FindTransactions(ctx context.Context, userID string) ([]models.EquityTransaction, error) {
	return s.EquityTransactionRepo.FindByUserID(ctx, userID)
}

// CurrentEquity 计算全量历史净值：入金 − 出金 + 所有已平仓盈亏。
// 该值与任何报表筛选无关。
func (s *EquityService) CurrentEquity(ctx context.Context, userID string) (float64, error) {
	trades, err := s.tradeRepo.FindByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}

	transactions, err := s.EquityTransactionRepo.FindByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}

	return analytics.CurrentEquity(trades, transactions), nil
}
