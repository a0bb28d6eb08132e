package service

import (
	"context"

	"github.com/dushixiang/quill/internal/models"
	"github.com/dushixiang/quill/pkg/exchange"
	"go.uber.org/zap"
)

// MarketService 行情服务，为未平仓的加密货币交易补充最新价格和浮动盈亏
type MarketService struct {
	logger *zap.Logger
	spot   *exchange.SpotClient
}

// NewMarketService 创建行情服务
func NewMarketService(logger *zap.Logger, spot *exchange.SpotClient) *MarketService {
	return &MarketService{
		logger: logger,
		spot:   spot,
	}
}

// OpenTradeQuote 未平仓交易行情
type OpenTradeQuote struct {
	LastPrice     float64 `json:"last_price"`
	UnrealizedPnl float64 `json:"unrealized_pnl"`
}

// QuoteOpenTrade 查询未平仓交易的最新价格并计算浮动盈亏。
// 仅支持加密货币，行情不可用时返回nil，不阻塞列表展示。
func (s *MarketService) QuoteOpenTrade(ctx context.Context, trade *models.Trade) *OpenTradeQuote {
	if s.spot == nil || trade.IsClosed() || trade.AssetType != models.AssetTypeKripto {
		return nil
	}

	symbol := exchange.Symbol(trade.Ticker)
	lastPrice, err := s.spot.GetLastPrice(ctx, symbol)
	if err != nil {
		s.logger.Debug("failed to quote open trade",
			zap.String("ticker", trade.Ticker),
			zap.String("symbol", symbol),
			zap.Error(err))
		return nil
	}

	unrealized := (lastPrice - trade.EntryPrice) * trade.PositionSize
	if trade.Position == models.PositionShort {
		unrealized = -unrealized
	}

	return &OpenTradeQuote{
		LastPrice:     lastPrice,
		UnrealizedPnl: unrealized,
	}
}
