//go:build wireinject
// +build wireinject

package internal

import (
	"github.com/google/wire"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dushixiang/quill/internal/config"
	"github.com/dushixiang/quill/internal/handler"
	"github.com/dushixiang/quill/internal/service"
)

var (
	handlerSet = wire.NewSet(
		handler.NewAuthHandler,
		handler.NewTradeHandler,
		handler.NewEquityHandler,
		handler.NewAnalyticsHandler,
		handler.NewCalculatorHandler,
		handler.NewCurrencyHandler,
	)

	serviceSet = wire.NewSet(
		provideTelegram,
		provideSpotClient,
		service.NewFeedService,
		service.NewAuthService,
		service.NewTradeService,
		service.NewEquityService,
		service.NewAnalyticsService,
		service.NewCurrencyService,
		service.NewMarketService,
	)
)

// InitializeApp 初始化应用
func InitializeApp(logger *zap.Logger, db *gorm.DB, conf *config.Config) (*AppComponents, error) {
	wire.Build(
		handlerSet,
		serviceSet,
		wire.Struct(new(AppComponents), "*"),
	)
	return nil, nil
}
