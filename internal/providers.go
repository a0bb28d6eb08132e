package internal

import (
	"net/http"
	"time"

	"github.com/dushixiang/quill/internal/config"
	"github.com/dushixiang/quill/internal/telegram"
	"github.com/dushixiang/quill/pkg/exchange"
	"go.uber.org/zap"
)

const telegramHTTPTimeout = 10 * time.Second

// provideTelegram provides telegram instance
func provideTelegram(logger *zap.Logger, conf *config.Config) *telegram.Telegram {
	if !conf.Telegram.Enabled {
		return nil
	}

	httpClient := &http.Client{Timeout: telegramHTTPTimeout}

	tg, err := telegram.NewTelegram(logger, telegram.Settings{
		Token:  conf.Telegram.Token,
		Client: httpClient,
	})
	if err != nil {
		logger.Error("failed to init telegram", zap.Error(err))
		return nil
	}

	return tg
}

// provideSpotClient provides Binance spot market data client
func provideSpotClient(conf *config.Config) *exchange.SpotClient {
	return exchange.NewSpotClient(conf.Binance.ProxyURL)
}
