package service

import (
	"testing"
	"time"

	"github.com/dushixiang/quill/internal/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRateCacheGet(t *testing.T) {
	now := time.Now()

	// 空缓存视为过期
	empty := RateCache{TTL: time.Hour}
	value, stale := empty.Get(now)
	assert.Equal(t, 0.0, value)
	assert.True(t, stale)

	fresh := RateCache{Value: 16250, FetchedAt: now.Add(-time.Minute), TTL: time.Hour}
	value, stale = fresh.Get(now)
	assert.Equal(t, 16250.0, value)
	assert.False(t, stale)

	expired := RateCache{Value: 16250, FetchedAt: now.Add(-2 * time.Hour), TTL: time.Hour}
	value, stale = expired.Get(now)
	assert.Equal(t, 16250.0, value)
	assert.True(t, stale)
}

func TestCurrencyServiceDefaults(t *testing.T) {
	svc := NewCurrencyService(zap.NewNop(), &config.Config{})

	assert.Equal(t, "USD/IDR", svc.Pair())

	// 从未拉取过时退回兜底汇率并标记为过期
	rate, stale := svc.Rate()
	assert.Equal(t, 16000.0, rate)
	assert.True(t, stale)
}

func TestCurrencyServiceConfigOverride(t *testing.T) {
	svc := NewCurrencyService(zap.NewNop(), &config.Config{
		Currency: config.CurrencyConf{
			BaseCurrency:  "USD",
			QuoteCurrency: "JPY",
			FallbackRate:  150,
			TTLMinutes:    5,
		},
	})

	assert.Equal(t, "USD/JPY", svc.Pair())

	rate, stale := svc.Rate()
	assert.Equal(t, 150.0, rate)
	assert.True(t, stale)

	// 模拟一次成功拉取
	svc.mu.Lock()
	svc.cache.Value = 151.2
	svc.cache.FetchedAt = time.Now()
	svc.mu.Unlock()

	rate, stale = svc.Rate()
	assert.Equal(t, 151.2, rate)
	assert.False(t, stale)
}
