package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/dushixiang/quill/internal/config"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	freeCurrencyAPIURL = "https://api.freecurrencyapi.com/v1/latest"

	defaultBaseCurrency  = "USD"
	defaultQuoteCurrency = "IDR"
	defaultFallbackRate  = 16000
	defaultRateTTL       = 60 * time.Minute
)

// RateCache 汇率缓存，带过期时间
type RateCache struct {
	Value     float64
	FetchedAt time.Time
	TTL       time.Duration
}

// Get 返回缓存值及是否已过期。缓存为空时返回 (0, true)。
func (c *RateCache) Get(now time.Time) (float64, bool) {
	if c.FetchedAt.IsZero() {
		return 0, true
	}
	stale := now.Sub(c.FetchedAt) > c.TTL
	return c.Value, stale
}

// CurrencyService 汇率服务。
// 定时从 freecurrencyapi 拉取汇率并缓存，接口不可用时退回最近缓存值或兜底汇率。
type CurrencyService struct {
	logger *zap.Logger
	conf   config.CurrencyConf

	httpClient *http.Client
	cron       *cron.Cron

	mu    sync.RWMutex
	cache RateCache
}

// NewCurrencyService 创建汇率服务
func NewCurrencyService(logger *zap.Logger, conf *config.Config) *CurrencyService {
	currencyConf := conf.Currency
	if currencyConf.BaseCurrency == "" {
		currencyConf.BaseCurrency = defaultBaseCurrency
	}
	if currencyConf.QuoteCurrency == "" {
		currencyConf.QuoteCurrency = defaultQuoteCurrency
	}
	if currencyConf.FallbackRate <= 0 {
		currencyConf.FallbackRate = defaultFallbackRate
	}

	ttl := defaultRateTTL
	if currencyConf.TTLMinutes > 0 {
		ttl = time.Duration(currencyConf.TTLMinutes) * time.Minute
	}

	return &CurrencyService{
		logger:     logger,
		conf:       currencyConf,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		cron:       cron.New(),
		cache:      RateCache{TTL: ttl},
	}
}

// Start 立即刷新一次汇率，并注册每小时的定时刷新
func (s *CurrencyService) Start() error {
	s.refresh()

	_, err := s.cron.AddFunc("@hourly", s.refresh)
	if err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop 停止定时刷新
func (s *CurrencyService) Stop() {
	s.cron.Stop()
}

// Rate 返回当前汇率及是否为过期值。
// 从未成功拉取过时返回兜底汇率并标记为过期。
func (s *CurrencyService) Rate() (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, stale := s.cache.Get(time.Now())
	if value <= 0 {
		return s.conf.FallbackRate, true
	}
	return value, stale
}

// Pair 返回汇率的货币对，如 USD/IDR
func (s *CurrencyService) Pair() string {
	return s.conf.BaseCurrency + "/" + s.conf.QuoteCurrency
}

func (s *CurrencyService) refresh() {
	if s.conf.APIKey == "" {
		s.logger.Debug("currency api key not configured, skip refresh")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	rate, err := s.fetchRate(ctx)
	if err != nil {
		s.logger.Warn("failed to refresh currency rate, keeping cached value",
			zap.String("pair", s.Pair()),
			zap.Error(err))
		return
	}

	s.mu.Lock()
	s.cache.Value = rate
	s.cache.FetchedAt = time.Now()
	s.mu.Unlock()

	s.logger.Info("currency rate refreshed",
		zap.String("pair", s.Pair()),
		zap.Float64("rate", rate))
}

func (s *CurrencyService) fetchRate(ctx context.Context) (float64, error) {
	query := url.Values{}
	query.Set("apikey", s.conf.APIKey)
	query.Set("base_currency", s.conf.BaseCurrency)
	query.Set("currencies", s.conf.QuoteCurrency)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, freeCurrencyAPIURL+"?"+query.Encode(), nil)
	if err != nil {
		return 0, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("currency api returned status %d", resp.StatusCode)
	}

	var payload struct {
		Data map[string]float64 `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, err
	}

	rate, ok := payload.Data[s.conf.QuoteCurrency]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("currency api response missing rate for %s", s.conf.QuoteCurrency)
	}

	return rate, nil
}
