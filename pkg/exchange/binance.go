package exchange

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/adshao/go-binance/v2"
)

// 行情缓存有效期，避免列表页频繁请求上游
const priceCacheTTL = time.Minute

// SpotClient Binance现货行情客户端，仅使用公开接口，无需密钥
type SpotClient struct {
	client *binance.Client

	priceCache map[string]cachedPrice
	priceLock  sync.RWMutex
}

type cachedPrice struct {
	price     float64
	fetchedAt time.Time
}

// NewSpotClient 创建现货行情客户端
func NewSpotClient(proxyURL string) *SpotClient {
	var client *binance.Client
	if proxyURL != "" {
		client = binance.NewProxiedClient("", "", proxyURL)
	} else {
		client = binance.NewClient("", "")
	}

	return &SpotClient{
		client:     client,
		priceCache: make(map[string]cachedPrice),
	}
}

// Symbol 把标的代码转成Binance现货交易对，默认以USDT计价
func Symbol(ticker string) string {
	symbol := strings.ToUpper(strings.TrimSpace(ticker))
	symbol = strings.ReplaceAll(symbol, "/", "")
	if !strings.HasSuffix(symbol, "USDT") {
		symbol += "USDT"
	}
	return symbol
}

// GetLastPrice 获取交易对最新成交价
func (b *SpotClient) GetLastPrice(ctx context.Context, symbol string) (float64, error) {
	b.priceLock.RLock()
	if cached, ok := b.priceCache[symbol]; ok && time.Since(cached.fetchedAt) < priceCacheTTL {
		b.priceLock.RUnlock()
		return cached.price, nil
	}
	b.priceLock.RUnlock()

	prices, err := b.client.NewListPricesService().Symbol(symbol).Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get price for %s: %w", symbol, err)
	}
	if len(prices) == 0 {
		return 0, fmt.Errorf("no price returned for %s", symbol)
	}

	price, err := strconv.ParseFloat(prices[0].Price, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse price for %s: %w", symbol, err)
	}

	b.priceLock.Lock()
	b.priceCache[symbol] = cachedPrice{price: price, fetchedAt: time.Now()}
	b.priceLock.Unlock()

	return price, nil
}
