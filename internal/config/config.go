package config

type Config struct {
	JWT      JWTConf      `json:"jwt"`
	Currency CurrencyConf `json:"currency"`
	Telegram TelegramConf `json:"telegram"`
	Binance  BinanceConf  `json:"binance"`
}

type JWTConf struct {
	Secret          string `json:"secret"`           // 签名密钥，为空时启动随机生成（重启后令牌失效）
	ExpirationHours int    `json:"expiration_hours"` // 有效期（小时），默认24
}

type CurrencyConf struct {
	APIKey        string  `json:"api_key"`        // freecurrencyapi.com 密钥
	BaseCurrency  string  `json:"base_currency"`  // 基准货币，默认USD
	QuoteCurrency string  `json:"quote_currency"` // 目标货币，默认IDR
	FallbackRate  float64 `json:"fallback_rate"`  // 上游不可用时的兜底汇率，默认16000
	TTLMinutes    int     `json:"ttl_minutes"`    // 缓存有效期（分钟），默认60
}

type TelegramConf struct {
	Enabled bool   `json:"enabled"`
	Token   string `json:"token"`
	ChatID  string `json:"chat_id"`
}

type BinanceConf struct {
	ProxyURL string `json:"proxy_url"` // 代理地址，例如: http://127.0.0.1:7890
}
