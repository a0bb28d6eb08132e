package models

import (
	"math"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Trade 交易日志记录（一次开仓，可选择性平仓）
type Trade struct {
	ID        string `gorm:"primaryKey;type:varchar(26)" json:"id"`
	UserID    string `gorm:"type:varchar(26);not null;index" json:"user_id"`
	Ticker    string `gorm:"type:varchar(20);not null;index" json:"ticker"`     // 标的代码，统一大写
	AssetType string `gorm:"type:varchar(10);not null;index" json:"asset_type"` // Saham/Kripto/Forex
	Position  string `gorm:"type:varchar(10);not null" json:"position"`         // Long/Short

	OpenDate  time.Time  `gorm:"not null;index" json:"open_date"` // 开仓日期
	CloseDate *time.Time `gorm:"index" json:"close_date"`         // 平仓日期，与ExitPrice同生同灭

	EntryPrice   float64  `gorm:"type:decimal(20,8);not null" json:"entry_price"`   // 开仓价格
	ExitPrice    *float64 `gorm:"type:decimal(20,8)" json:"exit_price"`             // 平仓价格，空表示未平仓
	PositionSize float64  `gorm:"type:decimal(20,8);not null" json:"position_size"` // 持仓数量（单位数，非手数）

	StopLossPrice   *float64 `gorm:"type:decimal(20,8)" json:"stop_loss_price"`   // 止损价格
	TakeProfitPrice *float64 `gorm:"type:decimal(20,8)" json:"take_profit_price"` // 止盈价格
	Commission      *float64 `gorm:"type:decimal(20,8)" json:"commission"`        // 手续费

	Tags        datatypes.JSONSlice[string] `gorm:"type:json" json:"tags"` // 策略标签
	EntryReason string                      `gorm:"type:text" json:"entry_reason"`

	ImageURLBefore string `gorm:"type:varchar(500)" json:"image_url_before"` // 开仓前截图
	ImageURLAfter  string `gorm:"type:varchar(500)" json:"image_url_after"`  // 平仓后截图

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName 指定表名
func (Trade) TableName() string {
	return "trades"
}

// IsClosed 是否已平仓，以ExitPrice为准
func (t *Trade) IsClosed() bool {
	return t.ExitPrice != nil
}

// Pnl 计算已实现盈亏，未平仓返回0
func (t *Trade) Pnl() float64 {
	if !t.IsClosed() {
		return 0
	}

	pnl := (*t.ExitPrice - t.EntryPrice) * t.PositionSize

	// 做空时盈亏反向
	if t.Position == PositionShort {
		pnl = -pnl
	}
	return pnl
}

// Result 交易结果分类
func (t *Trade) Result() string {
	if !t.IsClosed() {
		return ResultOpen
	}

	pnl := t.Pnl()
	switch {
	case pnl > 0:
		return ResultWin
	case pnl < 0:
		return ResultLoss
	default:
		return ResultBreakEven
	}
}

// InitialRisk 开仓时承担的初始风险金额，未设置止损返回0
func (t *Trade) InitialRisk() float64 {
	if t.StopLossPrice == nil {
		return 0
	}
	return math.Abs(t.EntryPrice-*t.StopLossPrice) * t.PositionSize
}

// RMultiple 盈亏相对初始风险的倍数，初始风险为0或未平仓时不可用
func (t *Trade) RMultiple() (float64, bool) {
	risk := t.InitialRisk()
	if !t.IsClosed() || risk <= 0 {
		return 0, false
	}
	return t.Pnl() / risk, true
}

// HasTag 是否包含指定策略标签
func (t *Trade) HasTag(tag string) bool {
	for _, v := range t.Tags {
		if v == tag {
			return true
		}
	}
	return false
}
