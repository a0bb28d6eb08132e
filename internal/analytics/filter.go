// Package analytics 实现交易日志的统计核心：
// 过滤、盈亏汇总、资金曲线重建与仓位计算，全部为纯内存计算。
package analytics

import (
	"time"

	"github.com/dushixiang/quill/internal/models"
)

// Filter 报表筛选条件，零值字段表示不限制。
// 筛选只作用于报表层，资金流水永远不参与过滤。
type Filter struct {
	From        *time.Time `json:"from"`         // 日期下限（含）
	To          *time.Time `json:"to"`           // 日期上限（含）
	AssetType   string     `json:"asset_type"`   // 资产类型，空为全部
	StrategyTag string     `json:"strategy_tag"` // 策略标签，空为全部
	Result      string     `json:"result"`       // Open/Win/Loss/BreakEven，空为全部
}

// IsZero 是否没有任何筛选条件
func (f Filter) IsZero() bool {
	return f.From == nil && f.To == nil && f.AssetType == "" && f.StrategyTag == "" && f.Result == ""
}

// relevantDate 日期筛选使用的时间：已平仓按平仓日期，未平仓按开仓日期
func relevantDate(t *models.Trade) time.Time {
	if t.IsClosed() && t.CloseDate != nil {
		return *t.CloseDate
	}
	return t.OpenDate
}

// Match 判断单条交易是否通过筛选
func (f Filter) Match(t *models.Trade) bool {
	date := relevantDate(t)
	if f.From != nil && date.Before(*f.From) {
		return false
	}
	if f.To != nil && date.After(*f.To) {
		return false
	}
	if f.AssetType != "" && f.AssetType != t.AssetType {
		return false
	}
	if f.StrategyTag != "" && !t.HasTag(f.StrategyTag) {
		return false
	}
	if f.Result != "" && f.Result != t.Result() {
		return false
	}
	return true
}

// InDateRange 判断时间是否落在筛选的日期区间内（含边界）
func (f Filter) InDateRange(date time.Time) bool {
	if f.From != nil && date.Before(*f.From) {
		return false
	}
	if f.To != nil && date.After(*f.To) {
		return false
	}
	return true
}

// FilterTrades 过滤交易列表，保留原始顺序
func FilterTrades(trades []models.Trade, f Filter) []models.Trade {
	if f.IsZero() {
		return trades
	}

	result := make([]models.Trade, 0, len(trades))
	for i := range trades {
		if f.Match(&trades[i]) {
			result = append(result, trades[i])
		}
	}
	return result
}

// ClosedTrades 取出已平仓子集（以ExitPrice为准），保留原始顺序
func ClosedTrades(trades []models.Trade) []models.Trade {
	result := make([]models.Trade, 0, len(trades))
	for i := range trades {
		if trades[i].IsClosed() {
			result = append(result, trades[i])
		}
	}
	return result
}
