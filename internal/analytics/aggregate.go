package analytics

import (
	"sort"
	"time"

	"github.com/dushixiang/quill/internal/models"
)

// EquityCurvePoint 资金曲线上的一个点，Equity为滚动余额
type EquityCurvePoint struct {
	Date   time.Time `json:"date"`
	Equity float64   `json:"equity"`
}

// Snapshot 一次统计的完整结果，每次查询全量重算，从不落库
type Snapshot struct {
	TotalPnl      float64            `json:"total_pnl"`      // 报表区间内净盈亏
	TotalProfit   float64            `json:"total_profit"`   // 盈利单合计
	TotalLoss     float64            `json:"total_loss"`     // 亏损单合计（绝对值）
	WinRate       float64            `json:"win_rate"`       // 胜率，0-100
	Wins          int                `json:"wins"`
	Losses        int                `json:"losses"`
	TotalTrades   int                `json:"total_trades"`   // 报表区间内已平仓交易数
	CurrentEquity float64            `json:"current_equity"` // 全量历史净值，不受筛选影响
	AvgWin        float64            `json:"avg_win"`
	AvgLoss       float64            `json:"avg_loss"`
	AvgRMultiple  float64            `json:"avg_r_multiple"`
	EquityCurve   []EquityCurvePoint `json:"equity_curve"`
}

// CurrentEquity 计算全量历史净值：入金 − 出金 + 所有已平仓盈亏。
// 永远基于未过滤的完整历史，筛选条件只影响报表指标。
func CurrentEquity(trades []models.Trade, transactions []models.EquityTransaction) float64 {
	var equity float64
	for i := range transactions {
		equity += transactions[i].SignedAmount()
	}
	for i := range trades {
		equity += trades[i].Pnl() // 未平仓为0
	}
	return equity
}

// Aggregate 汇总报表指标与资金曲线。
// trades与transactions为用户的完整历史快照，筛选在内部完成。
func Aggregate(trades []models.Trade, transactions []models.EquityTransaction, f Filter) *Snapshot {
	snapshot := &Snapshot{
		CurrentEquity: CurrentEquity(trades, transactions),
	}

	reporting := FilterTrades(ClosedTrades(trades), f)
	snapshot.TotalTrades = len(reporting)

	var rSum float64
	var rCount int

	for i := range reporting {
		t := &reporting[i]
		pnl := t.Pnl()
		snapshot.TotalPnl += pnl

		switch {
		case pnl > 0:
			snapshot.TotalProfit += pnl
			snapshot.Wins++
		case pnl < 0:
			snapshot.TotalLoss += -pnl
			snapshot.Losses++
		}

		if r, ok := t.RMultiple(); ok {
			rSum += r
			rCount++
		}
	}

	// 分母为0时全部按0处理，不产生NaN
	if snapshot.TotalTrades > 0 {
		snapshot.WinRate = float64(snapshot.Wins) / float64(snapshot.TotalTrades) * 100
	}
	if snapshot.Wins > 0 {
		snapshot.AvgWin = snapshot.TotalProfit / float64(snapshot.Wins)
	}
	if snapshot.Losses > 0 {
		snapshot.AvgLoss = snapshot.TotalLoss / float64(snapshot.Losses)
	}
	if rCount > 0 {
		snapshot.AvgRMultiple = rSum / float64(rCount)
	}

	snapshot.EquityCurve = equityCurve(reporting, transactions, f, snapshot.CurrentEquity, snapshot.TotalPnl)

	return snapshot
}

type equityEvent struct {
	date  time.Time
	delta float64
}

// equityCurve 重建报表区间内的资金曲线。
// 事件流 = 区间内全部资金流水（带符号）+ 报表交易的平仓盈亏，按日期升序回放；
// 起始余额从全量净值倒推出区间前的基准，保证曲线终点与全量净值自洽。
func equityCurve(reporting []models.Trade, transactions []models.EquityTransaction,
	f Filter, currentEquity, totalPnl float64) []EquityCurvePoint {

	events := make([]equityEvent, 0, len(transactions)+len(reporting))

	var netCashFlow float64
	for i := range transactions {
		tx := &transactions[i]
		if !f.InDateRange(tx.Date) {
			continue
		}
		delta := tx.SignedAmount()
		netCashFlow += delta
		events = append(events, equityEvent{date: tx.Date, delta: delta})
	}

	for i := range reporting {
		t := &reporting[i]
		if t.CloseDate == nil {
			continue
		}
		events = append(events, equityEvent{date: *t.CloseDate, delta: t.Pnl()})
	}

	if len(events) == 0 {
		return []EquityCurvePoint{}
	}

	// 日期相同时保持原始顺序（流水在前）
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].date.Before(events[j].date)
	})

	balance := currentEquity - totalPnl - netCashFlow

	curve := make([]EquityCurvePoint, 0, len(events))
	for _, ev := range events {
		balance += ev.delta
		curve = append(curve, EquityCurvePoint{Date: ev.date, Equity: balance})
	}
	return curve
}
