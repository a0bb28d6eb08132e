package analytics

import (
	"testing"
	"time"

	"github.com/dushixiang/quill/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func day(n int) time.Time {
	return time.Date(2025, 1, n, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

func closedTrade(ticker string, position string, entry, exit, size float64, closeDay int) models.Trade {
	closeDate := day(closeDay)
	return models.Trade{
		ID:           ticker + closeDate.Format("0102"),
		Ticker:       ticker,
		AssetType:    models.AssetTypeSaham,
		Position:     position,
		OpenDate:     day(1),
		CloseDate:    &closeDate,
		EntryPrice:   entry,
		ExitPrice:    &exit,
		PositionSize: size,
	}
}

func deposit(amount float64, dayN int) models.EquityTransaction {
	return models.EquityTransaction{
		Type:   models.TransactionDeposit,
		Amount: amount,
		Date:   day(dayN),
	}
}

func withdraw(amount float64, dayN int) models.EquityTransaction {
	return models.EquityTransaction{
		Type:   models.TransactionWithdraw,
		Amount: amount,
		Date:   day(dayN),
	}
}

func TestAggregateDepositAndOneTrade(t *testing.T) {
	trades := []models.Trade{
		closedTrade("BBCA", models.PositionLong, 100, 120, 10, 5), // pnl +200
	}
	transactions := []models.EquityTransaction{
		deposit(5000, 1),
	}

	snapshot := Aggregate(trades, transactions, Filter{})

	assert.Equal(t, 5200.0, snapshot.CurrentEquity)
	assert.Equal(t, 200.0, snapshot.TotalPnl)
	assert.Equal(t, 1, snapshot.Wins)
	assert.Equal(t, 0, snapshot.Losses)
	assert.Equal(t, 100.0, snapshot.WinRate)

	require.Len(t, snapshot.EquityCurve, 2)
	assert.Equal(t, day(1), snapshot.EquityCurve[0].Date)
	assert.Equal(t, 5000.0, snapshot.EquityCurve[0].Equity)
	assert.Equal(t, day(5), snapshot.EquityCurve[1].Date)
	assert.Equal(t, 5200.0, snapshot.EquityCurve[1].Equity)
}

func TestAggregateEmpty(t *testing.T) {
	snapshot := Aggregate(nil, nil, Filter{})

	assert.Equal(t, 0.0, snapshot.CurrentEquity)
	assert.Equal(t, 0.0, snapshot.TotalPnl)
	assert.Equal(t, 0.0, snapshot.WinRate)
	assert.Equal(t, 0.0, snapshot.AvgWin)
	assert.Equal(t, 0.0, snapshot.AvgLoss)
	assert.Equal(t, 0.0, snapshot.AvgRMultiple)
	assert.Equal(t, 0, snapshot.TotalTrades)
	assert.Empty(t, snapshot.EquityCurve)
}

func TestAggregateMetrics(t *testing.T) {
	trades := []models.Trade{
		closedTrade("A", models.PositionLong, 100, 110, 10, 2),  // +100
		closedTrade("B", models.PositionLong, 100, 90, 10, 3),   // -100
		closedTrade("C", models.PositionShort, 100, 90, 10, 4),  // +100
		closedTrade("D", models.PositionLong, 100, 100, 10, 5),  // 0, break even
		{ID: "open", Ticker: "E", AssetType: models.AssetTypeSaham, Position: models.PositionLong,
			OpenDate: day(1), EntryPrice: 100, PositionSize: 10}, // 未平仓不计入
	}

	snapshot := Aggregate(trades, nil, Filter{})

	assert.Equal(t, 4, snapshot.TotalTrades)
	assert.Equal(t, 2, snapshot.Wins)
	assert.Equal(t, 1, snapshot.Losses)
	assert.Equal(t, 100.0, snapshot.TotalPnl)
	assert.Equal(t, 200.0, snapshot.TotalProfit)
	assert.Equal(t, 100.0, snapshot.TotalLoss)
	assert.Equal(t, 50.0, snapshot.WinRate)
	assert.Equal(t, 100.0, snapshot.AvgWin)
	assert.Equal(t, 100.0, snapshot.AvgLoss)
}

func TestAggregateAvgRMultiple(t *testing.T) {
	withStop := closedTrade("A", models.PositionLong, 100, 110, 10, 2) // +100
	withStop.StopLossPrice = ptr(95.0)                                 // 风险50，R=+2

	noStop := closedTrade("B", models.PositionLong, 100, 90, 10, 3) // 没有止损，不参与R统计

	snapshot := Aggregate([]models.Trade{withStop, noStop}, nil, Filter{})

	assert.Equal(t, 2.0, snapshot.AvgRMultiple)
}

func TestCurrentEquityIgnoresFilter(t *testing.T) {
	trades := []models.Trade{
		closedTrade("BBCA", models.PositionLong, 100, 120, 10, 5),
		closedTrade("BTC", models.PositionLong, 50000, 48000, 1, 10),
	}
	trades[1].AssetType = models.AssetTypeKripto
	trades[0].Tags = datatypes.NewJSONSlice([]string{"breakout"})

	transactions := []models.EquityTransaction{
		deposit(5000, 1),
		withdraw(1000, 8),
	}

	full := Aggregate(trades, transactions, Filter{})

	filters := []Filter{
		{AssetType: models.AssetTypeKripto},
		{StrategyTag: "breakout"},
		{From: ptr(day(6)), To: ptr(day(20))},
		{Result: models.ResultWin},
	}
	for _, f := range filters {
		filtered := Aggregate(trades, transactions, f)
		assert.Equal(t, full.CurrentEquity, filtered.CurrentEquity)
	}
}

func TestEquityCurveRoundTrip(t *testing.T) {
	trades := []models.Trade{
		closedTrade("A", models.PositionLong, 100, 110, 10, 3),  // +100
		closedTrade("B", models.PositionShort, 100, 110, 5, 7),  // -50
		closedTrade("C", models.PositionLong, 200, 260, 2, 12),  // +120
	}
	transactions := []models.EquityTransaction{
		deposit(10000, 1),
		withdraw(500, 5),
		deposit(2000, 10),
	}

	f := Filter{From: ptr(day(2)), To: ptr(day(11))}
	snapshot := Aggregate(trades, transactions, f)

	require.NotEmpty(t, snapshot.EquityCurve)
	curve := snapshot.EquityCurve

	var netCashFlow float64
	for i := range transactions {
		if f.InDateRange(transactions[i].Date) {
			netCashFlow += transactions[i].SignedAmount()
		}
	}

	// 起点余额为区间前基准，回放全部事件后恰好回到全量净值
	seed := snapshot.CurrentEquity - snapshot.TotalPnl - netCashFlow
	assert.InDelta(t, snapshot.TotalPnl+netCashFlow, curve[len(curve)-1].Equity-seed, 1e-9)
	assert.InDelta(t, snapshot.CurrentEquity, curve[len(curve)-1].Equity, 1e-9)

	// 从基准开始逐点累加增量，总和 = 区间盈亏 + 区间资金流水净额
	var deltaSum float64
	prev := seed
	for _, p := range curve {
		deltaSum += p.Equity - prev
		prev = p.Equity
	}
	assert.InDelta(t, snapshot.TotalPnl+netCashFlow, deltaSum, 1e-9)
}

func TestEquityCurveSameDayOrder(t *testing.T) {
	// 同一天先记流水再记平仓盈亏
	trades := []models.Trade{
		closedTrade("A", models.PositionLong, 100, 110, 10, 5), // +100
	}
	transactions := []models.EquityTransaction{
		deposit(1000, 5),
	}

	snapshot := Aggregate(trades, transactions, Filter{})

	require.Len(t, snapshot.EquityCurve, 2)
	assert.Equal(t, 1000.0, snapshot.EquityCurve[0].Equity)
	assert.Equal(t, 1100.0, snapshot.EquityCurve[1].Equity)
}

func TestWinRateBounds(t *testing.T) {
	trades := []models.Trade{
		closedTrade("A", models.PositionLong, 100, 110, 10, 2),
		closedTrade("B", models.PositionLong, 100, 90, 10, 3),
		closedTrade("C", models.PositionLong, 100, 105, 10, 4),
	}

	snapshot := Aggregate(trades, nil, Filter{})
	assert.GreaterOrEqual(t, snapshot.WinRate, 0.0)
	assert.LessOrEqual(t, snapshot.WinRate, 100.0)

	empty := Aggregate(nil, nil, Filter{})
	assert.Equal(t, 0.0, empty.WinRate)
}
