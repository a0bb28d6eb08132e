package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionSize(t *testing.T) {
	result := PositionSize(PositionSizeInput{
		TotalEquity:    10000,
		RiskPercentage: 1,
		EntryPrice:     100,
		StopLossPrice:  95,
	})

	assert.Equal(t, 100.0, result.RiskAmount)
	assert.Equal(t, 5.0, result.RiskPerUnit)
	assert.Equal(t, 20.0, result.PositionSize)
	assert.Equal(t, 0.0, result.LotSize)
}

func TestPositionSizeShortDirection(t *testing.T) {
	// 止损在开仓价上方（做空），每单位风险取绝对值
	result := PositionSize(PositionSizeInput{
		TotalEquity:    10000,
		RiskPercentage: 2,
		EntryPrice:     95,
		StopLossPrice:  100,
	})

	assert.Equal(t, 200.0, result.RiskAmount)
	assert.Equal(t, 5.0, result.RiskPerUnit)
	assert.Equal(t, 40.0, result.PositionSize)
}

func TestPositionSizeEntryEqualsStop(t *testing.T) {
	result := PositionSize(PositionSizeInput{
		TotalEquity:    10000,
		RiskPercentage: 1,
		EntryPrice:     100,
		StopLossPrice:  100,
	})

	assert.Equal(t, 100.0, result.RiskAmount)
	assert.Equal(t, 0.0, result.RiskPerUnit)
	assert.Equal(t, 0.0, result.PositionSize)
	assert.Equal(t, 0.0, result.LotSize)
}

func TestPositionSizeWithContractSize(t *testing.T) {
	// 外汇手数换算：标准手 100000 单位
	result := PositionSize(PositionSizeInput{
		TotalEquity:    10000,
		RiskPercentage: 1,
		EntryPrice:     1.1000,
		StopLossPrice:  1.0950,
		ContractSize:   100000,
	})

	assert.Equal(t, 100.0, result.RiskAmount)
	assert.InDelta(t, 0.005, result.RiskPerUnit, 1e-9)
	assert.InDelta(t, 20000, result.PositionSize, 1e-6)
	assert.InDelta(t, 0.2, result.LotSize, 1e-9)
}

func TestPositionSizeInvalidInputs(t *testing.T) {
	tests := []struct {
		name  string
		input PositionSizeInput
	}{
		{"zero equity", PositionSizeInput{RiskPercentage: 1, EntryPrice: 100, StopLossPrice: 95}},
		{"negative equity", PositionSizeInput{TotalEquity: -1, RiskPercentage: 1, EntryPrice: 100, StopLossPrice: 95}},
		{"zero risk percentage", PositionSizeInput{TotalEquity: 10000, EntryPrice: 100, StopLossPrice: 95}},
		{"risk percentage above 100", PositionSizeInput{TotalEquity: 10000, RiskPercentage: 101, EntryPrice: 100, StopLossPrice: 95}},
		{"missing entry price", PositionSizeInput{TotalEquity: 10000, RiskPercentage: 1, StopLossPrice: 95}},
		{"missing stop loss", PositionSizeInput{TotalEquity: 10000, RiskPercentage: 1, EntryPrice: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, PositionSizeResult{}, PositionSize(tt.input))
		})
	}
}
