package analytics

import "math"

// PositionSizeInput 仓位计算输入，实时预览场景下允许缺省
type PositionSizeInput struct {
	TotalEquity    float64 `json:"total_equity"`    // 账户总净值
	RiskPercentage float64 `json:"risk_percentage"` // 单笔风险百分比，(0, 100]
	EntryPrice     float64 `json:"entry_price"`
	StopLossPrice  float64 `json:"stop_loss_price"`
	ContractSize   float64 `json:"contract_size"` // 合约大小，外汇手数换算用，0表示不换算
}

// PositionSizeResult 仓位计算结果
type PositionSizeResult struct {
	RiskAmount   float64 `json:"risk_amount"`   // 风险金额
	RiskPerUnit  float64 `json:"risk_per_unit"` // 每单位风险
	PositionSize float64 `json:"position_size"` // 仓位大小（单位数）
	LotSize      float64 `json:"lot_size"`      // 手数，仅ContractSize>0时有值
}

// PositionSize 根据净值、风险百分比和价格区间计算仓位大小。
// 这是实时预览计算器：输入缺失或非法时直接返回零值结果，
// 不抛错误，字段级校验由表单校验独立上报。
func PositionSize(in PositionSizeInput) PositionSizeResult {
	if in.TotalEquity <= 0 || in.RiskPercentage <= 0 || in.RiskPercentage > 100 ||
		in.EntryPrice <= 0 || in.StopLossPrice <= 0 {
		return PositionSizeResult{}
	}

	result := PositionSizeResult{
		RiskAmount:  in.TotalEquity * in.RiskPercentage / 100,
		RiskPerUnit: math.Abs(in.EntryPrice - in.StopLossPrice),
	}

	// 开仓价等于止损价时没有有效仓位，避免除零
	if result.RiskPerUnit == 0 {
		return result
	}

	result.PositionSize = result.RiskAmount / result.RiskPerUnit

	if in.ContractSize > 0 {
		result.LotSize = result.PositionSize / in.ContractSize
	}
	return result
}
