package models

// 资产类型（可扩展，当前与前端下拉选项保持一致）
const (
	AssetTypeSaham  = "Saham"
	AssetTypeKripto = "Kripto"
	AssetTypeForex  = "Forex"
)

// AssetTypes 支持的资产类型列表
var AssetTypes = []string{AssetTypeSaham, AssetTypeKripto, AssetTypeForex}

// 持仓方向
const (
	PositionLong  = "Long"
	PositionShort = "Short"
)

// 资金流水类型
const (
	TransactionDeposit  = "deposit"
	TransactionWithdraw = "withdraw"
)

// 交易结果分类
const (
	ResultOpen      = "Open"
	ResultWin       = "Win"
	ResultLoss      = "Loss"
	ResultBreakEven = "BreakEven"
)
