package models

import (
	"time"

	"gorm.io/gorm"
)

// EquityTransaction 资金流水（入金/出金），创建后不可修改
type EquityTransaction struct {
	ID     string    `gorm:"primaryKey;type:varchar(26)" json:"id"`
	UserID string    `gorm:"type:varchar(26);not null;index" json:"user_id"`
	Type   string    `gorm:"type:varchar(10);not null" json:"type"`      // deposit/withdraw
	Amount float64   `gorm:"type:decimal(20,8);not null" json:"amount"`  // 金额，恒为正数，方向由Type决定
	Date   time.Time `gorm:"not null;index" json:"date"`                 // 流水日期
	Notes  string    `gorm:"type:text" json:"notes"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName 指定表名
func (EquityTransaction) TableName() string {
	return "equity_transactions"
}

// SignedAmount 带符号金额，出金为负
func (t *EquityTransaction) SignedAmount() float64 {
	if t.Type == TransactionWithdraw {
		return -t.Amount
	}
	return t.Amount
}
