package repo

import (
	"context"

	"github.com/dushixiang/quill/internal/models"
	"github.com/go-orz/orz"
	"gorm.io/gorm"
)

func NewEquityTransactionRepo(db *gorm.DB) *EquityTransactionRepo {
	return &EquityTransactionRepo{
		Repository: orz.NewRepository[models.EquityTransaction, string](db),
	}
}

type EquityTransactionRepo struct {
	orz.Repository[models.EquityTransaction, string]
}

// FindByUserID 获取用户全部资金流水，按流水日期倒序
func (r EquityTransactionRepo) FindByUserID(ctx context.Context, userID string) ([]models.EquityTransaction, error) {
	var transactions []models.EquityTransaction
	db := r.GetDB(ctx)
	err := db.Table(r.GetTableName()).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&transactions).Error
	return transactions, err
}

// FindByUserIDAsc 获取用户全部资金流水，按流水日期升序（资金曲线回放用）
func (r EquityTransactionRepo) FindByUserIDAsc(ctx context.Context, userID string) ([]models.EquityTransaction, error) {
	var transactions []models.EquityTransaction
	db := r.GetDB(ctx)
	err := db.Table(r.GetTableName()).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&transactions).Error
	return transactions, err
}
