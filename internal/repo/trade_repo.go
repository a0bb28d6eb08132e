package repo

import (
	"context"

	"github.com/dushixiang/quill/internal/models"
	"github.com/go-orz/orz"
	"gorm.io/gorm"
)

func NewTradeRepo(db *gorm.DB) *TradeRepo {
	return &TradeRepo{
		Repository: orz.NewRepository[models.Trade, string](db),
	}
}

type TradeRepo struct {
	orz.Repository[models.Trade, string]
}

// FindByUserID 获取用户全部交易记录，按开仓日期倒序
func (r TradeRepo) FindByUserID(ctx context.Context, userID string) ([]models.Trade, error) {
	var trades []models.Trade
	db := r.GetDB(ctx)
	err := db.Table(r.GetTableName()).
		Where("user_id = ?", userID).
		Order("open_date DESC").
		Find(&trades).Error
	return trades, err
}

// FindOpenByUserID 获取用户未平仓交易，按开仓日期倒序
func (r TradeRepo) FindOpenByUserID(ctx context.Context, userID string) ([]models.Trade, error) {
	var trades []models.Trade
	db := r.GetDB(ctx)
	err := db.Table(r.GetTableName()).
		Where("user_id = ? AND exit_price IS NULL", userID).
		Order("open_date DESC").
		Find(&trades).Error
	return trades, err
}

// CountByUserID 统计用户交易数量
func (r TradeRepo) CountByUserID(ctx context.Context, userID string) (int64, error) {
	var count int64
	db := r.GetDB(ctx)
	err := db.Table(r.GetTableName()).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
