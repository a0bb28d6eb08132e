package service

import (
	"context"
	"testing"
	"time"

	"github.com/dushixiang/quill/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newEquityService(t *testing.T) (*EquityService, *gorm.DB, *FeedService) {
	t.Helper()
	db := newTestDB(t)
	feed := NewFeedService()
	return NewEquityService(db, feed, zap.NewNop()), db, feed
}

func TestCreateTransaction(t *testing.T) {
	svc, _, feed := newEquityService(t)
	ctx := context.Background()

	tx, err := svc.CreateTransaction(ctx, "user1", EquityTransactionRequest{
		Type:   models.TransactionDeposit,
		Amount: 5000,
		Date:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Notes:  "initial deposit",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, 5000.0, tx.Amount)
	assert.Equal(t, 5000.0, tx.SignedAmount())
	assert.Equal(t, int64(1), feed.Version())
}

func TestFindTransactionsOrder(t *testing.T) {
	svc, _, _ := newEquityService(t)
	ctx := context.Background()

	for i, day := range []int{3, 1, 2} {
		_, err := svc.CreateTransaction(ctx, "user1", EquityTransactionRequest{
			Type:   models.TransactionDeposit,
			Amount: float64(100 * (i + 1)),
			Date:   time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}

	transactions, err := svc.FindTransactions(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, transactions, 3)

	// 按日期倒序
	assert.True(t, transactions[0].Date.After(transactions[1].Date))
	assert.True(t, transactions[1].Date.After(transactions[2].Date))
}

func TestCurrentEquity(t *testing.T) {
	svc, db, _ := newEquityService(t)
	ctx := context.Background()

	_, err := svc.CreateTransaction(ctx, "user1", EquityTransactionRequest{
		Type:   models.TransactionDeposit,
		Amount: 5000,
		Date:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = svc.CreateTransaction(ctx, "user1", EquityTransactionRequest{
		Type:   models.TransactionWithdraw,
		Amount: 1000,
		Date:   time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	exitPrice := 110.0
	closeDate := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Trade{
		ID:           "trade1",
		UserID:       "user1",
		Ticker:       "BBCA",
		AssetType:    models.AssetTypeSaham,
		Position:     models.PositionLong,
		OpenDate:     time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		CloseDate:    &closeDate,
		EntryPrice:   100,
		ExitPrice:    &exitPrice,
		PositionSize: 10,
	}).Error)

	// 未平仓交易不贡献净值
	require.NoError(t, db.Create(&models.Trade{
		ID:           "trade2",
		UserID:       "user1",
		Ticker:       "BBRI",
		AssetType:    models.AssetTypeSaham,
		Position:     models.PositionLong,
		OpenDate:     time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC),
		EntryPrice:   200,
		PositionSize: 5,
	}).Error)

	equity, err := svc.CurrentEquity(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, 4100.0, equity) // 5000 - 1000 + 100
}
