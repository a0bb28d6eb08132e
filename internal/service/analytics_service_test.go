package service

import (
	"context"
	"testing"
	"time"

	"github.com/dushixiang/quill/internal/analytics"
	"github.com/dushixiang/quill/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func seedAnalyticsData(t *testing.T, db *gorm.DB) {
	t.Helper()

	require.NoError(t, db.Create(&models.EquityTransaction{
		ID:     "tx1",
		UserID: "user1",
		Type:   models.TransactionDeposit,
		Amount: 5000,
		Date:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}).Error)

	exitPrice := 120.0
	closeDate := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Trade{
		ID:           "trade1",
		UserID:       "user1",
		Ticker:       "BBCA",
		AssetType:    models.AssetTypeSaham,
		Position:     models.PositionLong,
		OpenDate:     time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		CloseDate:    &closeDate,
		EntryPrice:   100,
		ExitPrice:    &exitPrice,
		PositionSize: 10,
		Tags:         datatypes.NewJSONSlice([]string{"breakout"}),
	}).Error)

	require.NoError(t, db.Create(&models.Trade{
		ID:           "trade2",
		UserID:       "user1",
		Ticker:       "BTC",
		AssetType:    models.AssetTypeKripto,
		Position:     models.PositionLong,
		OpenDate:     time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		EntryPrice:   50000,
		PositionSize: 1,
		Tags:         datatypes.NewJSONSlice([]string{"swing"}),
	}).Error)
}

func TestAnalyticsSummary(t *testing.T) {
	db := newTestDB(t)
	seedAnalyticsData(t, db)
	svc := NewAnalyticsService(db, zap.NewNop())

	snapshot, err := svc.Summary(context.Background(), "user1", analytics.Filter{})
	require.NoError(t, err)

	assert.Equal(t, 5200.0, snapshot.CurrentEquity)
	assert.Equal(t, 200.0, snapshot.TotalPnl)
	assert.Equal(t, 1, snapshot.TotalTrades)
	require.Len(t, snapshot.EquityCurve, 2)
	assert.Equal(t, 5200.0, snapshot.EquityCurve[1].Equity)
}

func TestAnalyticsSummaryFilterInvariantEquity(t *testing.T) {
	db := newTestDB(t)
	seedAnalyticsData(t, db)
	svc := NewAnalyticsService(db, zap.NewNop())
	ctx := context.Background()

	full, err := svc.Summary(ctx, "user1", analytics.Filter{})
	require.NoError(t, err)

	filtered, err := svc.Summary(ctx, "user1", analytics.Filter{AssetType: models.AssetTypeKripto})
	require.NoError(t, err)

	assert.Equal(t, full.CurrentEquity, filtered.CurrentEquity)
	assert.Equal(t, 0, filtered.TotalTrades)
	assert.Equal(t, 0.0, filtered.TotalPnl)
}

func TestAnalyticsOptions(t *testing.T) {
	db := newTestDB(t)
	seedAnalyticsData(t, db)
	svc := NewAnalyticsService(db, zap.NewNop())

	options, err := svc.Options(context.Background(), "user1")
	require.NoError(t, err)

	assert.Equal(t, []string{models.AssetTypeKripto, models.AssetTypeSaham}, options.AssetTypes)
	assert.Equal(t, []string{"breakout", "swing"}, options.Tags)
}

func TestAnalyticsSummaryEmptyUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db, zap.NewNop())

	snapshot, err := svc.Summary(context.Background(), "nobody", analytics.Filter{})
	require.NoError(t, err)

	assert.Equal(t, 0.0, snapshot.CurrentEquity)
	assert.Equal(t, 0, snapshot.TotalTrades)
	assert.Empty(t, snapshot.EquityCurve)
}
