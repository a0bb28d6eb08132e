package service

import (
	"context"
	"sort"

	"github.com/dushixiang/quill/internal/analytics"
	"github.com/dushixiang/quill/internal/repo"
	"github.com/go-orz/orz"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AnalyticsService 统计分析服务。
// 每次查询读取一份完整快照交给统计核心全量重算，不做增量维护。
type AnalyticsService struct {
	logger *zap.Logger

	*orz.Service

	tradeRepo             *repo.TradeRepo
	equityTransactionRepo *repo.EquityTransactionRepo
}

// NewAnalyticsService 创建统计分析服务
func NewAnalyticsService(db *gorm.DB, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		logger:                logger,
		Service:               orz.NewService(db),
		tradeRepo:             repo.NewTradeRepo(db),
		equityTransactionRepo: repo.NewEquityTransactionRepo(db),
	}
}

// Summary 计算统计快照（指标 + 资金曲线）
func (s *AnalyticsService) Summary(ctx context.Context, userID string, f analytics.Filter) (*analytics.Snapshot, error) {
	trades, err := s.tradeRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.equityTransactionRepo.FindByUserIDAsc(ctx, userID)
	if err != nil {
		return nil, err
	}

	return analytics.Aggregate(trades, transactions, f), nil
}

// FilterOptions 筛选下拉选项（展示层便利读模型，不属于统计核心）
type FilterOptions struct {
	AssetTypes []string `json:"asset_types"`
	Tags       []string `json:"tags"`
}

// Options 扫描用户数据得出实际出现过的资产类型与策略标签
func (s *AnalyticsService) Options(ctx context.Context, userID string) (*FilterOptions, error) {
	trades, err := s.tradeRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	assetTypeSet := make(map[string]struct{})
	tagSet := make(map[string]struct{})
	for i := range trades {
		assetTypeSet[trades[i].AssetType] = struct{}{}
		for _, tag := range trades[i].Tags {
			tagSet[tag] = struct{}{}
		}
	}

	options := &FilterOptions{
		AssetTypes: make([]string, 0, len(assetTypeSet)),
		Tags:       make([]string, 0, len(tagSet)),
	}
	for assetType := range assetTypeSet {
		options.AssetTypes = append(options.AssetTypes, assetType)
	}
	for tag := range tagSet {
		options.Tags = append(options.Tags, tag)
	}
	sort.Strings(options.AssetTypes)
	sort.Strings(options.Tags)

	return options, nil
}
