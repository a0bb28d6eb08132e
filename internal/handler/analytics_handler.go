package handler

import (
	"net/http"

	"github.com/dushixiang/quill/internal/service"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AnalyticsHandler 统计分析HTTP处理器
type AnalyticsHandler struct {
	logger           *zap.Logger
	analyticsService *service.AnalyticsService
	feedService      *service.FeedService
}

// NewAnalyticsHandler 创建统计分析处理器
func NewAnalyticsHandler(logger *zap.Logger, analyticsService *service.AnalyticsService,
	feedService *service.FeedService) *AnalyticsHandler {
	return &AnalyticsHandler{
		logger:           logger,
		analyticsService: analyticsService,
		feedService:      feedService,
	}
}

// Summary 统计快照（指标 + 资金曲线）
// GET /api/analytics/summary
func (h *AnalyticsHandler) Summary(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	f, err := parseFilter(c)
	if err != nil {
		return err
	}

	snapshot, err := h.analyticsService.Summary(ctx, userID, f)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, snapshot)
}

// EquityCurve 资金曲线
// GET /api/analytics/equity-curve
func (h *AnalyticsHandler) EquityCurve(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	f, err := parseFilter(c)
	if err != nil {
		return err
	}

	snapshot, err := h.analyticsService.Summary(ctx, userID, f)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, snapshot.EquityCurve)
}

// Options 筛选下拉选项
// GET /api/analytics/options
func (h *AnalyticsHandler) Options(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	options, err := h.analyticsService.Options(ctx, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, options)
}

// Changes 数据变更版本号，前端轮询比对
// GET /api/changes
func (h *AnalyticsHandler) Changes(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"version": h.feedService.Version(),
	})
}

// RegisterRoutes 注册路由
func (h *AnalyticsHandler) RegisterRoutes(g *echo.Group) {
	analytics := g.Group("/analytics")
	analytics.GET("/summary", h.Summary)
	analytics.GET("/equity-curve", h.EquityCurve)
	analytics.GET("/options", h.Options)

	g.GET("/changes", h.Changes)
}
