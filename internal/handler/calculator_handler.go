package handler

import (
	"net/http"

	"github.com/dushixiang/quill/internal/analytics"
	"github.com/dushixiang/quill/internal/service"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CalculatorHandler 风险/仓位计算器HTTP处理器
type CalculatorHandler struct {
	logger        *zap.Logger
	equityService *service.EquityService
}

// NewCalculatorHandler 创建计算器处理器
func NewCalculatorHandler(logger *zap.Logger, equityService *service.EquityService) *CalculatorHandler {
	return &CalculatorHandler{
		logger:        logger,
		equityService: equityService,
	}
}

// PositionSize 仓位计算
// POST /api/calculator/position-size
func (h *CalculatorHandler) PositionSize(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	var in analytics.PositionSizeInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "请求参数错误",
		})
	}

	// 未指定总净值时默认使用当前账户净值
	if in.TotalEquity <= 0 {
		equity, err := h.equityService.CurrentEquity(ctx, userID)
		if err != nil {
			return err
		}
		in.TotalEquity = equity
	}

	return c.JSON(http.StatusOK, analytics.PositionSize(in))
}

// RegisterRoutes 注册路由
func (h *CalculatorHandler) RegisterRoutes(g *echo.Group) {
	calculator := g.Group("/calculator")
	calculator.POST("/position-size", h.PositionSize)
}
