package handler

import (
	"net/http"

	"github.com/dushixiang/quill/internal/service"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// EquityHandler 资金流水HTTP处理器
type EquityHandler struct {
	logger        *zap.Logger
	equityService *service.EquityService
}

// NewEquityHandler 创建资金流水处理器
func NewEquityHandler(logger *zap.Logger, equityService *service.EquityService) *EquityHandler {
	return &EquityHandler{
		logger:        logger,
		equityService: equityService,
	}
}

// List 列出资金流水
// GET /api/equity/transactions
func (h *EquityHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	transactions, err := h.equityService.FindTransactions(ctx, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, transactions)
}

// Create 记录入金/出金
// POST /api/equity/transactions
func (h *EquityHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	var req service.EquityTransactionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "请求参数错误",
		})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	transaction, err := h.equityService.CreateTransaction(ctx, userID, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, transaction)
}

// Current 查询当前净值
// GET /api/equity/current
func (h *EquityHandler) Current(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	equity, err := h.equityService.CurrentEquity(ctx, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"current_equity": equity,
	})
}

// RegisterRoutes 注册路由
func (h *EquityHandler) RegisterRoutes(g *echo.Group) {
	equity := g.Group("/equity")
	equity.GET("/transactions", h.List)
	equity.POST("/transactions", h.Create)
	equity.GET("/current", h.Current)
}
