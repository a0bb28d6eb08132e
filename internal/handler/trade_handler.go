package handler

import (
	"net/http"

	"github.com/dushixiang/quill/internal/models"
	"github.com/dushixiang/quill/internal/service"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TradeHandler 交易日志HTTP处理器
type TradeHandler struct {
	logger        *zap.Logger
	tradeService  *service.TradeService
	marketService *service.MarketService
}

// NewTradeHandler 创建交易日志处理器
func NewTradeHandler(logger *zap.Logger, tradeService *service.TradeService,
	marketService *service.MarketService) *TradeHandler {
	return &TradeHandler{
		logger:        logger,
		tradeService:  tradeService,
		marketService: marketService,
	}
}

// List 按筛选条件列出交易记录
// GET /api/trades
func (h *TradeHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	f, err := parseFilter(c)
	if err != nil {
		return err
	}

	trades, err := h.tradeService.FindTrades(ctx, userID, f)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, trades)
}

// ListOpen 列出未平仓交易，加密货币附带最新行情和浮动盈亏
// GET /api/trades/open
func (h *TradeHandler) ListOpen(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	trades, err := h.tradeService.FindOpenTrades(ctx, userID)
	if err != nil {
		return err
	}

	type openTrade struct {
		models.Trade
		Quote *service.OpenTradeQuote `json:"quote,omitempty"`
	}

	items := make([]openTrade, 0, len(trades))
	for i := range trades {
		items = append(items, openTrade{
			Trade: trades[i],
			Quote: h.marketService.QuoteOpenTrade(ctx, &trades[i]),
		})
	}

	return c.JSON(http.StatusOK, items)
}

// Create 新建交易记录
// POST /api/trades
func (h *TradeHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	var req service.TradeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "请求参数错误",
		})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	trade, err := h.tradeService.CreateTrade(ctx, userID, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, trade)
}

// Get 查看单条交易记录
// GET /api/trades/:id
func (h *TradeHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	trade, err := h.tradeService.GetTrade(ctx, userID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, trade)
}

// Update 编辑交易记录
// PUT /api/trades/:id
func (h *TradeHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	var req service.TradeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "请求参数错误",
		})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	trade, err := h.tradeService.UpdateTrade(ctx, userID, c.Param("id"), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, trade)
}

// Close 平仓
// POST /api/trades/:id/close
func (h *TradeHandler) Close(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	var req service.CloseTradeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "请求参数错误",
		})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	trade, err := h.tradeService.CloseTrade(ctx, userID, c.Param("id"), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, trade)
}

// Delete 删除交易记录
// DELETE /api/trades/:id
func (h *TradeHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	if err := h.tradeService.DeleteTrade(ctx, userID, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "删除成功",
	})
}

// RegisterRoutes 注册路由
func (h *TradeHandler) RegisterRoutes(g *echo.Group) {
	trades := g.Group("/trades")
	trades.GET("", h.List)
	trades.POST("", h.Create)
	trades.GET("/open", h.ListOpen)
	trades.GET("/:id", h.Get)
	trades.PUT("/:id", h.Update)
	trades.DELETE("/:id", h.Delete)
	trades.POST("/:id/close", h.Close)
}
