package handler

import (
	"net/http"

	"github.com/dushixiang/quill/internal/service"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CurrencyHandler 汇率HTTP处理器
type CurrencyHandler struct {
	logger          *zap.Logger
	currencyService *service.CurrencyService
}

// NewCurrencyHandler 创建汇率处理器
func NewCurrencyHandler(logger *zap.Logger, currencyService *service.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{
		logger:          logger,
		currencyService: currencyService,
	}
}

// Rate 查询当前汇率
// GET /api/currency/rate
func (h *CurrencyHandler) Rate(c echo.Context) error {
	rate, stale := h.currencyService.Rate()

	return c.JSON(http.StatusOK, map[string]interface{}{
		"pair":  h.currencyService.Pair(),
		"rate":  rate,
		"stale": stale,
	})
}

// RegisterRoutes 注册路由
func (h *CurrencyHandler) RegisterRoutes(g *echo.Group) {
	currency := g.Group("/currency")
	currency.GET("/rate", h.Rate)
}
