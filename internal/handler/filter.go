package handler

import (
	"time"

	"github.com/dushixiang/quill/internal/analytics"
	"github.com/dushixiang/quill/internal/xe"
	"github.com/labstack/echo/v4"
)

// parseDateParam 解析日期查询参数，兼容 2006-01-02 和 RFC3339 两种格式
func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, xe.ErrInvalidParams
	}
	return &t, nil
}

// parseFilter 从查询参数解析报表筛选条件
func parseFilter(c echo.Context) (analytics.Filter, error) {
	var f analytics.Filter

	from, err := parseDateParam(c.QueryParam("from"))
	if err != nil {
		return f, err
	}
	to, err := parseDateParam(c.QueryParam("to"))
	if err != nil {
		return f, err
	}

	f.From = from
	f.To = to
	f.AssetType = c.QueryParam("asset_type")
	f.StrategyTag = c.QueryParam("tag")
	f.Result = c.QueryParam("result")
	return f, nil
}
