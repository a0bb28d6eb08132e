package telegram

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dushixiang/quill/internal/models"
	"github.com/valyala/fasttemplate"
)

// tradeClosedTemplate 平仓通知消息模板
const tradeClosedTemplate = `{{emoji}} *交易已平仓*

*标的*: {{ticker}} ({{asset_type}})
*方向*: {{position}}
*开仓价*: {{entry_price}}
*平仓价*: {{exit_price}}
*数量*: {{position_size}}
*盈亏*: {{pnl}}{{r_multiple_line}}`

func formatFloat(v float64) string {
	str := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.Contains(str, ".") {
		str = strings.TrimRight(str, "0")
		str = strings.TrimRight(str, ".")
	}
	if str == "" {
		return "0"
	}
	return str
}

// NotifyTradeClosed 发送平仓通知
func (r *Telegram) NotifyTradeClosed(chatId string, trade *models.Trade) error {
	pnl := trade.Pnl()

	emoji := "🟢"
	if pnl < 0 {
		emoji = "🔴"
	}

	exitPrice := ""
	if trade.ExitPrice != nil {
		exitPrice = formatFloat(*trade.ExitPrice)
	}

	rMultipleLine := ""
	if rm, ok := trade.RMultiple(); ok {
		rMultipleLine = fmt.Sprintf("\n*R倍数*: %sR", formatFloat(rm))
	}

	tmpl := fasttemplate.New(tradeClosedTemplate, "{{", "}}")
	msg := tmpl.ExecuteString(map[string]interface{}{
		"emoji":           emoji,
		"ticker":          escapeMarkdown(trade.Ticker),
		"asset_type":      escapeMarkdown(trade.AssetType),
		"position":        trade.Position,
		"entry_price":     formatFloat(trade.EntryPrice),
		"exit_price":      exitPrice,
		"position_size":   formatFloat(trade.PositionSize),
		"pnl":             formatFloat(pnl),
		"r_multiple_line": rMultipleLine,
	})

	return r.Notify(chatId, msg)
}
