package markup

import (
	"html"
	"strings"

	"github.com/billworks/receipt-render/internal/format"
	"github.com/billworks/receipt-render/internal/render"
)

func (r *Renderer) renderItemHeader() string {
	cells := []string{
		cell(render.ColumnHeaders[0], false),
		cell(render.ColumnHeaders[1], false),
		cell(render.ColumnHeaders[2], true),
		cell(render.ColumnHeaders[3], true),
		cell(render.ColumnHeaders[4], true),
	}
	return `<div class="rcpt-item-header">` + strings.Join(cells, "") + `</div>`
}

func (r *Renderer) renderBillItems() string {
	items := r.ctx.Items()
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	for _, item := range items {
		cells := []string{
			cell(item.SlNo, false),
			cell(item.Name, false),
			cell(render.TrimNumber(item.Qty), true),
			cell(format.NumberLimited(item.Rate, render.RateBudget), true),
			cell(format.NumberLimited(item.Amount, render.AmountBudget), true),
		}
		b.WriteString(`<div class="rcpt-item-row">` + strings.Join(cells, "") + `</div>`)
	}
	return b.String()
}

func cell(text string, numeric bool) string {
	class := "rcpt-cell"
	if numeric {
		class = "rcpt-cell-right"
	}
	return `<span class="` + class + `">` + html.EscapeString(text) + `</span>`
}
