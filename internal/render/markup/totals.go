package markup

import (
	"html"
	"strings"

	"github.com/billworks/receipt-render/internal/format"
	"github.com/billworks/receipt-render/internal/render"
)

func (r *Renderer) renderTotals(simple bool) string {
	var b strings.Builder
	b.WriteString(`<div class="rcpt-totals">`)

	if !simple {
		b.WriteString(totalRow("Subtotal", format.Currency(render.Subtotal(r.ctx)), false))

		if label, value, ok := render.DiscountLine(r.ctx); ok {
			b.WriteString(totalRow(label, value, false))
		}

		for _, tl := range render.TaxLines(r.ctx) {
			b.WriteString(totalRow(tl[0], tl[1], false))
		}
	}

	b.WriteString(totalRow("TOTAL", format.Currency(render.Total(r.ctx)), true))
	b.WriteString(`</div>`)
	return b.String()
}

func totalRow(label, value string, grand bool) string {
	class := "rcpt-total-row"
	if grand {
		class += " rcpt-total-grand"
	}
	return `<div class="` + class + `"><span class="rcpt-col-left">` + html.EscapeString(label) +
		`</span><span class="rcpt-col-right">` + html.EscapeString(value) + `</span></div>`
}
