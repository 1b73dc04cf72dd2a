// Package markup renders a template to a markup string for on-screen
// preview. The class tokens emitted here (rcpt-*, align-*, size-*,
// weight-*) are a stable contract consumed by an external stylesheet
// and must not be renamed.
package markup

import (
	"strings"

	"github.com/billworks/receipt-render/pkg/data"
	"github.com/billworks/receipt-render/pkg/template"
)

// Renderer walks a template's element sequence and produces the
// preview markup. One Renderer serves one render call; it holds no
// state beyond the output buffer.
type Renderer struct {
	tpl *template.Template
	ctx data.Context
	b   strings.Builder
}

// New creates a renderer for one template/context pair.
func New(tpl *template.Template, ctx data.Context) *Renderer {
	if ctx == nil {
		ctx = data.Context{}
	}
	return &Renderer{tpl: tpl, ctx: ctx}
}

// Render renders the full template. A nil template or element list
// renders as an empty document rather than an error; the validator is
// where structural problems get reported.
func Render(tpl *template.Template, ctx data.Context) string {
	return New(tpl, ctx).Render()
}

// Render produces the markup for the whole element sequence, in order.
func (r *Renderer) Render() string {
	r.b.Reset()
	if r.tpl == nil {
		return ""
	}
	for i := range r.tpl.Elements {
		r.b.WriteString(r.renderElement(&r.tpl.Elements[i]))
	}
	return r.b.String()
}

// RenderElement renders a single element.
func (r *Renderer) RenderElement(el *template.Element) string {
	return r.renderElement(el)
}

func (r *Renderer) renderElement(el *template.Element) string {
	switch el.Type {
	case template.TypeText:
		return r.renderText(el, true)
	case template.TypeStaticText:
		return r.renderText(el, false)
	case template.TypeSeparator:
		return `<div class="rcpt-separator"></div>`
	case template.TypeNewline:
		return `<div class="rcpt-newline"></div>`
	case template.TypePlaceholderBlock:
		return r.renderPlaceholderBlock(el)
	case template.TypeBillDateRow:
		return r.renderBillDateRow()
	case template.TypeCustomerInfoRow:
		return r.renderCustomerInfoRow()
	case template.TypeTransactionPaymentRow:
		return r.renderPaymentRow()
	case template.TypeTransactionCalculation:
		return r.renderCalculation()
	case template.TypeTransactionCalculationV2:
		return r.renderCalculationV2()
	case template.TypeItemHeaderRow:
		return r.renderItemHeader()
	case template.TypeBillItems:
		return r.renderBillItems()
	case template.TypeTotalQtyItemsRow:
		return r.renderTotalQtyItems()
	case template.TypeTotalAmountRow:
		return r.renderTotals(false)
	case template.TypeTotalAmountRowSimple:
		return r.renderTotals(true)
	case template.TypeFooterMessage:
		return r.renderFooter(el)
	case template.TypeQRCode:
		return r.renderQRCode(el)
	case template.TypeCutPaper:
		// Physical action only; nothing to preview.
		return ""
	default:
		// Unknown element types render as nothing so templates from
		// newer format versions degrade instead of failing.
		return ""
	}
}
