package escpos

import (
	"strings"

	"github.com/billworks/receipt-render/internal/format"
	"github.com/billworks/receipt-render/internal/render"
	"github.com/billworks/receipt-render/pkg/data"
	"github.com/billworks/receipt-render/pkg/template"
)

func (r *Renderer) emitText(text string) {
	for _, line := range wrapText(text, r.width()) {
		r.enc.PrintLine(line)
	}
}

func (r *Renderer) emitSeparator() {
	r.enc.PrintLine(strings.Repeat("-", r.width()))
}

func (r *Renderer) emitPlaceholderBlock(el *template.Element) {
	lines := el.Lines
	if lines <= 0 {
		lines = 1
	}
	r.enc.Feed(lines)
}

func (r *Renderer) emitBillDateRow() {
	left := "Bill No: " + render.BillNumber(r.ctx)

	right := render.MissingField
	if raw := render.BillDate(r.ctx); raw != "" {
		right = format.Date(raw) + " " + format.Time(raw)
	}

	r.enc.PrintLine(twoColumn(left, right, r.width()))
}

func (r *Renderer) emitCustomerInfoRow() {
	left := "Customer: " + render.CustomerName(r.ctx)

	right := ""
	if phone := render.CustomerPhone(r.ctx); phone != "" {
		right = "Ph: " + phone
	}

	r.enc.PrintLine(twoColumn(left, right, r.width()))
}

func (r *Renderer) emitPaymentRow() {
	left := "Paid via: " + render.PaymentMode(r.ctx)

	right := ""
	if paid := render.PaidAmount(r.ctx); paid > 0 {
		right = format.Currency(paid)
	}

	r.enc.PrintLine(twoColumn(left, right, r.width()))
}

func (r *Renderer) emitCalculation() {
	for _, line := range render.CalculationLines(r.ctx) {
		r.enc.PrintLine(line)
	}
}

func (r *Renderer) emitCalculationV2() {
	for _, step := range render.DisplaySteps(r.ctx) {
		r.enc.PrintLine(render.StepLine(step))
	}
}

func (r *Renderer) emitItemHeader() {
	r.enc.PrintLine(r.cols.HeaderRow())
}

func (r *Renderer) emitBillItems() {
	for _, item := range r.ctx.Items() {
		r.enc.PrintLine(r.cols.Row(
			item.SlNo,
			item.Name,
			render.TrimNumber(item.Qty),
			format.NumberLimited(item.Rate, render.RateBudget),
			format.NumberLimited(item.Amount, render.AmountBudget),
		))
	}
}

func (r *Renderer) emitTotalQtyItems() {
	items := r.ctx.Items()
	left := "Qty: " + render.TrimNumber(render.TotalQty(items))
	right := "Items: " + render.TrimNumber(float64(len(items)))
	r.enc.PrintLine(twoColumn(left, right, r.width()))
}

func (r *Renderer) emitTotals(simple bool) {
	width := r.width()

	if !simple {
		r.enc.PrintLine(twoColumn("Subtotal", format.Currency(render.Subtotal(r.ctx)), width))

		if label, value, ok := render.DiscountLine(r.ctx); ok {
			r.enc.PrintLine(twoColumn(label, value, width))
		}

		for _, tl := range render.TaxLines(r.ctx) {
			r.enc.PrintLine(twoColumn(tl[0], tl[1], width))
		}
	}

	// The grand total is always emphasized. The extra bold toggle is
	// still scoped to this element; processElement's resets run after.
	r.enc.SetBold(true)
	r.enc.PrintLine(twoColumn("TOTAL", format.Currency(render.Total(r.ctx)), width))
	r.enc.SetBold(false)
}

func (r *Renderer) emitFooter(el *template.Element) {
	msg := render.FooterMessage(data.Substitute(el.Value, r.ctx), r.ctx)
	for _, line := range wrapText(msg, r.width()) {
		r.enc.PrintLine(line)
	}
}

func (r *Renderer) emitQRCode(el *template.Element) {
	payload := render.QRPayload(data.Substitute(el.Value, r.ctx), r.ctx)
	if payload == "" {
		return
	}

	r.enc.QRCode(payload, qrModuleSize(el.QRSize), qrECLevel(el.ErrorCorrection))
	r.enc.PrintLine(render.QRCaption)
}

func qrModuleSize(size string) byte {
	switch size {
	case template.QRSizeSmall:
		return QRModuleSmall
	case template.QRSizeLarge:
		return QRModuleLarge
	default:
		return QRModuleMedium
	}
}

func qrECLevel(level string) byte {
	switch level {
	case "L":
		return QRECLow
	case "Q":
		return QRECQuality
	case "H":
		return QRECHigh
	default:
		return QRECMedium
	}
}
