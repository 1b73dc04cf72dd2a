package markup

import (
	"github.com/billworks/receipt-render/internal/format"
	"github.com/billworks/receipt-render/internal/render"
)

func (r *Renderer) renderBillDateRow() string {
	left := "Bill No: " + render.BillNumber(r.ctx)

	right := render.MissingField
	if raw := render.BillDate(r.ctx); raw != "" {
		right = format.Date(raw) + " " + format.Time(raw)
	}

	return row(left, right)
}

func (r *Renderer) renderCustomerInfoRow() string {
	left := "Customer: " + render.CustomerName(r.ctx)

	right := ""
	if phone := render.CustomerPhone(r.ctx); phone != "" {
		right = "Ph: " + phone
	}

	return row(left, right)
}

func (r *Renderer) renderPaymentRow() string {
	left := "Paid via: " + render.PaymentMode(r.ctx)

	right := ""
	if paid := render.PaidAmount(r.ctx); paid > 0 {
		right = format.Currency(paid)
	}

	return row(left, right)
}

func (r *Renderer) renderTotalQtyItems() string {
	items := r.ctx.Items()
	left := "Qty: " + render.TrimNumber(render.TotalQty(items))
	right := "Items: " + render.TrimNumber(float64(len(items)))
	return row(left, right)
}
