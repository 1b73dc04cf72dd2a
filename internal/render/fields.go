// Package render holds the semantics shared by the markup and ESC/POS
// backends: field fallback chains, discount branching, calculation
// step synthesis, and the fixed table column presets. Both backends
// are siblings over the same template and context; anything that must
// stay character-identical between them lives here.
package render

import (
	"strconv"

	"github.com/billworks/receipt-render/internal/format"
	"github.com/billworks/receipt-render/pkg/data"
	"github.com/billworks/receipt-render/pkg/template"
)

// Fallback literals used when a structural element's keys are absent.
const (
	MissingField   = "N/A"
	DefaultPayMode = "Cash"
	DefaultFooter  = "Thank You! Visit Again!"
	QRCaption      = "Scan to Pay"
)

// BillNumber resolves the bill number: bill_number, then billNumber,
// then "N/A".
func BillNumber(ctx data.Context) string {
	return ctx.StringOr(MissingField, "bill_number", "billNumber")
}

// BillDate resolves the raw bill timestamp: bill_date, then billDate,
// then date.
func BillDate(ctx data.Context) string {
	return ctx.StringOr("", "bill_date", "billDate", "date")
}

// CustomerName resolves customer_name, then customerName, then "N/A".
func CustomerName(ctx data.Context) string {
	return ctx.StringOr(MissingField, "customer_name", "customerName")
}

// CustomerPhone resolves customer_phone, then customerPhone, then
// phone; empty when none present.
func CustomerPhone(ctx data.Context) string {
	return ctx.StringOr("", "customer_phone", "customerPhone", "phone")
}

// PaymentMode resolves payment_mode, then paymentMode, then "Cash".
func PaymentMode(ctx data.Context) string {
	return ctx.StringOr(DefaultPayMode, "payment_mode", "paymentMode")
}

// PaidAmount resolves the tendered amount, zero when absent.
func PaidAmount(ctx data.Context) float64 {
	return ctx.NumberOr("paid_amount", "paidAmount")
}

// Subtotal resolves subtotal, then subTotal, then sub_total.
func Subtotal(ctx data.Context) float64 {
	return ctx.NumberOr("subtotal", "subTotal", "sub_total")
}

// Total resolves total, then grand_total, then grandTotal.
func Total(ctx data.Context) float64 {
	return ctx.NumberOr("total", "grand_total", "grandTotal")
}

// Discount returns the raw discount figure (a percentage or a rupee
// amount, per discount_type).
func Discount(ctx data.Context) float64 {
	return ctx.Number("discount")
}

// DiscountLine computes the discount label and formatted value for the
// totals block. ok is false when discount <= 0 and the line is
// omitted. For a percentage discount the label carries the percent and
// the value is the derived rupee amount (subtotal * discount / 100);
// for an amount discount the value is the discount verbatim.
func DiscountLine(ctx data.Context) (label, value string, ok bool) {
	discount := Discount(ctx)
	if discount <= 0 {
		return "", "", false
	}

	if ctx.IsPercentDiscount() {
		label = "Discount (" + TrimNumber(discount) + "%)"
		value = format.Currency(Subtotal(ctx) * discount / 100)
	} else {
		label = "Discount"
		value = format.Currency(discount)
	}
	return label, value, true
}

// FooterMessage resolves the footer text: the element value (already
// substituted by the caller), then context footer_message, then the
// stock thank-you line.
func FooterMessage(substituted string, ctx data.Context) string {
	if substituted != "" {
		return substituted
	}
	return ctx.StringOr(DefaultFooter, "footer_message")
}

// QRPayload resolves the QR data: the element value (already
// substituted by the caller), then context qr_data.
func QRPayload(substituted string, ctx data.Context) string {
	if substituted != "" {
		return substituted
	}
	return ctx.String("qr_data")
}

// TotalQty sums the item quantities.
func TotalQty(items []data.Item) float64 {
	var qty float64
	for _, item := range items {
		qty += item.Qty
	}
	return qty
}

// TrimNumber formats a float without a forced decimal tail: 2 -> "2",
// 2.5 -> "2.5".
func TrimNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// TaxLines returns the label/value pairs for the GST components whose
// collected amount is positive, in CGST, SGST, IGST order.
func TaxLines(ctx data.Context) [][2]string {
	tax := ctx.Tax()
	var lines [][2]string
	for _, c := range []struct {
		name string
		comp data.TaxComponent
	}{
		{"CGST", tax.CGST},
		{"SGST", tax.SGST},
		{"IGST", tax.IGST},
	} {
		if c.comp.Amount > 0 {
			label := c.name + " (" + TrimNumber(c.comp.Rate) + "%)"
			lines = append(lines, [2]string{label, format.Currency(c.comp.Amount)})
		}
	}
	return lines
}

// DefaultAlign is the alignment both backends fall back to when an
// element does not set one.
const DefaultAlign = template.AlignLeft
