package render

import (
	"testing"

	"github.com/billworks/receipt-render/pkg/data"
)

func TestBillNumber_FallbackChain(t *testing.T) {
	tests := []struct {
		name string
		ctx  data.Context
		want string
	}{
		{"primary key", data.Context{"bill_number": "B-1", "billNumber": "B-2"}, "B-1"},
		{"camel fallback", data.Context{"billNumber": "B-2"}, "B-2"},
		{"all absent", data.Context{}, "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BillNumber(tt.ctx); got != tt.want {
				t.Errorf("BillNumber() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiscountLine_Percentage(t *testing.T) {
	ctx := data.Context{
		"subtotal":      float64(1000),
		"discount":      float64(50),
		"discount_type": "percentage",
	}

	label, value, ok := DiscountLine(ctx)
	if !ok {
		t.Fatal("Expected discount line to be shown")
	}
	if label != "Discount (50%)" {
		t.Errorf("label = %q, want \"Discount (50%%)\"", label)
	}
	// 1000 * 50 / 100 = 500 rupees
	if value != "₹500.00" {
		t.Errorf("value = %q, want ₹500.00", value)
	}
}

func TestDiscountLine_Amount(t *testing.T) {
	ctx := data.Context{
		"subtotal":      float64(1000),
		"discount":      float64(75),
		"discount_type": "amount",
	}

	label, value, ok := DiscountLine(ctx)
	if !ok {
		t.Fatal("Expected discount line to be shown")
	}
	if label != "Discount" {
		t.Errorf("label = %q, want Discount", label)
	}
	if value != "₹75.00" {
		t.Errorf("value = %q, want ₹75.00 (discount verbatim)", value)
	}
}

func TestDiscountLine_ZeroHidden(t *testing.T) {
	if _, _, ok := DiscountLine(data.Context{"discount": float64(0)}); ok {
		t.Error("Expected zero discount hidden")
	}
	if _, _, ok := DiscountLine(data.Context{}); ok {
		t.Error("Expected absent discount hidden")
	}
}

func TestTaxLines(t *testing.T) {
	ctx := data.Context{
		"tax": map[string]interface{}{
			"cgst": map[string]interface{}{"rate": float64(9), "amount": float64(45)},
			"sgst": map[string]interface{}{"rate": float64(9), "amount": float64(45)},
			"igst": map[string]interface{}{"rate": float64(18), "amount": float64(0)},
		},
	}

	lines := TaxLines(ctx)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 tax lines (zero IGST hidden), got %d", len(lines))
	}
	if lines[0][0] != "CGST (9%)" || lines[0][1] != "₹45.00" {
		t.Errorf("Unexpected CGST line: %v", lines[0])
	}
	if lines[1][0] != "SGST (9%)" {
		t.Errorf("Unexpected SGST line: %v", lines[1])
	}
}

func TestFooterMessage(t *testing.T) {
	if got := FooterMessage("Custom", data.Context{}); got != "Custom" {
		t.Errorf("Expected element value preferred, got %q", got)
	}
	if got := FooterMessage("", data.Context{"footer_message": "See you"}); got != "See you" {
		t.Errorf("Expected context fallback, got %q", got)
	}
	if got := FooterMessage("", data.Context{}); got != DefaultFooter {
		t.Errorf("Expected stock footer, got %q", got)
	}
}

func TestQRPayload(t *testing.T) {
	if got := QRPayload("upi://pay", data.Context{"qr_data": "other"}); got != "upi://pay" {
		t.Errorf("Expected element value preferred, got %q", got)
	}
	if got := QRPayload("", data.Context{"qr_data": "upi://fallback"}); got != "upi://fallback" {
		t.Errorf("Expected qr_data fallback, got %q", got)
	}
}

func TestTotalQty(t *testing.T) {
	items := []data.Item{{Qty: 2}, {Qty: 1.5}}
	if got := TotalQty(items); got != 3.5 {
		t.Errorf("TotalQty() = %v, want 3.5", got)
	}
}

func TestTrimNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2, "2"},
		{2.5, "2.5"},
		{50, "50"},
		{0.25, "0.25"},
	}

	for _, tt := range tests {
		if got := TrimNumber(tt.in); got != tt.want {
			t.Errorf("TrimNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPreset_SumsToWidth(t *testing.T) {
	if w := Preset(32).Width(); w != 32 {
		t.Errorf("32-column preset sums to %d", w)
	}
	if w := Preset(48).Width(); w != 48 {
		t.Errorf("48-column preset sums to %d", w)
	}
	// Anything other than 32 is treated as wide stock.
	if Preset(40) != Preset(48) {
		t.Error("Expected non-32 widths to use the 48 preset")
	}
}

func TestColumns_Row(t *testing.T) {
	cols := Preset(32)
	row := cols.Row("1", "Tea", "2", "10.00", "20.00")
	if len([]rune(row)) != 32 {
		t.Errorf("Row length = %d, want 32: %q", len([]rune(row)), row)
	}

	// Long names truncate instead of widening the row.
	row = cols.Row("1", "A very long item name", "2", "10.00", "20.00")
	if len([]rune(row)) != 32 {
		t.Errorf("Row with long name length = %d, want 32: %q", len([]rune(row)), row)
	}
}

func TestPadding(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadLeft("ab", 4); got != "  ab" {
		t.Errorf("PadLeft = %q", got)
	}
	if got := PadRight("abcdef", 4); got != "abcd" {
		t.Errorf("PadRight truncation = %q", got)
	}
	if got := PadLeft("abcdef", 4); got != "abcd" {
		t.Errorf("PadLeft truncation = %q", got)
	}
}
