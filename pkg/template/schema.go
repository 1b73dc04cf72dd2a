// Package template defines the types for the receipt template format
package template

// Element type tags. The tag selects behavior in both render backends;
// a tag not listed here renders as a no-op.
const (
	TypeText                     = "text"
	TypeStaticText               = "static_text"
	TypeSeparator                = "separator"
	TypeNewline                  = "newline"
	TypePlaceholderBlock         = "placeholder_block"
	TypeBillDateRow              = "bill_date_row"
	TypeCustomerInfoRow          = "customer_info_row"
	TypeTransactionPaymentRow    = "transaction_payment_row"
	TypeTransactionCalculation   = "transaction_calculation"
	TypeTransactionCalculationV2 = "transaction_calculation_v2"
	TypeItemHeaderRow            = "item_header_row"
	TypeBillItems                = "bill_items"
	TypeTotalQtyItemsRow         = "total_qty_items_row"
	TypeTotalAmountRow           = "total_amount_row"
	TypeTotalAmountRowSimple     = "total_amount_row_simple"
	TypeFooterMessage            = "footer_message"
	TypeQRCode                   = "qr_code"
	TypeCutPaper                 = "cut_paper"
)

// Alignment values
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// Font sizes
const (
	SizeSmall  = "small"
	SizeNormal = "normal"
	SizeLarge  = "large"
)

// Font weights
const (
	WeightNormal = "normal"
	WeightBold   = "bold"
)

// QR symbol sizes and error correction levels
const (
	QRSizeSmall  = "small"
	QRSizeMedium = "medium"
	QRSizeLarge  = "large"
)

// Default layout values applied by Parse when the template omits them
const (
	DefaultCharacterWidth = 32
	DefaultPaperWidth     = 58

	MinCharacterWidth = 16
	MaxCharacterWidth = 64
)

// Template is the root of a receipt template: paper geometry plus the
// ordered element sequence. Element order is rendering order and is
// never reordered by a backend.
type Template struct {
	CharacterWidth int       `json:"characterWidth,omitempty" yaml:"characterWidth,omitempty"`
	PaperWidth     int       `json:"paperWidth,omitempty" yaml:"paperWidth,omitempty"`
	Elements       []Element `json:"elements" yaml:"elements"`
}

// Element is one entry of a template. Type selects the variant; the
// remaining fields apply per variant. Text-like variants carry Value
// (with ${var} placeholders); structural variants read fixed keys out
// of the data context at render time instead.
type Element struct {
	Type       string `json:"type" yaml:"type"`
	Value      string `json:"value,omitempty" yaml:"value,omitempty"`
	Alignment  string `json:"alignment,omitempty" yaml:"alignment,omitempty"`
	FontSize   string `json:"font_size,omitempty" yaml:"font_size,omitempty"`
	FontWeight string `json:"font_weight,omitempty" yaml:"font_weight,omitempty"`

	// placeholder_block
	Lines int `json:"lines,omitempty" yaml:"lines,omitempty"`

	// qr_code
	QRSize          string `json:"qr_size,omitempty" yaml:"qr_size,omitempty"`
	ErrorCorrection string `json:"error_correction,omitempty" yaml:"error_correction,omitempty"`
}

// Bold reports whether the element requests bold output.
func (e *Element) Bold() bool {
	return e.FontWeight == WeightBold
}

// Align returns the element alignment, or def when unset.
func (e *Element) Align(def string) string {
	switch e.Alignment {
	case AlignLeft, AlignCenter, AlignRight:
		return e.Alignment
	default:
		return def
	}
}
