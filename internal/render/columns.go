package render

import "strings"

// Per-field character budgets for item rows. Fixed policy, not
// configurable per template: rate and amount strings are capped before
// they reach a column so a long price cannot push a row past the
// paper.
const (
	RateBudget   = 7
	AmountBudget = 8
)

// Columns is a column-width preset for the items table. Sl and Name
// are left-aligned, the numeric columns right-aligned; the widths sum
// to the paper's character width.
type Columns struct {
	Sl     int
	Name   int
	Qty    int
	Rate   int
	Amount int
}

// Item table header labels.
var ColumnHeaders = [5]string{"#", "Item", "Qty", "Price", "Amount"}

// Preset returns the column layout for a character width. Exactly two
// presets exist: 32-column narrow stock, and everything else treated
// as 48-column wide stock.
func Preset(characterWidth int) Columns {
	if characterWidth == 32 {
		return Columns{Sl: 3, Name: 10, Qty: 4, Rate: 7, Amount: 8}
	}
	return Columns{Sl: 4, Name: 22, Qty: 6, Rate: 7, Amount: 9}
}

// Width returns the total character width of the preset.
func (c Columns) Width() int {
	return c.Sl + c.Name + c.Qty + c.Rate + c.Amount
}

// Row lays a five-cell row out as one fixed-width line.
func (c Columns) Row(sl, name, qty, rate, amount string) string {
	var b strings.Builder
	b.WriteString(PadRight(sl, c.Sl))
	b.WriteString(PadRight(name, c.Name))
	b.WriteString(PadLeft(qty, c.Qty))
	b.WriteString(PadLeft(rate, c.Rate))
	b.WriteString(PadLeft(amount, c.Amount))
	return b.String()
}

// HeaderRow lays out the fixed header labels.
func (c Columns) HeaderRow() string {
	return c.Row(ColumnHeaders[0], ColumnHeaders[1], ColumnHeaders[2], ColumnHeaders[3], ColumnHeaders[4])
}

// PadRight left-aligns s in a field of width w, truncating when s is
// longer.
func PadRight(s string, w int) string {
	runes := []rune(s)
	if len(runes) > w {
		return string(runes[:w])
	}
	return s + strings.Repeat(" ", w-len(runes))
}

// PadLeft right-aligns s in a field of width w, truncating when s is
// longer.
func PadLeft(s string, w int) string {
	runes := []rune(s)
	if len(runes) > w {
		return string(runes[:w])
	}
	return strings.Repeat(" ", w-len(runes)) + s
}
