// Package data defines the flat data context a template is rendered
// against, plus the structured fields read by table and totals
// elements.
package data

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Context is the flat field mapping supplied per render call. Scalar
// fields are read through ${...} substitution; the structured fields
// (items, tax, calculation_steps, discount_type) are read directly by
// the structural elements. A Context is treated as read-only for the
// duration of a render.
type Context map[string]interface{}

// Item is one line of the items array.
type Item struct {
	SlNo   string
	Name   string
	Qty    float64
	Rate   float64
	Amount float64
	SKU    string
}

// TaxComponent is one GST component (rate and collected amount).
type TaxComponent struct {
	Rate   float64
	Amount float64
}

// Tax holds the CGST/SGST/IGST breakdown.
type Tax struct {
	CGST TaxComponent
	SGST TaxComponent
	IGST TaxComponent
}

// CalculationStep is one entry of the calculation_steps array. Steps
// flagged IsFinal represent a running total and are excluded from
// step-wise display.
type CalculationStep struct {
	Operator string
	Operand  string
	IsFinal  bool
}

// Parse parses a data document from a byte slice (JSON, then YAML).
func Parse(raw []byte) (Context, error) {
	var ctx Context
	if err := json.Unmarshal(raw, &ctx); err != nil {
		if yerr := yaml.Unmarshal(raw, &ctx); yerr != nil {
			return nil, fmt.Errorf("failed to parse data: %w", err)
		}
	}
	return ctx, nil
}

// ParseFile parses a data document from disk.
func ParseFile(path string) (Context, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
	return Parse(raw)
}

// Has reports whether key is present with a non-nil value.
func (c Context) Has(key string) bool {
	v, ok := c[key]
	return ok && v != nil
}

// String returns the string form of a scalar field, or "" when absent.
func (c Context) String(key string) string {
	v, ok := c[key]
	if !ok || v == nil {
		return ""
	}
	return Stringify(v)
}

// StringOr returns the first present key's string form, else fallback.
// This is how elements implement their field fallback chains
// (bill_number then billNumber then a literal).
func (c Context) StringOr(fallback string, keys ...string) string {
	for _, key := range keys {
		if c.Has(key) {
			return Stringify(c[key])
		}
	}
	return fallback
}

// Number returns the numeric value of a field, best-effort: numbers
// pass through, numeric strings are parsed, anything else is 0.
func (c Context) Number(key string) float64 {
	v, ok := c[key]
	if !ok {
		return 0
	}
	return ToNumber(v)
}

// NumberOr returns the first present key's numeric value, else 0.
func (c Context) NumberOr(keys ...string) float64 {
	for _, key := range keys {
		if c.Has(key) {
			return ToNumber(c[key])
		}
	}
	return 0
}

// Items returns the items array, or nil when absent or malformed.
func (c Context) Items() []Item {
	raw, ok := c["items"].([]interface{})
	if !ok {
		return nil
	}

	items := make([]Item, 0, len(raw))
	for i, entry := range raw {
		m, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		item := Item{
			SlNo:   Stringify(m["slNo"]),
			Name:   Stringify(m["name"]),
			Qty:    ToNumber(m["qty"]),
			Rate:   ToNumber(m["rate"]),
			Amount: ToNumber(m["amount"]),
			SKU:    Stringify(m["sku"]),
		}
		if item.SlNo == "" {
			item.SlNo = strconv.Itoa(i + 1)
		}
		items = append(items, item)
	}
	return items
}

// Tax returns the tax breakdown. Absent components are zero-valued.
func (c Context) Tax() Tax {
	var t Tax
	raw, ok := c["tax"].(map[string]interface{})
	if !ok {
		return t
	}
	t.CGST = taxComponent(raw["cgst"])
	t.SGST = taxComponent(raw["sgst"])
	t.IGST = taxComponent(raw["igst"])
	return t
}

// CalculationSteps returns the calculation_steps array, or nil when
// absent.
func (c Context) CalculationSteps() []CalculationStep {
	raw, ok := c["calculation_steps"].([]interface{})
	if !ok {
		return nil
	}

	steps := make([]CalculationStep, 0, len(raw))
	for _, entry := range raw {
		m, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		steps = append(steps, CalculationStep{
			Operator: Stringify(m["operator"]),
			Operand:  Stringify(m["operand"]),
			IsFinal:  toBool(m["isFinal"]),
		})
	}
	return steps
}

// DiscountType returns the normalized discount type: "percentage",
// "percent", or "amount" (the default).
func (c Context) DiscountType() string {
	switch strings.ToLower(c.String("discount_type")) {
	case "percentage":
		return "percentage"
	case "percent":
		return "percent"
	default:
		return "amount"
	}
}

// IsPercentDiscount reports whether the discount is expressed as a
// percentage of the subtotal.
func (c Context) IsPercentDiscount() bool {
	dt := c.DiscountType()
	return dt == "percentage" || dt == "percent"
}

// Stringify renders a scalar field value for display. Floats that hold
// whole numbers print without a decimal tail (JSON numbers always
// arrive as float64).
func Stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// ToNumber coerces a field value to float64, best-effort. Parse
// failures yield 0 rather than an error; rendering always prefers a
// zero over aborting.
func ToNumber(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case json.Number:
		f, _ := val.Float64()
		return f
	case string:
		s := strings.TrimSpace(val)
		s = strings.ReplaceAll(s, ",", "")
		s = strings.TrimPrefix(s, "₹")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func taxComponent(v interface{}) TaxComponent {
	m, ok := v.(map[string]interface{})
	if !ok {
		return TaxComponent{}
	}
	return TaxComponent{
		Rate:   ToNumber(m["rate"]),
		Amount: ToNumber(m["amount"]),
	}
}

func toBool(v interface{}) bool {
	b, ok := v.(bool)
	return ok && b
}
