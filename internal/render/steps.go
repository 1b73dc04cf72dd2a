package render

import (
	"strings"

	"github.com/billworks/receipt-render/internal/format"
	"github.com/billworks/receipt-render/pkg/data"
)

// finalizingOps are the operators that mark a calculation step as a
// running total rather than an intermediate operand. Such steps are
// excluded from step-wise display; the total is shown by the totals
// block instead.
var finalizingOps = map[string]bool{
	"=":  true,
	"%":  true,
	"GT": true,
	"M+": true,
	"M-": true,
}

// IsFinalizing reports whether a step represents a running/grand total.
func IsFinalizing(step data.CalculationStep) bool {
	return step.IsFinal || finalizingOps[strings.TrimSpace(step.Operator)]
}

// FilterSteps drops finalizing steps, keeping input order.
func FilterSteps(steps []data.CalculationStep) []data.CalculationStep {
	kept := make([]data.CalculationStep, 0, len(steps))
	for _, s := range steps {
		if !IsFinalizing(s) {
			kept = append(kept, s)
		}
	}
	return kept
}

// SynthesizeSteps builds calculation steps from the items array: two
// steps per item (Indian-grouped rate, then "x" quantity) plus one
// discount step when discount > 0. This is the single synthesis path
// used by both calculation element variants, so their step text cannot
// drift apart.
func SynthesizeSteps(ctx data.Context) []data.CalculationStep {
	items := ctx.Items()
	steps := make([]data.CalculationStep, 0, 2*len(items)+1)

	for _, item := range items {
		steps = append(steps,
			data.CalculationStep{Operand: format.IndianNumber(item.Rate)},
			data.CalculationStep{Operator: "x", Operand: TrimNumber(item.Qty)},
		)
	}

	if discount := Discount(ctx); discount > 0 {
		operand := format.IndianNumber(discount)
		if ctx.IsPercentDiscount() {
			operand = TrimNumber(discount) + "%"
		}
		steps = append(steps, data.CalculationStep{Operator: "-", Operand: operand})
	}

	return steps
}

// CalculationLines renders the synthesized steps in the inline form
// used by the transaction_calculation element: one "rate x qty" line
// per item, then a "- discount" line. The same steps, row-split
// instead of inlined, are what transaction_calculation_v2 shows.
func CalculationLines(ctx data.Context) []string {
	steps := SynthesizeSteps(ctx)
	var lines []string

	for i := 0; i+1 < len(steps); i += 2 {
		if steps[i+1].Operator != "x" {
			break
		}
		lines = append(lines, steps[i].Operand+" x "+steps[i+1].Operand)
	}

	if n := len(steps); n > 0 && steps[n-1].Operator == "-" {
		lines = append(lines, "- "+steps[n-1].Operand)
	}

	return lines
}

// StepLine renders one step in the row-split form used by
// transaction_calculation_v2.
func StepLine(step data.CalculationStep) string {
	if step.Operator == "" {
		return step.Operand
	}
	return step.Operator + " " + step.Operand
}

// DisplaySteps returns the steps transaction_calculation_v2 shows:
// the context's calculation_steps when present, otherwise steps
// synthesized from items, with finalizing steps filtered either way.
func DisplaySteps(ctx data.Context) []data.CalculationStep {
	steps := ctx.CalculationSteps()
	if steps == nil {
		steps = SynthesizeSteps(ctx)
	}
	return FilterSteps(steps)
}
