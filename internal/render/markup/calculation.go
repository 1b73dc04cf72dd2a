package markup

import (
	"html"
	"strings"

	"github.com/billworks/receipt-render/internal/render"
)

func (r *Renderer) renderCalculation() string {
	lines := render.CalculationLines(r.ctx)
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<div class="rcpt-calc">`)
	for _, l := range lines {
		b.WriteString(calcLine(l))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func (r *Renderer) renderCalculationV2() string {
	steps := render.DisplaySteps(r.ctx)
	if len(steps) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<div class="rcpt-calc">`)
	for _, step := range steps {
		b.WriteString(calcLine(render.StepLine(step)))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func calcLine(text string) string {
	return `<div class="rcpt-line align-right size-normal">` + html.EscapeString(text) + `</div>`
}
