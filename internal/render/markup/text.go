package markup

import (
	"html"
	"strconv"
	"strings"

	"github.com/billworks/receipt-render/internal/render"
	"github.com/billworks/receipt-render/pkg/data"
	"github.com/billworks/receipt-render/pkg/template"
)

func (r *Renderer) renderText(el *template.Element, substitute bool) string {
	text := el.Value
	if substitute {
		text = data.Substitute(text, r.ctx)
	}
	return line(text, el.Align(render.DefaultAlign), el)
}

func (r *Renderer) renderPlaceholderBlock(el *template.Element) string {
	lines := el.Lines
	if lines <= 0 {
		lines = 1
	}
	return `<div class="rcpt-placeholder" data-lines="` + strconv.Itoa(lines) + `"></div>`
}

func (r *Renderer) renderFooter(el *template.Element) string {
	msg := render.FooterMessage(data.Substitute(el.Value, r.ctx), r.ctx)
	return line(msg, el.Align(template.AlignCenter), el)
}

// line wraps escaped text in the standard container with alignment,
// size, and weight classes.
func line(text, align string, el *template.Element) string {
	classes := []string{"rcpt-line", "align-" + align, "size-" + sizeClass(el)}
	if el.Bold() {
		classes = append(classes, "weight-bold")
	}
	return `<div class="` + strings.Join(classes, " ") + `">` + html.EscapeString(text) + `</div>`
}

func sizeClass(el *template.Element) string {
	switch el.FontSize {
	case template.SizeSmall:
		return template.SizeSmall
	case template.SizeLarge:
		return template.SizeLarge
	default:
		return template.SizeNormal
	}
}

// row emits the two-column container used by the info row elements.
func row(left, right string) string {
	return `<div class="rcpt-row"><span class="rcpt-col-left">` + html.EscapeString(left) +
		`</span><span class="rcpt-col-right">` + html.EscapeString(right) + `</span></div>`
}
