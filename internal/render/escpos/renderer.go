package escpos

import (
	"github.com/billworks/receipt-render/internal/render"
	"github.com/billworks/receipt-render/pkg/data"
	"github.com/billworks/receipt-render/pkg/template"
)

// Lines fed before the terminal cut so the printed content clears the
// tear bar.
const cutFeedLines = 4

// Renderer walks a template's element sequence and produces the
// printer command stream. Printer mode (alignment, font style) is
// global printer state; processElement always returns it to the
// defaults before the next element, so no element's styling can leak
// into its neighbors.
type Renderer struct {
	tpl  *template.Template
	ctx  data.Context
	enc  *Encoder
	cols render.Columns
}

// New creates a renderer for one template/context pair.
func New(tpl *template.Template, ctx data.Context) *Renderer {
	if ctx == nil {
		ctx = data.Context{}
	}
	width := template.DefaultCharacterWidth
	if tpl != nil && tpl.CharacterWidth > 0 {
		width = tpl.CharacterWidth
	}
	return &Renderer{
		tpl:  tpl,
		ctx:  ctx,
		enc:  NewEncoder(),
		cols: render.Preset(width),
	}
}

// Render renders the full template to a command stream: initialize,
// each element in order, then the terminal feed-and-cut. A nil
// template renders as an initialize/feed/cut skeleton rather than an
// error.
func Render(tpl *template.Template, ctx data.Context) []byte {
	return New(tpl, ctx).Render()
}

// Render produces the command stream for the whole element sequence.
func (r *Renderer) Render() []byte {
	r.enc.Reset()
	r.enc.Initialize()

	if r.tpl != nil {
		for i := range r.tpl.Elements {
			r.processElement(&r.tpl.Elements[i])
		}
	}

	r.enc.Feed(cutFeedLines)
	r.enc.Cut()
	return r.enc.Bytes()
}

func (r *Renderer) width() int {
	if r.tpl != nil && r.tpl.CharacterWidth > 0 {
		return r.tpl.CharacterWidth
	}
	return template.DefaultCharacterWidth
}

// processElement emits one element: alignment opcode if non-default,
// font style opcode from the element's size/weight, the element's
// payload, then the resets (font style first, then alignment). The
// resets are never deferred to the next element.
func (r *Renderer) processElement(el *template.Element) {
	align := r.elementAlign(el)
	bold, double := fontStyle(el)

	if align != template.AlignLeft {
		r.enc.SetAlignment(align)
	}
	if double {
		r.enc.SetDoubleSize(true)
	}
	if bold {
		r.enc.SetBold(true)
	}

	r.emitElement(el)

	if bold {
		r.enc.SetBold(false)
	}
	if double {
		r.enc.SetDoubleSize(false)
	}
	if align != template.AlignLeft {
		r.enc.SetAlignment(template.AlignLeft)
	}
}

// elementAlign picks the element's alignment with per-type defaults:
// footer and QR center themselves, calculation blocks ride the right
// edge, everything else starts at the left.
func (r *Renderer) elementAlign(el *template.Element) string {
	def := render.DefaultAlign
	switch el.Type {
	case template.TypeFooterMessage, template.TypeQRCode:
		def = template.AlignCenter
	case template.TypeTransactionCalculation, template.TypeTransactionCalculationV2:
		def = template.AlignRight
	}
	return el.Align(def)
}

// fontStyle maps (font_size, font_weight) to printer style: bold+large
// is double width/height plus emphasis, bold alone is emphasis, and
// everything else is the normal font. Small has no distinct printer
// font and maps to normal.
func fontStyle(el *template.Element) (bold, double bool) {
	bold = el.Bold()
	double = bold && el.FontSize == template.SizeLarge
	return bold, double
}

func (r *Renderer) emitElement(el *template.Element) {
	switch el.Type {
	case template.TypeText:
		r.emitText(data.Substitute(el.Value, r.ctx))
	case template.TypeStaticText:
		r.emitText(el.Value)
	case template.TypeSeparator:
		r.emitSeparator()
	case template.TypeNewline:
		r.enc.LineFeed()
	case template.TypePlaceholderBlock:
		r.emitPlaceholderBlock(el)
	case template.TypeBillDateRow:
		r.emitBillDateRow()
	case template.TypeCustomerInfoRow:
		r.emitCustomerInfoRow()
	case template.TypeTransactionPaymentRow:
		r.emitPaymentRow()
	case template.TypeTransactionCalculation:
		r.emitCalculation()
	case template.TypeTransactionCalculationV2:
		r.emitCalculationV2()
	case template.TypeItemHeaderRow:
		r.emitItemHeader()
	case template.TypeBillItems:
		r.emitBillItems()
	case template.TypeTotalQtyItemsRow:
		r.emitTotalQtyItems()
	case template.TypeTotalAmountRow:
		r.emitTotals(false)
	case template.TypeTotalAmountRowSimple:
		r.emitTotals(true)
	case template.TypeFooterMessage:
		r.emitFooter(el)
	case template.TypeQRCode:
		r.emitQRCode(el)
	case template.TypeCutPaper:
		r.enc.Feed(cutFeedLines)
		r.enc.Cut()
	default:
		// Unknown element types emit nothing; a newer template version
		// should still print its known elements.
	}
}
