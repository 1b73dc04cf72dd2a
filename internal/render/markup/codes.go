package markup

import (
	"html"

	"github.com/billworks/receipt-render/internal/render"
	"github.com/billworks/receipt-render/pkg/data"
	"github.com/billworks/receipt-render/pkg/template"
)

func (r *Renderer) renderQRCode(el *template.Element) string {
	payload := render.QRPayload(data.Substitute(el.Value, r.ctx), r.ctx)
	if payload == "" {
		return ""
	}

	size := el.QRSize
	switch size {
	case template.QRSizeSmall, template.QRSizeMedium, template.QRSizeLarge:
	default:
		size = template.QRSizeMedium
	}

	return `<div class="rcpt-qr" data-size="` + size + `">` +
		`<div class="rcpt-qr-box" data-payload="` + html.EscapeString(payload) + `"></div>` +
		`<div class="rcpt-qr-caption">` + render.QRCaption + `</div></div>`
}
