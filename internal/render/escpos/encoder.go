// Package escpos renders a template to an ESC/POS command stream for
// thermal receipt printers.
package escpos

import (
	"bytes"
)

// ESC/POS command prefixes
const (
	ESC byte = 0x1B
	GS  byte = 0x1D
	LF  byte = 0x0A
)

// QR module sizes by symbol size name
const (
	QRModuleSmall  byte = 3
	QRModuleMedium byte = 6
	QRModuleLarge  byte = 8
)

// QR error correction level bytes (GS ( k fn 69)
const (
	QRECLow     byte = 48 // L
	QRECMedium  byte = 49 // M
	QRECQuality byte = 50 // Q
	QRECHigh    byte = 51 // H
)

// Encoder accumulates ESC/POS commands in a buffer. It knows nothing
// about templates; the renderer drives it element by element.
type Encoder struct {
	buffer *bytes.Buffer
}

// NewEncoder creates an empty encoder.
func NewEncoder() *Encoder {
	return &Encoder{buffer: new(bytes.Buffer)}
}

// Initialize sends the printer initialization command (ESC @).
func (e *Encoder) Initialize() {
	e.buffer.Write([]byte{ESC, '@'})
}

// SetAlignment sets text alignment (ESC a).
func (e *Encoder) SetAlignment(align string) {
	var n byte
	switch align {
	case "center":
		n = 1
	case "right":
		n = 2
	default:
		n = 0
	}
	e.buffer.Write([]byte{ESC, 'a', n})
}

// SetBold enables or disables emphasis (ESC E).
func (e *Encoder) SetBold(enabled bool) {
	var n byte
	if enabled {
		n = 1
	}
	e.buffer.Write([]byte{ESC, 'E', n})
}

// SetDoubleSize enables or disables double width and height (GS !).
func (e *Encoder) SetDoubleSize(enabled bool) {
	var n byte
	if enabled {
		n = 0x11
	}
	e.buffer.Write([]byte{GS, '!', n})
}

// WriteText appends a text payload, encoded to bytes.
func (e *Encoder) WriteText(text string) {
	e.buffer.Write(encodeText(text))
}

// PrintLine appends a text payload followed by a line feed.
func (e *Encoder) PrintLine(text string) {
	e.WriteText(text)
	e.LineFeed()
}

// LineFeed sends a single line feed.
func (e *Encoder) LineFeed() {
	e.buffer.WriteByte(LF)
}

// Feed sends multiple line feeds.
func (e *Encoder) Feed(lines int) {
	for i := 0; i < lines; i++ {
		e.LineFeed()
	}
}

// Cut sends a full paper cut (GS V 0).
func (e *Encoder) Cut() {
	e.buffer.Write([]byte{GS, 'V', 0})
}

// QRCode emits the fixed sub-command sequence for a native printer QR
// symbol: model selection, module size, error correction, data store,
// print. moduleSize and level are the raw command bytes (see the
// QRModule* and QREC* constants).
func (e *Encoder) QRCode(payload string, moduleSize, level byte) {
	data := encodeText(payload)

	// Function 65: select model 2
	e.buffer.Write([]byte{GS, '(', 'k', 4, 0, 49, 65, 50, 0})
	// Function 67: module size
	e.buffer.Write([]byte{GS, '(', 'k', 3, 0, 49, 67, moduleSize})
	// Function 69: error correction level
	e.buffer.Write([]byte{GS, '(', 'k', 3, 0, 49, 69, level})
	// Function 80: store data; length prefix counts payload plus the
	// three bytes 49 80 48
	n := len(data) + 3
	e.buffer.Write([]byte{GS, '(', 'k', byte(n & 0xFF), byte((n >> 8) & 0xFF), 49, 80, 48})
	e.buffer.Write(data)
	// Function 81: print the stored symbol
	e.buffer.Write([]byte{GS, '(', 'k', 3, 0, 49, 81, 48})
}

// Bytes returns the accumulated command stream.
func (e *Encoder) Bytes() []byte {
	return e.buffer.Bytes()
}

// Reset clears the buffer.
func (e *Encoder) Reset() {
	e.buffer.Reset()
}

// encodeText encodes a string to printer bytes with a minimal 1-3 byte
// UTF-8 encoder. Runes beyond the 3-byte range are dropped; thermal
// printer character sets do not reach them.
func encodeText(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		switch {
		case r < 0x80:
			out = append(out, byte(r))
		case r < 0x800:
			out = append(out,
				byte(0xC0|(r>>6)),
				byte(0x80|(r&0x3F)))
		case r <= 0xFFFF:
			out = append(out,
				byte(0xE0|(r>>12)),
				byte(0x80|((r>>6)&0x3F)),
				byte(0x80|(r&0x3F)))
		}
	}
	return out
}
