package escpos

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/billworks/receipt-render/pkg/data"
	"github.com/billworks/receipt-render/pkg/template"
)

var (
	initSeq     = []byte{ESC, '@'}
	terminalSeq = []byte{LF, LF, LF, LF, GS, 'V', 0}
)

// elementBytes renders a single-element template and returns only the
// bytes that element emitted.
func elementBytes(t *testing.T, el template.Element, ctx data.Context) []byte {
	t.Helper()

	tpl := &template.Template{CharacterWidth: 32, PaperWidth: 58, Elements: []template.Element{el}}
	out := Render(tpl, ctx)

	if !bytes.HasPrefix(out, initSeq) {
		t.Fatalf("Expected stream to start with initialize, got % X", out[:4])
	}
	if !bytes.HasSuffix(out, terminalSeq) {
		t.Fatalf("Expected stream to end with feed+cut, got % X", out)
	}
	return out[len(initSeq) : len(out)-len(terminalSeq)]
}

func TestRender_EmptyTemplate(t *testing.T) {
	out := Render(&template.Template{CharacterWidth: 32, Elements: []template.Element{}}, nil)
	want := append(append([]byte{}, initSeq...), terminalSeq...)
	if !bytes.Equal(out, want) {
		t.Errorf("Expected bare initialize/feed/cut skeleton, got % X", out)
	}
}

func TestRender_NilTemplate(t *testing.T) {
	out := Render(nil, nil)
	if !bytes.HasPrefix(out, initSeq) || !bytes.HasSuffix(out, terminalSeq) {
		t.Errorf("Expected skeleton for nil template, got % X", out)
	}
}

func TestRender_PlainText(t *testing.T) {
	got := elementBytes(t, template.Element{Type: template.TypeText, Value: "Hello ${name}"},
		data.Context{"name": "World"})

	want := append([]byte("Hello World"), LF)
	if !bytes.Equal(got, want) {
		t.Errorf("Plain left-aligned text should emit no mode opcodes, got % X", got)
	}
}

func TestRender_StateResetPerElement(t *testing.T) {
	got := elementBytes(t, template.Element{
		Type:       template.TypeText,
		Value:      "Hi",
		Alignment:  template.AlignCenter,
		FontWeight: template.WeightBold,
	}, nil)

	want := []byte{
		ESC, 'a', 1, // center
		ESC, 'E', 1, // bold on
		'H', 'i', LF,
		ESC, 'E', 0, // bold off before
		ESC, 'a', 0, // alignment reset
	}
	if !bytes.Equal(got, want) {
		t.Errorf("element bytes = % X, want % X", got, want)
	}
}

func TestRender_BoldLargeIsDouble(t *testing.T) {
	got := elementBytes(t, template.Element{
		Type:       template.TypeText,
		Value:      "T",
		FontSize:   template.SizeLarge,
		FontWeight: template.WeightBold,
	}, nil)

	want := []byte{
		GS, '!', 0x11, // double width/height
		ESC, 'E', 1,
		'T', LF,
		ESC, 'E', 0,
		GS, '!', 0x00,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("element bytes = % X, want % X", got, want)
	}
}

func TestRender_SmallMapsToNormal(t *testing.T) {
	got := elementBytes(t, template.Element{
		Type:     template.TypeText,
		Value:    "s",
		FontSize: template.SizeSmall,
	}, nil)

	if bytes.Contains(got, []byte{GS, '!'}) || bytes.Contains(got, []byte{ESC, 'E', 1}) {
		t.Errorf("Small/normal text should emit no style opcodes, got % X", got)
	}
}

func TestRender_WordWrap(t *testing.T) {
	tpl := &template.Template{CharacterWidth: 16, Elements: []template.Element{
		{Type: template.TypeText, Value: "the quick brown fox jumps"},
	}}

	out := Render(tpl, nil)
	body := out[len(initSeq) : len(out)-len(terminalSeq)]
	lines := bytes.Split(bytes.TrimSuffix(body, []byte{LF}), []byte{LF})
	want := [][]byte{[]byte("the quick brown"), []byte("fox jumps")}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("wrapped lines = %q, want %q", lines, want)
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "hello", 10, []string{"hello"}},
		{"greedy wrap", "hello world foo", 11, []string{"hello world", "foo"}},
		{"overlong word truncated", "abcdefghijkl", 5, []string{"abcde"}},
		{"empty", "", 10, []string{""}},
		{"explicit newline", "a\nb", 10, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapText(tt.text, tt.width); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("wrapText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestTwoColumn(t *testing.T) {
	if got := twoColumn("A", "B", 8); got != "A      B" {
		t.Errorf("twoColumn = %q", got)
	}
	if got := twoColumn("a very long label", "9.00", 12); len([]rune(got)) != 12 {
		t.Errorf("Expected overlong left side truncated to fit, got %q (len %d)", got, len([]rune(got)))
	}
}

func TestRender_Separator(t *testing.T) {
	got := elementBytes(t, template.Element{Type: template.TypeSeparator}, nil)
	want := append(bytes.Repeat([]byte{'-'}, 32), LF)
	if !bytes.Equal(got, want) {
		t.Errorf("separator = %q", got)
	}
}

func TestRender_QRCode(t *testing.T) {
	got := elementBytes(t, template.Element{Type: template.TypeQRCode, Value: "AB"}, nil)

	var want []byte
	want = append(want, ESC, 'a', 1) // QR defaults to center
	want = append(want, GS, '(', 'k', 4, 0, 49, 65, 50, 0)
	want = append(want, GS, '(', 'k', 3, 0, 49, 67, QRModuleMedium)
	want = append(want, GS, '(', 'k', 3, 0, 49, 69, QRECMedium)
	want = append(want, GS, '(', 'k', 5, 0, 49, 80, 48) // len("AB")+3 = 5
	want = append(want, 'A', 'B')
	want = append(want, GS, '(', 'k', 3, 0, 49, 81, 48)
	want = append(want, []byte("Scan to Pay")...)
	want = append(want, LF)
	want = append(want, ESC, 'a', 0)

	if !bytes.Equal(got, want) {
		t.Errorf("qr bytes = % X, want % X", got, want)
	}
}

func TestRender_QRSizeAndLevel(t *testing.T) {
	got := elementBytes(t, template.Element{
		Type:            template.TypeQRCode,
		Value:           "x",
		QRSize:          template.QRSizeLarge,
		ErrorCorrection: "H",
	}, nil)

	if !bytes.Contains(got, []byte{GS, '(', 'k', 3, 0, 49, 67, QRModuleLarge}) {
		t.Errorf("Expected large module size, got % X", got)
	}
	if !bytes.Contains(got, []byte{GS, '(', 'k', 3, 0, 49, 69, QRECHigh}) {
		t.Errorf("Expected H error correction, got % X", got)
	}
}

func TestRender_QRWithoutPayload(t *testing.T) {
	got := elementBytes(t, template.Element{Type: template.TypeQRCode}, data.Context{})

	// Still aligned and reset, but no QR commands without a payload.
	want := []byte{ESC, 'a', 1, ESC, 'a', 0}
	if !bytes.Equal(got, want) {
		t.Errorf("Expected alignment-only bytes, got % X", got)
	}
}

func TestRender_UnknownTypeEmitsNothing(t *testing.T) {
	got := elementBytes(t, template.Element{Type: "hologram"}, nil)
	if len(got) != 0 {
		t.Errorf("Unknown element emitted % X", got)
	}
}

func TestRender_CutPaperElement(t *testing.T) {
	got := elementBytes(t, template.Element{Type: template.TypeCutPaper}, nil)
	want := []byte{LF, LF, LF, LF, GS, 'V', 0}
	if !bytes.Equal(got, want) {
		t.Errorf("cut_paper = % X, want % X", got, want)
	}
}

func TestRender_BillItemsColumns(t *testing.T) {
	ctx := data.Context{
		"items": []interface{}{
			map[string]interface{}{"slNo": "1", "name": "Tea", "qty": float64(2), "rate": float64(10), "amount": float64(20)},
		},
	}

	got := elementBytes(t, template.Element{Type: template.TypeBillItems}, ctx)
	line := string(bytes.TrimSuffix(got, []byte{LF}))
	if len([]rune(line)) != 32 {
		t.Errorf("item row length = %d, want 32: %q", len([]rune(line)), line)
	}
	if line != "1  Tea          2  10.00   20.00" {
		t.Errorf("item row = %q", line)
	}
}

func TestRender_TotalsBoldGrandRow(t *testing.T) {
	ctx := data.Context{"subtotal": float64(100), "total": float64(118)}
	got := elementBytes(t, template.Element{Type: template.TypeTotalAmountRow}, ctx)

	boldOn := bytes.Index(got, []byte{ESC, 'E', 1})
	boldOff := bytes.Index(got, []byte{ESC, 'E', 0})
	if boldOn < 0 || boldOff < boldOn {
		t.Fatalf("Expected bold toggles around grand total, got % X", got)
	}
	if !bytes.Contains(got[boldOn:boldOff], []byte("TOTAL")) {
		t.Errorf("Expected TOTAL inside the bold span, got % X", got)
	}
}

func TestRender_TotalsPercentDiscount(t *testing.T) {
	ctx := data.Context{
		"subtotal":      float64(1000),
		"discount":      float64(50),
		"discount_type": "percentage",
		"total":         float64(500),
	}
	got := elementBytes(t, template.Element{Type: template.TypeTotalAmountRow}, ctx)

	if !bytes.Contains(got, encodeText("Discount (50%)")) {
		t.Errorf("Expected percent in discount label, got % X", got)
	}
	// 1000 * 50 / 100 = 500 rupees
	if !bytes.Contains(got, encodeText("₹500.00")) {
		t.Errorf("Expected derived discount value ₹500.00, got % X", got)
	}
}

func TestRender_Idempotent(t *testing.T) {
	tpl := &template.Template{CharacterWidth: 32, Elements: []template.Element{
		{Type: template.TypeBillDateRow},
		{Type: template.TypeBillItems},
		{Type: template.TypeQRCode, Value: "upi://pay"},
	}}
	ctx := data.Context{
		"bill_number": "B-1",
		"items": []interface{}{
			map[string]interface{}{"name": "Tea", "qty": float64(1), "rate": float64(10), "amount": float64(10)},
		},
	}

	if !bytes.Equal(Render(tpl, ctx), Render(tpl, ctx)) {
		t.Error("Expected byte-identical output across renders of the same inputs")
	}
}

func TestEncodeText(t *testing.T) {
	// The rupee glyph is a three-byte sequence; runes beyond U+FFFF
	// are dropped.
	if got := encodeText("₹5"); !bytes.Equal(got, []byte{0xE2, 0x82, 0xB9, '5'}) {
		t.Errorf("encodeText(₹5) = % X", got)
	}
	if got := encodeText("a\U0001F600b"); !bytes.Equal(got, []byte{'a', 'b'}) {
		t.Errorf("Expected astral rune dropped, got % X", got)
	}
}
