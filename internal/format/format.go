// Package format holds the display formatting shared by both render
// backends: currency, Western and Indian digit grouping, width-capped
// numbers, and date/time. Everything here is fail-soft; a value that
// cannot be parsed formats as zero (numbers) or passes through
// unchanged (dates).
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/billworks/receipt-render/pkg/data"
)

// CurrencyGlyph is the symbol prepended by Currency.
const CurrencyGlyph = "₹"

// Currency formats a value as a rupee amount with Western grouping and
// two decimals, e.g. 1234567.5 -> "₹1,234,567.50".
func Currency(v interface{}) string {
	return CurrencyGlyph + Number(v)
}

// Number formats a value with Western 3-digit grouping and two
// decimals, e.g. 1234567.5 -> "1,234,567.50".
func Number(v interface{}) string {
	sign, intPart, fracPart := split(v)
	return sign + groupWestern(intPart) + "." + fracPart
}

// IndianNumber formats a value with Indian grouping (rightmost three
// digits, then groups of two) and two decimals, e.g.
// 1234567.5 -> "12,34,567.50". For integer parts of three digits or
// fewer the output matches Number exactly.
func IndianNumber(v interface{}) string {
	sign, intPart, fracPart := split(v)
	return sign + groupIndian(intPart) + "." + fracPart
}

// NumberLimited formats like Number but hard-truncates the result to
// maxLen characters when it runs over. The truncation is by character
// count, not value: digits are chopped without rounding. Table columns
// on fixed-width paper need a hard cap more than they need the exact
// number.
func NumberLimited(v interface{}, maxLen int) string {
	s := Number(v)
	if maxLen > 0 && len(s) > maxLen {
		return s[:maxLen]
	}
	return s
}

// Date renders an ISO-8601 timestamp as dd/mm/yyyy. Unparseable input
// is returned unchanged.
func Date(iso string) string {
	t, err := parseISO(iso)
	if err != nil {
		return iso
	}
	return t.Format("02/01/2006")
}

// Time renders an ISO-8601 timestamp as 24-hour HH:MM. Unparseable
// input is returned unchanged.
func Time(iso string) string {
	t, err := parseISO(iso)
	if err != nil {
		return iso
	}
	return t.Format("15:04")
}

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseISO(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// split coerces v to a number and returns sign, integer digits, and
// the two fraction digits.
func split(v interface{}) (sign, intPart, fracPart string) {
	n := data.ToNumber(v)
	s := fmt.Sprintf("%.2f", n)
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	dot := strings.IndexByte(s, '.')
	return sign, s[:dot], s[dot+1:]
}

func groupWestern(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	// Rightmost three digits form one group; the rest group by two.
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	groups = append(groups, tail)
	return strings.Join(groups, ",")
}
