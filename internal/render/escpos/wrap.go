package escpos

import "strings"

// wrapText greedily word-wraps text to width characters. Explicit
// newlines start fresh lines; a single word longer than the width is
// hard-truncated to the width. Empty text yields one empty line so the
// element still advances the paper.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapLine(para, width)...)
	}
	return lines
}

func wrapLine(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var current string

	for _, word := range words {
		if len([]rune(word)) > width {
			word = string([]rune(word)[:width])
		}

		switch {
		case current == "":
			current = word
		case len([]rune(current))+1+len([]rune(word)) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}

	return append(lines, current)
}

// twoColumn lays left and right out on one fixed-width line with the
// gap between them. When both sides cannot fit, the left side gives
// way; the right side is usually the amount and must survive intact.
func twoColumn(left, right string, width int) string {
	l := []rune(left)
	r := []rune(right)

	gap := width - len(l) - len(r)
	if gap < 1 {
		keep := width - len(r) - 1
		if keep < 0 {
			keep = 0
		}
		if keep < len(l) {
			l = l[:keep]
		}
		gap = width - len(l) - len(r)
		if gap < 1 {
			gap = 1
		}
	}

	return string(l) + strings.Repeat(" ", gap) + string(r)
}
