package data

import (
	"regexp"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\$\{([^}]*)\}`)

// Substitute resolves ${name} placeholders in text against the
// context. An identifier is any run of characters other than '}',
// trimmed of surrounding whitespace. Unresolved placeholders are left
// in place so a broken template stays visibly broken instead of
// silently blanking out. Replacement values are never re-scanned.
func Substitute(text string, ctx Context) string {
	if !strings.Contains(text, "${") {
		return text
	}

	return placeholderRe.ReplaceAllStringFunc(text, func(token string) string {
		name := strings.TrimSpace(token[2 : len(token)-1])
		if name == "" || ctx == nil {
			return token
		}
		v, ok := ctx[name]
		if !ok || v == nil {
			return token
		}
		return Stringify(v)
	})
}
