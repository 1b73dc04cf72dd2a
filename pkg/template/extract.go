package template

import (
	"regexp"
	"sort"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\$\{([^}]*)\}`)

// ExtractVariables returns the unique ${...} identifiers referenced by
// the template's element values, sorted. Used by tooling that
// documents what data a template expects; neither backend calls it.
func ExtractVariables(t *Template) []string {
	if t == nil {
		return []string{}
	}

	seen := make(map[string]bool)
	var names []string

	for _, el := range t.Elements {
		for _, m := range placeholderRe.FindAllStringSubmatch(el.Value, -1) {
			name := strings.TrimSpace(m[1])
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}

	sort.Strings(names)
	if names == nil {
		names = []string{}
	}
	return names
}
