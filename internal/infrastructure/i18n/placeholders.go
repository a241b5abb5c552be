package i18n

import (
	"fmt"
	"strings"
)

// substitute replaces every ${name} in tmpl with fmt.Sprint(data[name]).
// Placeholders without an entry in data stay as literal text, and inserted
// values are never rescanned.
func substitute(tmpl string, data map[string]any) string {
	if len(data) == 0 || !strings.Contains(tmpl, "${") {
		return tmpl
	}

	var b strings.Builder
	b.Grow(len(tmpl))
	rest := tmpl
	for {
		start := strings.Index(rest, "${")
		if start < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[start+2:], '}')
		if end < 0 {
			b.WriteString(rest)
			break
		}
		end += start + 2

		b.WriteString(rest[:start])
		name := rest[start+2 : end]
		if v, ok := data[name]; ok {
			b.WriteString(fmt.Sprint(v))
		} else {
			b.WriteString(rest[start : end+1])
		}
		rest = rest[end+1:]
	}
	return b.String()
}
