package ui

import (
	"strings"
)

// ParseCSS parses a primitive CSS file: selectors .class, #id or a bare node type, with
// comma-separated selector lists, and blocks of "key: value;". No combinators, no @rules.
// Later rules override earlier for the same property.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	rest := stripCSSComments(content)
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			break
		}
		close := findMatchingBrace(rest, open)
		if close < 0 {
			break
		}
		props := parseDeclarations(rest[open+1 : close])
		for _, sel := range strings.Split(rest[:open], ",") {
			sel = strings.TrimSpace(sel)
			if validSelector(sel) {
				sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
			}
		}
		rest = rest[close+1:]
	}
	return sheet, nil
}

func validSelector(sel string) bool {
	if sel == "" || strings.ContainsAny(sel, " >+~:[") {
		return false
	}
	if sel[0] == '.' || sel[0] == '#' {
		return len(sel) > 1
	}
	return true
}

func stripCSSComments(s string) string {
	var b strings.Builder
	for {
		start := strings.Index(s, "/*")
		if start < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:start])
		end := strings.Index(s[start+2:], "*/")
		if end < 0 {
			return b.String()
		}
		s = s[start+2+end+2:]
	}
}

func findMatchingBrace(s string, openIdx int) int {
	depth := 1
	for i := openIdx + 1; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func parseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			props[k] = strings.TrimSpace(v)
		}
	}
	return props
}
