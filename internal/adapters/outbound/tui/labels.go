package tui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bewertigo/bewertigo/internal/domain"
	"github.com/fatih/camelcase"
)

// moduleLabelOverrides covers words camel-case splitting cannot infer.
var moduleLabelOverrides = map[string]string{
	"google": "Google",
}

// ModuleLabel turns a module key into a display label:
// "googleBusinessProfile" -> "Google Business Profile".
func ModuleLabel(m domain.Module) string {
	words := camelcase.Split(string(m))
	for i, w := range words {
		if o, ok := moduleLabelOverrides[w]; ok {
			words[i] = o
			continue
		}
		words[i] = upperFirst(w)
	}
	return strings.Join(words, " ")
}

// SubMetricLabel turns a bucket name into a display label: "desktop_lcp" -> "Desktop Lcp".
func SubMetricLabel(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		words[i] = upperFirst(w)
	}
	return strings.Join(words, " ")
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
