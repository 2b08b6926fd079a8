package locale

import (
	"context"
	"slices"
	"strconv"
	"strings"
)

type ctxKey struct{}

// ParseLang maps a language tag to a supported code, or DefaultLang.
// Region subtags are ignored, so "pt-PT" and "en_GB" both match.
func ParseLang(lang string) string {
	if code, ok := match(lang); ok {
		return code
	}
	return DefaultLang
}

// IsValidLang reports whether lang names a supported language.
func IsValidLang(lang string) bool {
	_, ok := match(lang)
	return ok
}

func match(tag string) (string, bool) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	switch tag {
	case "portuguese", "português":
		return PT, true
	case "english":
		return EN, true
	}
	base, _, _ := strings.Cut(strings.ReplaceAll(tag, "_", "-"), "-")
	if slices.Contains(LangList, base) {
		return base, true
	}
	return "", false
}

// Negotiate picks the supported language with the highest q-value from an
// Accept-Language header. Equal weights keep header order.
func Negotiate(header string) string {
	best, bestQ := DefaultLang, 0.0
	for _, part := range strings.Split(header, ",") {
		tag, params, _ := strings.Cut(part, ";")
		code, ok := match(tag)
		if !ok {
			continue
		}
		q := 1.0
		if v, found := strings.CutPrefix(strings.TrimSpace(params), "q="); found {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				q = f
			}
		}
		if q > bestQ {
			best, bestQ = code, q
		}
	}
	return best
}

// SetLocaleToContext stores lang in ctx. Unsupported values become DefaultLang.
func SetLocaleToContext(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ctxKey{}, ParseLang(lang))
}

// GetLang returns the language stored in ctx, or DefaultLang.
func GetLang(ctx context.Context) string {
	if lang, ok := ctx.Value(ctxKey{}).(string); ok && lang != "" {
		return lang
	}
	return DefaultLang
}
