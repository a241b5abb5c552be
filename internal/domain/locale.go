package domain

import (
	"context"
	"strings"

	"golang.org/x/text/language"
)

// Locale selects one of the two supported translation sets.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleES Locale = "es"

	DefaultLocale = LocaleEN
)

// Locales lists the supported locales in display order.
func Locales() []Locale {
	return []Locale{LocaleEN, LocaleES}
}

// ParseLocale matches s against the supported locales by base language,
// so "es-MX" and "ES" both resolve to LocaleES.
func ParseLocale(s string) (Locale, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return LocaleEN, true
	case "es":
		return LocaleES, true
	}
	return "", false
}

// Toggle returns the other supported locale.
func (l Locale) Toggle() Locale {
	if l == LocaleES {
		return LocaleEN
	}
	return LocaleES
}

// Tag returns the language tag of l.
func (l Locale) Tag() language.Tag {
	if l == LocaleES {
		return language.Spanish
	}
	return language.English
}

func (l Locale) String() string { return string(l) }

type localeKey struct{}

// WithLocale stores the active locale in ctx.
func WithLocale(ctx context.Context, l Locale) context.Context {
	return context.WithValue(ctx, localeKey{}, l)
}

// LocaleFromContext returns the locale stored by WithLocale, or DefaultLocale.
func LocaleFromContext(ctx context.Context) Locale {
	if ctx == nil {
		return DefaultLocale
	}
	if l, ok := ctx.Value(localeKey{}).(Locale); ok && l != "" {
		return l
	}
	return DefaultLocale
}
