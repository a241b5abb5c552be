package output

import "signalsite/internal/domain"

// Translator exposes a minimal i18n contract for user-facing messages.
// Implementations provide message lookup + templating for a given locale.
type T interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for ${name} placeholders (may be nil).
	T(locale domain.Locale, key string, data map[string]any) string
}
