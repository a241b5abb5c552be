package i18n

import (
	"embed"
	"errors"
	"fmt"
	"sort"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"signalsite/internal/domain"
	"signalsite/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Translator implements the output.T port.
var _ output.T = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
//
// Each locale resolves against its own catalog only: a key missing from the
// requested locale renders as the key itself, never as another locale's text.
type Translator struct {
	localizers map[domain.Locale]*i18n.Localizer
	keys       map[domain.Locale]map[string]struct{}
	logger     *zap.Logger
}

// NewTranslator builds a Translator from the embedded active.*.toml files.
func NewTranslator(logger *zap.Logger) (*Translator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	bundle := i18n.NewBundle(domain.DefaultLocale.Tag())
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	t := &Translator{
		localizers: make(map[domain.Locale]*i18n.Localizer),
		keys:       make(map[domain.Locale]map[string]struct{}),
		logger:     logger,
	}

	for _, locale := range domain.Locales() {
		file := fmt.Sprintf("active.%s.toml", locale)
		mf, err := bundle.LoadMessageFileFS(localeFS, file)
		if err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", file, err)
		}
		set := make(map[string]struct{}, len(mf.Messages))
		for _, m := range mf.Messages {
			set[m.ID] = struct{}{}
		}
		t.keys[locale] = set
		t.localizers[locale] = i18n.NewLocalizer(bundle, locale.String())
	}

	return t, nil
}

// T resolves key in locale and substitutes ${name} placeholders from data.
// Unknown keys resolve to the key itself.
func (t *Translator) T(locale domain.Locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	if _, ok := t.keys[locale][key]; !ok {
		t.logger.Debug("i18n: missing key", zap.String("key", key), zap.Stringer("locale", locale))
		return key
	}

	msg, err := t.localizers[locale].Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		var notFound *i18n.MessageNotFoundErr
		if !errors.As(err, &notFound) {
			t.logger.Warn("i18n: localize failed", zap.String("key", key), zap.Stringer("locale", locale), zap.Error(err))
		}
		return key
	}
	return substitute(msg, data)
}

// Keys returns the sorted key set of locale.
func (t *Translator) Keys(locale domain.Locale) []string {
	set := t.keys[locale]
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// MissingKeys reports, per locale, the keys other locales define and it lacks.
func (t *Translator) MissingKeys() map[domain.Locale][]string {
	missing := make(map[domain.Locale][]string)
	for _, locale := range domain.Locales() {
		for _, other := range domain.Locales() {
			if other == locale {
				continue
			}
			for k := range t.keys[other] {
				if _, ok := t.keys[locale][k]; !ok {
					missing[locale] = append(missing[locale], k)
				}
			}
		}
		sort.Strings(missing[locale])
	}
	for locale, keys := range missing {
		if len(keys) == 0 {
			delete(missing, locale)
		}
	}
	return missing
}
