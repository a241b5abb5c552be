package web

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"

	"signalsite/internal/domain"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "site_lang"
)

var localeMatcher = func() language.Matcher {
	locales := domain.Locales()
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = l.Tag()
	}
	return language.NewMatcher(tags)
}()

// ResolveLocale determines the locale for r. The bool reports whether the
// lang query param selected it, in which case it should be persisted.
func ResolveLocale(r *http.Request, fallback domain.Locale) (domain.Locale, bool) {
	if r == nil {
		return fallback, false
	}

	if v := strings.TrimSpace(r.URL.Query().Get(LangParam)); v != "" {
		if l, ok := domain.ParseLocale(v); ok {
			return l, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if l, ok := domain.ParseLocale(cookie.Value); ok {
			return l, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			if _, idx, conf := localeMatcher.Match(tags...); conf != language.No {
				return domain.Locales()[idx], false
			}
		}
	}

	return fallback, false
}

// SetLanguageCookie persists the selected locale on the response.
func SetLanguageCookie(w http.ResponseWriter, l domain.Locale) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    l.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// localeMiddleware stores the request locale in the request context.
func localeMiddleware(fallback domain.Locale) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l, persist := ResolveLocale(r, fallback)
			if persist {
				SetLanguageCookie(w, l)
			}
			w.Header().Add("Vary", "Accept-Language, Cookie")
			next.ServeHTTP(w, r.WithContext(domain.WithLocale(r.Context(), l)))
		})
	}
}
