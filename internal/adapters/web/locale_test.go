package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"signalsite/internal/domain"
)

func TestResolveLocale(t *testing.T) {
	cases := []struct {
		name        string
		url         string
		cookie      string
		accept      string
		want        domain.Locale
		wantPersist bool
	}{
		{name: "default", url: "/", want: domain.LocaleEN},
		{name: "query param", url: "/?lang=es", want: domain.LocaleES, wantPersist: true},
		{name: "invalid query falls through to cookie", url: "/?lang=fr", cookie: "es", want: domain.LocaleES},
		{name: "cookie beats accept-language", url: "/", cookie: "en", accept: "es", want: domain.LocaleEN},
		{name: "accept-language regional", url: "/", accept: "es-MX,es;q=0.9,en;q=0.5", want: domain.LocaleES},
		{name: "accept-language unsupported", url: "/", accept: "fr-FR", want: domain.LocaleEN},
		{name: "query beats cookie", url: "/?lang=en", cookie: "es", want: domain.LocaleEN, wantPersist: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}

			got, persist := ResolveLocale(req, domain.LocaleEN)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantPersist, persist)
		})
	}
}

func TestResolveLocale_NilRequest(t *testing.T) {
	got, persist := ResolveLocale(nil, domain.LocaleES)
	assert.Equal(t, domain.LocaleES, got)
	assert.False(t, persist)
}

func TestLocaleMiddleware(t *testing.T) {
	var seen domain.Locale
	h := localeMiddleware(domain.LocaleEN)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = domain.LocaleFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?lang=es", nil))

	assert.Equal(t, domain.LocaleES, seen)
	cookies := rec.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Equal(t, LangCookieName, cookies[0].Name)
		assert.Equal(t, "es", cookies[0].Value)
	}
}
