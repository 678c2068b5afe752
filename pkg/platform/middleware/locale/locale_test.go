package locale

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"cobalt/pkg/requestcontext"
)

var supported = []language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	language.Spanish,
	language.French,
}

func newYork(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

func TestLocale(t *testing.T) {
	n := New(supported, time.UTC)

	tests := []struct {
		name    string
		headers map[string]string
		want    language.Tag
	}{
		{"no preference uses first supported", nil, language.AmericanEnglish},
		{"accept-language match", map[string]string{"Accept-Language": "es-MX,es;q=0.9"}, language.Spanish},
		{"regional english", map[string]string{"Accept-Language": "en-GB"}, language.BritishEnglish},
		{"quality ordering", map[string]string{"Accept-Language": "de;q=0.5, fr;q=0.8"}, language.French},
		{"x-locale wins", map[string]string{"X-Locale": "fr_FR", "Accept-Language": "es"}, language.French},
		{"unsupported falls back", map[string]string{"Accept-Language": "ja"}, language.AmericanEnglish},
		{"malformed accept-language", map[string]string{"Accept-Language": ";;;"}, language.AmericanEnglish},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, n.Locale(req))
		})
	}
}

func TestLocation(t *testing.T) {
	ny := newYork(t)
	n := New(supported, ny)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, ny, n.Location(req))

	req.Header.Set(HeaderTimeZone, "Europe/Paris")
	assert.Equal(t, "Europe/Paris", n.Location(req).String())

	req.Header.Set(HeaderTimeZone, "Mars/Olympus_Mons")
	assert.Equal(t, ny, n.Location(req))
}

func TestHandler(t *testing.T) {
	n := New(supported, newYork(t))

	var gotTag language.Tag
	var gotLoc *time.Location
	h := n.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTag = requestcontext.Locale(r.Context())
		gotLoc = requestcontext.Location(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "es")
	req.Header.Set(HeaderTimeZone, "America/Chicago")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, language.Spanish, gotTag)
	assert.Equal(t, "America/Chicago", gotLoc.String())
	assert.Equal(t, "es", w.Header().Get("Content-Language"))
}

func TestNewDefaults(t *testing.T) {
	n := New(nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, language.AmericanEnglish, n.Locale(req))
	assert.Equal(t, time.UTC, n.Location(req))
}
