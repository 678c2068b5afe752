// Package locale negotiates the response locale and time zone for each request.
//
// The locale comes from X-Locale when present, otherwise from Accept-Language, matched
// against the supported tags. The time zone comes from X-Time-Zone as an IANA name.
package locale

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"

	"cobalt/pkg/requestcontext"
)

const (
	HeaderLocale   = "X-Locale"
	HeaderTimeZone = "X-Time-Zone"
)

// Negotiator picks a supported locale and a time zone for a request.
type Negotiator struct {
	supported []language.Tag
	matcher   language.Matcher
	location  *time.Location
}

// New builds a Negotiator. The first supported tag is the fallback locale.
func New(supported []language.Tag, defaultLocation *time.Location) *Negotiator {
	if len(supported) == 0 {
		supported = []language.Tag{language.AmericanEnglish}
	}
	if defaultLocation == nil {
		defaultLocation = time.UTC
	}
	return &Negotiator{
		supported: supported,
		matcher:   language.NewMatcher(supported),
		location:  defaultLocation,
	}
}

// Locale matches the request's preferences against the supported tags.
func (n *Negotiator) Locale(r *http.Request) language.Tag {
	if explicit := strings.TrimSpace(r.Header.Get(HeaderLocale)); explicit != "" {
		if tag, err := language.Parse(strings.ReplaceAll(explicit, "_", "-")); err == nil {
			return n.match(tag)
		}
	}
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return n.match(tags...)
		}
	}
	return n.supported[0]
}

func (n *Negotiator) match(tags ...language.Tag) language.Tag {
	_, index, confidence := n.matcher.Match(tags...)
	if confidence == language.No {
		return n.supported[0]
	}
	return n.supported[index]
}

// Location resolves X-Time-Zone, falling back to the default location.
func (n *Negotiator) Location(r *http.Request) *time.Location {
	name := strings.TrimSpace(r.Header.Get(HeaderTimeZone))
	if name == "" {
		return n.location
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return n.location
	}
	return loc
}

// Handler stores the negotiated locale and location on the context.
func (n *Negotiator) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tag := n.Locale(r)
		ctx := requestcontext.WithLocale(r.Context(), tag)
		ctx = requestcontext.WithLocation(ctx, n.Location(r))

		w.Header().Set("Content-Language", tag.String())
		w.Header().Add("Vary", "Accept-Language")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
