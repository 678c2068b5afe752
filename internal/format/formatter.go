// Package format renders values for display in one locale and time zone.
//
// A Formatter is built once per request from the negotiated locale and time zone and is
// read-only afterwards, so response builders can share it freely:
//
//	f, err := format.New(language.Spanish, loc, bundle.Localizer(language.Spanish))
//	f.FormatTimestamp(account.Created, format.StyleDefault, format.StyleDefault)
//	f.FormatPhoneNumber("+12155551234")
//
// Month and day names come from goodsign/monday, numbers from golang.org/x/text, phone
// numbers from nyaruka/phonenumbers. Translatable phrases go through the l10n bundle.
package format

import (
	"context"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"cobalt/internal/l10n"
	dErrors "cobalt/pkg/domain-errors"
	"cobalt/pkg/requestcontext"
)

// Observer is notified when formatting falls back to raw input.
type Observer interface {
	PhoneFormatFallback()
}

// Formatter formats values for a single locale and location.
type Formatter struct {
	tag       language.Tag
	region    string
	location  *time.Location
	localizer *l10n.Localizer
	printer   *message.Printer
	layouts   layoutSet
	names     monday.Locale
	observer  Observer
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithObserver sets the observer for fallback events.
func WithObserver(o Observer) Option {
	return func(f *Formatter) {
		f.observer = o
	}
}

// New builds a Formatter bound to tag and location.
func New(tag language.Tag, location *time.Location, localizer *l10n.Localizer, opts ...Option) (*Formatter, error) {
	if location == nil {
		return nil, dErrors.Required("location")
	}
	if localizer == nil {
		return nil, dErrors.Required("localizer")
	}

	f := &Formatter{
		tag:       tag,
		region:    exactRegion(tag),
		location:  location,
		localizer: localizer,
		printer:   message.NewPrinter(tag),
	}
	f.layouts, f.names = layoutsFor(tag)
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// FromContext builds a Formatter from the locale and location stored on ctx.
func FromContext(ctx context.Context, bundle *l10n.Bundle, opts ...Option) (*Formatter, error) {
	if bundle == nil {
		return nil, dErrors.Required("bundle")
	}
	tag := requestcontext.Locale(ctx)
	return New(tag, requestcontext.Location(ctx), bundle.Localizer(tag), opts...)
}

// Factory builds request Formatters over a shared bundle. Handlers hold one.
type Factory struct {
	bundle *l10n.Bundle
	opts   []Option
}

func NewFactory(bundle *l10n.Bundle, opts ...Option) *Factory {
	return &Factory{bundle: bundle, opts: opts}
}

// ForRequest builds the Formatter for the locale and location on ctx.
func (fa *Factory) ForRequest(ctx context.Context) (*Formatter, error) {
	return FromContext(ctx, fa.bundle, fa.opts...)
}

// Locale returns the bound locale.
func (f *Formatter) Locale() language.Tag {
	return f.tag
}

// Location returns the bound time zone.
func (f *Formatter) Location() *time.Location {
	return f.location
}

// T renders a translatable message in the bound locale.
func (f *Formatter) T(msg *l10n.Message, data map[string]any) string {
	return f.localizer.T(msg, data)
}

// Plural renders the plural form of msg for count in the bound locale.
func (f *Formatter) Plural(msg *l10n.Message, count int, data map[string]any) string {
	return f.localizer.Plural(msg, count, data)
}

// exactRegion returns the region explicitly named in tag, or "" when it would be a guess.
func exactRegion(tag language.Tag) string {
	region, confidence := tag.Region()
	if confidence != language.Exact {
		return ""
	}
	return region.String()
}
