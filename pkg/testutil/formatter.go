package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"cobalt/internal/format"
	"cobalt/internal/l10n"
)

// Formatter builds a Formatter over the embedded catalogs for tag in the IANA zone.
func Formatter(t testing.TB, tag language.Tag, zone string, opts ...format.Option) *format.Formatter {
	t.Helper()
	bundle, err := l10n.NewBundle()
	require.NoError(t, err)
	loc, err := time.LoadLocation(zone)
	require.NoError(t, err)
	f, err := format.New(tag, loc, bundle.Localizer(tag), opts...)
	require.NoError(t, err)
	return f
}

// USFormatter is the en-US formatter in America/New_York most tests use.
func USFormatter(t testing.TB) *format.Formatter {
	t.Helper()
	return Formatter(t, language.AmericanEnglish, "America/New_York")
}
