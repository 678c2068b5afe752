package format

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"cobalt/internal/l10n"
	str "cobalt/pkg/string"
)

const fallbackPhoneRegion = "US"

var (
	msgGreetingNamed = &l10n.Message{
		ID:    "FormatGreetingNamed",
		Other: "Hi {{.FirstName}},",
	}
	msgGreetingAnonymous = &l10n.Message{
		ID:    "FormatGreetingAnonymous",
		Other: "Hello,",
	}
)

// FormatPhoneNumber renders raw in national format for the locale's region (US when the
// locale names none). Input that does not parse is returned unchanged.
func (f *Formatter) FormatPhoneNumber(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	region := f.region
	if region == "" {
		region = fallbackPhoneRegion
	}
	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		if f.observer != nil {
			f.observer.PhoneFormatFallback()
		}
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.NATIONAL)
}

// FormatOptionalPhoneNumber is FormatPhoneNumber for optional values. Nil or blank gives nil.
func (f *Formatter) FormatOptionalPhoneNumber(raw *string) *string {
	if raw == nil {
		return nil
	}
	formatted := f.FormatPhoneNumber(*raw)
	if formatted == "" {
		return nil
	}
	return &formatted
}

// FormatGreeting renders an email-style salutation.
func (f *Formatter) FormatGreeting(firstName string) string {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return f.T(msgGreetingAnonymous, nil)
	}
	return f.T(msgGreetingNamed, map[string]any{"FirstName": firstName})
}

// FormatLanguage names a language in the bound locale, e.g. "Spanish" or "espagnol".
func (f *Formatter) FormatLanguage(tag language.Tag) string {
	return display.Languages(f.tag).Name(tag)
}

// FormatCountry names a region in the bound locale.
func (f *Formatter) FormatCountry(region language.Region) string {
	return display.Regions(f.tag).Name(region)
}

// DisplayName joins the non-blank name parts with spaces.
func DisplayName(first, middle, last string) string {
	return str.JoinNonBlank(" ", first, middle, last)
}

// DisplayNameLastFirst renders "Last, First Middle". With only one side present it
// renders that side alone.
func DisplayNameLastFirst(first, middle, last string) string {
	return str.JoinNonBlank(", ", last, str.JoinNonBlank(" ", first, middle))
}
