package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/goodsign/monday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cobalt/internal/l10n"
)

var (
	msgRelativeNow     = &l10n.Message{ID: "FormatRelativeNow", Other: "now"}
	msgRelativePast    = &l10n.Message{ID: "FormatRelativePast", Other: "{{.Span}} ago"}
	msgRelativeFuture  = &l10n.Message{ID: "FormatRelativeFuture", Other: "{{.Span}} from now"}
	msgRelativeSeconds = &l10n.Message{ID: "FormatRelativeSeconds", One: "{{.Count}} second", Other: "{{.Count}} seconds"}
	msgRelativeMinutes = &l10n.Message{ID: "FormatRelativeMinutes", One: "{{.Count}} minute", Other: "{{.Count}} minutes"}
	msgRelativeHours   = &l10n.Message{ID: "FormatRelativeHours", One: "{{.Count}} hour", Other: "{{.Count}} hours"}
	msgRelativeDays    = &l10n.Message{ID: "FormatRelativeDays", One: "{{.Count}} day", Other: "{{.Count}} days"}
	msgRelativeWeeks   = &l10n.Message{ID: "FormatRelativeWeeks", One: "{{.Count}} week", Other: "{{.Count}} weeks"}
	msgRelativeMonths  = &l10n.Message{ID: "FormatRelativeMonths", One: "{{.Count}} month", Other: "{{.Count}} months"}
	msgRelativeYears   = &l10n.Message{ID: "FormatRelativeYears", One: "{{.Count}} year", Other: "{{.Count}} years"}
)

// Style selects how much detail a date or time carries.
type Style int

const (
	// StyleDefault picks Long for dates and Short for times.
	StyleDefault Style = iota
	StyleShort
	StyleMedium
	StyleLong
	StyleFull
)

// ParseStyle maps the SHORT/MEDIUM/LONG/FULL names used by API clients to a Style.
func ParseStyle(s string) (Style, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "DEFAULT":
		return StyleDefault, nil
	case "SHORT":
		return StyleShort, nil
	case "MEDIUM":
		return StyleMedium, nil
	case "LONG":
		return StyleLong, nil
	case "FULL":
		return StyleFull, nil
	}
	return StyleDefault, fmt.Errorf("unknown format style %q", s)
}

// layoutSet holds Go reference layouts indexed by Style (Short..Full).
type layoutSet struct {
	date     [4]string
	time     [4]string
	monthDay string
	// joiner returns the separator between date and time for a date style.
	joiner func(Style) string
}

func joinWith(long, short string) func(Style) string {
	return func(s Style) string {
		if s == StyleLong || s == StyleFull {
			return long
		}
		return short
	}
}

var (
	layoutsEnUS = layoutSet{
		date:     [4]string{"1/2/06", "Jan 2, 2006", "January 2, 2006", "Monday, January 2, 2006"},
		time:     [4]string{"3:04 PM", "3:04:05 PM", "3:04:05 PM MST", "3:04:05 PM MST"},
		monthDay: "Jan 2",
		joiner:   joinWith(" at ", ", "),
	}
	layoutsEnGB = layoutSet{
		date:     [4]string{"02/01/2006", "2 Jan 2006", "2 January 2006", "Monday, 2 January 2006"},
		time:     [4]string{"15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"},
		monthDay: "2 Jan",
		joiner:   joinWith(" at ", ", "),
	}
	layoutsEs = layoutSet{
		date:     [4]string{"2/1/06", "2 Jan 2006", "2 de January de 2006", "Monday, 2 de January de 2006"},
		time:     [4]string{"15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"},
		monthDay: "2 Jan",
		joiner:   joinWith(", ", ", "),
	}
	layoutsFr = layoutSet{
		date:     [4]string{"02/01/2006", "2 Jan 2006", "2 January 2006", "Monday 2 January 2006"},
		time:     [4]string{"15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"},
		monthDay: "2 Jan",
		joiner:   joinWith(" à ", " "),
	}
	layoutsDe = layoutSet{
		date:     [4]string{"02.01.06", "02.01.2006", "2. January 2006", "Monday, 2. January 2006"},
		time:     [4]string{"15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST"},
		monthDay: "2. Jan",
		joiner:   joinWith(" um ", ", "),
	}
)

// layoutsFor picks layouts and month names for tag. Unknown locales render as en-US.
func layoutsFor(tag language.Tag) (layoutSet, monday.Locale) {
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		if region, conf := tag.Region(); conf == language.Exact && region.String() != "US" {
			return layoutsEnGB, monday.LocaleEnGB
		}
		return layoutsEnUS, monday.LocaleEnUS
	case "es":
		return layoutsEs, monday.LocaleEsES
	case "fr":
		return layoutsFr, monday.LocaleFrFR
	case "de":
		return layoutsDe, monday.LocaleDeDE
	}
	return layoutsEnUS, monday.LocaleEnUS
}

func index(s Style, fallback Style) int {
	if s == StyleDefault {
		s = fallback
	}
	return int(s) - 1
}

func (f *Formatter) render(t time.Time, layout string) string {
	return monday.Format(t, layout, f.names)
}

// FormatDate renders the calendar date of t as-is, without converting it to the bound
// location. Use it for date-only values such as birthdates.
func (f *Formatter) FormatDate(t time.Time, style Style) string {
	return f.render(t, f.layouts.date[index(style, StyleLong)])
}

// FormatTime renders the wall-clock time of t as-is.
func (f *Formatter) FormatTime(t time.Time, style Style) string {
	return f.render(t, f.layouts.time[index(style, StyleShort)])
}

// FormatDateTime renders the wall-clock date and time of t as-is.
func (f *Formatter) FormatDateTime(t time.Time, dateStyle, timeStyle Style) string {
	if dateStyle == StyleDefault {
		dateStyle = StyleLong
	}
	return f.FormatDate(t, dateStyle) + f.layouts.joiner(dateStyle) + f.FormatTime(t, timeStyle)
}

// FormatTimestamp renders an instant in the bound location.
func (f *Formatter) FormatTimestamp(t time.Time, dateStyle, timeStyle Style) string {
	return f.FormatDateTime(t.In(f.location), dateStyle, timeStyle)
}

// FormatWeekdayShort renders the abbreviated localized name of d, e.g. "Mon".
func (f *Formatter) FormatWeekdayShort(d time.Weekday) string {
	// January 7, 2024 was a Sunday.
	return f.render(time.Date(2024, time.January, 7+int(d), 0, 0, 0, 0, time.UTC), "Mon")
}

// FormatMonthDay renders the abbreviated month and day of t as-is, e.g. "Mar 5".
func (f *Formatter) FormatMonthDay(t time.Time) string {
	return f.render(t, f.layouts.monthDay)
}

// FormatTimeRange renders the wall-clock span from start to end, e.g. "2:30-3:00PM" or
// "14:30-15:00". A meridiem shared by both ends is printed once.
func (f *Formatter) FormatTimeRange(start, end time.Time) string {
	if !strings.Contains(f.layouts.time[0], "PM") {
		return f.FormatTime(start, StyleShort) + "-" + f.FormatTime(end, StyleShort)
	}
	from := f.render(start, "3:04")
	if start.Format("PM") != end.Format("PM") {
		from += f.render(start, "PM")
	}
	return from + "-" + f.render(end, "3:04PM")
}

// FormatTimestampNatural describes t relative to now in the bound locale, e.g.
// "3 Hours Ago" or "Hace 3 Horas".
func (f *Formatter) FormatTimestampNatural(t, now time.Time) string {
	span := humanize.CustomRelTime(t, now, "", "", f.relativeMagnitudes())
	diff := now.Sub(t)
	if diff < 0 {
		diff = -diff
	}
	if diff >= time.Second {
		msg := msgRelativePast
		if t.After(now) {
			msg = msgRelativeFuture
		}
		span = f.T(msg, map[string]any{"Span": span})
	}
	return cases.Title(f.tag).String(span)
}

// relativeMagnitudes mirrors humanize's default buckets with unit names from the
// catalog. Direction is added by the caller, so no format carries a %s.
func (f *Formatter) relativeMagnitudes() []humanize.RelTimeMagnitude {
	one := func(msg *l10n.Message) string {
		return f.Plural(msg, 1, map[string]any{"Count": f.FormatInteger(1)})
	}
	many := func(msg *l10n.Message) string {
		return f.Plural(msg, 2, map[string]any{"Count": "%d"})
	}
	return []humanize.RelTimeMagnitude{
		{D: time.Second, Format: f.T(msgRelativeNow, nil), DivBy: time.Second},
		{D: 2 * time.Second, Format: one(msgRelativeSeconds), DivBy: 1},
		{D: time.Minute, Format: many(msgRelativeSeconds), DivBy: time.Second},
		{D: 2 * time.Minute, Format: one(msgRelativeMinutes), DivBy: 1},
		{D: time.Hour, Format: many(msgRelativeMinutes), DivBy: time.Minute},
		{D: 2 * time.Hour, Format: one(msgRelativeHours), DivBy: 1},
		{D: humanize.Day, Format: many(msgRelativeHours), DivBy: time.Hour},
		{D: 2 * humanize.Day, Format: one(msgRelativeDays), DivBy: 1},
		{D: humanize.Week, Format: many(msgRelativeDays), DivBy: humanize.Day},
		{D: 2 * humanize.Week, Format: one(msgRelativeWeeks), DivBy: 1},
		{D: humanize.Month, Format: many(msgRelativeWeeks), DivBy: humanize.Week},
		{D: 2 * humanize.Month, Format: one(msgRelativeMonths), DivBy: 1},
		{D: humanize.Year, Format: many(msgRelativeMonths), DivBy: humanize.Month},
		{D: 2 * humanize.Year, Format: one(msgRelativeYears), DivBy: 1},
		{D: math.MaxInt64, Format: many(msgRelativeYears), DivBy: humanize.Year},
	}
}

// FormatTimeZone describes loc as "City, Region (UTC±hh:mm)" using its offset at the
// given instant.
func (f *Formatter) FormatTimeZone(loc *time.Location, at time.Time) string {
	if loc == nil {
		return ""
	}
	_, offset := at.In(loc).Zone()
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	utc := fmt.Sprintf("(UTC%c%02d:%02d)", sign, offset/3600, (offset%3600)/60)

	name := loc.String()
	parts := strings.Split(name, "/")
	if len(parts) < 2 {
		return name + " " + utc
	}
	city := strings.ReplaceAll(parts[len(parts)-1], "_", " ")
	return fmt.Sprintf("%s, %s %s", city, parts[0], utc)
}

// StartOfDay reports whether t falls exactly on midnight.
func StartOfDay(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}
