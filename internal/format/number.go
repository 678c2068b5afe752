package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/number"

	"cobalt/internal/l10n"
	dErrors "cobalt/pkg/domain-errors"
)

var (
	msgFilesizeBytes = &l10n.Message{
		ID:    "FormatFilesizeBytes",
		One:   "{{.Bytes}} byte",
		Other: "{{.Bytes}} bytes",
	}
	msgDurationHours = &l10n.Message{
		ID:    "FormatDurationHours",
		One:   "{{.Count}} hour",
		Other: "{{.Count}} hours",
	}
	msgDurationMinutes = &l10n.Message{
		ID:    "FormatDurationMinutes",
		One:   "{{.Count}} minute",
		Other: "{{.Count}} minutes",
	}
	msgDurationSeconds = &l10n.Message{
		ID:    "FormatDurationSeconds",
		One:   "{{.Count}} second",
		Other: "{{.Count}} seconds",
	}
	msgMinutes = &l10n.Message{
		ID:    "FormatMinutes",
		One:   "{{.Count}} minute",
		Other: "{{.Count}} minutes",
	}
)

// FilesizeKind selects the unit divisor for FormatFilesize.
type FilesizeKind int

const (
	// FilesizeDecimal uses 1000-byte units (KB, MB, GB).
	FilesizeDecimal FilesizeKind = iota
	// FilesizeBinary uses 1024-byte units (KiB, MiB, GiB).
	FilesizeBinary
)

// FormatNumber renders v with locale grouping and at most two fraction digits.
func (f *Formatter) FormatNumber(v float64) string {
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// FormatInteger renders v with locale grouping.
func (f *Formatter) FormatInteger(v int64) string {
	return f.printer.Sprint(number.Decimal(v))
}

// FormatPercent renders a ratio (0.25 is 25%).
func (f *Formatter) FormatPercent(v float64) string {
	return f.printer.Sprint(number.Percent(v, number.MaxFractionDigits(1)))
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"CAD": "CA$",
	"JPY": "¥",
}

// FormatCurrency renders amount in the ISO 4217 currency code, rounded half-even to the
// currency's standard number of fraction digits.
func (f *Formatter) FormatCurrency(amount decimal.Decimal, code string) (string, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInvalidInput, fmt.Sprintf("unknown currency %q", code))
	}
	scale, _ := currency.Standard.Rounding(unit)

	rounded := amount.RoundBank(int32(scale))
	digits := f.printer.Sprint(number.Decimal(rounded.Abs().InexactFloat64(),
		number.MinFractionDigits(scale), number.MaxFractionDigits(scale)))

	symbol, ok := currencySymbols[unit.String()]
	if !ok {
		symbol = unit.String()
	}
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}

	base, _ := f.tag.Base()
	if base.String() == "en" {
		return sign + symbol + digits, nil
	}
	return sign + digits + "\u00a0" + symbol, nil
}

// FormatFilesize renders a byte count in KB/MB/GB (or KiB/MiB/GiB for FilesizeBinary).
// Kilobytes and megabytes keep one fraction digit, gigabytes two, rounding half-even.
func (f *Formatter) FormatFilesize(bytes int64, kind FilesizeKind) string {
	divisor := int64(1000)
	units := [3]string{"KB", "MB", "GB"}
	if kind == FilesizeBinary {
		divisor = 1024
		units = [3]string{"KiB", "MiB", "GiB"}
	}

	if bytes < divisor {
		return f.Plural(msgFilesizeBytes, int(bytes), map[string]any{"Bytes": f.FormatInteger(bytes)})
	}

	d := decimal.NewFromInt(divisor)
	value := decimal.NewFromInt(bytes)
	for i, unit := range units {
		value = value.Div(d)
		last := i == len(units)-1
		if value.LessThan(d) || last {
			places := int32(1)
			if last {
				places = 2
			}
			rounded := value.RoundBank(places)
			return f.printer.Sprint(number.Decimal(rounded.InexactFloat64(),
				number.MaxFractionDigits(int(places)))) + " " + unit
		}
	}
	return ""
}

// FormatDuration renders d as "2 hours, 1 second". Components that are zero are left out,
// so a zero duration renders as "".
func (f *Formatter) FormatDuration(d time.Duration) string {
	seconds := int64(d / time.Second)
	if seconds < 0 {
		seconds = -seconds
	}
	var parts []string
	if hours := seconds / 3600; hours > 0 {
		parts = append(parts, f.Plural(msgDurationHours, int(hours), map[string]any{"Count": f.FormatInteger(hours)}))
		seconds -= hours * 3600
	}
	if minutes := seconds / 60; minutes > 0 {
		parts = append(parts, f.Plural(msgDurationMinutes, int(minutes), map[string]any{"Count": f.FormatInteger(minutes)}))
		seconds -= minutes * 60
	}
	if seconds > 0 {
		parts = append(parts, f.Plural(msgDurationSeconds, int(seconds), map[string]any{"Count": f.FormatInteger(seconds)}))
	}
	return strings.Join(parts, ", ")
}

// FormatMinutes renders a count of minutes, e.g. "45 minutes".
func (f *Formatter) FormatMinutes(minutes int64) string {
	return f.Plural(msgMinutes, int(minutes), map[string]any{"Count": f.FormatInteger(minutes)})
}

// FormatHexColor renders an RGB value as a lowercase CSS hex color.
func (f *Formatter) FormatHexColor(color int) string {
	return fmt.Sprintf("#%06x", color)
}
