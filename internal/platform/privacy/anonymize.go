// Package privacy reduces identifying values to forms that are safe to log.
// Patient contact details are PHI and must pass through here before reaching a log line.
package privacy

import (
	"fmt"
	"net"
	"strings"
	"unicode"
	"unicode/utf8"
)

// AnonymizeIP truncates an IP address to its network prefix.
// IPv4 keeps the /24 ("192.168.1.47" -> "192.168.1.0"); IPv6 keeps the /48.
// Returns "invalid" for unparseable input and "unknown" for empty input.
func AnonymizeIP(ip string) string {
	if ip == "" || ip == "unknown" {
		return "unknown"
	}

	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "invalid"
	}

	if v4 := parsed.To4(); v4 != nil {
		return fmt.Sprintf("%d.%d.%d.0", v4[0], v4[1], v4[2])
	}

	return fmt.Sprintf("%02x%02x:%02x%02x:%02x%02x::",
		parsed[0], parsed[1],
		parsed[2], parsed[3],
		parsed[4], parsed[5])
}

// MaskPhone keeps only the last two digits of a phone number.
func MaskPhone(phone string) string {
	var digits []rune
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}
	if len(digits) == 0 {
		return ""
	}
	if len(digits) <= 2 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-2) + string(digits[len(digits)-2:])
}

// MaskEmail keeps the first character of the local part and the domain.
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(strings.TrimSpace(email), "@")
	if !ok || local == "" {
		return "***"
	}
	return local[:1] + "***@" + domain
}

// MaskSearchQuery masks a free-text patient search. Queries are names, MRNs, phone numbers
// or email addresses, so each shape keeps only what MaskEmail or MaskPhone would.
func MaskSearchQuery(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return ""
	}
	if strings.Contains(query, "@") {
		return MaskEmail(query)
	}
	digits := 0
	for _, r := range query {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits*2 >= len([]rune(query)) {
		return MaskPhone(query)
	}
	first, _ := utf8.DecodeRuneInString(query)
	return string(first) + "***"
}
