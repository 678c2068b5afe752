package string

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimStrings(t *testing.T) {
	a, b := "  device-1 ", "\tios\n"
	TrimStrings(&a, &b, nil)
	assert.Equal(t, "device-1", a)
	assert.Equal(t, "ios", b)
}

func TestJoinNonBlank(t *testing.T) {
	tests := []struct {
		name  string
		sep   string
		parts []string
		want  string
	}{
		{"all present", " ", []string{"Jordan", "A", "Rivera"}, "Jordan A Rivera"},
		{"blank middle skipped", " ", []string{"Jordan", "  ", "Rivera"}, "Jordan Rivera"},
		{"parts are trimmed", ", ", []string{" Rivera ", " Jordan"}, "Rivera, Jordan"},
		{"nothing left", ", ", []string{"", " "}, ""},
		{"no parts", " ", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinNonBlank(tt.sep, tt.parts...))
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"ContentType":            "content_type",
		"InstitutionID":          "institution_id",
		"AccountCheckInActionID": "account_check_in_action_id",
		"URLPath":                "url_path",
		"Filename":               "filename",
		"Line2":                  "line2",
		"":                       "",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, ToSnakeCase(in))
		})
	}
}
