package validators

import (
	"strings"
	"unicode/utf8"
)

const (
	MaxNameLen      = 100
	MaxEmailLen     = 100
	MaxRoleTitleLen = 100
	MaxSpecialtyLen = 100
	MinPasswordLen  = 6

	// bcrypt refuses longer input.
	MaxPasswordBytes = 72
)

// Fields collects per-field validation messages keyed by JSON name.
type Fields map[string]string

func (f Fields) Add(name, message string) {
	if _, exists := f[name]; !exists {
		f[name] = message
	}
}

func (f Fields) Empty() bool {
	return len(f) == 0
}

// Required records a message when value is blank and returns the trimmed value.
func (f Fields) Required(name, value string, max int) string {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		f.Add(name, "is required")
	case max > 0 && utf8.RuneCountInString(value) > max:
		f.Add(name, "is too long")
	}
	return value
}

// Optional trims value and returns nil when blank.
func (f Fields) Optional(name string, value *string, max int) *string {
	if value == nil {
		return nil
	}
	v := strings.TrimSpace(*value)
	if v == "" {
		return nil
	}
	if max > 0 && utf8.RuneCountInString(v) > max {
		f.Add(name, "is too long")
	}
	return &v
}

func (f Fields) Email(name, value string) string {
	value = NormalizeEmail(value)
	switch {
	case value == "":
		f.Add(name, "is required")
	case len(value) > MaxEmailLen || !IsEmailSyntaxValid(value):
		f.Add(name, "must be a valid email address")
	}
	return value
}

func (f Fields) Password(name, value string) {
	switch {
	case utf8.RuneCountInString(value) < MinPasswordLen:
		f.Add(name, "must be at least 6 characters")
	case len(value) > MaxPasswordBytes:
		f.Add(name, "must be at most 72 bytes")
	}
}
