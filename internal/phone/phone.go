// Package phone validates Brazilian WhatsApp numbers used as contact ids.
package phone

import (
	"fmt"
	"regexp"
	"strings"

	"conectezap-dashboard/internal/apperr"
)

const (
	CountryCode = "55"
	Length      = 13
)

// 55 + area code (both digits 1-9) + 9-digit subscriber number.
var shape = regexp.MustCompile(`^55[1-9]{2}[0-9]{9}$`)

// Normalize drops every character that is not an ASCII digit.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Validate normalizes raw and returns the 13-digit number or a
// *apperr.ValidationError.
func Validate(raw string) (string, error) {
	n := Normalize(raw)
	if len(n) != Length {
		return "", &apperr.ValidationError{
			Kind:  apperr.WrongLength,
			Field: "whatsapp",
			Message: fmt.Sprintf("number must have %d digits (country code %s + 2-digit area code + 9-digit number), got %d",
				Length, CountryCode, len(n)),
		}
	}
	if !shape.MatchString(n) {
		return "", &apperr.ValidationError{
			Kind:    apperr.InvalidShape,
			Field:   "whatsapp",
			Message: "number must start with 55 followed by an area code without 0 digits",
		}
	}
	return n, nil
}

// Format renders a normalized number as "+55 (11) 98765-4321". Anything
// that does not validate is returned unchanged.
func Format(normalized string) string {
	if !shape.MatchString(normalized) {
		return normalized
	}
	return fmt.Sprintf("+%s (%s) %s-%s",
		normalized[:2], normalized[2:4], normalized[4:9], normalized[9:])
}
