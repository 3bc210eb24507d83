package utils

import (
	"errors"
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

var ErrInvalidPhoneNumber = errors.New("invalid phone number")

// NormalizePhone parses raw input against the regional dialing context and
// returns the canonical E.164 string. Every phone comparison in the system
// goes through this; raw strings are never compared directly.
func NormalizePhone(raw, region string) (string, error) {
	parsed, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidPhoneNumber, raw)
	}

	if !phonenumbers.IsValidNumberForRegion(parsed, region) {
		return "", fmt.Errorf("%w: %s", ErrInvalidPhoneNumber, raw)
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}
