package forms

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strings"
)

// Validator kinds attached by the built-in constructors. Converters and tests
// identify validators by kind rather than concrete type.
const (
	ValidatorOptional  = "optional"
	ValidatorEmail     = "email"
	ValidatorIPAddress = "ip-address"
	ValidatorURL       = "url"
)

// ErrStopValidation signals that the remaining validator chain should be
// skipped and the field treated as valid. The optional validator returns it
// for empty input.
var ErrStopValidation = errors.New("forms: stop validation")

// Validator checks a single raw input value.
type Validator interface {
	Kind() string
	Validate(value string) error
}

type optionalValidator struct{}

func (optionalValidator) Kind() string { return ValidatorOptional }

func (optionalValidator) Validate(value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrStopValidation
	}
	return nil
}

// Optional returns a validator that allows empty input, stopping the
// validator chain so required-ness checks do not fire downstream.
func Optional() Validator {
	return optionalValidator{}
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type emailValidator struct{}

func (emailValidator) Kind() string { return ValidatorEmail }

func (emailValidator) Validate(value string) error {
	if !emailPattern.MatchString(value) {
		return fmt.Errorf("forms: %q is not a valid email address", value)
	}
	return nil
}

// Email returns a validator for email addresses.
func Email() Validator {
	return emailValidator{}
}

type ipAddressValidator struct{}

func (ipAddressValidator) Kind() string { return ValidatorIPAddress }

func (ipAddressValidator) Validate(value string) error {
	if net.ParseIP(value) == nil {
		return fmt.Errorf("forms: %q is not a valid IP address", value)
	}
	return nil
}

// IPAddress returns a validator for IPv4/IPv6 addresses.
func IPAddress() Validator {
	return ipAddressValidator{}
}

type urlValidator struct{}

func (urlValidator) Kind() string { return ValidatorURL }

func (urlValidator) Validate(value string) error {
	parsed, err := url.Parse(value)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("forms: %q is not a valid URL", value)
	}
	return nil
}

// URL returns a validator for absolute URLs.
func URL() Validator {
	return urlValidator{}
}
