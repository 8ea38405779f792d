package service

import (
	"regexp"

	"github.com/meatfest/lead-service/internal/domain"
)

// User-facing rejection messages. The wire contract pins these strings.
const (
	MsgNameEmailRequired = "Name and email are required."
	MsgInvalidEmail      = "Please enter a valid email address."
	MsgMessageRequired   = "Please provide a message."
)

// local-part@domain.tld, no whitespace or extra @ in any segment
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validate applies the rules in order; the first failure wins. All fields
// are expected to be sanitized already. The honeypot check comes first so a
// bot never learns which rule it tripped.
func validate(in Input) error {
	if in.Honeypot != "" {
		return domain.ErrBotSuspected
	}
	if in.Name == "" || in.Email == "" {
		return &domain.ValidationError{Reason: MsgNameEmailRequired}
	}
	if !emailPattern.MatchString(in.Email) {
		return &domain.ValidationError{Reason: MsgInvalidEmail}
	}
	if in.Message == "" {
		return &domain.ValidationError{Reason: MsgMessageRequired}
	}
	return nil
}
