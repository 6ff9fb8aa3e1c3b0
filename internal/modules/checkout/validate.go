package checkout

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError carries the per-field messages of a rejected submission.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string { return "checkout validation failed" }

// validate checks every required field and collects all failures, so the form
// can surface them together. A nil return means the submission is valid.
func validate(req SubmitRequest) *ValidationError {
	fields := make(map[string]string)

	if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		fields["email"] = "Please enter a valid email address"
	}
	if len(strings.TrimSpace(req.FullName)) < 2 {
		fields["full_name"] = "Please enter your full name"
	}
	if len(strings.TrimSpace(req.Address)) < 5 {
		fields["address"] = "Please enter a valid address"
	}
	if len(strings.TrimSpace(req.City)) < 2 {
		fields["city"] = "Please enter your city"
	}
	if len(strings.TrimSpace(req.PostalCode)) < 3 {
		fields["postal_code"] = "Please enter a valid ZIP code"
	}
	if strings.TrimSpace(req.Country) == "" {
		fields["country"] = "Please select your country"
	}
	switch req.PaymentMethod {
	case MethodCard, MethodPayPal, MethodCrypto:
	default:
		fields["payment_method"] = "Please select a payment method"
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
