package domain

import (
	"regexp"
	"strings"
)

// phonePattern matches Indian mobile numbers after non-digits are stripped.
var phonePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)

var nonDigits = regexp.MustCompile(`\D`)

// FieldError reports a validation failure on a single customer field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every field failure from one validation pass so
// the client can show them all at once.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// ValidPhone reports whether the value is a valid Indian mobile number.
// Formatting characters are ignored.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(nonDigits.ReplaceAllString(phone, ""))
}

// Validate checks the required checkout fields and returns every failure
// found, or nil when the customer details are acceptable. Email, pincode and
// landmark are optional.
func (c Customer) Validate() ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, FieldError{Field: "fullName", Message: "This field is required"})
	}

	if strings.TrimSpace(c.Phone) == "" {
		errs = append(errs, FieldError{Field: "phone", Message: "This field is required"})
	} else if !ValidPhone(c.Phone) {
		errs = append(errs, FieldError{Field: "phone", Message: "Please enter a valid Indian mobile number"})
	}

	if strings.TrimSpace(c.Address) == "" {
		errs = append(errs, FieldError{Field: "address", Message: "This field is required"})
	}

	return errs
}
