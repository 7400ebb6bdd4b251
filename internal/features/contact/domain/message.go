package domain

import (
	"strings"
	"time"

	orders "storefront-core/internal/features/orders/domain"
)

// StorageKey is the store key holding backup copies of contact messages.
const StorageKey = "contactMessages"

// Message is a contact form submission.
type Message struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}

// Validate checks the required form fields and returns every failure found.
func (m Message) Validate() orders.ValidationErrors {
	var errs orders.ValidationErrors

	if strings.TrimSpace(m.Name) == "" {
		errs = append(errs, orders.FieldError{Field: "name", Message: "This field is required"})
	}

	if strings.TrimSpace(m.Email) == "" {
		errs = append(errs, orders.FieldError{Field: "email", Message: "This field is required"})
	} else if !strings.Contains(m.Email, "@") {
		errs = append(errs, orders.FieldError{Field: "email", Message: "Please enter a valid email address"})
	}

	if strings.TrimSpace(m.Subject) == "" {
		errs = append(errs, orders.FieldError{Field: "subject", Message: "This field is required"})
	}

	if strings.TrimSpace(m.Body) == "" {
		errs = append(errs, orders.FieldError{Field: "message", Message: "This field is required"})
	}

	return errs
}
