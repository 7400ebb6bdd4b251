package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	orders "storefront-core/internal/features/orders/domain"
)

// ReturnOption is the customer's preferred resolution.
type ReturnOption string

const (
	// OptionRefund asks for the money back.
	OptionRefund ReturnOption = "refund"
	// OptionExchange asks for a replacement item.
	OptionExchange ReturnOption = "exchange"
)

// label returns the display form used in the request text.
func (o ReturnOption) label() string {
	if o == OptionRefund {
		return "Refund"
	}
	return "Exchange"
}

// ReturnRequest is a customer-submitted return for a previously placed order.
type ReturnRequest struct {
	OrderID string       `json:"orderId"`
	Name    string       `json:"name"`
	Phone   string       `json:"phone"`
	Email   string       `json:"email"`
	Reason  string       `json:"reason"`
	Option  ReturnOption `json:"option"`
}

// orderIDPattern builds the order id format check for the configured prefix.
func orderIDPattern(prefix string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `-\d{8}-\d{4}$`)
}

// Validate checks the request fields and returns every failure found. The
// order id only has to match the format; it is not required to exist in the
// history, since orders placed on another device are still returnable.
func (r ReturnRequest) Validate(orderPrefix string) orders.ValidationErrors {
	var errs orders.ValidationErrors

	if strings.TrimSpace(r.OrderID) == "" {
		errs = append(errs, orders.FieldError{Field: "orderId", Message: "Order ID is required"})
	} else if !orderIDPattern(orderPrefix).MatchString(r.OrderID) {
		errs = append(errs, orders.FieldError{
			Field:   "orderId",
			Message: fmt.Sprintf("Invalid Order ID format (should be %s-YYYYMMDD-XXXX)", orderPrefix),
		})
	}

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, orders.FieldError{Field: "customerName", Message: "Customer name is required"})
	}

	if strings.TrimSpace(r.Phone) == "" {
		errs = append(errs, orders.FieldError{Field: "customerPhone", Message: "Phone number is required"})
	} else if !orders.ValidPhone(r.Phone) {
		errs = append(errs, orders.FieldError{Field: "customerPhone", Message: "Please enter a valid Indian mobile number"})
	}

	if strings.TrimSpace(r.Reason) == "" {
		errs = append(errs, orders.FieldError{Field: "returnReason", Message: "Please provide a reason for return"})
	}

	return errs
}

// Text renders the return request as the plain-text message sent to the
// merchant.
func (r ReturnRequest) Text(storeName string, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s — Return Request\n", storeName)
	b.WriteString("------------------------\n")
	fmt.Fprintf(&b, "Order ID: %s\n", r.OrderID)
	fmt.Fprintf(&b, "Name: %s\n", r.Name)
	fmt.Fprintf(&b, "Phone: %s\n", r.Phone)
	if r.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", r.Email)
	}
	fmt.Fprintf(&b, "Reason: %s\n", r.Reason)
	fmt.Fprintf(&b, "Return Option: %s\n", r.Option.label())
	b.WriteString("------------------------\n")
	fmt.Fprintf(&b, "Submitted on: %s\n", now.Format("02/01/2006"))

	return b.String()
}
