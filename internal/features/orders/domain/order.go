package domain

import (
	"fmt"
	"math/rand"
	"time"

	cart "storefront-core/internal/features/cart/domain"
)

// PaymentMethod is the checkout payment choice as sent by the client.
type PaymentMethod string

const (
	// PaymentMethodGPay is a prepaid UPI payment.
	PaymentMethodGPay PaymentMethod = "gpay"
	// PaymentMethodCOD is cash on delivery.
	PaymentMethodCOD PaymentMethod = "cod"
)

// Customer holds the delivery details collected at checkout.
type Customer struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Pincode  string `json:"pincode"`
	Landmark string `json:"landmark"`
}

// Payment is the display form of the payment choice as it appears on order
// text and invoices.
type Payment struct {
	Method string `json:"method"`
	Status string `json:"status"`
}

// PaymentFor maps the checkout payment choice to its display form. Anything
// other than GPay is treated as cash on delivery.
func PaymentFor(method PaymentMethod) Payment {
	if method == PaymentMethodGPay {
		return Payment{Method: "GPay (Prepaid)", Status: "Paid"}
	}
	return Payment{Method: "Cash On Delivery", Status: "Pending"}
}

// Order is a fully assembled order as persisted in the order history.
type Order struct {
	OrderID   string          `json:"orderId"`
	Customer  Customer        `json:"customer"`
	Items     []cart.LineItem `json:"items"`
	Payment   Payment         `json:"payment"`
	Totals    cart.Totals     `json:"totals"`
	Coupon    string          `json:"coupon,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewOrderID builds an order identifier of the form PREFIX-YYYYMMDD-RRRR
// where RRRR is a random four digit number. The date part uses UTC.
// Identifiers are not guaranteed unique; two orders placed the same day have
// a 1 in 9000 chance of colliding, which the order history tolerates.
func NewOrderID(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, now.UTC().Format("20060102"), rand.Intn(9000)+1000)
}
