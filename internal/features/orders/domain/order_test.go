package domain

import (
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cart "storefront-core/internal/features/cart/domain"
	catalog "storefront-core/internal/features/catalog/domain"
)

func TestNewOrderID_Format(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^ANE-20240315-(\d{4})$`)

	for i := 0; i < 100; i++ {
		id := NewOrderID("ANE", now)
		m := pattern.FindStringSubmatch(id)
		require.NotNil(t, m, "unexpected order id %q", id)

		n, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1000)
		assert.LessOrEqual(t, n, 9999)
	}
}

func TestPaymentFor(t *testing.T) {
	gpay := PaymentFor(PaymentMethodGPay)
	assert.Equal(t, "GPay (Prepaid)", gpay.Method)
	assert.Equal(t, "Paid", gpay.Status)

	cod := PaymentFor(PaymentMethodCOD)
	assert.Equal(t, "Cash On Delivery", cod.Method)
	assert.Equal(t, "Pending", cod.Status)

	// Anything unrecognized defaults to cash on delivery.
	other := PaymentFor(PaymentMethod("card"))
	assert.Equal(t, "Cash On Delivery", other.Method)
	assert.Equal(t, "Pending", other.Status)
}

func TestCustomer_Validate_ReportsAllFailures(t *testing.T) {
	errs := Customer{}.Validate()
	require.Len(t, errs, 3)

	fields := make([]string, len(errs))
	for i, fe := range errs {
		fields[i] = fe.Field
	}
	assert.ElementsMatch(t, []string{"fullName", "phone", "address"}, fields)
}

func TestCustomer_Validate_PhoneRules(t *testing.T) {
	base := Customer{Name: "Asha", Address: "12 MG Road"}

	valid := base
	valid.Phone = "98765 43210"
	assert.Nil(t, valid.Validate())

	// Leading digit below 6 is not a mobile number.
	landline := base
	landline.Phone = "1234567890"
	errs := landline.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "phone", errs[0].Field)
	assert.Equal(t, "Please enter a valid Indian mobile number", errs[0].Message)

	short := base
	short.Phone = "98765"
	require.Len(t, short.Validate(), 1)
}

func TestCustomer_Validate_OptionalFields(t *testing.T) {
	c := Customer{Name: "Asha", Phone: "9876543210", Address: "12 MG Road"}
	assert.Nil(t, c.Validate())
}

func testOrder() Order {
	kettle := catalog.Product{ID: 1, Name: "Electric Kettle", Price: decimal.NewFromInt(1299), Brand: "PowerBrew"}
	mug := catalog.Product{ID: 2, Name: "Ceramic Mug", Price: decimal.NewFromInt(249), Brand: "ClayCraft"}

	return Order{
		OrderID: "ANE-20240315-4821",
		Customer: Customer{
			Name:    "Asha Rao",
			Phone:   "9876543210",
			Address: "12 MG Road, Bengaluru",
			Pincode: "560001",
		},
		Items: []cart.LineItem{
			{Product: kettle, Quantity: 1},
			{Product: mug, Quantity: 2},
		},
		Payment: PaymentFor(PaymentMethodCOD),
		Totals: cart.Totals{
			Subtotal: decimal.NewFromInt(1797),
			Shipping: decimal.Zero,
			Discount: decimal.NewFromInt(50),
			Total:    decimal.NewFromInt(1747),
		},
		Coupon:    "SAVE50",
		Timestamp: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
	}
}

func TestOrder_HumanText(t *testing.T) {
	text := testOrder().HumanText("AN Enterprises")

	expected := "AN Enterprises — New Order\n" +
		"------------------------\n" +
		"Name: Asha Rao\n" +
		"Phone: 9876543210\n" +
		"Address: 12 MG Road, Bengaluru, 560001\n" +
		"Payment method: Cash On Delivery\n" +
		"\n" +
		"Items:\n" +
		"1) Electric Kettle — ₹1299 x 1 = ₹1299\n" +
		"2) Ceramic Mug — ₹249 x 2 = ₹498\n" +
		"------------------------\n" +
		"Subtotal: ₹1797\n" +
		"Shipping: ₹0\n" +
		"Discount: -₹50\n" +
		"Total: ₹1747\n" +
		"Order ID: ANE-20240315-4821\n"

	assert.Equal(t, expected, text)
}

func TestOrder_HumanText_OmitsEmptyOptionalLines(t *testing.T) {
	order := testOrder()
	order.Customer.Pincode = ""
	order.Totals.Discount = decimal.Zero

	text := order.HumanText("AN Enterprises")
	assert.NotContains(t, text, "Email:")
	assert.NotContains(t, text, "Landmark:")
	assert.NotContains(t, text, "Discount:")
	assert.Contains(t, text, "Address: 12 MG Road, Bengaluru\n")
}

func TestOrder_InvoiceHTML(t *testing.T) {
	html, err := testOrder().InvoiceHTML("AN Enterprises")
	require.NoError(t, err)

	assert.Contains(t, html, "<title>Invoice - ANE-20240315-4821</title>")
	assert.Contains(t, html, "<h1>AN Enterprises</h1>")
	assert.Contains(t, html, "<td>Electric Kettle</td>")
	assert.Contains(t, html, "<td>PowerBrew</td>")
	assert.Contains(t, html, "₹498")
	assert.Contains(t, html, "Discount: -₹50")
	assert.Contains(t, html, "Total: ₹1747")
	assert.Contains(t, html, "15/03/2024")
}
