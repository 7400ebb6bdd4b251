package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() ReturnRequest {
	return ReturnRequest{
		OrderID: "ANE-20240315-4821",
		Name:    "Asha Rao",
		Phone:   "9876543210",
		Reason:  "Kettle arrived with a dented base",
		Option:  OptionRefund,
	}
}

func TestReturnRequest_Validate_OK(t *testing.T) {
	assert.Nil(t, validRequest().Validate("ANE"))
}

func TestReturnRequest_Validate_ReportsAllFailures(t *testing.T) {
	errs := ReturnRequest{}.Validate("ANE")
	require.Len(t, errs, 4)

	fields := make([]string, len(errs))
	for i, fe := range errs {
		fields[i] = fe.Field
	}
	assert.ElementsMatch(t, []string{"orderId", "customerName", "customerPhone", "returnReason"}, fields)
}

func TestReturnRequest_Validate_OrderIDFormat(t *testing.T) {
	r := validRequest()
	r.OrderID = "ANE-2024-01"

	errs := r.Validate("ANE")
	require.Len(t, errs, 1)
	assert.Equal(t, "orderId", errs[0].Field)
	assert.Equal(t, "Invalid Order ID format (should be ANE-YYYYMMDD-XXXX)", errs[0].Message)

	// The format check follows the configured prefix.
	r.OrderID = "ANE-20240315-4821"
	errs = r.Validate("SHOP")
	require.Len(t, errs, 1)
	assert.Equal(t, "orderId", errs[0].Field)
}

func TestReturnRequest_Validate_Phone(t *testing.T) {
	r := validRequest()
	r.Phone = "1234567890"

	errs := r.Validate("ANE")
	require.Len(t, errs, 1)
	assert.Equal(t, "customerPhone", errs[0].Field)
}

func TestReturnRequest_Text(t *testing.T) {
	now := time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)
	r := validRequest()
	r.Email = "asha@example.org"
	r.Option = OptionExchange

	expected := "AN Enterprises — Return Request\n" +
		"------------------------\n" +
		"Order ID: ANE-20240315-4821\n" +
		"Name: Asha Rao\n" +
		"Phone: 9876543210\n" +
		"Email: asha@example.org\n" +
		"Reason: Kettle arrived with a dented base\n" +
		"Return Option: Exchange\n" +
		"------------------------\n" +
		"Submitted on: 20/03/2024\n"

	assert.Equal(t, expected, r.Text("AN Enterprises", now))
}

func TestReturnRequest_Text_OmitsEmptyEmail(t *testing.T) {
	text := validRequest().Text("AN Enterprises", time.Now())
	assert.NotContains(t, text, "Email:")
	assert.Contains(t, text, "Return Option: Refund\n")
}
