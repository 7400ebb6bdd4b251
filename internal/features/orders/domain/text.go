package domain

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/shopspring/decimal"
)

// HumanText renders the order as the plain-text message sent to the merchant
// over the hand-off channels. The same text doubles as the manual-copy
// fallback, so it must stay readable without any markup.
func (o Order) HumanText(storeName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s — New Order\n", storeName)
	b.WriteString("------------------------\n")
	fmt.Fprintf(&b, "Name: %s\n", o.Customer.Name)
	fmt.Fprintf(&b, "Phone: %s\n", o.Customer.Phone)
	if o.Customer.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", o.Customer.Email)
	}
	fmt.Fprintf(&b, "Address: %s", o.Customer.Address)
	if o.Customer.Pincode != "" {
		fmt.Fprintf(&b, ", %s", o.Customer.Pincode)
	}
	b.WriteString("\n")
	if o.Customer.Landmark != "" {
		fmt.Fprintf(&b, "Landmark: %s\n", o.Customer.Landmark)
	}
	fmt.Fprintf(&b, "Payment method: %s\n\n", o.Payment.Method)

	b.WriteString("Items:\n")
	for i, item := range o.Items {
		fmt.Fprintf(&b, "%d) %s — ₹%s x %d = ₹%s\n",
			i+1, item.Name, item.Price.String(), item.Quantity, item.Amount().String())
	}

	b.WriteString("------------------------\n")
	fmt.Fprintf(&b, "Subtotal: ₹%s\n", o.Totals.Subtotal.String())
	fmt.Fprintf(&b, "Shipping: ₹%s\n", o.Totals.Shipping.String())
	if o.Totals.Discount.GreaterThan(decimal.Zero) {
		fmt.Fprintf(&b, "Discount: -₹%s\n", o.Totals.Discount.String())
	}
	fmt.Fprintf(&b, "Total: ₹%s\n", o.Totals.Total.String())
	fmt.Fprintf(&b, "Order ID: %s\n", o.OrderID)

	return b.String()
}

var invoiceTemplate = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Invoice - {{.OrderID}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        .invoice-header { text-align: center; margin-bottom: 30px; }
        .invoice-details { margin-bottom: 20px; }
        .invoice-table { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
        .invoice-table th, .invoice-table td { border: 1px solid #ddd; padding: 8px; text-align: left; }
        .invoice-table th { background-color: #f2f2f2; }
        .totals { text-align: right; margin-top: 20px; }
        .print-btn { margin: 20px 0; text-align: center; }
        @media print { .print-btn { display: none; } }
    </style>
</head>
<body>
    <div class="invoice-header">
        <h1>{{.StoreName}}</h1>
        <p>Premium home products for modern living</p>
        <h2>INVOICE</h2>
    </div>

    <div class="invoice-details">
        <p><strong>Order ID:</strong> {{.OrderID}}</p>
        <p><strong>Date:</strong> {{.Date}}</p>
        <p><strong>Payment Method:</strong> {{.Payment.Method}}</p>
    </div>

    <div class="customer-details">
        <h3>Customer Details:</h3>
        <p><strong>Name:</strong> {{.Customer.Name}}</p>
        <p><strong>Phone:</strong> {{.Customer.Phone}}</p>
        {{if .Customer.Email}}<p><strong>Email:</strong> {{.Customer.Email}}</p>{{end}}
        <p><strong>Address:</strong> {{.Customer.Address}}{{if .Customer.Pincode}}, {{.Customer.Pincode}}{{end}}</p>
        {{if .Customer.Landmark}}<p><strong>Landmark:</strong> {{.Customer.Landmark}}</p>{{end}}
    </div>

    <table class="invoice-table">
        <thead>
            <tr>
                <th>Item</th>
                <th>Brand</th>
                <th>Price</th>
                <th>Quantity</th>
                <th>Total</th>
            </tr>
        </thead>
        <tbody>
            {{range .Items}}<tr>
                <td>{{.Name}}</td>
                <td>{{.Brand}}</td>
                <td>₹{{.Price}}</td>
                <td>{{.Quantity}}</td>
                <td>₹{{.Amount}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <div class="totals">
        <p><strong>Subtotal: ₹{{.Totals.Subtotal}}</strong></p>
        <p><strong>Shipping: ₹{{.Totals.Shipping}}</strong></p>
        {{if .HasDiscount}}<p><strong>Discount: -₹{{.Totals.Discount}}</strong></p>{{end}}
        <h3><strong>Total: ₹{{.Totals.Total}}</strong></h3>
    </div>

    <div class="print-btn">
        <button onclick="window.print()">Print Invoice</button>
    </div>
</body>
</html>
`))

// invoiceView flattens an order for the invoice template.
type invoiceView struct {
	Order
	StoreName   string
	Date        string
	HasDiscount bool
}

// InvoiceHTML renders a printable invoice for the order.
func (o Order) InvoiceHTML(storeName string) (string, error) {
	view := invoiceView{
		Order:       o,
		StoreName:   storeName,
		Date:        o.Timestamp.Format("02/01/2006"),
		HasDiscount: o.Totals.Discount.GreaterThan(decimal.Zero),
	}

	var b strings.Builder
	if err := invoiceTemplate.Execute(&b, view); err != nil {
		return "", fmt.Errorf("failed to render invoice: %w", err)
	}
	return b.String(), nil
}
