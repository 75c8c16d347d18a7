package notification

import (
	"fmt"
	"strings"

	"stagefront-be/internal/order"
)

// Both templates render the in-memory order snapshot taken at checkout
// time, never a re-read from the store, so the email always matches what
// was validated and charged.

// OrderNotification builds the merchant-facing email.
func OrderNotification(o *order.Order) (subject, html string) {
	subject = fmt.Sprintf("New order %s", o.OrderNumber)

	var b strings.Builder
	fmt.Fprintf(&b, "<h2>New order %s</h2>", o.OrderNumber)
	fmt.Fprintf(&b, "<p>Placed at %s</p>", o.CreatedAt.Format("Jan 2, 2006 3:04 PM"))
	fmt.Fprintf(&b, "<h3>Customer</h3><p>%s<br>%s<br>%s</p>",
		o.CustomerName, o.CustomerEmail, o.CustomerPhone)
	fmt.Fprintf(&b, "<h3>Ship to</h3><p>%s<br>%s, %s %s<br>%s</p>",
		o.Street, o.City, o.State, o.Zip, o.Country)
	writeItemTable(&b, o)
	if o.FulfillmentOrderID == nil {
		b.WriteString("<p><strong>No fulfillment order was created, fulfill manually.</strong></p>")
	} else {
		fmt.Fprintf(&b, "<p>Fulfillment order #%d</p>", *o.FulfillmentOrderID)
	}

	return subject, b.String()
}

// OrderConfirmation builds the customer-facing email.
func OrderConfirmation(o *order.Order) (subject, html string) {
	subject = fmt.Sprintf("Your order %s is confirmed", o.OrderNumber)

	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Thanks for your order, %s!</h2>", o.CustomerName)
	fmt.Fprintf(&b, "<p>Order <strong>%s</strong>, placed %s.</p>",
		o.OrderNumber, o.CreatedAt.Format("Jan 2, 2006 3:04 PM"))
	writeItemTable(&b, o)
	fmt.Fprintf(&b, "<p>Shipping to: %s, %s, %s %s, %s</p>",
		o.Street, o.City, o.State, o.Zip, o.Country)
	b.WriteString("<p>We'll let you know when it ships.</p>")

	return subject, b.String()
}

func writeItemTable(b *strings.Builder, o *order.Order) {
	b.WriteString("<h3>Items</h3><table border=\"0\" cellpadding=\"4\">")
	for _, item := range o.Items {
		name := item.ProductName
		if item.VariantName != "" {
			name = fmt.Sprintf("%s (%s)", item.ProductName, item.VariantName)
		}
		fmt.Fprintf(b, "<tr><td>%s</td><td>x%d</td><td>$%.2f</td></tr>",
			name, item.Quantity, item.UnitPrice*float64(item.Quantity))
	}
	fmt.Fprintf(b, "<tr><td><strong>Total</strong></td><td></td><td><strong>$%.2f</strong></td></tr>", o.Total)
	b.WriteString("</table>")
}
