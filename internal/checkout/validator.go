package checkout

import (
	"regexp"
	"strings"

	"stagefront-be/internal/order"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateCheckout normalizes and validates the raw payload and returns
// an order draft ready for persistence. Pure function: no I/O, first
// failure wins, never partial success. The returned totals are computed
// here and ignore whatever the client submitted.
func ValidateCheckout(req CheckoutRequest) (*order.Order, error) {
	name := strings.TrimSpace(req.Customer.Name)
	if name == "" {
		return nil, &ValidationError{Message: "customer name is required"}
	}

	email := strings.ToLower(strings.TrimSpace(req.Customer.Email))
	if email == "" || !emailRegex.MatchString(email) {
		return nil, &ValidationError{Message: "a valid customer email is required"}
	}

	phone := strings.TrimSpace(req.Customer.Phone)
	if phone == "" {
		return nil, &ValidationError{Message: "customer phone is required"}
	}

	shipping := []struct {
		value string
		label string
	}{
		{req.Shipping.Street, "shipping street"},
		{req.Shipping.City, "shipping city"},
		{req.Shipping.State, "shipping state"},
		{req.Shipping.Zip, "shipping zip"},
		{req.Shipping.Country, "shipping country"},
	}
	for i := range shipping {
		shipping[i].value = strings.TrimSpace(shipping[i].value)
		if shipping[i].value == "" {
			return nil, &ValidationError{Message: shipping[i].label + " is required"}
		}
	}

	if len(req.Items) == 0 {
		return nil, &ValidationError{Message: "cart is empty"}
	}

	var items []order.LineItem
	var total float64
	for _, in := range req.Items {
		productName := strings.TrimSpace(in.Name)
		if productName == "" {
			return nil, &ValidationError{Message: "item name is required"}
		}
		if in.Quantity < 1 {
			return nil, &ValidationError{Message: "item quantity must be at least 1"}
		}
		if in.Price < 0 {
			return nil, &ValidationError{Message: "item price cannot be negative"}
		}

		items = append(items, order.LineItem{
			ProductName: productName,
			VariantName: strings.TrimSpace(in.VariantName),
			VariantID:   in.VariantID,
			Quantity:    in.Quantity,
			UnitPrice:   in.Price,
		})
		total += in.Price * float64(in.Quantity)
	}

	return &order.Order{
		CustomerName:  name,
		CustomerEmail: email,
		CustomerPhone: phone,
		Street:        shipping[0].value,
		City:          shipping[1].value,
		State:         shipping[2].value,
		Zip:           shipping[3].value,
		Country:       shipping[4].value,
		Subtotal:      total,
		Total:         total,
		Status:        order.StatusPending,
		Items:         items,
	}, nil
}
