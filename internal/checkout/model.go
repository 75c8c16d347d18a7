package checkout

// CheckoutRequest is the raw JSON payload submitted by the storefront.
// Subtotal and Total are accepted but never trusted; both are recomputed
// server-side from the line items.
type CheckoutRequest struct {
	Customer CustomerInput `json:"customer"`
	Shipping ShippingInput `json:"shipping"`
	Items    []ItemInput   `json:"items"`
	Subtotal float64       `json:"subtotal"`
	Total    float64       `json:"total"`
}

type CustomerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ShippingInput struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type ItemInput struct {
	Name        string  `json:"name"`
	VariantName string  `json:"variantName"`
	VariantID   *int64  `json:"variantId,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type EmailsSent struct {
	Notification bool `json:"notification"`
	Confirmation bool `json:"confirmation"`
}

type CheckoutResponse struct {
	Success            bool       `json:"success"`
	OrderNumber        string     `json:"orderNumber"`
	Total              float64    `json:"total"`
	FulfillmentOrderID *int64     `json:"fulfillmentOrderId,omitempty"`
	Message            string     `json:"message"`
	EmailsSent         EmailsSent `json:"emailsSent"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
