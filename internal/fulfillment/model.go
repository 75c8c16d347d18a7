package fulfillment

// Recipient is the ship-to address forwarded to the provider.
type Recipient struct {
	Name        string `json:"name"`
	Address1    string `json:"address1"`
	City        string `json:"city"`
	StateCode   string `json:"state_code"`
	Zip         string `json:"zip"`
	CountryCode string `json:"country_code"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
}

// Item is one printable line forwarded to the provider. Only catalog
// items with a variant mapping ever become an Item.
type Item struct {
	VariantID int64 `json:"variant_id"`
	Quantity  int   `json:"quantity"`
}

// DraftOrder is the provider-side order awaiting confirmation; nothing
// is charged or shipped until it is confirmed.
type DraftOrder struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type createOrderRequest struct {
	ExternalID string    `json:"external_id"`
	Recipient  Recipient `json:"recipient"`
	Items      []Item    `json:"items"`
}

type createOrderResponse struct {
	Code   int        `json:"code"`
	Result DraftOrder `json:"result"`
}
