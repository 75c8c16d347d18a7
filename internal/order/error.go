package order

import "errors"

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrDuplicateOrderNumber = errors.New("duplicate order number")
	ErrInvalidStatus        = errors.New("invalid order status")
)
