package checkout

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"stagefront-be/internal/logger"
	"stagefront-be/internal/order"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	orders order.Repository
}

func NewHandler(svc Service, orders order.Repository) *Handler {
	return &Handler{svc: svc, orders: orders}
}

// Checkout handles POST /checkout.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.Checkout(r.Context(), req)
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			writeError(w, http.StatusBadRequest, vErr.Message)
			return
		}
		// Fatal persistence failure: the customer gets a generic retry
		// message, the incident detail stays in the logs.
		writeError(w, http.StatusInternalServerError, "something went wrong, please try again")
		return
	}

	writeJSON(w, http.StatusOK, CheckoutResponse{
		Success:            true,
		OrderNumber:        res.Order.OrderNumber,
		Total:              res.Order.Total,
		FulfillmentOrderID: res.FulfillmentOrderID,
		Message:            "Order placed successfully",
		EmailsSent: EmailsSent{
			Notification: res.NotificationSent,
			Confirmation: res.ConfirmationSent,
		},
	})
}

type orderView struct {
	OrderNumber        string          `json:"orderNumber"`
	CustomerName       string          `json:"customerName"`
	Status             string          `json:"status"`
	Subtotal           float64         `json:"subtotal"`
	Total              float64         `json:"total"`
	FulfillmentOrderID *int64          `json:"fulfillmentOrderId,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	Items              []orderItemView `json:"items"`
}

type orderItemView struct {
	ProductName string  `json:"productName"`
	VariantName string  `json:"variantName,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// GetOrder handles GET /orders/{orderNumber}, backing the confirmation page.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "orderNumber")
	if orderNumber == "" {
		writeError(w, http.StatusBadRequest, "order number is required")
		return
	}

	o, err := h.orders.GetOrderByNumber(r.Context(), orderNumber)
	if errors.Is(err, order.ErrOrderNotFound) {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to load order",
			zap.String("order_number", orderNumber),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "something went wrong, please try again")
		return
	}

	view := orderView{
		OrderNumber:        o.OrderNumber,
		CustomerName:       o.CustomerName,
		Status:             string(o.Status),
		Subtotal:           o.Subtotal,
		Total:              o.Total,
		FulfillmentOrderID: o.FulfillmentOrderID,
		CreatedAt:          o.CreatedAt,
	}
	for _, item := range o.Items {
		view.Items = append(view.Items, orderItemView{
			ProductName: item.ProductName,
			VariantName: item.VariantName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	writeJSON(w, http.StatusOK, view)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /admin/orders/{orderNumber}/status.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "orderNumber")

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.orders.UpdateOrderStatus(r.Context(), orderNumber, order.Status(req.Status))
	switch {
	case errors.Is(err, order.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "invalid order status")
	case errors.Is(err, order.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, "order not found")
	case err != nil:
		logger.FromCtx(r.Context()).Error("failed to update order status",
			zap.String("order_number", orderNumber),
			zap.String("status", req.Status),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "something went wrong, please try again")
	default:
		writeJSON(w, http.StatusOK, map[string]any{
			"success":     true,
			"orderNumber": orderNumber,
			"status":      req.Status,
		})
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, ErrorResponse{Success: false, Error: message})
}
