package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"stagefront-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	CreateOrder(ctx context.Context, o *Order) error
	AttachLineItems(ctx context.Context, orderID uuid.UUID, items []LineItem) error
	MarkFulfilled(ctx context.Context, orderID uuid.UUID, providerOrderID int64) error
	GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error)
	UpdateOrderStatus(ctx context.Context, orderNumber string, status Status) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const uniqueViolation = "23505"

// CreateOrder inserts the order header row. The header is the durability
// point of a checkout: once this commits the sale exists, whatever happens
// to the item rows or any downstream call.
func (r *repository) CreateOrder(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "CreateOrder"),
		zap.String("order_number", o.OrderNumber),
	)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO orders (
			id, order_number,
			customer_name, customer_email, customer_phone,
			street, city, state, zip, country,
			subtotal, total, status, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		o.ID,
		o.OrderNumber,
		o.CustomerName,
		o.CustomerEmail,
		o.CustomerPhone,
		o.Street,
		o.City,
		o.State,
		o.Zip,
		o.Country,
		o.Subtotal,
		o.Total,
		o.Status,
		o.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			log.Warn("order number collision", zap.Error(err))
			return ErrDuplicateOrderNumber
		}
		log.Error("failed to insert order header", zap.Error(err))
		return fmt.Errorf("insert order header: %w", err)
	}

	log.Debug("order header inserted")
	return nil
}

func (r *repository) AttachLineItems(ctx context.Context, orderID uuid.UUID, items []LineItem) error {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "AttachLineItems"),
		zap.String("order_id", orderID.String()),
		zap.Int("item_count", len(items)),
	)

	for i, item := range items {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO order_items (
				id, order_id, product_name, variant_name,
				variant_id, quantity, unit_price
			) VALUES ($1,$2,$3,$4,$5,$6,$7)
		`,
			item.ID,
			orderID,
			item.ProductName,
			item.VariantName,
			item.VariantID,
			item.Quantity,
			item.UnitPrice,
		)
		if err != nil {
			log.Error("failed to insert order item",
				zap.Int("item_index", i),
				zap.String("product_name", item.ProductName),
				zap.Error(err),
			)
			return fmt.Errorf("insert order item %d: %w", i, err)
		}
	}

	log.Debug("all order items inserted")
	return nil
}

// MarkFulfilled records the provider order id and flips the order to PAID
// in a single UPDATE, so no reader can observe one without the other.
func (r *repository) MarkFulfilled(ctx context.Context, orderID uuid.UUID, providerOrderID int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET fulfillment_order_id = $1, status = $2
		WHERE id = $3
	`, providerOrderID, StatusPaid, orderID)
	if err != nil {
		return fmt.Errorf("mark order fulfilled: %w", err)
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repository) GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		SELECT
			id, order_number,
			customer_name, customer_email, customer_phone,
			street, city, state, zip, country,
			subtotal, total, status, fulfillment_order_id, created_at
		FROM orders
		WHERE order_number = $1
	`, orderNumber).Scan(
		&o.ID,
		&o.OrderNumber,
		&o.CustomerName,
		&o.CustomerEmail,
		&o.CustomerPhone,
		&o.Street,
		&o.City,
		&o.State,
		&o.Zip,
		&o.Country,
		&o.Subtotal,
		&o.Total,
		&o.Status,
		&o.FulfillmentOrderID,
		&o.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query order: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_name, variant_name, variant_id, quantity, unit_price
		FROM order_items
		WHERE order_id = $1
	`, o.ID)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item LineItem
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductName,
			&item.VariantName,
			&item.VariantID,
			&item.Quantity,
			&item.UnitPrice,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}

	return &o, nil
}

// UpdateOrderStatus is the back-office transition used by the admin
// status endpoint, not by checkout itself.
func (r *repository) UpdateOrderStatus(ctx context.Context, orderNumber string, status Status) error {
	if !ValidStatus(status) {
		return ErrInvalidStatus
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE orders SET status = $1 WHERE order_number = $2
	`, status, orderNumber)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
