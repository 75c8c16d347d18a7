package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder() *Order {
	variantID := int64(42)
	o := &Order{
		ID:            uuid.New(),
		OrderNumber:   "ORD-TEST123-AB12",
		CustomerName:  "Jamie Doe",
		CustomerEmail: "jamie@example.com",
		CustomerPhone: "555-0100",
		Street:        "1 Main St",
		City:          "Portland",
		State:         "OR",
		Zip:           "97201",
		Country:       "US",
		Subtotal:      50,
		Total:         50,
		Status:        StatusPending,
		CreatedAt:     time.Now(),
	}
	o.Items = []LineItem{
		{
			ID:          uuid.New(),
			OrderID:     o.ID,
			ProductName: "Tee",
			VariantName: "Black / L",
			VariantID:   &variantID,
			Quantity:    2,
			UnitPrice:   25,
		},
	}
	return o
}

func TestRepository_CreateOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		o := newTestOrder()

		mock.ExpectExec("INSERT INTO orders").
			WithArgs(
				o.ID, o.OrderNumber,
				o.CustomerName, o.CustomerEmail, o.CustomerPhone,
				o.Street, o.City, o.State, o.Zip, o.Country,
				o.Subtotal, o.Total, o.Status, o.CreatedAt,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.CreateOrder(ctx, o)
		assert.NoError(t, err)
	})

	t.Run("DuplicateOrderNumber", func(t *testing.T) {
		o := newTestOrder()

		mock.ExpectExec("INSERT INTO orders").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.CreateOrder(ctx, o)
		assert.ErrorIs(t, err, ErrDuplicateOrderNumber)
	})

	t.Run("DBError", func(t *testing.T) {
		o := newTestOrder()

		mock.ExpectExec("INSERT INTO orders").
			WillReturnError(errors.New("connection refused"))

		err := repo.CreateOrder(ctx, o)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrDuplicateOrderNumber)
	})
}

func TestRepository_AttachLineItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		o := newTestOrder()
		item := o.Items[0]

		mock.ExpectExec("INSERT INTO order_items").
			WithArgs(
				item.ID, o.ID, item.ProductName, item.VariantName,
				item.VariantID, item.Quantity, item.UnitPrice,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.AttachLineItems(ctx, o.ID, o.Items)
		assert.NoError(t, err)
	})

	t.Run("DBError", func(t *testing.T) {
		o := newTestOrder()

		mock.ExpectExec("INSERT INTO order_items").
			WillReturnError(errors.New("db error"))

		err := repo.AttachLineItems(ctx, o.ID, o.Items)
		assert.Error(t, err)
	})
}

func TestRepository_MarkFulfilled(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	orderID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// One UPDATE sets both columns, so no reader can observe the
		// provider id without the PAID status or vice versa.
		mock.ExpectExec(`UPDATE orders SET fulfillment_order_id = \$1, status = \$2 WHERE id = \$3`).
			WithArgs(int64(777), StatusPaid, orderID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.MarkFulfilled(ctx, orderID, 777)
		assert.NoError(t, err)
	})

	t.Run("OrderNotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE orders SET fulfillment_order_id").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.MarkFulfilled(ctx, orderID, 777)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectExec("UPDATE orders SET fulfillment_order_id").
			WillReturnError(errors.New("db error"))

		err := repo.MarkFulfilled(ctx, orderID, 777)
		assert.Error(t, err)
	})
}

func TestRepository_GetOrderByNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	headerCols := []string{
		"id", "order_number",
		"customer_name", "customer_email", "customer_phone",
		"street", "city", "state", "zip", "country",
		"subtotal", "total", "status", "fulfillment_order_id", "created_at",
	}
	itemCols := []string{
		"id", "order_id", "product_name", "variant_name", "variant_id", "quantity", "unit_price",
	}

	t.Run("Success", func(t *testing.T) {
		orderID := uuid.New()

		mock.ExpectQuery("SELECT (.+) FROM orders").
			WithArgs("ORD-TEST123-AB12").
			WillReturnRows(sqlmock.NewRows(headerCols).AddRow(
				orderID, "ORD-TEST123-AB12",
				"Jamie Doe", "jamie@example.com", "555-0100",
				"1 Main St", "Portland", "OR", "97201", "US",
				50.0, 50.0, "PAID", int64(777), time.Now(),
			))

		mock.ExpectQuery("SELECT (.+) FROM order_items").
			WithArgs(orderID).
			WillReturnRows(sqlmock.NewRows(itemCols).
				AddRow(uuid.New(), orderID, "Tee", "Black / L", int64(42), 2, 25.0).
				AddRow(uuid.New(), orderID, "Album Download", "", nil, 1, 10.0))

		o, err := repo.GetOrderByNumber(ctx, "ORD-TEST123-AB12")
		require.NoError(t, err)
		assert.Equal(t, "ORD-TEST123-AB12", o.OrderNumber)
		assert.Equal(t, StatusPaid, o.Status)
		require.NotNil(t, o.FulfillmentOrderID)
		assert.Equal(t, int64(777), *o.FulfillmentOrderID)
		require.Len(t, o.Items, 2)
		assert.Nil(t, o.Items[1].VariantID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM orders").
			WithArgs("ORD-MISSING-0000").
			WillReturnRows(sqlmock.NewRows(headerCols))

		_, err := repo.GetOrderByNumber(ctx, "ORD-MISSING-0000")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM orders").
			WillReturnError(errors.New("db error"))

		_, err := repo.GetOrderByNumber(ctx, "ORD-TEST123-AB12")
		assert.Error(t, err)
	})
}

func TestRepository_UpdateOrderStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET status = \$1 WHERE order_number = \$2`).
			WithArgs(StatusShipped, "ORD-TEST123-AB12").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateOrderStatus(ctx, "ORD-TEST123-AB12", StatusShipped)
		assert.NoError(t, err)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		err := repo.UpdateOrderStatus(ctx, "ORD-TEST123-AB12", Status("BOGUS"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE orders SET status").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateOrderStatus(ctx, "ORD-MISSING-0000", StatusCancelled)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}
