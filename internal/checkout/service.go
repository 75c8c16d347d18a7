package checkout

import (
	"context"
	"errors"
	"sync"
	"time"

	"stagefront-be/internal/fulfillment"
	"stagefront-be/internal/logger"
	"stagefront-be/internal/notification"
	"stagefront-be/internal/order"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Result is the orchestrator's view of one completed checkout. Steps
// records every post-commit outcome for the response flags and for
// manual reconciliation.
type Result struct {
	Order              *order.Order
	FulfillmentOrderID *int64
	NotificationSent   bool
	ConfirmationSent   bool
	Steps              []StepResult
}

type Service interface {
	Checkout(ctx context.Context, req CheckoutRequest) (*Result, error)
}

type service struct {
	repo        order.Repository
	provider    fulfillment.Client
	mailer      notification.Mailer
	ownerEmail  string
	stepTimeout time.Duration
}

func NewService(
	repo order.Repository,
	provider fulfillment.Client,
	mailer notification.Mailer,
	ownerEmail string,
) Service {
	return &service{
		repo:        repo,
		provider:    provider,
		mailer:      mailer,
		ownerEmail:  ownerEmail,
		stepTimeout: 10 * time.Second,
	}
}

// Checkout runs the pipeline: validate, persist the header (fatal on
// failure), then the degraded tail of line items, the fulfillment chain,
// and both emails. The checkout succeeds the moment the header commits;
// every later failure is logged and reported, never propagated.
func (s *service) Checkout(ctx context.Context, req CheckoutRequest) (*Result, error) {
	o, err := ValidateCheckout(req)
	if err != nil {
		return nil, err
	}

	o.ID = uuid.New()
	o.OrderNumber = order.NewOrderNumber()
	o.CreatedAt = time.Now()
	for i := range o.Items {
		o.Items[i].ID = uuid.New()
		o.Items[i].OrderID = o.ID
	}

	log := logger.FromCtx(ctx).With(zap.String("order_number", o.OrderNumber))

	if err := s.persistHeader(ctx, o); err != nil {
		log.Error("order header could not be created", zap.Error(err))
		return nil, &FatalStoreError{Err: err}
	}

	// The sale is durable from here on.
	res := &Result{Order: o}

	var mu sync.Mutex
	record := func(name string, status StepStatus, err error) {
		mu.Lock()
		res.Steps = append(res.Steps, StepResult{Name: name, Status: status, Err: err})
		mu.Unlock()
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		s.attachItems(ctx, o, record)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		s.fulfill(ctx, o, res, record)
	}()

	// The emails render the order snapshot including the fulfillment
	// outcome, so they wait for the fulfillment chain to settle.
	wg.Wait()

	wg.Add(2)
	go func() {
		defer wg.Done()
		subject, html := notification.OrderNotification(o)
		res.NotificationSent = s.sendEmail(ctx, StepNotificationEmail, s.ownerEmail, subject, html, record)
	}()
	go func() {
		defer wg.Done()
		subject, html := notification.OrderConfirmation(o)
		res.ConfirmationSent = s.sendEmail(ctx, StepConfirmationEmail, o.CustomerEmail, subject, html, record)
	}()
	wg.Wait()

	log.Info("checkout completed",
		zap.String("status", string(o.Status)),
		zap.Float64("total", o.Total),
		zap.Int("item_count", len(o.Items)),
		zap.Bool("notification_sent", res.NotificationSent),
		zap.Bool("confirmation_sent", res.ConfirmationSent),
	)

	return res, nil
}

// persistHeader inserts the order header, regenerating the order number
// once if the store reports a collision. The uniqueness constraint is
// the backstop for the probabilistic generator.
func (s *service) persistHeader(ctx context.Context, o *order.Order) error {
	stepCtx, cancel := context.WithTimeout(ctx, s.stepTimeout)
	defer cancel()

	err := s.repo.CreateOrder(stepCtx, o)
	if errors.Is(err, order.ErrDuplicateOrderNumber) {
		o.OrderNumber = order.NewOrderNumber()
		err = s.repo.CreateOrder(stepCtx, o)
	}
	return err
}

func (s *service) attachItems(ctx context.Context, o *order.Order, record func(string, StepStatus, error)) {
	stepCtx, cancel := context.WithTimeout(ctx, s.stepTimeout)
	defer cancel()

	if err := s.repo.AttachLineItems(stepCtx, o.ID, o.Items); err != nil {
		logger.FromCtx(ctx).Error("line items not persisted, order needs reconciliation",
			zap.String("order_number", o.OrderNumber),
			zap.String("step", StepPersistItems),
			zap.Error(err),
		)
		record(StepPersistItems, StepDegraded, err)
		return
	}
	record(StepPersistItems, StepOK, nil)
}

// fulfill forwards the provider-mapped items as a draft order, then marks
// the local order paid. Items without a variant id never leave the store;
// an all-digital cart skips the provider entirely.
func (s *service) fulfill(ctx context.Context, o *order.Order, res *Result, record func(string, StepStatus, error)) {
	var items []fulfillment.Item
	for _, li := range o.Items {
		if li.VariantID == nil {
			continue
		}
		items = append(items, fulfillment.Item{
			VariantID: *li.VariantID,
			Quantity:  li.Quantity,
		})
	}
	if len(items) == 0 {
		return
	}

	log := logger.FromCtx(ctx).With(zap.String("order_number", o.OrderNumber))

	stepCtx, cancel := context.WithTimeout(ctx, s.stepTimeout)
	defer cancel()

	draft, err := s.provider.CreateDraftOrder(stepCtx, o.OrderNumber, fulfillment.Recipient{
		Name:        o.CustomerName,
		Address1:    o.Street,
		City:        o.City,
		StateCode:   o.State,
		Zip:         o.Zip,
		CountryCode: o.Country,
		Phone:       o.CustomerPhone,
		Email:       o.CustomerEmail,
	}, items)
	if err != nil {
		log.Error("fulfillment order not created, order needs manual fulfillment",
			zap.String("step", StepCreateFulfillment),
			zap.Error(err),
		)
		record(StepCreateFulfillment, StepDegraded, err)
		return
	}
	record(StepCreateFulfillment, StepOK, nil)

	res.FulfillmentOrderID = &draft.ID
	o.FulfillmentOrderID = &draft.ID
	o.Status = order.StatusPaid

	markCtx, markCancel := context.WithTimeout(ctx, s.stepTimeout)
	defer markCancel()

	if err := s.repo.MarkFulfilled(markCtx, o.ID, draft.ID); err != nil {
		log.Error("order not marked fulfilled, admin view will lag",
			zap.String("step", StepMarkFulfilled),
			zap.Int64("fulfillment_order_id", draft.ID),
			zap.Error(err),
		)
		record(StepMarkFulfilled, StepDegraded, err)
		return
	}
	record(StepMarkFulfilled, StepOK, nil)
}

func (s *service) sendEmail(
	ctx context.Context,
	step, to, subject, html string,
	record func(string, StepStatus, error),
) bool {
	if !s.mailer.Enabled() {
		return false
	}

	stepCtx, cancel := context.WithTimeout(ctx, s.stepTimeout)
	defer cancel()

	if err := s.mailer.Send(stepCtx, to, subject, html); err != nil {
		logger.FromCtx(ctx).Error("email not sent",
			zap.String("step", step),
			zap.String("to", to),
			zap.Error(err),
		)
		record(step, StepDegraded, err)
		return false
	}
	record(step, StepOK, nil)
	return true
}
