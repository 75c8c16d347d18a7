package fulfillment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"stagefront-be/internal/logger"

	"go.uber.org/zap"
)

// Client creates draft orders with the print-on-demand provider.
type Client interface {
	CreateDraftOrder(ctx context.Context, externalRef string, recipient Recipient, items []Item) (*DraftOrder, error)
}

type client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, baseURL string) Client {
	if apiKey == "" {
		logger.L().Warn("Printful API key is empty")
	}

	return &client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// CreateDraftOrder requests an unconfirmed provider order. externalRef is
// the local order number, sent both as the external_id field and as an
// idempotency key so a transport-level retry cannot mint a second draft.
func (c *client) CreateDraftOrder(
	ctx context.Context,
	externalRef string,
	recipient Recipient,
	items []Item,
) (*DraftOrder, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("order_number", externalRef),
		zap.Int("item_count", len(items)),
	)

	body := createOrderRequest{
		ExternalID: externalRef,
		Recipient:  recipient,
		Items:      items,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		log.Error("Failed to marshal fulfillment request", zap.Error(err))
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/orders", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return nil, err
	}

	req.Header.Add("Authorization", "Bearer "+c.apiKey)
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("X-Idempotency-Key", externalRef)

	log.Info("Sending draft order to fulfillment provider")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("Fulfillment request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read fulfillment response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error("Fulfillment provider returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("fulfillment error: %s", string(bodyBytes))
	}

	var res createOrderResponse
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		log.Error("Failed decoding fulfillment response", zap.Error(err))
		return nil, err
	}

	log.Info("Draft order created",
		zap.Int64("fulfillment_order_id", res.Result.ID),
		zap.String("status", res.Result.Status),
	)

	return &res.Result, nil
}
