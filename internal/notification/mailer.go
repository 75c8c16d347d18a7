package notification

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

// Mailer sends transactional email. A Mailer constructed without an API
// key is disabled: Send becomes a silent no-op so environments without
// email set up (local development) still check out cleanly.
type Mailer interface {
	Enabled() bool
	Send(ctx context.Context, to, subject, html string) error
}

type mailer struct {
	apiKey     string
	baseURL    string
	from       string
	httpClient *http.Client
}

func NewMailer(apiKey, baseURL, from string) Mailer {
	return &mailer{
		apiKey:  apiKey,
		baseURL: baseURL,
		from:    from,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (m *mailer) Enabled() bool {
	return m.apiKey != ""
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

func (m *mailer) Send(ctx context.Context, to, subject, html string) error {
	if !m.Enabled() {
		return nil
	}

	log := logger.FromCtx(ctx).With(
		zap.String("to", to),
		zap.String("subject", subject),
	)

	jsonBody, err := json.Marshal(sendRequest{
		From:    m.from,
		To:      to,
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		log.Error("Failed to marshal email request", zap.Error(err))
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", m.baseURL+"/emails", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return err
	}

	req.Header.Add("Authorization", "Bearer "+m.apiKey)
	req.Header.Add("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		log.Error("Email request failed", zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return fmt.Errorf("failed to read email response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error("Email provider returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return fmt.Errorf("email error: %s", string(bodyBytes))
	}

	log.Info("Email sent")
	return nil
}
