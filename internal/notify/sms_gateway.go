package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type SMSGatewayConfig struct {
	URL    string
	APIKey string
	Sender string
}

// HTTPSMSDispatcher posts one message to the provider gateway. The transport
// encoding rule (Thai space substitution) is applied here, at the last moment
// before the wire, so structured fields never see it.
type HTTPSMSDispatcher struct {
	cfg    SMSGatewayConfig
	client *http.Client
}

func NewHTTPSMSDispatcher(cfg SMSGatewayConfig) *HTTPSMSDispatcher {
	return &HTTPSMSDispatcher{
		cfg: cfg,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type smsGatewayRequest struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Message string `json:"message"`
}

type smsGatewayResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

func (d *HTTPSMSDispatcher) SendSMS(ctx context.Context, msg SMSMessage) error {
	body := smsGatewayRequest{
		To:      msg.To,
		From:    d.cfg.Sender,
		Message: EncodeForTransport(msg.Body, msg.Locale),
	}

	raw, err := json.Marshal(body)

	if err != nil {
		return fmt.Errorf("marshal sms request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.URL, bytes.NewReader(raw))

	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+d.cfg.APIKey)

	res, err := d.client.Do(req)

	if err != nil {
		return fmt.Errorf("sms gateway: %w", err)
	}

	defer res.Body.Close()

	payload, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16))

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("sms gateway status %d: %s", res.StatusCode, bytes.TrimSpace(payload))
	}

	var parsed smsGatewayResponse

	if err := json.Unmarshal(payload, &parsed); err != nil {
		return fmt.Errorf("decode sms response: %w", err)
	}

	if !parsed.Success {
		return fmt.Errorf("sms gateway rejected: %s", parsed.Error)
	}

	return nil
}
