// Package stripe is a thin HTTP client over the Stripe billing API. Only the
// handful of endpoints the platform needs are wrapped; requests are plain
// form posts authenticated with the secret key.
package stripe

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"vitrine/config"
	"vitrine/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "https://api.stripe.com"

	// signatureTolerance bounds how stale a webhook timestamp may be.
	signatureTolerance = 5 * time.Minute
)

// ErrInvalidSignature is returned when a webhook payload fails verification.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// Client talks to the Stripe REST API.
type Client struct {
	apiKey        string
	webhookSecret string
	successURL    string
	cancelURL     string
	baseURL       string
	httpClient    *http.Client

	// now is swappable in tests to verify timestamp tolerance.
	now func() time.Time
}

// NewClient is the constructor for Client.
func NewClient(cfg *config.Config) service.PaymentGateway {
	baseURL := defaultBaseURL
	if cfg.Stripe.BaseURL != "" {
		baseURL = strings.TrimRight(cfg.Stripe.BaseURL, "/")
	}

	return &Client{
		apiKey:        cfg.Stripe.APIKey,
		webhookSecret: cfg.Stripe.WebhookSecret,
		successURL:    cfg.Stripe.SuccessURL,
		cancelURL:     cfg.Stripe.CancelURL,
		baseURL:       baseURL,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		now:           time.Now,
	}
}

// CreateCheckoutSession creates a hosted subscription checkout session. The
// store id rides along as metadata and comes back in the completion webhook.
func (c *Client) CreateCheckoutSession(ctx context.Context, storeID, planID, customerEmail string) (*service.CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "subscription")
	form.Set("line_items[0][price]", planID)
	form.Set("line_items[0][quantity]", "1")
	form.Set("success_url", c.successURL)
	form.Set("cancel_url", c.cancelURL)
	form.Set("metadata[store_id]", storeID)
	form.Set("subscription_data[metadata][store_id]", storeID)
	if customerEmail != "" {
		form.Set("customer_email", customerEmail)
	}

	var session struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/checkout/sessions", form, &session); err != nil {
		return nil, err
	}

	return &service.CheckoutSession{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}

// CancelSubscription cancels a subscription at the provider immediately.
func (c *Client) CancelSubscription(ctx context.Context, providerSubscriptionID string) error {
	path := "/v1/subscriptions/" + url.PathEscape(providerSubscriptionID)

	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ParseWebhook verifies the Stripe-Signature header and decodes the payload
// into the event shape the billing use case consumes.
func (c *Client) ParseWebhook(payload []byte, signatureHeader string) (*service.SubscriptionEvent, error) {
	if err := c.verifySignature(payload, signatureHeader); err != nil {
		return nil, err
	}

	var raw struct {
		ID   string `json:"id"`
		Type string `json:"type"`
		Data struct {
			Object struct {
				ID           string `json:"id"`
				Customer     string `json:"customer"`
				Subscription string `json:"subscription"`
				AmountTotal  int64  `json:"amount_total"`
				AmountPaid   int64  `json:"amount_paid"`
				PeriodStart  int64  `json:"period_start"`
				PeriodEnd    int64  `json:"period_end"`
				Metadata     struct {
					StoreID string `json:"store_id"`
					PlanID  string `json:"plan_id"`
				} `json:"metadata"`
			} `json:"object"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to decode webhook payload")
	}

	event := &service.SubscriptionEvent{
		EventID:                raw.ID,
		Type:                   raw.Type,
		ProviderSubscriptionID: raw.Data.Object.Subscription,
		ProviderCustomerID:     raw.Data.Object.Customer,
		StoreID:                raw.Data.Object.Metadata.StoreID,
		PlanID:                 raw.Data.Object.Metadata.PlanID,
	}

	switch raw.Type {
	case service.EventCheckoutCompleted:
		event.AmountCents = raw.Data.Object.AmountTotal
	case service.EventInvoicePaid, service.EventInvoicePaymentFailed:
		event.AmountCents = raw.Data.Object.AmountPaid
	case service.EventSubscriptionDeleted:
		// The deleted object IS the subscription.
		event.ProviderSubscriptionID = raw.Data.Object.ID
	}

	if raw.Data.Object.PeriodStart > 0 {
		event.PeriodStart = time.Unix(raw.Data.Object.PeriodStart, 0).UTC()
	}
	if raw.Data.Object.PeriodEnd > 0 {
		event.PeriodEnd = time.Unix(raw.Data.Object.PeriodEnd, 0).UTC()
	}

	return event, nil
}

// verifySignature checks the v1 HMAC scheme: the header carries a timestamp
// and one or more signatures over "<timestamp>.<payload>".
func (c *Client) verifySignature(payload []byte, signatureHeader string) error {
	var timestamp string
	var signatures []string

	for _, part := range strings.Split(signatureHeader, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "t":
			timestamp = value
		case "v1":
			signatures = append(signatures, value)
		}
	}

	if timestamp == "" || len(signatures) == 0 {
		return ErrInvalidSignature
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return ErrInvalidSignature
	}
	age := c.now().Sub(time.Unix(ts, 0))
	if age > signatureTolerance || age < -signatureTolerance {
		return ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, []byte(c.webhookSecret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	for _, signature := range signatures {
		if hmac.Equal([]byte(expected), []byte(signature)) {
			return nil
		}
	}

	return ErrInvalidSignature
}

// do sends an authenticated form request and decodes the JSON response.
func (c *Client) do(ctx context.Context, method, path string, form url.Values, out any) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "failed to create stripe request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "stripe request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		return errors.Errorf("stripe returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode stripe response")
	}

	return nil
}
