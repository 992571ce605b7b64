package stripe

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vitrine/config"
	"vitrine/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWebhookSecret = "whsec_test"

func newTestClient(baseURL string) *Client {
	cfg := &config.Config{
		Stripe: &config.StripeConfig{
			APIKey:        "sk_test_123",
			WebhookSecret: testWebhookSecret,
			SuccessURL:    "https://app.example/billing/success",
			CancelURL:     "https://app.example/billing/cancel",
			BaseURL:       baseURL,
		},
	}

	return NewClient(cfg).(*Client)
}

// sign produces a Stripe-Signature header over the payload at the given time.
func sign(payload []byte, at time.Time) string {
	timestamp := fmt.Sprintf("%d", at.Unix())
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)

	return fmt.Sprintf("t=%s,v1=%s", timestamp, hex.EncodeToString(mac.Sum(nil)))
}

func TestClient_CreateCheckoutSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "subscription", r.PostForm.Get("mode"))
		assert.Equal(t, "plan_basic", r.PostForm.Get("line_items[0][price]"))
		assert.Equal(t, "store-1", r.PostForm.Get("metadata[store_id]"))
		assert.Equal(t, "ana@example.com", r.PostForm.Get("customer_email"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"cs_123","url":"https://checkout.stripe.com/pay/cs_123"}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	session, err := client.CreateCheckoutSession(context.Background(), "store-1", "plan_basic", "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "cs_123", session.SessionID)
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_123", session.URL)
}

func TestClient_CreateCheckoutSession_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		fmt.Fprint(w, `{"error":{"message":"Your card was declined."}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	session, err := client.CreateCheckoutSession(context.Background(), "store-1", "plan_basic", "")
	require.Error(t, err)
	assert.Nil(t, session)
}

func TestClient_ParseWebhook(t *testing.T) {
	client := newTestClient("")
	payload := []byte(`{
		"id": "evt_1",
		"type": "checkout.session.completed",
		"data": {"object": {
			"id": "cs_123",
			"customer": "cus_123",
			"subscription": "sub_123",
			"amount_total": 4990,
			"metadata": {"store_id": "store-1", "plan_id": "plan_basic"}
		}}
	}`)

	event, err := client.ParseWebhook(payload, sign(payload, time.Now()))
	require.NoError(t, err)
	assert.Equal(t, "evt_1", event.EventID)
	assert.Equal(t, service.EventCheckoutCompleted, event.Type)
	assert.Equal(t, "sub_123", event.ProviderSubscriptionID)
	assert.Equal(t, "store-1", event.StoreID)
	assert.Equal(t, int64(4990), event.AmountCents)
}

func TestClient_ParseWebhook_BadSignature(t *testing.T) {
	client := newTestClient("")
	payload := []byte(`{"id":"evt_1","type":"invoice.paid","data":{"object":{}}}`)

	tampered := []byte(`{"id":"evt_1","type":"invoice.paid","data":{"object":{"amount_paid":1}}}`)
	_, err := client.ParseWebhook(tampered, sign(payload, time.Now()))
	require.ErrorIs(t, err, ErrInvalidSignature)

	_, err = client.ParseWebhook(payload, "not-a-signature")
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestClient_ParseWebhook_StaleTimestamp(t *testing.T) {
	client := newTestClient("")
	payload := []byte(`{"id":"evt_1","type":"invoice.paid","data":{"object":{}}}`)

	signedAt := time.Now()
	client.now = func() time.Time { return signedAt.Add(signatureTolerance + time.Minute) }

	_, err := client.ParseWebhook(payload, sign(payload, signedAt))
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestClient_ParseWebhook_SubscriptionDeleted(t *testing.T) {
	client := newTestClient("")
	payload := []byte(`{
		"id": "evt_9",
		"type": "customer.subscription.deleted",
		"data": {"object": {"id": "sub_123", "customer": "cus_123"}}
	}`)

	event, err := client.ParseWebhook(payload, sign(payload, time.Now()))
	require.NoError(t, err)
	assert.Equal(t, "sub_123", event.ProviderSubscriptionID)
}
