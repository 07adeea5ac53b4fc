package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewPaystackClient(t *testing.T) {
	client := NewPaystackClient("https://api.paystack.co", "sk_test_123")

	if client.BaseURL != "https://api.paystack.co" {
		t.Errorf("Expected BaseURL to be 'https://api.paystack.co', got '%s'", client.BaseURL)
	}
	if client.SecretKey != "sk_test_123" {
		t.Errorf("Expected SecretKey to be 'sk_test_123', got '%s'", client.SecretKey)
	}
	if client.HTTP == nil {
		t.Error("Expected HTTP client to be initialized")
	}
}

func TestInitializeTransaction(t *testing.T) {
	var gotPath, gotAuth string
	var gotPayload map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotPayload)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Authorization URL created",
			"data": {
				"authorization_url": "https://checkout.paystack.com/abc123",
				"access_code": "abc123",
				"reference": "MNTLE-1-deadbeef"
			}
		}`))
	}))
	defer server.Close()

	client := NewPaystackClient(server.URL, "sk_test_123")
	data, err := client.InitializeTransaction(context.Background(), "jane@example.com", 500000, "MNTLE-1-deadbeef", "https://mentle.app/payment/callback", map[string]interface{}{"course_id": "c1"})
	if err != nil {
		t.Fatalf("InitializeTransaction returned error: %v", err)
	}

	if gotPath != "/transaction/initialize" {
		t.Errorf("Expected path '/transaction/initialize', got '%s'", gotPath)
	}
	if gotAuth != "Bearer sk_test_123" {
		t.Errorf("Expected bearer auth header, got '%s'", gotAuth)
	}
	if gotPayload["email"] != "jane@example.com" {
		t.Errorf("Expected email 'jane@example.com', got '%v'", gotPayload["email"])
	}
	if gotPayload["amount"] != float64(500000) {
		t.Errorf("Expected amount 500000, got '%v'", gotPayload["amount"])
	}
	if gotPayload["reference"] != "MNTLE-1-deadbeef" {
		t.Errorf("Expected reference to be forwarded, got '%v'", gotPayload["reference"])
	}

	if data.AuthorizationURL != "https://checkout.paystack.com/abc123" {
		t.Errorf("Expected authorization URL, got '%s'", data.AuthorizationURL)
	}
	if data.AccessCode != "abc123" {
		t.Errorf("Expected access code 'abc123', got '%s'", data.AccessCode)
	}
}

func TestInitializeTransactionGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status": false, "message": "Invalid key"}`))
	}))
	defer server.Close()

	client := NewPaystackClient(server.URL, "sk_test_bad")
	_, err := client.InitializeTransaction(context.Background(), "jane@example.com", 1000, "ref", "cb", nil)
	if err == nil {
		t.Fatal("Expected error for gateway failure, got nil")
	}
	if err.Error() != "paystack: Invalid key" {
		t.Errorf("Expected gateway message to surface, got '%v'", err)
	}
}

func TestVerifyTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction/verify/MNTLE-1-deadbeef" {
			t.Errorf("Unexpected verify path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Verification successful",
			"data": {"status": "success", "reference": "MNTLE-1-deadbeef", "amount": 500000, "channel": "card"}
		}`))
	}))
	defer server.Close()

	client := NewPaystackClient(server.URL, "sk_test_123")
	data, err := client.VerifyTransaction(context.Background(), "MNTLE-1-deadbeef")
	if err != nil {
		t.Fatalf("VerifyTransaction returned error: %v", err)
	}

	if data.Status != "success" {
		t.Errorf("Expected status 'success', got '%s'", data.Status)
	}
	if data.Channel != "card" {
		t.Errorf("Expected channel 'card', got '%s'", data.Channel)
	}
	if data.Amount != 500000 {
		t.Errorf("Expected amount 500000, got %d", data.Amount)
	}
}

func TestVerifyWebhookSignature(t *testing.T) {
	secret := "sk_test_secret"
	body := []byte(`{"event":"charge.success","data":{"reference":"MNTLE-1-deadbeef"}}`)

	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	valid := hex.EncodeToString(mac.Sum(nil))

	testCases := []struct {
		name      string
		body      []byte
		signature string
		expected  bool
	}{
		{"valid signature", body, valid, true},
		{"empty signature", body, "", false},
		{"wrong signature", body, "deadbeef", false},
		{"body tampered after signing", []byte(`{"event":"charge.success","data":{"reference":"OTHER"}}`), valid, false},
	}

	for _, tc := range testCases {
		if got := VerifyWebhookSignature(secret, tc.body, tc.signature); got != tc.expected {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.expected, got)
		}
	}
}

func TestParseWebhookEvent(t *testing.T) {
	body := []byte(`{"event":"charge.success","data":{"reference":"MNTLE-1-deadbeef","channel":"bank","amount":250000}}`)

	ev, err := ParseWebhookEvent(body)
	if err != nil {
		t.Fatalf("ParseWebhookEvent returned error: %v", err)
	}
	if ev.Event != "charge.success" {
		t.Errorf("Expected event 'charge.success', got '%s'", ev.Event)
	}
	if ev.Data.Reference != "MNTLE-1-deadbeef" {
		t.Errorf("Expected reference 'MNTLE-1-deadbeef', got '%s'", ev.Data.Reference)
	}
	if ev.Data.Channel != "bank" {
		t.Errorf("Expected channel 'bank', got '%s'", ev.Data.Channel)
	}
}
