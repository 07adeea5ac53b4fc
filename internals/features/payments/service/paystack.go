package service

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// PaystackClient talks to the Paystack transaction API. Amounts cross the wire
// in the minor currency unit (kobo).
type PaystackClient struct {
	BaseURL   string
	SecretKey string
	HTTP      *http.Client
}

func NewPaystackClient(baseURL, secretKey string) *PaystackClient {
	return &PaystackClient{
		BaseURL:   baseURL,
		SecretKey: secretKey,
		HTTP:      &http.Client{Timeout: 15 * time.Second},
	}
}

type paystackEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type InitializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type VerifyData struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
	Channel   string `json:"channel"`
	PaidAt    string `json:"paid_at"`
}

// InitializeTransaction starts a hosted checkout. amountKobo is the charge in
// the minor unit; metadata is echoed back on webhooks.
func (p *PaystackClient) InitializeTransaction(ctx context.Context, email string, amountKobo int64, reference, callbackURL string, metadata map[string]interface{}) (*InitializeData, error) {
	payload := map[string]interface{}{
		"email":        email,
		"amount":       amountKobo,
		"reference":    reference,
		"callback_url": callbackURL,
	}
	if len(metadata) > 0 {
		payload["metadata"] = metadata
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	var data InitializeData
	if err := p.do(ctx, http.MethodPost, "/transaction/initialize", bytes.NewReader(body), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// VerifyTransaction fetches the gateway's view of one reference.
func (p *PaystackClient) VerifyTransaction(ctx context.Context, reference string) (*VerifyData, error) {
	var data VerifyData
	if err := p.do(ctx, http.MethodGet, "/transaction/verify/"+reference, nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (p *PaystackClient) do(ctx context.Context, method, path string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, p.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+p.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env paystackEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("paystack: unexpected response (%d)", resp.StatusCode)
	}
	if !env.Status {
		if env.Message != "" {
			return fmt.Errorf("paystack: %s", env.Message)
		}
		return fmt.Errorf("paystack: request failed (%d)", resp.StatusCode)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return err
		}
	}
	return nil
}

// VerifyWebhookSignature checks the x-paystack-signature header: a hex
// HMAC-SHA512 of the exact raw body under the secret key. Constant-time
// comparison.
func (p *PaystackClient) VerifyWebhookSignature(body []byte, signature string) bool {
	return VerifyWebhookSignature(p.SecretKey, body, signature)
}

func VerifyWebhookSignature(secretKey string, body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha512.New, []byte(secretKey))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
