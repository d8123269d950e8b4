package lib

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"matchday/src/config"
)

// Split percentages for every charge. The organizer's subaccount takes the
// larger share; the remainder settles on the platform subaccount.
const (
	OrganizerSharePercent = 80
	PlatformSharePercent  = 20
)

// ErrAccountResolution is returned when the gateway cannot match the given
// bank code and account number to an account name.
var ErrAccountResolution = errors.New("could not resolve account name")

// GatewayError carries the message the gateway returned with a non-ok status.
type GatewayError struct {
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway rejected request: %s", e.Message)
}

type PaystackConfig struct {
	SecretKey          string
	BaseURL            string
	PlatformSubaccount string
	HTTPClient         *http.Client
}

type PaystackClient struct {
	secret             string
	baseURL            string
	platformSubaccount string
	http               *http.Client
}

func NewPaystackClient(cfg PaystackConfig) *PaystackClient {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	return &PaystackClient{
		secret:             cfg.SecretKey,
		baseURL:            cfg.BaseURL,
		platformSubaccount: cfg.PlatformSubaccount,
		http:               hc,
	}
}

var paystackClient *PaystackClient

func GetPaystackClient() *PaystackClient {
	if paystackClient != nil {
		return paystackClient
	}
	c := NewPaystackClient(PaystackConfig{
		SecretKey:          config.PaystackSecretKey(),
		BaseURL:            config.PaystackBaseURL(),
		PlatformSubaccount: config.PlatformSubaccount(),
	})
	paystackClient = c
	return c
}

// UsePaystackClient Replace gateway instance with custom client implementation
func UsePaystackClient(c *PaystackClient) *PaystackClient {
	paystackClient = c
	return c
}

type InitializeTransactionInput struct {
	Email               string
	Amount              int64
	Reference           string
	CallbackURL         string
	EventID             uint
	UserID              uint
	OrganizerSubaccount string
}

type InitializeTransactionOutput struct {
	AuthorizationURL string
}

func (c *PaystackClient) InitializeTransaction(ctx context.Context, in *InitializeTransactionInput) (*InitializeTransactionOutput, error) {
	payload := map[string]any{
		"email":        in.Email,
		"amount":       in.Amount,
		"reference":    in.Reference,
		"callback_url": in.CallbackURL,
		"metadata": map[string]string{
			"eventId": strconv.FormatUint(uint64(in.EventID), 10),
			"userId":  strconv.FormatUint(uint64(in.UserID), 10),
		},
		"split": map[string]any{
			"type": "percentage",
			"subaccounts": []map[string]any{
				{"subaccount": in.OrganizerSubaccount, "share": OrganizerSharePercent},
				{"subaccount": c.platformSubaccount, "share": PlatformSharePercent},
			},
		},
	}
	var out struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    struct {
			AuthorizationURL string `json:"authorization_url"`
		} `json:"data"`
	}
	if err := c.post(ctx, "/transaction/initialize", payload, &out); err != nil {
		return nil, err
	}
	if !out.Status {
		return nil, &GatewayError{Message: out.Message}
	}
	return &InitializeTransactionOutput{AuthorizationURL: out.Data.AuthorizationURL}, nil
}

type CreateSubaccountInput struct {
	BusinessName  string
	BankCode      string
	AccountNumber string
}

type CreateSubaccountOutput struct {
	SubaccountCode string
	AccountName    string
}

func (c *PaystackClient) CreateSubaccount(ctx context.Context, in *CreateSubaccountInput) (*CreateSubaccountOutput, error) {
	payload := map[string]any{
		"business_name":     in.BusinessName,
		"bank_code":         in.BankCode,
		"account_number":    in.AccountNumber,
		"percentage_charge": OrganizerSharePercent,
	}
	var out struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    struct {
			SubaccountCode string `json:"subaccount_code"`
			AccountName    string `json:"account_name"`
		} `json:"data"`
	}
	if err := c.post(ctx, "/subaccount", payload, &out); err != nil {
		return nil, err
	}
	if !out.Status {
		if bytes.Contains(bytes.ToLower([]byte(out.Message)), []byte("could not resolve account name")) {
			return nil, fmt.Errorf("%w: %s", ErrAccountResolution, out.Message)
		}
		return nil, &GatewayError{Message: out.Message}
	}
	return &CreateSubaccountOutput{
		SubaccountCode: out.Data.SubaccountCode,
		AccountName:    out.Data.AccountName,
	}, nil
}

// VerifySignature checks the webhook signature header against the raw request
// body. Callers must not parse the body before this returns true.
func (c *PaystackClient) VerifySignature(body []byte, signature string) bool {
	mac := hmac.New(sha512.New, []byte(c.secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (c *PaystackClient) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.secret)
	req.Header.Set("Content-Type", "application/json")
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer res.Body.Close()
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resBody, out); err != nil {
		log.Printf("[paystack] Error decoding response from %s: %s\n", path, err.Error())
		return &GatewayError{Message: fmt.Sprintf("unexpected response with status %d", res.StatusCode)}
	}
	return nil
}
