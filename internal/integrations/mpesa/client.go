package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/m04kA/DaySeven-BookingService/pkg/phone"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент Daraja API (Lipa na M-Pesa Online)
type Client struct {
	baseURL    string
	creds      Credentials
	httpClient *http.Client
	now        func() time.Time
	log        Logger
}

// NewClient создает новый экземпляр клиента M-Pesa
func NewClient(baseURL string, creds Credentials, timeout time.Duration, log Logger) *Client {
	if creds.CallbackURL == "" {
		creds.CallbackURL = DefaultCallbackURL
	}
	return &Client{
		baseURL: baseURL,
		creds:   creds,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		now: time.Now,
		log: log,
	}
}

// BaseURLFor возвращает адрес API для окружения (production или sandbox)
func BaseURLFor(production bool) string {
	if production {
		return ProductionBaseURL
	}
	return SandboxBaseURL
}

// AccessToken получает OAuth токен по client credentials
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	if c.creds.ConsumerKey == "" || c.creds.ConsumerSecret == "" {
		return "", ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+tokenPath, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.SetBasicAuth(c.creds.ConsumerKey, c.creds.ConsumerSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", ErrAuthFailed, resp.StatusCode, errorMessage(resp.Body))
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("%w: failed to decode token: %v", ErrInvalidResponse, err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrAuthFailed)
	}

	return token.AccessToken, nil
}

// InitiateSTKPush отправляет запрос на оплату на телефон гостя
// Каждый вызов получает новый токен, повторов нет
func (c *Client) InitiateSTKPush(ctx context.Context, in STKPushRequest) (*STKPushResponse, error) {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	payload := c.buildPayload(in, c.now())

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	c.log.Info("M-Pesa STK push: phone=%s, amount=%d, reference=%s",
		payload.PhoneNumber, payload.Amount, payload.AccountReference)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+stkPushPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrPushRejected, resp.StatusCode, errorMessage(resp.Body))
	}

	var result STKPushResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if result.CheckoutRequestID == "" {
		return nil, fmt.Errorf("%w: response code=%s: %s", ErrPushRejected, result.ResponseCode, result.ResponseDescription)
	}

	c.log.Info("M-Pesa STK push accepted: checkout_id=%s", result.CheckoutRequestID)
	return &result, nil
}

func (c *Client) buildPayload(in STKPushRequest, now time.Time) stkPushPayload {
	timestamp := now.Format(timestampFmt)
	msisdn := phone.ToMSISDN(in.Phone)

	reference := in.AccountReference
	if reference == "" {
		reference = DefaultAccountReference
	}
	desc := in.TransactionDesc
	if desc == "" {
		desc = DefaultTransactionDesc
	}

	return stkPushPayload{
		BusinessShortCode: c.creds.Shortcode,
		Password:          Password(c.creds.Shortcode, c.creds.Passkey, timestamp),
		Timestamp:         timestamp,
		TransactionType:   TransactionTypePayBill,
		Amount:            int64(math.Ceil(in.Amount)),
		PartyA:            msisdn,
		PartyB:            c.creds.Shortcode,
		PhoneNumber:       msisdn,
		CallBackURL:       c.creds.CallbackURL,
		AccountReference:  reference,
		TransactionDesc:   desc,
	}
}

// Password пароль запроса: base64(shortcode + passkey + timestamp)
func Password(shortcode, passkey, timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(shortcode + passkey + timestamp))
}

func errorMessage(r io.Reader) string {
	body, _ := io.ReadAll(io.LimitReader(r, 4096))

	var apiErr ErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.ErrorMessage != "" {
		return apiErr.ErrorMessage
	}
	return string(body)
}
