// Package txvault is the client of the transaction vault: the external
// collaborator that holds wallet key material and can build, sign and submit
// ledger transactions. It is consumed as a black box over HTTP.
package txvault

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nftmakerio/masumi-payment-service/internal/model"
)

const (
	defaultHTTPTimeout = 2 * time.Minute

	// Submission gets a short bounded retry with exponential backoff. This
	// is deliberately separate from the executors' counter-based retries:
	// it papers over transient submission hiccups within one pass.
	submitMaxAttempts     = 3
	submitInitialInterval = 2 * time.Second
)

// Output is one transaction output to be produced by the vault.
type Output struct {
	Address string         `json:"address"`
	Datum   []byte         `json:"datum,omitempty"`
	Amounts []model.Amount `json:"amounts"`
}

// LockRequest asks the vault to build and submit a lock transaction from a
// hot wallet: one escrow output per batched obligation.
type LockRequest struct {
	WalletID uuid.UUID `json:"walletId"`
	Memo     []string  `json:"memo,omitempty"`
	Outputs  []Output  `json:"outputs"`
}

// RedeemRequest asks the vault to build and submit a redeemer-spending
// transaction against one escrow UTXO.
type RedeemRequest struct {
	WalletID         uuid.UUID `json:"walletId"`
	UtxoTxHash       string    `json:"utxoTxHash"`
	Redeemer         []byte    `json:"redeemer"`
	Memo             []string  `json:"memo,omitempty"`
	InvalidBefore    uint64    `json:"invalidBefore"`
	InvalidHereafter uint64    `json:"invalidHereafter"`
	Outputs          []Output  `json:"outputs,omitempty"`
}

// Client submits build-and-sign requests to the vault.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	authToken     string
	retryInterval time.Duration
	logger        *zap.Logger
}

// Option adjusts client construction.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRetryInterval overrides the initial backoff interval, primarily for
// tests.
func WithRetryInterval(d time.Duration) Option {
	return func(c *Client) { c.retryInterval = d }
}

// NewClient builds a vault client for the given endpoint.
func NewClient(baseURL, authToken string, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient:    &http.Client{Timeout: defaultHTTPTimeout},
		baseURL:       baseURL,
		authToken:     authToken,
		retryInterval: submitInitialInterval,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SubmitLock builds, signs and submits a lock transaction, returning its hash.
func (c *Client) SubmitLock(ctx context.Context, req LockRequest) (string, error) {
	return c.submit(ctx, "/v1/transactions/lock", req)
}

// SubmitRedeem builds, signs and submits a redeemer-spending transaction,
// returning its hash.
func (c *Client) SubmitRedeem(ctx context.Context, req RedeemRequest) (string, error) {
	return c.submit(ctx, "/v1/transactions/redeem", req)
}

type submitResponse struct {
	TxHash string `json:"txHash"`
}

func (c *Client) submit(ctx context.Context, path string, payload interface{}) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode vault request: %w", err)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(
		backoff.NewExponentialBackOff(backoff.WithInitialInterval(c.retryInterval)),
		submitMaxAttempts-1,
	), ctx)

	var txHash string
	attempt := 0
	operation := func() error {
		attempt++
		hash, err := c.post(ctx, path, body)
		if err != nil {
			c.logger.Warn("vault submission attempt failed",
				zap.Int("attempt", attempt),
				zap.String("path", path),
				zap.Error(err))
			return err
		}
		txHash = hash
		return nil
	}
	if err := backoff.Retry(operation, policy); err != nil {
		return "", fmt.Errorf("vault submission: %w", err)
	}
	return txHash, nil
}

func (c *Client) post(ctx context.Context, path string, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("post %s: %w", path, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("close response body", zap.Error(closeErr))
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("vault returned status %d: %s", resp.StatusCode, respBody)
	}

	var parsed submitResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if parsed.TxHash == "" {
		return "", fmt.Errorf("vault returned empty tx hash")
	}
	return parsed.TxHash, nil
}
