package ledger

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/nftmakerio/masumi-payment-service/internal/cardano"
	"github.com/nftmakerio/masumi-payment-service/internal/model"
)

const (
	defaultRequestsPerSecond = 10
	defaultHTTPTimeout       = 30 * time.Second

	projectIDHeader = "project_id"
)

var baseURLs = map[model.Network]string{
	model.NetworkMainnet: "https://cardano-mainnet.blockfrost.io/api/v0",
	model.NetworkPreprod: "https://cardano-preprod.blockfrost.io/api/v0",
	model.NetworkPreview: "https://cardano-preview.blockfrost.io/api/v0",
}

// Client talks to a Blockfrost-compatible ledger query provider. Requests
// are paced with a process-local rate limiter since the provider enforces
// per-project request quotas.
type Client struct {
	httpClient *http.Client
	baseURL    string
	projectID  string
	rl         ratelimit.Limiter
	logger     *zap.Logger
}

// Option adjusts client construction.
type Option func(*Client)

// WithBaseURL overrides the provider endpoint, primarily for tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient builds a Client for the given network and project credentials.
func NewClient(network model.Network, projectID string, logger *zap.Logger, opts ...Option) (*Client, error) {
	base, ok := baseURLs[network]
	if !ok {
		return nil, fmt.Errorf("no ledger provider endpoint for network %q", network)
	}
	c := &Client{
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		baseURL:    base,
		projectID:  projectID,
		rl:         ratelimit.New(defaultRequestsPerSecond),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type txSummaryPayload struct {
	TxHash      string `json:"tx_hash"`
	BlockHeight int64  `json:"block_height"`
	BlockTime   int64  `json:"block_time"`
}

// AddressTransactions lists confirmed transactions at an address in ledger
// order. Pages are 1-based; an empty slice means the page is past the end.
func (c *Client) AddressTransactions(ctx context.Context, address string, page, count int) ([]TxSummary, error) {
	path := fmt.Sprintf("/addresses/%s/transactions?order=asc&page=%d&count=%d", address, page, count)

	var payload []txSummaryPayload
	if err := c.get(ctx, path, &payload); err != nil {
		return nil, fmt.Errorf("list transactions for %s page %d: %w", address, page, err)
	}

	summaries := make([]TxSummary, 0, len(payload))
	for _, p := range payload {
		summaries = append(summaries, TxSummary{
			TxHash:      p.TxHash,
			BlockHeight: p.BlockHeight,
			BlockTime:   time.Unix(p.BlockTime, 0).UTC(),
		})
	}
	return summaries, nil
}

type txCborPayload struct {
	Cbor string `json:"cbor"`
}

type utxoPayload struct {
	Address     string `json:"address"`
	TxHash      string `json:"tx_hash"`
	OutputIndex int    `json:"output_index"`
	Amount      []struct {
		Unit     string `json:"unit"`
		Quantity string `json:"quantity"`
	} `json:"amount"`
	InlineDatum *string `json:"inline_datum"`
}

type txUtxosPayload struct {
	Hash    string        `json:"hash"`
	Inputs  []utxoPayload `json:"inputs"`
	Outputs []utxoPayload `json:"outputs"`
}

// TransactionDetail fetches a transaction's raw bytes and decoded UTXO set,
// and extracts the redeemers from the witness set.
func (c *Client) TransactionDetail(ctx context.Context, txHash string) (*TxDetail, error) {
	var cborPayload txCborPayload
	if err := c.get(ctx, "/txs/"+txHash+"/cbor", &cborPayload); err != nil {
		return nil, fmt.Errorf("fetch tx cbor %s: %w", txHash, err)
	}
	rawBytes, err := hex.DecodeString(cborPayload.Cbor)
	if err != nil {
		return nil, fmt.Errorf("decode tx cbor %s: %w", txHash, err)
	}

	var utxos txUtxosPayload
	if err := c.get(ctx, "/txs/"+txHash+"/utxos", &utxos); err != nil {
		return nil, fmt.Errorf("fetch tx utxos %s: %w", txHash, err)
	}

	inputs, err := convertUtxos(utxos.Inputs)
	if err != nil {
		return nil, fmt.Errorf("convert inputs of %s: %w", txHash, err)
	}
	outputs, err := convertUtxos(utxos.Outputs)
	if err != nil {
		return nil, fmt.Errorf("convert outputs of %s: %w", txHash, err)
	}

	return &TxDetail{
		TxHash:    txHash,
		RawBytes:  rawBytes,
		Inputs:    inputs,
		Outputs:   outputs,
		Redeemers: cardano.ExtractRedeemers(rawBytes),
	}, nil
}

type addressPayload struct {
	Amount []struct {
		Unit     string `json:"unit"`
		Quantity string `json:"quantity"`
	} `json:"amount"`
}

// AddressBalance returns the aggregated balance of an address per unit.
func (c *Client) AddressBalance(ctx context.Context, address string) ([]model.Amount, error) {
	var payload addressPayload
	if err := c.get(ctx, "/addresses/"+address, &payload); err != nil {
		return nil, fmt.Errorf("fetch balance of %s: %w", address, err)
	}

	amounts := make([]model.Amount, 0, len(payload.Amount))
	for _, a := range payload.Amount {
		quantity, err := decimal.NewFromString(a.Quantity)
		if err != nil {
			return nil, fmt.Errorf("parse quantity %q of unit %s: %w", a.Quantity, a.Unit, err)
		}
		amounts = append(amounts, model.Amount{Unit: a.Unit, Quantity: quantity})
	}
	return amounts, nil
}

func convertUtxos(payload []utxoPayload) ([]Utxo, error) {
	utxos := make([]Utxo, 0, len(payload))
	for _, p := range payload {
		amounts := make([]model.Amount, 0, len(p.Amount))
		for _, a := range p.Amount {
			quantity, err := decimal.NewFromString(a.Quantity)
			if err != nil {
				return nil, fmt.Errorf("parse quantity %q of unit %s: %w", a.Quantity, a.Unit, err)
			}
			amounts = append(amounts, model.Amount{Unit: a.Unit, Quantity: quantity})
		}

		var inlineDatum []byte
		if p.InlineDatum != nil {
			decoded, err := hex.DecodeString(*p.InlineDatum)
			if err != nil {
				return nil, fmt.Errorf("decode inline datum of %s#%d: %w", p.TxHash, p.OutputIndex, err)
			}
			inlineDatum = decoded
		}

		utxos = append(utxos, Utxo{
			TxHash:      p.TxHash,
			OutputIndex: p.OutputIndex,
			Address:     p.Address,
			Amounts:     amounts,
			InlineDatum: inlineDatum,
		})
	}
	return utxos, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	c.rl.Take()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(projectIDHeader, c.projectID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("close response body", zap.Error(closeErr))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrNetwork, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %s", ErrNetwork, strconv.Itoa(resp.StatusCode))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
