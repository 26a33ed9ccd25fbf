package ledger

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nftmakerio/masumi-payment-service/internal/model"
)

// Factory hands out one client per payment source, cached so every source
// keeps a single rate limiter across passes.
type Factory struct {
	logger *zap.Logger
	opts   []Option

	mu      sync.Mutex
	clients map[uuid.UUID]*Client
}

// NewFactory builds a client factory. Options apply to every client.
func NewFactory(logger *zap.Logger, opts ...Option) *Factory {
	return &Factory{
		logger:  logger,
		opts:    opts,
		clients: make(map[uuid.UUID]*Client),
	}
}

// ForSource returns the client bound to the source's network and provider
// credentials.
func (f *Factory) ForSource(source model.PaymentSource) (*Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if client, ok := f.clients[source.ID]; ok {
		return client, nil
	}
	client, err := NewClient(source.Network, source.ProviderProjectID, f.logger, f.opts...)
	if err != nil {
		return nil, fmt.Errorf("client for source %s: %w", source.ID, err)
	}
	f.clients[source.ID] = client
	return client, nil
}
