// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package trace

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/Agoric/agoric-dev-mcp/src/internal/httpclient"
)

// Explorer prefixes for the Cosmos-side legs of a transfer. The EVM side
// comes from the chain registry.
const (
	agoricExplorerTx = "https://www.mintscan.io/agoric/tx/"
	nobleExplorerTx  = "https://www.mintscan.io/noble/tx/"
)

// Message type filters understood by the Mintscan account-transaction index.
const (
	msgTypeAcknowledgement = "/ibc.core.channel.v1.MsgAcknowledgement"
	msgTypeDepositForBurn  = "/circle.cctp.v1.MsgDepositForBurn"
	msgTypeSwap            = "/noble.swap.v1.MsgSwap"
)

// MaxPageSize is the hard page-size cap of the account-transaction index.
// Requests above it are clamped, and "not found" messages cite it so callers
// understand the search window.
const MaxPageSize = 20

// ErrMissingCredential indicates a provider credential required by a step is
// not configured. It is reported before any network call.
var ErrMissingCredential = errors.New("missing provider credential")

// Config holds provider endpoints and credentials for the trace service.
//
// Fields:
//   - MintscanBaseURL: Mintscan API root (default https://apis.mintscan.io/v1)
//   - MintscanToken: Bearer token for Mintscan; required by the funding,
//     burn, and swap lookups
//   - AxelarscanGMPURL: Axelarscan GMP API root (default https://api.gmp.axelarscan.io)
//   - EtherscanBaseURL: Etherscan v2 API endpoint (default https://api.etherscan.io/v2/api)
//   - EtherscanKey: Etherscan API key; required by the settlement lookup
//   - DefaultPageSize: Page size used when a lookup does not specify one;
//     clamped to MaxPageSize, zero means MaxPageSize
type Config struct {
	MintscanBaseURL  string
	MintscanToken    string
	AxelarscanGMPURL string
	EtherscanBaseURL string
	EtherscanKey     string
	DefaultPageSize  int
}

// Service executes the cross-chain trace steps. Each step is stateless and
// independently invokable; nothing is shared between calls beyond the HTTP
// connection pool.
type Service struct {
	client *httpclient.Client
	cfg    Config
}

// NewService creates a trace service over the shared retrying HTTP client.
func NewService(client *httpclient.Client, cfg Config) *Service {
	if cfg.MintscanBaseURL == "" {
		cfg.MintscanBaseURL = "https://apis.mintscan.io/v1"
	}
	if cfg.AxelarscanGMPURL == "" {
		cfg.AxelarscanGMPURL = "https://api.gmp.axelarscan.io"
	}
	if cfg.EtherscanBaseURL == "" {
		cfg.EtherscanBaseURL = "https://api.etherscan.io/v2/api"
	}
	cfg.DefaultPageSize = clampPageSize(cfg.DefaultPageSize)
	return &Service{client: client, cfg: cfg}
}

// DefaultPageSize returns the page size applied to account-history lookups
// when the caller does not specify one.
func (s *Service) DefaultPageSize() int {
	return s.cfg.DefaultPageSize
}

// mintscanHeaders returns the authorization headers for Mintscan calls, or
// ErrMissingCredential when no token is configured.
func (s *Service) mintscanHeaders() (map[string]string, error) {
	if s.cfg.MintscanToken == "" {
		return nil, fmt.Errorf("%w: MINTSCAN_API_TOKEN is not set", ErrMissingCredential)
	}
	return map[string]string{"Authorization": "Bearer " + s.cfg.MintscanToken}, nil
}

// accountTxsURL builds the Mintscan account-transaction URL for a chain,
// address, message-type filter, and page size.
func (s *Service) accountTxsURL(chain, address, messageType string, take int) string {
	q := url.Values{}
	q.Set("messageType", messageType)
	q.Set("take", fmt.Sprintf("%d", take))
	return fmt.Sprintf("%s/%s/accounts/%s/transactions?%s",
		s.cfg.MintscanBaseURL, chain, url.PathEscape(address), q.Encode())
}

// clampPageSize applies the provider's hard page-size limit and a sane
// default.
func clampPageSize(n int) int {
	if n <= 0 {
		return MaxPageSize
	}
	if n > MaxPageSize {
		return MaxPageSize
	}
	return n
}
