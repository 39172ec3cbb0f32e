// Package toncenter fetches jetton attestations from the TON Center v2 API.
//
// A single runGetMethod call asks the jetton master for get_jetton_data. The
// returned content cell is decoded with tonutils-go following TEP-64, and
// off-chain metadata documents are fetched when the content points at one.
package toncenter

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/agentstation/jettonmap/internal/transport"
	"github.com/agentstation/jettonmap/pkg/constants"
	"github.com/agentstation/jettonmap/pkg/errors"
	"github.com/agentstation/jettonmap/pkg/jettons"
	"github.com/agentstation/jettonmap/pkg/logging"
)

// SourceName identifies TON Center in errors and logs.
const SourceName = "toncenter"

// metadataSource labels failures from off-chain metadata hosts.
const metadataSource = "metadata"

// apiKeyHeader is the header TON Center reads API keys from.
const apiKeyHeader = "X-API-Key"

// getJettonData is the TEP-74 getter every jetton master implements.
const getJettonData = "get_jetton_data"

// Client queries TON Center for jetton data.
type Client struct {
	baseURL   string
	gateway   string
	apiKey    string
	timeout   time.Duration
	http      *http.Client
	transport *transport.Client
	// metadata fetches off-chain documents without the API key.
	metadata  *transport.Client
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sets the TON Center API key.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithIPFSGateway sets the gateway ipfs:// metadata links resolve through.
func WithIPFSGateway(gateway string) Option {
	return func(c *Client) {
		if gateway != "" {
			c.gateway = gateway
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = constants.DefaultTonCenterURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		gateway: constants.DefaultIPFSGateway,
		timeout: constants.DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.transport = transport.New(
		&transport.HeaderAuth{Header: apiKeyHeader},
		transport.WithHTTPClient(c.http),
		transport.WithTimeout(c.timeout),
		transport.WithAPIKey(c.apiKey),
	)
	c.metadata = transport.New(nil,
		transport.WithHTTPClient(c.http),
		transport.WithTimeout(c.timeout),
	)
	return c
}

// Attestation returns TON Center's view of address, or nil when no usable
// answer could be obtained. Failures are logged, never returned.
func (c *Client) Attestation(ctx context.Context, address string) *jettons.Attestation {
	logger := logging.FromContext(ctx)

	att, err := c.Fetch(ctx, address)
	if err != nil {
		event := logger.Error().Err(err).Str("address", address)
		var apiErr *errors.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode != 0 {
			event = event.Int("status", apiErr.StatusCode)
		}
		if errors.IsUnauthorized(err) {
			event = event.Str("hint", "check toncenter_api_key")
		}
		event.Msg("Failed to fetch jetton data")
		return nil
	}
	return att
}

// Fetch performs the runGetMethod call and decodes the result.
func (c *Client) Fetch(ctx context.Context, address string) (*jettons.Attestation, error) {
	logger := logging.FromContext(ctx)

	req := runGetMethodRequest{
		Address: address,
		Method:  getJettonData,
		Stack:   [][]any{},
	}

	url := c.baseURL + "/runGetMethod"
	resp, err := c.transport.PostJSON(ctx, url, req)
	if err != nil {
		return nil, errors.WrapAPI(SourceName, url, err)
	}
	logger.Debug().Int("status", resp.StatusCode).Str("address", address).Msg("TON Center responded")

	var out runGetMethodResponse
	if err := transport.DecodeResponse(resp, SourceName, &out); err != nil {
		return nil, err
	}

	if !out.OK {
		apiErr := errors.NewAPIError(SourceName, out.Code, out.Error)
		apiErr.Endpoint = url
		return nil, apiErr
	}
	if out.Result == nil {
		return nil, errors.NewParseError("json", "", "response has no result", nil)
	}

	// runGetMethod does not return the master address, so the queried one
	// is echoed back.
	att := &jettons.Attestation{Address: address}

	if out.Result.ExitCode != 0 || len(out.Result.Stack) < 4 {
		logger.Warn().
			Str("address", address).
			Int("exit_code", out.Result.ExitCode).
			Int("stack_size", len(out.Result.Stack)).
			Msg("Contract does not answer get_jetton_data")
		return att, nil
	}

	data, err := decodeJettonData(out.Result.Stack)
	if err != nil {
		return nil, err
	}

	meta, err := c.resolveContent(ctx, data.content)
	if err != nil {
		return nil, err
	}

	att.IsJetton = true
	att.TotalSupply = data.totalSupply
	att.Mintable = data.mintable
	att.Name = meta.Name
	att.Symbol = meta.Symbol
	att.Decimals = meta.Decimals
	att.MetadataURI = meta.URI
	return att, nil
}
