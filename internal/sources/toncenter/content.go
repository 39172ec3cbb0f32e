package toncenter

import (
	"context"
	"fmt"
	"strings"

	"github.com/xssnick/tonutils-go/ton/nft"
	"github.com/xssnick/tonutils-go/tvm/cell"

	"github.com/agentstation/jettonmap/internal/transport"
	"github.com/agentstation/jettonmap/pkg/constants"
	"github.com/agentstation/jettonmap/pkg/errors"
	"github.com/agentstation/jettonmap/pkg/jettons"
	"github.com/agentstation/jettonmap/pkg/logging"
)

// Metadata is the resolved TEP-64 metadata of a jetton.
type Metadata struct {
	Name     string
	Symbol   string
	Decimals int
	URI      string
}

// offchainMetadata is the JSON document an off-chain content link points at.
type offchainMetadata struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals any    `json:"decimals"`
}

// attributes collects raw metadata values before decimals are parsed.
type attributes struct {
	name, symbol string
	decimals     any
	uri          string
}

// resolveContent decodes a jetton content cell. On-chain attributes win
// over the off-chain document for semi-chain layouts.
func (c *Client) resolveContent(ctx context.Context, content *cell.Cell) (Metadata, error) {
	parsed, err := nft.ContentFromCell(content)
	if err != nil {
		return Metadata{}, errors.NewParseError("boc", "", "jetton content: "+err.Error(), err)
	}

	var attrs attributes
	switch v := parsed.(type) {
	case *nft.ContentSemichain:
		if attrs, err = c.fetchOffchain(ctx, v.ContentOffchain.URI); err != nil {
			return Metadata{}, err
		}
		attrs = overlay(attrs, onchainAttributes(&v.ContentOnchain))
	case *nft.ContentOnchain:
		attrs = onchainAttributes(v)
	case *nft.ContentOffchain:
		if attrs, err = c.fetchOffchain(ctx, v.URI); err != nil {
			return Metadata{}, err
		}
	default:
		return Metadata{}, errors.NewParseError("boc", "", fmt.Sprintf("unsupported content layout %T", parsed), nil)
	}

	return attrs.metadata()
}

func onchainAttributes(on *nft.ContentOnchain) attributes {
	a := attributes{
		name:   on.GetAttribute("name"),
		symbol: on.GetAttribute("symbol"),
	}
	if d := on.GetAttribute("decimals"); d != "" {
		a.decimals = d
	}
	return a
}

// overlay returns base with every non-empty value of top applied.
func overlay(base, top attributes) attributes {
	if top.name != "" {
		base.name = top.name
	}
	if top.symbol != "" {
		base.symbol = top.symbol
	}
	if top.decimals != nil {
		base.decimals = top.decimals
	}
	return base
}

func (a attributes) metadata() (Metadata, error) {
	decimals := constants.DefaultJettonDecimals
	if a.decimals != nil {
		d, err := jettons.ParseDecimals(a.decimals)
		if err != nil {
			return Metadata{}, errors.WrapValidation("decimals", err)
		}
		decimals = d
	}
	return Metadata{
		Name:     a.name,
		Symbol:   a.symbol,
		Decimals: decimals,
		URI:      a.uri,
	}, nil
}

// fetchOffchain downloads the metadata document behind uri.
func (c *Client) fetchOffchain(ctx context.Context, uri string) (attributes, error) {
	target := c.resolveURI(uri)
	if target == "" {
		return attributes{}, errors.NewValidationError("uri", uri, "unsupported metadata link")
	}

	logging.FromContext(ctx).Debug().Str("uri", uri).Msg("Fetching off-chain metadata")

	resp, err := c.metadata.Get(ctx, target)
	if err != nil {
		return attributes{}, errors.WrapAPI(metadataSource, target, err)
	}

	var doc offchainMetadata
	if err := transport.DecodeResponse(resp, metadataSource, &doc); err != nil {
		return attributes{}, err
	}

	return attributes{
		name:     doc.Name,
		symbol:   doc.Symbol,
		decimals: doc.Decimals,
		uri:      uri,
	}, nil
}

// resolveURI maps a metadata link to something fetchable over HTTP.
func (c *Client) resolveURI(uri string) string {
	uri = strings.TrimSpace(uri)
	switch {
	case strings.HasPrefix(uri, "ipfs://"):
		return strings.TrimRight(c.gateway, "/") + "/" + strings.TrimPrefix(strings.TrimPrefix(uri, "ipfs://"), "ipfs/")
	case strings.HasPrefix(uri, "https://"), strings.HasPrefix(uri, "http://"):
		return uri
	default:
		return ""
	}
}
