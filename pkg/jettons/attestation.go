package jettons

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Attestation is the remote source's authoritative view of an address.
// It is fetched per run and never persisted. A nil *Attestation means the
// source had no usable answer.
type Attestation struct {
	Address     string   `json:"address"`
	IsJetton    bool     `json:"isJetton"`
	Name        string   `json:"name"`
	Symbol      string   `json:"symbol"`
	Decimals    int      `json:"decimals"`
	Mintable    bool     `json:"mintable"`
	TotalSupply *big.Int `json:"totalSupply,omitempty"`
	MetadataURI string   `json:"metadataUri,omitempty"`
}

// Supply returns the total supply scaled by the jetton's decimals.
func (a *Attestation) Supply() decimal.Decimal {
	if a == nil || a.TotalSupply == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(a.TotalSupply, -int32(a.Decimals))
}
