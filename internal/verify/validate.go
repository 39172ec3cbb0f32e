package verify

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/agentstation/jettonmap/pkg/jettons"
)

// Check names one comparison the validator performs.
type Check string

// Checks in the order they run.
const (
	CheckAttestation Check = "attestation"
	CheckAddress     Check = "address"
	CheckIsJetton    Check = "isJetton"
	CheckName        Check = "name"
	CheckSymbol      Check = "symbol"
	CheckDecimals    Check = "decimals"
)

// Mismatch is the first check a record failed.
type Mismatch struct {
	Check Check
	Want  any
	Got   any
}

// Error implements the error interface
func (m *Mismatch) Error() string {
	switch m.Check {
	case CheckAttestation:
		return "no attestation available"
	case CheckIsJetton:
		return "contract is not a jetton"
	default:
		return fmt.Sprintf("%s mismatch: file has %v, chain has %v", m.Check, m.Want, m.Got)
	}
}

// Validate compares a record against its attestation. It returns nil when
// every check passes and a *Mismatch for the first check that does not.
// Metadata checks run only when strict is set.
func Validate(rec jettons.Record, att *jettons.Attestation, strict bool) error {
	if att == nil {
		return &Mismatch{Check: CheckAttestation}
	}
	// TON Center attestations echo the queried address, so this only fires
	// for a Fetcher that reports a different master than it was asked for.
	if !jettons.SameAddress(rec.Address, att.Address) {
		return &Mismatch{Check: CheckAddress, Want: rec.Address, Got: att.Address}
	}
	if !att.IsJetton {
		return &Mismatch{Check: CheckIsJetton, Want: true, Got: false}
	}
	if !strict {
		return nil
	}
	if !sameText(rec.Name, att.Name) {
		return &Mismatch{Check: CheckName, Want: rec.Name, Got: att.Name}
	}
	if !sameText(rec.Symbol, att.Symbol) {
		return &Mismatch{Check: CheckSymbol, Want: rec.Symbol, Got: att.Symbol}
	}
	if rec.Decimals != att.Decimals {
		return &Mismatch{Check: CheckDecimals, Want: rec.Decimals, Got: att.Decimals}
	}
	return nil
}

// Valid is the boolean form of Validate.
func Valid(rec jettons.Record, att *jettons.Attestation, strict bool) bool {
	return Validate(rec, att, strict) == nil
}

// sameText compares two strings after NFC normalization.
func sameText(a, b string) bool {
	return norm.NFC.String(a) == norm.NFC.String(b)
}
