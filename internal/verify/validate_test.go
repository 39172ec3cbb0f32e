package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/jettonmap/pkg/jettons"
)

func foo() jettons.Record {
	return jettons.Record{Address: "EQA", Name: "Foo", Symbol: "FOO", Decimals: 9}
}

func attest(rec jettons.Record) *jettons.Attestation {
	return &jettons.Attestation{
		Address:  rec.Address,
		IsJetton: true,
		Name:     rec.Name,
		Symbol:   rec.Symbol,
		Decimals: rec.Decimals,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*jettons.Attestation) *jettons.Attestation
		strict bool
		check  Check
	}{
		{
			name:   "matching attestation",
			mutate: func(a *jettons.Attestation) *jettons.Attestation { return a },
			strict: true,
		},
		{
			name:   "missing attestation",
			mutate: func(*jettons.Attestation) *jettons.Attestation { return nil },
			strict: true,
			check:  CheckAttestation,
		},
		{
			name:   "different address",
			mutate: func(a *jettons.Attestation) *jettons.Attestation { a.Address = "EQB"; return a },
			strict: true,
			check:  CheckAddress,
		},
		{
			name:   "not a jetton",
			mutate: func(a *jettons.Attestation) *jettons.Attestation { a.IsJetton = false; return a },
			strict: true,
			check:  CheckIsJetton,
		},
		{
			name:   "name differs",
			mutate: func(a *jettons.Attestation) *jettons.Attestation { a.Name = "Bar"; return a },
			strict: true,
			check:  CheckName,
		},
		{
			name:   "symbol differs",
			mutate: func(a *jettons.Attestation) *jettons.Attestation { a.Symbol = "BAZ"; return a },
			strict: true,
			check:  CheckSymbol,
		},
		{
			name:   "symbol case differs",
			mutate: func(a *jettons.Attestation) *jettons.Attestation { a.Symbol = "foo"; return a },
			strict: true,
			check:  CheckSymbol,
		},
		{
			name:   "decimals differ",
			mutate: func(a *jettons.Attestation) *jettons.Attestation { a.Decimals = 6; return a },
			strict: true,
			check:  CheckDecimals,
		},
		{
			name:   "metadata ignored when not strict",
			mutate: func(a *jettons.Attestation) *jettons.Attestation { a.Symbol = "BAZ"; a.Decimals = 6; return a },
			strict: false,
		},
		{
			name:   "jetton flag still required when not strict",
			mutate: func(a *jettons.Attestation) *jettons.Attestation { a.IsJetton = false; return a },
			strict: false,
			check:  CheckIsJetton,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := foo()
			err := Validate(rec, tt.mutate(attest(rec)), tt.strict)
			if tt.check == "" {
				assert.NoError(t, err)
				return
			}
			var m *Mismatch
			require.ErrorAs(t, err, &m)
			assert.Equal(t, tt.check, m.Check)
		})
	}
}

func TestValidate_FirstFailingCheckWins(t *testing.T) {
	rec := foo()
	att := attest(rec)
	att.IsJetton = false
	att.Symbol = "BAZ"

	var m *Mismatch
	require.ErrorAs(t, Validate(rec, att, true), &m)
	assert.Equal(t, CheckIsJetton, m.Check)
}

func TestValidate_NormalizesUnicode(t *testing.T) {
	rec := foo()
	rec.Name = "Caf\u00e9"
	att := attest(rec)
	att.Name = "Cafe\u0301"

	assert.True(t, Valid(rec, att, true))
}

func TestValidate_Idempotent(t *testing.T) {
	rec := foo()
	att := attest(rec)
	att.Symbol = "BAZ"

	first := Validate(rec, att, true)
	second := Validate(rec, att, true)
	assert.Equal(t, first, second)
	assert.Equal(t, "FOO", rec.Symbol)
	assert.Equal(t, "BAZ", att.Symbol)
}

func TestMismatchError(t *testing.T) {
	assert.Equal(t, "no attestation available", (&Mismatch{Check: CheckAttestation}).Error())
	assert.Equal(t, "contract is not a jetton", (&Mismatch{Check: CheckIsJetton}).Error())
	assert.Equal(t,
		"symbol mismatch: file has BAR, chain has BAZ",
		(&Mismatch{Check: CheckSymbol, Want: "BAR", Got: "BAZ"}).Error())
}
