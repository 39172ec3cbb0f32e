package jettons

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttestationSupply(t *testing.T) {
	a := &Attestation{Decimals: 9, TotalSupply: big.NewInt(1_500_000_000)}
	assert.Equal(t, "1.5", a.Supply().String())

	var missing *Attestation
	assert.True(t, missing.Supply().IsZero())
	assert.True(t, (&Attestation{}).Supply().IsZero())
}
