package output

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/jettonmap/internal/verify"
	"github.com/agentstation/jettonmap/pkg/jettons"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"", "", false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat_Explicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Total Supply", Title("total_supply"))
	assert.Equal(t, []string{"Address", "Is Jetton"}, Titles("address", "is_jetton"))
}

func TestJSONFormatter_KeepsRecordOrder(t *testing.T) {
	var buf bytes.Buffer
	records := Records{{Address: "EQA", Name: "Foo", Symbol: "FOO", Decimals: 9, Extra: map[string]any{"image": "https://x/a.png?s=1&t=2"}}}

	require.NoError(t, NewFormatter(FormatJSON).Format(&buf, records))
	out := buf.String()
	assert.Less(t, strings.Index(out, `"address"`), strings.Index(out, `"image"`))
	assert.Contains(t, out, "s=1&t=2")
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	att := NewAttestation(&jettons.Attestation{
		Address:     "EQA",
		IsJetton:    true,
		Symbol:      "FOO",
		Decimals:    2,
		TotalSupply: big.NewInt(12345),
	})

	require.NoError(t, NewFormatter(FormatYAML).Format(&buf, att))
	assert.Contains(t, buf.String(), "symbol: FOO")
	assert.Contains(t, buf.String(), "123.45")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	records := Records{
		{Address: "EQA", Name: "Foo", Symbol: "FOO", Decimals: 9},
		{Address: "EQB", Name: "Bar", Symbol: "BAR", Decimals: 6},
	}

	require.NoError(t, NewFormatter(FormatTable).Format(&buf, records))
	out := buf.String()
	for _, want := range []string{"ADDRESS", "EQA", "FOO", "EQB", "BAR"} {
		assert.Contains(t, strings.ToUpper(out), want)
	}
}

func TestTableFormatter_FallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TableFormatter{}).Format(&buf, map[string]int{"n": 1}))
	assert.Equal(t, "{\n  \"n\": 1\n}\n", buf.String())
}

func TestNewAttestation_ScalesSupply(t *testing.T) {
	att := NewAttestation(&jettons.Attestation{Decimals: 9, TotalSupply: big.NewInt(1_500_000_000)})
	assert.Equal(t, "1.5", att.TotalSupply)
}

func TestNewResults(t *testing.T) {
	report := &verify.Report{
		RunID: "run",
		Results: []verify.FileResult{
			{Path: "jettons/a.yaml", Address: "EQA"},
			{Path: "jettons/b.yaml", Address: "EQB", Err: &verify.Mismatch{Check: verify.CheckIsJetton}},
		},
	}

	res := NewResults(report)
	assert.Equal(t, 1, res.ExitCode)
	require.Len(t, res.Files, 2)
	assert.True(t, res.Files[0].Valid)
	assert.Equal(t, "contract is not a jetton", res.Files[1].Error)

	table := res.Table()
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "failed", table.Rows[1][2])
}
