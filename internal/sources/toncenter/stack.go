package toncenter

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/xssnick/tonutils-go/tvm/cell"

	"github.com/agentstation/jettonmap/pkg/errors"
)

type runGetMethodRequest struct {
	Address string  `json:"address"`
	Method  string  `json:"method"`
	Stack   [][]any `json:"stack"`
}

type runGetMethodResponse struct {
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
	Code   int    `json:"code,omitempty"`
	Result *struct {
		GasUsed  int64             `json:"gas_used"`
		Stack    []json.RawMessage `json:"stack"`
		ExitCode int               `json:"exit_code"`
	} `json:"result"`
}

// stackEntry is one ["type", value] pair of a TVM result stack.
type stackEntry struct {
	Type  string
	Value json.RawMessage
}

type cellValue struct {
	Bytes string `json:"bytes"`
}

// jettonData is the decoded get_jetton_data result:
// (total_supply, mintable, admin_address, jetton_content, jetton_wallet_code).
type jettonData struct {
	totalSupply *big.Int
	mintable    bool
	content     *cell.Cell
}

func decodeJettonData(raw []json.RawMessage) (*jettonData, error) {
	entries := make([]stackEntry, 0, len(raw))
	for i, r := range raw {
		e, err := parseStackEntry(r)
		if err != nil {
			return nil, errors.NewParseError("json", "", fmt.Sprintf("stack entry %d: %v", i, err), err)
		}
		entries = append(entries, e)
	}

	supply, err := entries[0].Int()
	if err != nil {
		return nil, errors.NewParseError("tvm", "", "total_supply: "+err.Error(), err)
	}
	mintable, err := entries[1].Int()
	if err != nil {
		return nil, errors.NewParseError("tvm", "", "mintable: "+err.Error(), err)
	}
	content, err := entries[3].Cell()
	if err != nil {
		return nil, errors.NewParseError("boc", "", "jetton_content: "+err.Error(), err)
	}

	return &jettonData{
		totalSupply: supply,
		mintable:    mintable.Sign() != 0,
		content:     content,
	}, nil
}

func parseStackEntry(raw json.RawMessage) (stackEntry, error) {
	var pair []json.RawMessage
	if err := json.Unmarshal(raw, &pair); err != nil {
		return stackEntry{}, err
	}
	if len(pair) != 2 {
		return stackEntry{}, fmt.Errorf("expected [type, value], got %d elements", len(pair))
	}
	var typ string
	if err := json.Unmarshal(pair[0], &typ); err != nil {
		return stackEntry{}, fmt.Errorf("entry type: %w", err)
	}
	return stackEntry{Type: typ, Value: pair[1]}, nil
}

// Int decodes a "num" entry such as "0x3b9aca00" or "-0x1".
func (e stackEntry) Int() (*big.Int, error) {
	if e.Type != "num" {
		return nil, fmt.Errorf("expected num, got %s", e.Type)
	}
	var s string
	if err := json.Unmarshal(e.Value, &s); err != nil {
		return nil, err
	}

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	n, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("invalid number %q", s)
	}
	if neg {
		n.Neg(n)
	}
	return n, nil
}

// Cell decodes a "cell" or "slice" entry from its base64 BOC.
func (e stackEntry) Cell() (*cell.Cell, error) {
	if e.Type != "cell" && e.Type != "slice" {
		return nil, fmt.Errorf("expected cell, got %s", e.Type)
	}
	var v cellValue
	if err := json.Unmarshal(e.Value, &v); err != nil {
		return nil, err
	}
	if v.Bytes == "" {
		return nil, fmt.Errorf("cell has no bytes")
	}
	boc, err := base64.StdEncoding.DecodeString(v.Bytes)
	if err != nil {
		return nil, err
	}
	return cell.FromBOC(boc)
}
