package output

import (
	"strconv"

	"github.com/agentstation/jettonmap/internal/verify"
	"github.com/agentstation/jettonmap/pkg/jettons"
)

// Records lays out aggregate entries, one per row.
type Records []jettons.Record

// Table implements Tabular.
func (r Records) Table() Data {
	data := Data{
		Headers: Titles(jettons.FieldAddress, jettons.FieldName, jettons.FieldSymbol, jettons.FieldDecimals),
		Right:   []int{3},
	}
	for _, rec := range r {
		data.Rows = append(data.Rows, []string{rec.Address, rec.Name, rec.Symbol, strconv.Itoa(rec.Decimals)})
	}
	return data
}

// Attestation is the printable view of a remote attestation. Total supply
// is scaled by decimals.
type Attestation struct {
	Address     string `json:"address" yaml:"address"`
	IsJetton    bool   `json:"is_jetton" yaml:"is_jetton"`
	Name        string `json:"name" yaml:"name"`
	Symbol      string `json:"symbol" yaml:"symbol"`
	Decimals    int    `json:"decimals" yaml:"decimals"`
	Mintable    bool   `json:"mintable" yaml:"mintable"`
	TotalSupply string `json:"total_supply" yaml:"total_supply"`
	MetadataURI string `json:"metadata_uri,omitempty" yaml:"metadata_uri,omitempty"`
}

// NewAttestation converts att for printing.
func NewAttestation(att *jettons.Attestation) Attestation {
	return Attestation{
		Address:     att.Address,
		IsJetton:    att.IsJetton,
		Name:        att.Name,
		Symbol:      att.Symbol,
		Decimals:    att.Decimals,
		Mintable:    att.Mintable,
		TotalSupply: att.Supply().String(),
		MetadataURI: att.MetadataURI,
	}
}

// Table implements Tabular.
func (a Attestation) Table() Data {
	rows := [][]string{
		{Title("address"), a.Address},
		{Title("is_jetton"), strconv.FormatBool(a.IsJetton)},
		{Title("name"), a.Name},
		{Title("symbol"), a.Symbol},
		{Title("decimals"), strconv.Itoa(a.Decimals)},
		{Title("mintable"), strconv.FormatBool(a.Mintable)},
		{Title("total_supply"), a.TotalSupply},
	}
	if a.MetadataURI != "" {
		rows = append(rows, []string{Title("metadata_uri"), a.MetadataURI})
	}
	return Data{Headers: Titles("property", "value"), Rows: rows}
}

// Results is the printable view of a verify run.
type Results struct {
	RunID string   `json:"run_id" yaml:"run_id"`
	Files []Result `json:"files" yaml:"files"`
	Added int      `json:"added" yaml:"added"`
	// Duplicates counts validated records already present in the aggregate.
	Duplicates int  `json:"duplicates" yaml:"duplicates"`
	Total      int  `json:"total" yaml:"total"`
	Written    bool `json:"written" yaml:"written"`
	ExitCode   int  `json:"exit_code" yaml:"exit_code"`
}

// Result is one file of a verify run.
type Result struct {
	File    string `json:"file" yaml:"file"`
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
	Valid   bool   `json:"valid" yaml:"valid"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewResults converts a verify report for printing.
func NewResults(r *verify.Report) Results {
	out := Results{
		RunID:      r.RunID,
		Added:      len(r.Added),
		Duplicates: len(r.Skipped),
		Total:      r.Total,
		Written:    r.Written,
		ExitCode:   r.ExitCode(),
		Files:      make([]Result, 0, len(r.Results)),
	}
	for _, res := range r.Results {
		item := Result{File: res.Path, Address: res.Address, Valid: res.Valid()}
		if res.Err != nil {
			item.Error = res.Err.Error()
		}
		out.Files = append(out.Files, item)
	}
	return out
}

// Table implements Tabular.
func (r Results) Table() Data {
	data := Data{Headers: Titles("file", "address", "status", "reason")}
	for _, f := range r.Files {
		status := "ok"
		if !f.Valid {
			status = "failed"
		}
		data.Rows = append(data.Rows, []string{f.File, f.Address, status, f.Error})
	}
	return data
}
