package jettons

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/agentstation/jettonmap/pkg/constants"
	"github.com/agentstation/jettonmap/pkg/errors"
)

// Field names of a description file.
const (
	FieldAddress  = "address"
	FieldName     = "name"
	FieldSymbol   = "symbol"
	FieldDecimals = "decimals"
)

// Record is a locally authored description of a jetton awaiting validation.
// Fields other than the four known ones are carried in Extra and re-emitted
// unchanged when the record is written to the aggregate.
type Record struct {
	Address  string
	Name     string
	Symbol   string
	Decimals int
	Extra    map[string]any
}

// Key returns the identity of the record within a Collection.
func (r Record) Key() string {
	return Key(r.Address)
}

// Equal reports whether two records carry the same known fields and passthrough data.
func (r Record) Equal(other Record) bool {
	a, errA := json.Marshal(r)
	b, errB := json.Marshal(other)
	return errA == nil && errB == nil && bytes.Equal(a, b)
}

// FromMap builds a Record from a decoded description document after
// checking it against the record schema.
func FromMap(raw map[string]any) (Record, error) {
	if err := ValidateSchema(raw); err != nil {
		return Record{}, err
	}
	return decodeFields(raw)
}

// decodeFields extracts the known fields from raw without schema checks.
// Only the address is mandatory.
func decodeFields(raw map[string]any) (Record, error) {
	var rec Record

	addr, ok := raw[FieldAddress].(string)
	if !ok || strings.TrimSpace(addr) == "" {
		return Record{}, errors.NewValidationError(FieldAddress, raw[FieldAddress], "must be a non-empty string")
	}
	rec.Address = addr

	if v, present := raw[FieldName]; present {
		s, ok := v.(string)
		if !ok {
			return Record{}, errors.NewValidationError(FieldName, v, "must be a string")
		}
		rec.Name = s
	}
	if v, present := raw[FieldSymbol]; present {
		s, ok := v.(string)
		if !ok {
			return Record{}, errors.NewValidationError(FieldSymbol, v, "must be a string")
		}
		rec.Symbol = s
	}
	if v, present := raw[FieldDecimals]; present {
		d, err := ParseDecimals(v)
		if err != nil {
			return Record{}, errors.WrapValidation(FieldDecimals, err)
		}
		rec.Decimals = d
	}

	for k, v := range raw {
		switch k {
		case FieldAddress, FieldName, FieldSymbol, FieldDecimals:
			continue
		}
		if rec.Extra == nil {
			rec.Extra = make(map[string]any)
		}
		rec.Extra[k] = v
	}

	return rec, nil
}

// ParseDecimals coerces a decoded decimals value into an int in [0, 255].
// Integers of any width, integral floats, json.Number and numeric strings
// are accepted.
func ParseDecimals(v any) (int, error) {
	var n int64
	switch t := v.(type) {
	case int:
		n = int64(t)
	case int64:
		n = t
	case uint64:
		if t > math.MaxInt32 {
			return 0, errors.New("out of range")
		}
		n = int64(t)
	case float64:
		if t != math.Trunc(t) {
			return 0, errors.New("must be an integer")
		}
		n = int64(t)
	case json.Number:
		i, err := t.Int64()
		if err != nil {
			return 0, errors.New("must be an integer")
		}
		n = i
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, errors.New("must be an integer")
		}
		n = i
	default:
		return 0, errors.New("must be an integer")
	}

	if n < 0 || n > constants.MaxJettonDecimals {
		return 0, errors.New("out of range")
	}
	return int(n), nil
}

// MarshalJSON writes the known fields first, then passthrough fields in key order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	write := func(key string, value any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := marshalValue(key)
		if err != nil {
			return err
		}
		v, err := marshalValue(value)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	if err := write(FieldAddress, r.Address); err != nil {
		return nil, err
	}
	if err := write(FieldName, r.Name); err != nil {
		return nil, err
	}
	if err := write(FieldSymbol, r.Symbol); err != nil {
		return nil, err
	}
	if err := write(FieldDecimals, r.Decimals); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(r.Extra))
	for k := range r.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := write(k, r.Extra[k]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an aggregate entry. Aggregate entries were written by
// this tool, so only the address is enforced.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	rec, err := decodeFields(raw)
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

// marshalValue encodes v without HTML escaping so URLs survive round trips.
func marshalValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
