package jettons

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/agentstation/jettonmap/pkg/errors"
)

// recordSchema describes a jetton description document.
const recordSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["address", "name", "symbol", "decimals"],
  "properties": {
    "address": {"type": "string", "minLength": 1},
    "name": {"type": "string", "minLength": 1},
    "symbol": {"type": "string", "minLength": 1},
    "decimals": {
      "oneOf": [
        {"type": "integer", "minimum": 0, "maximum": 255},
        {"type": "string", "pattern": "^[0-9]{1,3}$"}
      ]
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *gojsonschema.Schema
	schemaErr      error
)

func loadSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(recordSchema))
	})
	return compiledSchema, schemaErr
}

// ValidateSchema checks a decoded description document against the record
// schema. The returned error is a *errors.ValidationError listing every
// failing field.
func ValidateSchema(raw map[string]any) error {
	schema, err := loadSchema()
	if err != nil {
		return errors.NewConfigError("schema", "record schema does not compile", err)
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(raw))
	if err != nil {
		return errors.NewValidationError("", nil, fmt.Sprintf("document cannot be checked: %v", err))
	}
	if result.Valid() {
		return nil
	}

	var fields, details []string
	for _, re := range result.Errors() {
		field := re.Field()
		if field == "(root)" {
			if prop, ok := re.Details()["property"].(string); ok {
				field = prop
			}
		}
		fields = append(fields, field)
		details = append(details, fmt.Sprintf("%s: %s", field, re.Description()))
	}

	return &errors.ValidationError{
		Field:   strings.Join(dedupe(fields), ","),
		Message: strings.Join(details, "; "),
	}
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
