package jettons

import (
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/jettonmap/pkg/errors"
)

// LoadRecord reads and parses one description file.
func LoadRecord(path string) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Record{}, errors.NewNotFoundError("file", path)
		}
		return Record{}, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return Record{}, errors.WrapIO("read", path, err)
	}

	return ParseRecord(data, path)
}

// ParseRecord parses a YAML description document. source names the
// document in errors.
func ParseRecord(data []byte, source string) (Record, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Record{}, errors.WrapParse("yaml", source, err)
	}

	if doc == nil {
		return Record{}, errors.NewValidationError("", nil, "document is empty")
	}

	raw, ok := doc.(map[string]any)
	if !ok {
		return Record{}, errors.NewValidationError("", doc, "document is not a mapping")
	}

	return FromMap(raw)
}
