package jettons

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/agentstation/jettonmap/pkg/constants"
	"github.com/agentstation/jettonmap/pkg/errors"
)

// ReadCollection loads the aggregate at path. A missing file is an empty
// collection. Content that does not decode also yields an empty collection,
// together with a *errors.ParseError describing what was discarded.
func ReadCollection(path string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewCollection(), nil
		}
		return nil, errors.WrapIO("read", path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return NewCollection(), nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return NewCollection(), errors.WrapParse("json", path, err)
	}

	return NewCollection(records...), nil
}

// WriteCollection writes c to path as a 2-space indented JSON array. The
// file is replaced atomically through a temp file in the same directory.
func WriteCollection(path string, c *Collection) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", constants.JSONIndent)
	if err := enc.Encode(c.Records()); err != nil {
		return errors.WrapParse("json", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.WrapIO("create", "temp file", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return errors.WrapIO("write", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.WrapIO("sync", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapIO("close", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, constants.FilePermissions); err != nil {
		return errors.WrapIO("chmod", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.WrapIO("rename", path, err)
	}

	return nil
}
