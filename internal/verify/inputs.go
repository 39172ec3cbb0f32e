package verify

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agentstation/jettonmap/pkg/errors"
)

// Inputs determines which description files a run processes. With no args
// every file in dir carrying ext is returned in name order; a missing dir
// yields nothing. With args, each path that lives directly under dir and
// carries ext is kept and every other path is returned as skipped.
func Inputs(dir, ext string, args []string) (files, skipped []string, err error) {
	if len(args) == 0 {
		return scanDir(dir, ext)
	}

	seen := make(map[string]bool, len(args))
	for _, arg := range args {
		if !conventional(dir, ext, arg) {
			skipped = append(skipped, arg)
			continue
		}
		clean := filepath.Clean(arg)
		if seen[clean] {
			continue
		}
		seen[clean] = true
		files = append(files, clean)
	}
	return files, skipped, nil
}

func scanDir(dir, ext string) ([]string, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, errors.WrapIO("read", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil, nil
}

// conventional reports whether path is a description file: directly inside
// dir and ending in ext.
func conventional(dir, ext, path string) bool {
	if !strings.HasSuffix(path, ext) || strings.TrimSuffix(filepath.Base(path), ext) == "" {
		return false
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return filepath.Dir(absPath) == absDir
}
