package verify

import "github.com/agentstation/jettonmap/pkg/jettons"

// FileResult is the outcome of one description file.
type FileResult struct {
	Path    string
	Address string
	Err     error
}

// Valid reports whether the file passed every check.
func (r FileResult) Valid() bool {
	return r.Err == nil
}

// Report summarizes a verify run.
type Report struct {
	RunID   string
	Results []FileResult
	// Ignored holds explicit arguments that are not description files.
	Ignored []string
	Added   []jettons.Record
	Skipped []jettons.Record
	// Total is the aggregate size after the merge, zero when no merge happened.
	Total   int
	Written bool
}

// ValidCount returns the number of files that passed.
func (r *Report) ValidCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Valid() {
			n++
		}
	}
	return n
}

// Failed returns the results that did not pass.
func (r *Report) Failed() []FileResult {
	var out []FileResult
	for _, res := range r.Results {
		if !res.Valid() {
			out = append(out, res)
		}
	}
	return out
}

// AllValid reports whether every processed file passed.
func (r *Report) AllValid() bool {
	return len(r.Failed()) == 0
}

// Success reports whether every processed file passed and at least one did.
func (r *Report) Success() bool {
	return r.AllValid() && r.ValidCount() > 0
}

// ExitCode maps the report to a process exit status.
func (r *Report) ExitCode() int {
	if r.Success() {
		return 0
	}
	return 1
}
