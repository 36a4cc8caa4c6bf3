// Package models defines the domain types for docfront.
package models

// Document is a Markdown file loaded for a single read-modify-write pass.
type Document struct {
	Path    string // relative to the docs root
	Content string
}

// Status is the outcome of processing one file.
type Status int

const (
	StatusUnchanged Status = iota
	StatusFixed
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusFixed:
		return "fixed"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FileResult records what happened to a single file.
type FileResult struct {
	Path     string `json:"path"`
	Status   Status `json:"status"`
	Reason   string `json:"reason,omitempty"` // skip reason
	Err      error  `json:"-"`
	Checksum string `json:"checksum,omitempty"` // of the content left on disk
}

// Report collects the results of one batch run.
type Report struct {
	Fixer       string       `json:"fixer"`
	Root        string       `json:"root"`
	RootMissing bool         `json:"root_missing"`
	RootErr     error        `json:"-"` // root exists but could not be read
	DryRun      bool         `json:"dry_run"`
	Results     []FileResult `json:"results"`
}

// Add appends a result.
func (r *Report) Add(res FileResult) {
	r.Results = append(r.Results, res)
}

// Count returns the number of results with the given status.
func (r *Report) Count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}

// Failed returns the results that errored.
func (r *Report) Failed() []FileResult {
	var out []FileResult
	for _, res := range r.Results {
		if res.Status == StatusFailed {
			out = append(out, res)
		}
	}
	return out
}
