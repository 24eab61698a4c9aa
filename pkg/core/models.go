package core

import "github.com/Atul9/coveralls-api/pkg/coverage"

// FileProfile is the measured coverage of one file before it is read and encoded.
type FileProfile struct {
	// Name is the path relative to the repository root.
	Name string
	// Path is where the file can be read from.
	Path string
	// Lines maps 1-based line numbers to hits.
	Lines map[int]int
	// Branches is nil when the profile carries no branch data.
	Branches []coverage.BranchData
}

// JobResponse is the body coveralls answers a job submission with.
type JobResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
	Error   bool   `json:"error,omitempty"`
}

// SubmitResult is what the transport returned for a submission.
type SubmitResult struct {
	StatusCode int
	Body       []byte
	// Job is set when Body decodes as a JobResponse.
	Job *JobResponse
}
