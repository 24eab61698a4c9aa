// Package report models a coveralls job: an identity plus the coverage of
// every source file, and its JSON encoding.
package report

import (
	"encoding/json"
	"fmt"

	"github.com/Atul9/coveralls-api/pkg/errs"
)

// Report is one coveralls job submission. Sources are kept in the order they
// were added. A Report is not safe for concurrent AddSource calls.
type Report struct {
	id          Identity
	sourceFiles []*Source
}

type repoTokenJob struct {
	RepoToken   string    `json:"repo_token"`
	SourceFiles []*Source `json:"source_files"`
}

type serviceJob struct {
	ServiceName  string    `json:"service_name"`
	ServiceJobID string    `json:"service_job_id"`
	SourceFiles  []*Source `json:"source_files"`
}

// New creates an empty report for the given identity.
func New(id Identity) *Report {
	return &Report{
		id:          id,
		sourceFiles: make([]*Source, 0),
	}
}

// AddSource appends the coverage of one file.
func (r *Report) AddSource(source *Source) {
	if source == nil {
		return
	}
	r.sourceFiles = append(r.sourceFiles, source)
}

// Identity returns the identity the report was created with.
func (r *Report) Identity() Identity {
	return r.id
}

// Sources returns the source files in insertion order.
func (r *Report) Sources() []*Source {
	out := make([]*Source, len(r.sourceFiles))
	copy(out, r.sourceFiles)
	return out
}

// Len returns the number of source files.
func (r *Report) Len() int {
	return len(r.sourceFiles)
}

// MarshalJSON encodes the report in the coveralls jobs format. The identity
// fields come first, followed by source_files.
func (r *Report) MarshalJSON() ([]byte, error) {
	files := r.sourceFiles
	if files == nil {
		files = []*Source{}
	}
	switch id := r.id.(type) {
	case RepoToken:
		return json.Marshal(repoTokenJob{RepoToken: string(id), SourceFiles: files})
	case ServiceToken:
		return json.Marshal(serviceJob{ServiceName: id.Name, ServiceJobID: id.JobID, SourceFiles: files})
	case nil:
		return nil, errs.ErrInvalidIdentity
	default:
		return nil, fmt.Errorf("unsupported identity type %T", id)
	}
}

// Serialize returns the request body for the report. Failures are reported
// as ERR::JSON::MAR errors.
func (r *Report) Serialize() ([]byte, error) {
	body, err := json.Marshal(r)
	if err != nil {
		return nil, errs.ERR_JSON_MAR(err)
	}
	return body, nil
}
