package jobs

import (
	"sync"

	"github.com/Atul9/coveralls-api/pkg/report"
)

// Summary describes a job accepted by the stub.
type Summary struct {
	ID            string `json:"id"`
	ServiceName   string `json:"service_name,omitempty"`
	ServiceJobID  string `json:"service_job_id,omitempty"`
	SourceFiles   int    `json:"source_files"`
	RelevantLines int    `json:"relevant_lines"`
	CoveredLines  int    `json:"covered_lines"`
	Branches      int    `json:"branches"`
}

// Store keeps accepted jobs in memory.
type Store struct {
	mu   sync.RWMutex
	jobs map[string]Summary
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{jobs: make(map[string]Summary)}
}

// Save records a job.
func (s *Store) Save(job Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

// Get returns the job with the given id.
func (s *Store) Get(id string) (Summary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	return job, ok
}

// Len returns the number of stored jobs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}

func summarize(id string, req *jobRequest) Summary {
	job := Summary{ID: id, SourceFiles: len(req.SourceFiles)}
	if req.ServiceName != nil {
		job.ServiceName = *req.ServiceName
	}
	if req.ServiceJobID != nil {
		job.ServiceJobID = *req.ServiceJobID
	}
	for _, src := range req.SourceFiles {
		job.RelevantLines += relevant(src)
		job.CoveredLines += covered(src)
		if src.Branches != nil {
			job.Branches += len(*src.Branches) / 4
		}
	}
	return job
}

func relevant(src *report.Source) int {
	n := 0
	for _, c := range src.Coverage {
		if c != nil {
			n++
		}
	}
	return n
}

func covered(src *report.Source) int {
	n := 0
	for _, c := range src.Coverage {
		if c != nil && *c > 0 {
			n++
		}
	}
	return n
}
