package report

import (
	"bytes"
	"errors"
	"io"
	"os"
	"unicode/utf8"

	"github.com/Atul9/coveralls-api/pkg/coverage"
	"github.com/Atul9/coveralls-api/pkg/errs"
	"github.com/Atul9/coveralls-api/pkg/utils"
)

var errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Source is the coverage of one file as sent to coveralls.
type Source struct {
	// Name is the path of the file relative to the repository root.
	Name string `json:"name"`
	// SourceDigest is the md5 of the file contents.
	SourceDigest string `json:"source_digest"`
	// Coverage holds one entry per line: nil when the line is not relevant,
	// 0 when it was never hit, n when it was hit n times.
	Coverage []*int `json:"coverage"`
	// Branches is the flattened branch data, nil when none was collected.
	Branches *[]int `json:"branches,omitempty"`
	// Source is the file content, only set on request.
	Source *string `json:"source,omitempty"`
}

// NewSource reads the file at path and builds its coverage entry.
// repoPath is the name reported to coveralls, lines maps 1-based line numbers
// to hits and branches may be nil when branch coverage was not collected.
func NewSource(repoPath, path string, lines map[int]int, branches []coverage.BranchData, includeSource bool) (*Source, error) {
	content, err := readFile(path)
	if err != nil {
		return nil, errs.ErrFileRead(path, err)
	}
	if !utf8.Valid(content) {
		return nil, errs.ErrFileRead(path, errInvalidUTF8)
	}
	return NewSourceFromContent(repoPath, content, lines, branches, includeSource), nil
}

// NewSourceFromContent builds a coverage entry from file content that was
// already read by the caller.
func NewSourceFromContent(repoPath string, content []byte, lines map[int]int, branches []coverage.BranchData, includeSource bool) *Source {
	s := &Source{
		Name:         repoPath,
		SourceDigest: utils.ComputeDigest(content),
		Coverage:     coverage.ExpandLines(lines, CountLines(content)),
	}
	if branches != nil {
		expanded := coverage.ExpandBranches(branches)
		s.Branches = &expanded
	}
	if includeSource {
		text := string(content)
		s.Source = &text
	}
	return s
}

// CountLines returns the number of lines in content. A trailing line without
// a terminator still counts, an empty content has no lines.
func CountLines(content []byte) int {
	if len(content) == 0 {
		return 0
	}
	count := bytes.Count(content, []byte{'\n'})
	if content[len(content)-1] != '\n' {
		count++
	}
	return count
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
