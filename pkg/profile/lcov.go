package profile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Atul9/coveralls-api/pkg/core"
	"github.com/Atul9/coveralls-api/pkg/coverage"
	"github.com/Atul9/coveralls-api/pkg/errs"
)

type branchKey struct {
	line, block, branch int
}

type lcovFile struct {
	name     string
	lines    map[int]int
	branches []coverage.BranchData
	index    map[branchKey]int
}

// LoadLCOV reads an lcov tracefile (geninfo format). Records for the same
// file are merged by summing their counts. BRDA records are kept in the order
// they first appear; files without any have no branch data.
func LoadLCOV(path, srcRoot string) ([]core.FileProfile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.ErrProfileParse(path, err)
	}
	defer f.Close()

	var (
		order   []string
		byName  = make(map[string]*lcovFile)
		current *lcovFile
		lineNo  int
	)
	fail := func(format string, args ...interface{}) error {
		return errs.ErrProfileParse(path, fmt.Errorf("line %d: "+format, append([]interface{}{lineNo}, args...)...))
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		tag, value, _ := strings.Cut(text, ":")
		switch tag {
		case "SF":
			name := relativeName(value, srcRoot)
			current = byName[name]
			if current == nil {
				current = &lcovFile{name: name, lines: make(map[int]int), index: make(map[branchKey]int)}
				byName[name] = current
				order = append(order, name)
			}
		case "DA":
			if current == nil {
				return nil, fail("DA outside of a record")
			}
			fields := strings.Split(value, ",")
			if len(fields) < 2 {
				return nil, fail("malformed DA %q", value)
			}
			line, err1 := strconv.Atoi(fields[0])
			hits, err2 := strconv.Atoi(fields[1])
			if err1 != nil || err2 != nil || hits < 0 {
				return nil, fail("malformed DA %q", value)
			}
			current.lines[line] += hits
		case "BRDA":
			if current == nil {
				return nil, fail("BRDA outside of a record")
			}
			b, err := parseBRDA(value)
			if err != nil {
				return nil, fail("%v", err)
			}
			current.addBranch(b)
		case "end_of_record":
			current = nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.ErrProfileParse(path, err)
	}

	files := make([]core.FileProfile, 0, len(order))
	for _, name := range order {
		lf := byName[name]
		files = append(files, core.FileProfile{
			Name:     lf.name,
			Path:     fsPath(lf.name, srcRoot),
			Lines:    lf.lines,
			Branches: lf.branches,
		})
	}
	return files, nil
}

func (lf *lcovFile) addBranch(b coverage.BranchData) {
	key := branchKey{b.LineNumber, b.BlockName, b.BranchNumber}
	if i, ok := lf.index[key]; ok {
		lf.branches[i].Hits += b.Hits
		return
	}
	lf.index[key] = len(lf.branches)
	lf.branches = append(lf.branches, b)
}

// parseBRDA parses "line,block,branch,taken" where taken is "-" when the
// branch was never evaluated.
func parseBRDA(value string) (coverage.BranchData, error) {
	fields := strings.Split(value, ",")
	if len(fields) != 4 {
		return coverage.BranchData{}, fmt.Errorf("malformed BRDA %q", value)
	}
	var nums [4]int
	for i, field := range fields {
		if i == 3 && field == "-" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			return coverage.BranchData{}, fmt.Errorf("malformed BRDA %q", value)
		}
		nums[i] = n
	}
	return coverage.BranchData{
		LineNumber:   nums[0],
		BlockName:    nums[1],
		BranchNumber: nums[2],
		Hits:         nums[3],
	}, nil
}
