// Package coverage expands per-line and per-branch coverage measurements into
// the array encodings accepted by the coveralls jobs API.
package coverage

// BranchData is one observed branch outcome.
type BranchData struct {
	LineNumber   int
	BlockName    int
	BranchNumber int
	Hits         int
}

// ExpandLines returns one slot per line in 1..lineCount. Slot i-1 points to
// lines[i] when the line was measured and is nil when it is not relevant to
// coverage. Keys outside [1, lineCount] are ignored.
func ExpandLines(lines map[int]int, lineCount int) []*int {
	if lineCount < 0 {
		lineCount = 0
	}
	expanded := make([]*int, lineCount)
	for line, hits := range lines {
		if line < 1 || line > lineCount {
			continue
		}
		h := hits
		expanded[line-1] = &h
	}
	return expanded
}

// ExpandBranches flattens branches into line, block, branch, hits quadruples
// in input order. The result is never nil so that an empty branch list still
// encodes as [].
func ExpandBranches(branches []BranchData) []int {
	expanded := make([]int, 0, 4*len(branches))
	for _, b := range branches {
		expanded = append(expanded, b.LineNumber, b.BlockName, b.BranchNumber, b.Hits)
	}
	return expanded
}

// OutOfRange counts the keys of lines that ExpandLines would drop for lineCount.
func OutOfRange(lines map[int]int, lineCount int) int {
	dropped := 0
	for line := range lines {
		if line < 1 || line > lineCount {
			dropped++
		}
	}
	return dropped
}
