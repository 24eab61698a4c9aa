package report

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Atul9/coveralls-api/pkg/coverage"
	"github.com/Atul9/coveralls-api/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int {
	return &n
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"single terminated line", "a\n", 1},
		{"single unterminated line", "a", 1},
		{"unterminated last line", "a\nb", 2},
		{"blank lines", "a\n\n\n", 3},
		{"crlf", "a\r\nb\r\n", 2},
		{"only newline", "\n", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountLines([]byte(tt.content)))
		})
	}
}

func TestNewSource(t *testing.T) {
	content := "fn main() {\n    println!(\"hi\");\n}\nfn unused() {}"
	path := writeFile(t, "main.rs", content)
	lines := map[int]int{1: 1, 2: 1, 4: 0, 9: 3}

	s, err := NewSource("src/main.rs", path, lines, nil, false)
	require.NoError(t, err)

	assert.Equal(t, "src/main.rs", s.Name)
	assert.Equal(t, "c6fee85ee4ed30629a08aa71f5809961", s.SourceDigest)
	assert.Len(t, s.SourceDigest, 32)
	assert.Equal(t, []*int{intPtr(1), intPtr(1), nil, intPtr(0)}, s.Coverage)
	assert.Nil(t, s.Branches)
	assert.Nil(t, s.Source)
}

func TestNewSourceDigestMatchesBytes(t *testing.T) {
	path := writeFile(t, "hello.txt", "hello\n")

	s, err := NewSource("hello.txt", path, nil, nil, false)
	require.NoError(t, err)
	assert.Equal(t, "b1946ac92492d2347c6235b4d2611184", s.SourceDigest)
	assert.Equal(t, []*int{nil}, s.Coverage)
}

func TestNewSourceBranches(t *testing.T) {
	path := writeFile(t, "lib.c", "int a;\nint b;\nint c;\nint d;\n")

	t.Run("branches collected", func(t *testing.T) {
		branches := []coverage.BranchData{
			{LineNumber: 3, BlockName: 1, BranchNumber: 1, Hits: 1},
			{LineNumber: 4, BlockName: 1, BranchNumber: 2, Hits: 0},
		}
		s, err := NewSource("lib.c", path, map[int]int{3: 1}, branches, false)
		require.NoError(t, err)
		require.NotNil(t, s.Branches)
		assert.Equal(t, []int{3, 1, 1, 1, 4, 1, 2, 0}, *s.Branches)
	})

	t.Run("empty branch list is kept", func(t *testing.T) {
		s, err := NewSource("lib.c", path, nil, []coverage.BranchData{}, false)
		require.NoError(t, err)
		require.NotNil(t, s.Branches)
		assert.Empty(t, *s.Branches)
	})
}

func TestNewSourceIncludeSource(t *testing.T) {
	content := "line one\nline two\n"
	path := writeFile(t, "a.go", content)

	s, err := NewSource("a.go", path, map[int]int{1: 2}, nil, true)
	require.NoError(t, err)
	require.NotNil(t, s.Source)
	assert.Equal(t, content, *s.Source)
}

func TestNewSourceErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.go")
		s, err := NewSource("missing.go", path, nil, nil, false)
		assert.Nil(t, s)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.KindFileRead))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("directory", func(t *testing.T) {
		s, err := NewSource("dir", t.TempDir(), nil, nil, false)
		assert.Nil(t, s)
		assert.True(t, errors.Is(err, errs.KindFileRead))
	})

	t.Run("not utf8", func(t *testing.T) {
		path := writeFile(t, "bin.dat", "\xff\xfe\x00")
		s, err := NewSource("bin.dat", path, nil, nil, false)
		assert.Nil(t, s)
		assert.True(t, errors.Is(err, errs.KindFileRead))
	})
}

func TestNewSourceFromContent(t *testing.T) {
	s := NewSourceFromContent("x.py", []byte("a\nb\nc"), map[int]int{3: 5}, nil, false)

	assert.Equal(t, []*int{nil, nil, intPtr(5)}, s.Coverage)
	assert.Equal(t, "x.py", s.Name)
}
