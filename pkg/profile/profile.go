// Package profile turns coverage profiles written by instrumentation tools
// into per-file hit maps and branch records.
package profile

import (
	"path/filepath"
	"strings"

	"github.com/Atul9/coveralls-api/pkg/core"
	"github.com/Atul9/coveralls-api/pkg/errs"
	"github.com/Atul9/coveralls-api/pkg/global"
)

// Load reads the profile at path in the given format. srcRoot is the
// repository root the profiled file names are resolved against.
func Load(format, path, srcRoot string) ([]core.FileProfile, error) {
	switch format {
	case global.GoProfileFormat, "":
		return LoadGoProfile(path, srcRoot)
	case global.LCOVProfileFormat:
		return LoadLCOV(path, srcRoot)
	default:
		return nil, errs.ErrUnsupportedFormat
	}
}

// relativeName returns name relative to root with forward slashes. Names
// outside root are kept as given.
func relativeName(name, root string) string {
	if !filepath.IsAbs(name) {
		return filepath.ToSlash(filepath.Clean(name))
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return filepath.ToSlash(name)
	}
	rel, err := filepath.Rel(absRoot, name)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(name)
	}
	return filepath.ToSlash(rel)
}

// fsPath returns where the file named name can be read.
func fsPath(name, root string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(root, filepath.FromSlash(name))
}
