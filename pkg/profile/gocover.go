package profile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/Atul9/coveralls-api/pkg/core"
	"github.com/Atul9/coveralls-api/pkg/errs"
	"golang.org/x/mod/modfile"
	"golang.org/x/tools/cover"
)

// LoadGoProfile reads a profile written by `go test -coverprofile`. File
// names are import paths; the module path declared in srcRoot/go.mod is
// stripped to get repository relative names. Every line of a block gets the
// block count, the highest count wins where blocks share a line.
func LoadGoProfile(path, srcRoot string) ([]core.FileProfile, error) {
	profiles, err := cover.ParseProfiles(path)
	if err != nil {
		return nil, errs.ErrProfileParse(path, err)
	}

	modPath, err := detectModulePath(srcRoot)
	if err != nil {
		return nil, errs.ErrProfileParse(path, err)
	}

	files := make([]core.FileProfile, 0, len(profiles))
	for _, p := range profiles {
		name := goFileName(p.FileName, modPath, srcRoot)
		lines := make(map[int]int)
		for _, b := range p.Blocks {
			for l := b.StartLine; l <= b.EndLine; l++ {
				if cur, ok := lines[l]; !ok || b.Count > cur {
					lines[l] = b.Count
				}
			}
		}
		files = append(files, core.FileProfile{
			Name:  name,
			Path:  fsPath(name, srcRoot),
			Lines: lines,
		})
	}
	return files, nil
}

func goFileName(fileName, modPath, srcRoot string) string {
	if modPath != "" && strings.HasPrefix(fileName, modPath+"/") {
		return strings.TrimPrefix(fileName, modPath+"/")
	}
	return relativeName(fileName, srcRoot)
}

// detectModulePath returns the module path of srcRoot/go.mod, or "" when
// there is no go.mod.
func detectModulePath(srcRoot string) (string, error) {
	data, err := os.ReadFile(filepath.Join(srcRoot, "go.mod"))
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return modfile.ModulePath(data), nil
}
