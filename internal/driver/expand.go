package driver

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"drift/internal/project"
)

// SourceExt is the extension of Drift source files.
const SourceExt = ".dr"

// ExpandArgs turns command operands into a flat list of source files.
// Directory operands are walked recursively and their files appended
// sorted; file operands are kept as-is, in operand order. Duplicates are
// dropped. When a manifest is present its exclude patterns filter the
// walked files, never explicit file operands.
func ExpandArgs(args []string, manifest *project.Manifest) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, a := range args {
		info, err := os.Stat(a)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			addFile(a)
			continue
		}

		var dirFiles []string
		err = filepath.WalkDir(a, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if filepath.Ext(path) != SourceExt {
				return nil
			}
			if manifest != nil && manifest.Excluded(path) {
				return nil
			}
			dirFiles = append(dirFiles, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
		sort.Strings(dirFiles)
		for _, f := range dirFiles {
			addFile(f)
		}
	}
	return files, nil
}
