// Package project reads the drift.toml manifest and locates the project
// root. The manifest is optional: the tools work on bare files without one.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the root search looks for.
const ManifestName = "drift.toml"

// Manifest describes a project's drift.toml.
type Manifest struct {
	// [package] section
	Name string
	Root string
	// [imports] section
	Exclude []string
}

type manifestFile struct {
	Package struct {
		Name string `toml:"name"`
		Root string `toml:"root"`
	} `toml:"package"`
	Imports struct {
		Exclude []string `toml:"exclude"`
	} `toml:"imports"`
}

// ErrPackageSectionMissing indicates that [package] is missing in a manifest.
var ErrPackageSectionMissing = errors.New("missing [package]")

// LoadManifest parses a drift.toml file.
func LoadManifest(path string) (Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	root := strings.TrimSpace(cfg.Package.Root)
	if root == "" {
		root = "."
	}
	return Manifest{
		Name:    strings.TrimSpace(cfg.Package.Name),
		Root:    root,
		Exclude: cfg.Imports.Exclude,
	}, nil
}

// FindManifest walks up from startDir to locate drift.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// FindProjectRoot returns the directory containing drift.toml, if any.
func FindProjectRoot(startDir string) (root string, ok bool, err error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return "", ok, err
	}
	return filepath.Dir(manifestPath), true, nil
}

// Excluded reports whether path matches one of the manifest's exclude
// patterns. Patterns are matched against the path's base name and against
// the slash-form path itself.
func (m Manifest) Excluded(path string) bool {
	slashed := filepath.ToSlash(path)
	base := filepath.Base(path)
	for _, pat := range m.Exclude {
		if ok, err := filepath.Match(pat, base); err == nil && ok {
			return true
		}
		if ok, err := filepath.Match(pat, slashed); err == nil && ok {
			return true
		}
	}
	return false
}
