// Package fileutil finds files under a directory tree by inclusion and
// exclusion criteria, for batch processing of mesh configuration files.
package fileutil

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Criteria selects files by folder substring, file name substring, and
// extension (with the leading dot).
type Criteria struct {
	Folders    []string
	Names      []string
	Extensions []string
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func (c *Criteria) excludes(relDir, name, ext string) bool {
	if c == nil {
		return false
	}
	switch {
	case containsAny(relDir, c.Folders):
		return true
	case containsAny(name, c.Names):
		return true
	}
	for _, e := range c.Extensions {
		if strings.HasSuffix(name+ext, e) {
			return true
		}
	}
	return false
}

func (c *Criteria) includes(relDir, name, ext string) bool {
	if c == nil {
		return true
	}
	if len(c.Folders) != 0 && !containsAny(relDir, c.Folders) {
		return false
	}
	if len(c.Names) != 0 && !containsAny(name, c.Names) {
		return false
	}
	if len(c.Extensions) != 0 {
		for _, e := range c.Extensions {
			if ext == e {
				return true
			}
		}
		return false
	}
	return true
}

// Filter walks root and returns every file path that passes the exclusion
// criteria first and the inclusion criteria second. Folder criteria apply to
// the directory path relative to root.
func Filter(root string, include, exclude *Criteria) (paths []string, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		relDir, relErr := filepath.Rel(root, filepath.Dir(path))
		if relErr != nil {
			return relErr
		}
		ext := filepath.Ext(d.Name())
		name := strings.TrimSuffix(d.Name(), ext)
		if exclude.excludes(relDir, name, ext) {
			return nil
		}
		if include.includes(relDir, name, ext) {
			paths = append(paths, filepath.ToSlash(path))
		}
		return nil
	})
	return
}
