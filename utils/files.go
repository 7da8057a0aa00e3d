package utils

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Matcher reports whether a root-relative slash path matches any of its
// patterns.
type Matcher struct {
	globs []glob.Glob
}

// NewMatcher compiles patterns with '/' as the separator, so '*' stays within
// one path segment and '**' crosses segments.
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{}
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, errors.Wrapf(err, "compiling pattern %q", p)
		}
		m.globs = append(m.globs, g)
	}
	return m, nil
}

// Match reports whether rel matches at least one pattern.
func (m *Matcher) Match(rel string) bool {
	for _, g := range m.globs {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// FindHTMLFiles walks root and returns every non-directory entry whose
// root-relative path matches one of patterns. Each file is visited once, so a
// file matching several patterns is listed once. The result is ordered by
// path components. Unreadable subdirectories are skipped;
// an unreadable root is an error.
func FindHTMLFiles(fs afero.Fs, root string, patterns []string, logger *slog.Logger) ([]string, error) {
	matcher, err := NewMatcher(patterns)
	if err != nil {
		return nil, err
	}

	var rels []string
	err = afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return errors.Wrapf(err, "reading project root %s", root)
			}
			logger.Debug("skipping unreadable path", "path", path, "error", err)
			return nil
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if !matcher.Match(rel) {
			return nil
		}
		rels = append(rels, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(rels, comparePaths)

	files := make([]string, 0, len(rels))
	for _, rel := range rels {
		files = append(files, filepath.Join(root, filepath.FromSlash(rel)))
	}
	return files, nil
}

// comparePaths orders slash paths segment by segment, so "a/x.html" sorts
// before "a-b/x.html".
func comparePaths(a, b string) int {
	return slices.Compare(strings.Split(a, "/"), strings.Split(b, "/"))
}
