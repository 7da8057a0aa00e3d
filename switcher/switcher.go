// Package switcher rewrites the demo's base URL across the project's HTML
// files and reports which URL the files currently use.
package switcher

import (
	"log/slog"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"url-switcher/config"
	"url-switcher/utils"
)

// Target is the environment the HTML files should point at.
type Target string

const (
	Localhost  Target = "localhost"
	Production Target = "production"
)

// ParseTarget accepts a target name in any letter case.
func ParseTarget(name string) (Target, error) {
	switch t := Target(strings.ToLower(name)); t {
	case Localhost, Production:
		return t, nil
	default:
		return "", errors.Errorf("unknown target %q", name)
	}
}

// FileResult is the outcome of rewriting one file. Err is set when the file
// could not be read, decoded or written; Changed is then false.
type FileResult struct {
	Path    string
	Changed bool
	Err     error
}

// Switcher performs all file operations for one configuration.
type Switcher struct {
	fs     afero.Fs
	cfg    config.Config
	logger *slog.Logger
}

// New validates cfg and returns a Switcher working on fs.
func New(fs afero.Fs, cfg config.Config, logger *slog.Logger) (*Switcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Switcher{fs: fs, cfg: cfg, logger: logger}, nil
}

// Config returns the configuration the switcher was built with.
func (s *Switcher) Config() config.Config {
	return s.cfg
}

// Files enumerates the HTML files under the project root.
func (s *Switcher) Files() ([]string, error) {
	return utils.FindHTMLFiles(s.fs, s.cfg.Root, s.cfg.Patterns, s.logger)
}

// Rel returns path relative to the project root, or path itself if it is not
// below the root.
func (s *Switcher) Rel(path string) string {
	rel, err := filepath.Rel(s.cfg.Root, path)
	if err != nil {
		return path
	}
	return rel
}

// URLs returns the (old, new) pair for switching to target.
func (s *Switcher) URLs(target Target) (string, string) {
	if target == Localhost {
		return s.cfg.ProductionURL, s.cfg.LocalhostURL
	}
	return s.cfg.LocalhostURL, s.cfg.ProductionURL
}

// ReplaceInFile replaces every occurrence of old with new in the file at path.
// The file is written only when its content changes, and never when dryRun is
// set. Failures are logged and returned in the result, never propagated.
func (s *Switcher) ReplaceInFile(path, old, new string, dryRun bool) FileResult {
	res := FileResult{Path: path}

	content, err := s.readText(path)
	if err != nil {
		return s.failed(res, err)
	}
	updated := strings.ReplaceAll(content, old, new)
	if updated == content {
		return res
	}
	if !dryRun {
		if err := s.writeText(path, updated); err != nil {
			return s.failed(res, err)
		}
	}
	res.Changed = true
	return res
}

func (s *Switcher) failed(res FileResult, err error) FileResult {
	s.logger.Warn("Error processing file", "path", res.Path, "error", err)
	res.Err = err
	return res
}

func (s *Switcher) readText(path string) (string, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	if !utf8.Valid(data) {
		return "", errors.Errorf("decoding %s: not valid UTF-8", path)
	}
	return string(data), nil
}

func (s *Switcher) writeText(path, content string) error {
	info, err := s.fs.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	if err := afero.WriteFile(s.fs, path, []byte(content), info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
