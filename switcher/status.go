package switcher

import (
	"strings"

	"url-switcher/html"
)

// Verdict summarizes which URL the file set as a whole points at.
type Verdict int

const (
	// VerdictNone means no file contains either URL.
	VerdictNone Verdict = iota
	VerdictProduction
	VerdictLocalhost
	// VerdictMixed means both URLs occur somewhere in the file set.
	VerdictMixed
)

func (v Verdict) String() string {
	switch v {
	case VerdictProduction:
		return "production"
	case VerdictLocalhost:
		return "localhost"
	case VerdictMixed:
		return "mixed"
	default:
		return "none"
	}
}

// FileStatus describes one file containing at least one of the URLs.
type FileStatus struct {
	Path string

	// Occurrences anywhere in the file.
	Production int
	Localhost  int

	// Occurrences inside element attributes; only filled in when
	// StatusOptions.References is set.
	ProductionRefs []html.Reference
	LocalhostRefs  []html.Reference
}

// StatusOptions controls how much detail Status collects.
type StatusOptions struct {
	References bool
}

// StatusReport is the result of Status.
type StatusReport struct {
	Files           int
	ProductionFiles int
	LocalhostFiles  int

	// Entries lists files containing either URL, in enumeration order.
	Entries []FileStatus
	// Skipped lists files that could not be read; they count towards Files
	// but towards neither URL count.
	Skipped []FileResult
}

// Verdict classifies the report. Both counts zero is VerdictNone, distinct
// from VerdictMixed.
func (r *StatusReport) Verdict() Verdict {
	switch {
	case r.ProductionFiles > 0 && r.LocalhostFiles == 0:
		return VerdictProduction
	case r.LocalhostFiles > 0 && r.ProductionFiles == 0:
		return VerdictLocalhost
	case r.ProductionFiles > 0 && r.LocalhostFiles > 0:
		return VerdictMixed
	default:
		return VerdictNone
	}
}

// Status counts the files containing each URL. A file may count towards
// both. Nothing is written.
func (s *Switcher) Status(opts StatusOptions) (*StatusReport, error) {
	files, err := s.Files()
	if err != nil {
		return nil, err
	}

	report := &StatusReport{Files: len(files)}
	for _, path := range files {
		content, err := s.readText(path)
		if err != nil {
			s.logger.Debug("skipping unreadable file", "path", path, "error", err)
			report.Skipped = append(report.Skipped, FileResult{Path: path, Err: err})
			continue
		}

		entry := FileStatus{
			Path:       path,
			Production: strings.Count(content, s.cfg.ProductionURL),
			Localhost:  strings.Count(content, s.cfg.LocalhostURL),
		}
		if entry.Production > 0 {
			report.ProductionFiles++
		}
		if entry.Localhost > 0 {
			report.LocalhostFiles++
		}
		if entry.Production == 0 && entry.Localhost == 0 {
			continue
		}
		if opts.References {
			entry.ProductionRefs = html.FindReferences(content, s.cfg.ProductionURL)
			entry.LocalhostRefs = html.FindReferences(content, s.cfg.LocalhostURL)
		}
		report.Entries = append(report.Entries, entry)
	}
	return report, nil
}
