package switcher

// Options controls a switch run.
type Options struct {
	// DryRun reports the files that would change without writing them.
	DryRun bool
}

// SwitchResult aggregates the per-file results of one switch run, in
// enumeration order.
type SwitchResult struct {
	Target Target
	From   string
	To     string
	DryRun bool
	Files  []FileResult
}

// Modified returns the files whose content changed (or would change, on a dry
// run).
func (r *SwitchResult) Modified() []FileResult {
	var out []FileResult
	for _, f := range r.Files {
		if f.Changed {
			out = append(out, f)
		}
	}
	return out
}

// Failed returns the files that could not be processed.
func (r *SwitchResult) Failed() []FileResult {
	var out []FileResult
	for _, f := range r.Files {
		if f.Err != nil {
			out = append(out, f)
		}
	}
	return out
}

// SwitchTo rewrites every HTML file to point at target. Per-file failures are
// recorded in the result; only a failure to enumerate files is returned as an
// error.
func (s *Switcher) SwitchTo(target Target, opts Options) (*SwitchResult, error) {
	from, to := s.URLs(target)
	files, err := s.Files()
	if err != nil {
		return nil, err
	}

	res := &SwitchResult{
		Target: target,
		From:   from,
		To:     to,
		DryRun: opts.DryRun,
		Files:  make([]FileResult, 0, len(files)),
	}
	for _, path := range files {
		res.Files = append(res.Files, s.ReplaceInFile(path, from, to, opts.DryRun))
	}
	return res, nil
}
