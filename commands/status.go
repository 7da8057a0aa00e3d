package commands

import (
	"flag"
	"fmt"

	"url-switcher/switcher"
)

// StatusCommand reports which URL the HTML files currently use. Nothing is
// written.
func StatusCommand(env *Env, args []string) error {
	flags := flag.NewFlagSet("status", flag.ContinueOnError)
	flags.SetOutput(env.Stderr)
	root := flags.String("root", env.Config.Root, "Project root to search for HTML files")
	verbose := flags.Bool("v", false, "Show per-file details")
	if err := flags.Parse(args); err != nil {
		return err
	}

	s, err := env.newSwitcher(*root)
	if err != nil {
		return err
	}
	out := env.Stdout

	fmt.Fprintf(out, "Project root: %s\n\n", s.Config().Root)

	report, err := s.Status(switcher.StatusOptions{References: *verbose})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Found %d HTML files\n", report.Files)
	fmt.Fprintf(out, "Files with production URLs: %d\n", report.ProductionFiles)
	fmt.Fprintf(out, "Files with localhost URLs: %d\n", report.LocalhostFiles)

	if *verbose {
		printStatusDetails(env, s, report)
	}

	switch report.Verdict() {
	case switcher.VerdictLocalhost:
		fmt.Fprintf(out, "\n%s Currently configured for LOCALHOST\n", okMark("[OK]"))
	case switcher.VerdictProduction:
		fmt.Fprintf(out, "\n%s Currently configured for PRODUCTION\n", okMark("[OK]"))
	case switcher.VerdictMixed:
		fmt.Fprintf(out, "\n%s Mixed configuration detected!\n", warningMark("[WARNING]"))
	default:
		fmt.Fprintf(out, "\n%s No files reference either URL\n", warningMark("[WARNING]"))
	}
	return nil
}

func printStatusDetails(env *Env, s *switcher.Switcher, report *switcher.StatusReport) {
	out := env.Stdout
	if len(report.Entries) > 0 {
		fmt.Fprintln(out, "")
	}
	for _, e := range report.Entries {
		fmt.Fprintf(out, "  %s: production=%d localhost=%d\n", s.Rel(e.Path), e.Production, e.Localhost)
		if len(e.ProductionRefs) > 0 {
			fmt.Fprintf(out, "      production in attributes: %s\n", formatReferences(e.ProductionRefs))
		}
		if len(e.LocalhostRefs) > 0 {
			fmt.Fprintf(out, "      localhost in attributes: %s\n", formatReferences(e.LocalhostRefs))
		}
	}
	for _, f := range report.Skipped {
		fmt.Fprintf(out, "  %s %s: %v\n", warningMark("[!]"), s.Rel(f.Path), f.Err)
	}
}
