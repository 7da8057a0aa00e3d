package commands

import (
	"flag"
	"fmt"

	"url-switcher/switcher"
)

// LocalhostCommand points every HTML file at the localhost URL.
func LocalhostCommand(env *Env, args []string) error {
	return switchCommand(env, switcher.Localhost, args)
}

// ProductionCommand points every HTML file back at the production URL.
func ProductionCommand(env *Env, args []string) error {
	return switchCommand(env, switcher.Production, args)
}

func switchCommand(env *Env, target switcher.Target, args []string) error {
	flags := flag.NewFlagSet(string(target), flag.ContinueOnError)
	flags.SetOutput(env.Stderr)
	root := flags.String("root", env.Config.Root, "Project root to search for HTML files")
	dryRun := flags.Bool("dry-run", false, "List files that would change without writing them")
	if err := flags.Parse(args); err != nil {
		return err
	}

	s, err := env.newSwitcher(*root)
	if err != nil {
		return err
	}
	cfg := s.Config()
	out := env.Stdout

	fmt.Fprintf(out, "Project root: %s\n\n", cfg.Root)
	_, to := s.URLs(target)
	fmt.Fprintf(out, "Switching URLs to %s (%s)...\n", target, to)

	res, err := s.SwitchTo(target, switcher.Options{DryRun: *dryRun})
	if err != nil {
		return err
	}

	mark := "[+]"
	if res.DryRun {
		mark = "[~]"
	}
	modified := res.Modified()
	for _, f := range modified {
		fmt.Fprintf(out, "  %s %s\n", changeMark(mark), s.Rel(f.Path))
	}
	if failed := res.Failed(); len(failed) > 0 {
		fmt.Fprintf(out, "  %s %d file(s) could not be processed\n", warningMark("[!]"), len(failed))
	}

	switch {
	case len(modified) == 0:
		fmt.Fprintf(out, "  No files needed updating (already using %s URLs)\n", target)
	case res.DryRun:
		fmt.Fprintf(out, "\n%s %d file(s) would be modified (dry run, nothing written)\n", okMark("[OK]"), len(modified))
	default:
		fmt.Fprintf(out, "\n%s Successfully modified %d file(s)\n", okMark("[OK]"), len(modified))
		if target == switcher.Localhost {
			fmt.Fprintf(out, "\nYou can now run a local server with:\n")
			fmt.Fprintf(out, "  %s\n", cfg.ServeHint)
			fmt.Fprintf(out, "\nThen visit: %s\n", cfg.VisitURL)
		}
	}
	return nil
}
