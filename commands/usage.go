package commands

import (
	"fmt"
	"io"
)

// PrintUsage displays help information for available commands
func PrintUsage(w io.Writer) {
	fmt.Fprintln(w, "url-switcher - Toggle the demo's HTML files between production and localhost URLs")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  url-switcher localhost [-dry-run] [-root <dir>]")
	fmt.Fprintln(w, "  url-switcher production [-dry-run] [-root <dir>]")
	fmt.Fprintln(w, "  url-switcher status [-v] [-root <dir>]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  localhost   Switch URLs to localhost for local testing")
	fmt.Fprintln(w, "  production  Switch URLs back to production")
	fmt.Fprintln(w, "  status      Check which URLs the HTML files currently use")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -root     Project root (default: parent of the directory holding this binary)")
	fmt.Fprintln(w, "  -dry-run  List files that would change without writing them")
	fmt.Fprintln(w, "  -v        Show per-file details in status")
}
