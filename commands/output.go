package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"url-switcher/html"
)

// Markers are plain text when stdout is not a terminal.
var (
	okMark      = color.New(color.FgGreen, color.Bold).SprintFunc()
	warningMark = color.New(color.FgYellow, color.Bold).SprintFunc()
	changeMark  = color.New(color.FgGreen).SprintFunc()
)

func formatReferences(refs []html.Reference) string {
	parts := make([]string, 0, len(refs))
	for _, r := range refs {
		parts = append(parts, fmt.Sprintf("%s[%s]=%d", r.Tag, r.Attr, r.Count))
	}
	return strings.Join(parts, ", ")
}
