package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/ipc"
)

// CatalogMarkdown renders the units that can be purchased, grouped by branch.
func CatalogMarkdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Units\n")

	current := ipc.Branch(-1)
	for u := range ipc.Units() {
		if u.Branch() != current {
			current = u.Branch()
			fmt.Fprintf(&b, "\n## %s\n\n", current)
			fmt.Fprintln(&b, "| Unit | Name | Cost |")
			fmt.Fprintln(&b, "|:---|:---|---:|")
		}
		fmt.Fprintf(&b, "| %s | %s | %d |\n", u, u.Name(), u.Cost())
	}
	return b.String()
}
