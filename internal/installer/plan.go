package installer

import (
	"fmt"
	"io"
	"strings"
)

// PrintPlan renders a dry-run plan: per item, the files it would write and
// the dependencies it would pull in. Nothing on this path touches the
// filesystem.
func PrintPlan(w io.Writer, result *Result) {
	if len(result.Plan) == 0 {
		fmt.Fprintln(w, "Nothing to install.")
		return
	}

	fmt.Fprintln(w, "Planned changes (dry run):")
	fmt.Fprintln(w)

	components, libs := 0, 0
	for _, item := range result.Plan {
		fmt.Fprintf(w, "  %s: %s\n", item.Kind, item.Name)
		for _, f := range item.Files {
			fmt.Fprintf(w, "    + %s\n", f)
		}
		if len(item.Libs) > 0 {
			fmt.Fprintf(w, "    lib deps: %s\n", strings.Join(item.Libs, ", "))
		}
		if len(item.External) > 0 {
			fmt.Fprintf(w, "    external: %s\n", strings.Join(item.External, ", "))
		}

		if item.Kind == "component" {
			components++
		} else {
			libs++
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Would install %s", pluralize(components, "component"))
	if libs > 0 {
		fmt.Fprintf(w, " and %s", pluralize(libs, "lib module"))
	}
	fmt.Fprintln(w, ". No files were written.")
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
