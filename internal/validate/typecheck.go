package validate

import (
	"bytes"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// diagRe matches one line-oriented type-checker diagnostic:
// file(line,col): severity code: message
var diagRe = regexp.MustCompile(`^(.+?)\((\d+),(\d+)\): (error|warning) (\w+): (.+)$`)

// ParseDiagnostics parses line-oriented type-checker output, keeping only
// diagnostics whose file the keep predicate accepts (i.e., under the
// installed tree). Warnings from the checker are dropped — only its errors
// become findings.
func ParseDiagnostics(output string, keep func(file string) bool) []Finding {
	var findings []Finding

	for _, line := range strings.Split(output, "\n") {
		m := diagRe.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		file, severity, code, msg := m[1], m[4], m[5], m[6]
		if severity != "error" {
			continue
		}
		if keep != nil && !keep(file) {
			continue
		}
		lineNo, _ := strconv.Atoi(m[2])
		findings = append(findings, Finding{
			Code:    CodeTypeError,
			File:    file,
			Line:    lineNo,
			Message: fmt.Sprintf("%s: %s", code, msg),
		})
	}
	return findings
}

// RunTypeCheck shells out to the project's type checker and parses its
// diagnostics. The checker is an opaque collaborator: a missing binary is
// a warning, and a nonzero exit with parseable diagnostics is the expected
// failure mode, not an execution error.
func RunTypeCheck(projectRoot string, keep func(file string) bool) ([]Finding, []Finding) {
	npxPath, err := exec.LookPath("npx")
	if err != nil {
		return nil, []Finding{{
			Code:    CodeTypeCheckerUnavailable,
			Message: "npx not found — skipping type check",
		}}
	}

	cmd := exec.Command(npxPath, "tsc", "--noEmit", "--pretty", "false")
	cmd.Dir = projectRoot

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	runErr := cmd.Run()
	findings := ParseDiagnostics(out.String(), keep)

	if runErr != nil && len(findings) == 0 {
		// Nonzero exit without diagnostics under our tree: either the
		// checker broke, or every error is outside the installed tree.
		if _, isExit := runErr.(*exec.ExitError); !isExit {
			return nil, []Finding{{
				Code:    CodeTypeCheckerUnavailable,
				Message: fmt.Sprintf("type checker failed to run: %v", runErr),
			}}
		}
	}
	return findings, nil
}
