package installer

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// InstallExternalDeps runs `npm install` for the batch's external package
// dependencies. It is a fire-and-forget collaborator: a missing npm returns
// a warning string, and a failed install is reported but never invalidates
// the already-copied files.
func InstallExternalDeps(projectRoot string, pkgs []string) (string, error) {
	if len(pkgs) == 0 {
		return "", nil
	}

	npmPath, err := exec.LookPath("npm")
	if err != nil {
		return fmt.Sprintf("npm not found — install packages manually: npm install %s", strings.Join(pkgs, " ")), nil
	}

	args := append([]string{"install", "--prefer-offline"}, pkgs...)
	cmd := exec.Command(npmPath, args...)
	cmd.Dir = projectRoot
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("npm install %s: %w", strings.Join(pkgs, " "), err)
	}
	return "", nil
}
