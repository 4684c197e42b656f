package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stackui-dev/stackui/internal/branding"
	"github.com/stackui-dev/stackui/internal/project"
)

var (
	initSrcDir     bool
	initJavaScript bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a project for component installs",
	Long: fmt.Sprintf(`Create a %s in the current directory.

The src/ layout and TypeScript settings are detected from the project
tree (a src/ directory, a tsconfig.json) and can be overridden with
flags. Run this once per project before %s add.`,
		branding.ConfigFile(), branding.CLIName()),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initSrcDir, "src-dir", false, "Install under src/ even when no src/ directory exists yet")
	initCmd.Flags().BoolVar(&initJavaScript, "js", false, "Emit .js/.jsx files even when a tsconfig.json exists")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	if _, err := os.Stat(project.FilePath(root)); err == nil {
		return fmt.Errorf("project already initialized: %s exists", project.FilePath(root))
	}

	cfg := project.Default(root)
	if initSrcDir {
		cfg.SrcDir = true
	}
	if initJavaScript {
		cfg.TypeScript = false
	}

	if err := project.Save(root, cfg); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s Created %s\n", SuccessStyle.Render("✓"), branding.ConfigFile())
	fmt.Fprintf(out, "  src layout:  %v\n", cfg.SrcDir)
	fmt.Fprintf(out, "  typescript:  %v\n", cfg.TypeScript)
	fmt.Fprintf(out, "  components:  %s\n", cfg.Aliases.Components)
	fmt.Fprintf(out, "  lib:         %s\n", cfg.Aliases.Lib)
	fmt.Fprintf(out, "\nInstall your first component with %s.\n",
		CmdStyle.Render(branding.CLIName()+" add button"))
	return nil
}
