package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stackui-dev/stackui/internal/project"
	"github.com/stackui-dev/stackui/internal/registry"
	"github.com/stackui-dev/stackui/internal/validate"
)

var (
	validateJSON      bool
	validateTypeCheck bool
	validateRegistry  string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check installed components for integrity problems",
	Long: `Scan installed component and lib files for untransformed registry imports,
broken relative imports, missing lib files, SSR-unsafe barrel exports,
missing API routes, and duplicate barrel exports. With --typecheck, also
run the project's TypeScript compiler and report its errors.

Exits nonzero when any error-severity finding exists; warnings alone
leave the exit code at zero.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Emit the result as JSON")
	validateCmd.Flags().BoolVar(&validateTypeCheck, "typecheck", false, "Run tsc --noEmit over the project")
	validateCmd.Flags().StringVar(&validateRegistry, "registry", "", "Path to the registry directory")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	regDir, err := resolveRegistryDir(validateRegistry)
	if err != nil {
		return err
	}
	reg, err := registry.Load(regDir)
	if err != nil {
		return err
	}

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}
	cfg, err := project.Require(root)
	if err != nil {
		return err
	}

	result, err := validate.Run(reg, cfg, root, validate.Options{TypeCheck: validateTypeCheck})
	if err != nil {
		return err
	}

	if validateJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	} else {
		printValidation(cmd, result)
	}

	if !result.Valid {
		return fmt.Errorf("validation failed with %d error(s)", len(result.Errors))
	}
	return nil
}

func printValidation(cmd *cobra.Command, result *validate.Result) {
	out := cmd.OutOrStdout()

	for _, f := range result.Errors {
		fmt.Fprintf(out, "  %s %s\n", ErrorStyle.Render("✗"), f)
	}
	for _, f := range result.Warnings {
		fmt.Fprintf(out, "  %s %s\n", WarningStyle.Render("⚠"), f)
	}

	if result.Valid && len(result.Warnings) == 0 {
		fmt.Fprintf(out, "%s No problems found.\n", SuccessStyle.Render("✓"))
		return
	}
	fmt.Fprintf(out, "\n%d error(s), %d warning(s).\n", len(result.Errors), len(result.Warnings))

	if len(result.Suggestions) > 0 {
		fmt.Fprintln(out, "\nSuggested fixes:")
		for _, s := range result.Suggestions {
			fmt.Fprintf(out, "  %s\n", s)
		}
	}
}
