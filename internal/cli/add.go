package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stackui-dev/stackui/internal/installer"
	"github.com/stackui-dev/stackui/internal/project"
	"github.com/stackui-dev/stackui/internal/registry"
)

var (
	addCategory  string
	addAll       bool
	addOverwrite bool
	addDryRun    bool
	addYes       bool
	addWithAPI   bool
	addRegistry  string
)

// apiLibModules are the lib modules pulled in by --with-api.
var apiLibModules = []string{"api", "auth"}

var addCmd = &cobra.Command{
	Use:   "add [component...]",
	Short: "Install components and their dependencies",
	Long: `Install one or more components from the registry into the current project.

Lib modules and component dependencies are resolved and installed first.
Components may be named explicitly, selected by --category, or installed
wholesale with --all (priority in that order). Already installed components
are skipped unless --overwrite is set.`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addCategory, "category", "", "Install every component in a category")
	addCmd.Flags().BoolVar(&addAll, "all", false, "Install every component in the registry")
	addCmd.Flags().BoolVar(&addOverwrite, "overwrite", false, "Reinstall components that are already installed")
	addCmd.Flags().BoolVar(&addDryRun, "dry-run", false, "Print the install plan without writing anything")
	addCmd.Flags().BoolVarP(&addYes, "yes", "y", false, "Non-interactive: skip prompts, silently skip installed components, auto-install npm packages")
	addCmd.Flags().BoolVar(&addWithAPI, "with-api", false, "Also install the api and auth lib modules")
	addCmd.Flags().StringVar(&addRegistry, "registry", "", "Path to the registry directory")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	regDir, err := resolveRegistryDir(addRegistry)
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

	if registry.IsStale(cfg.RegistryVersion, reg.Version) {
		fmt.Fprintln(cmd.ErrOrStderr(), WarningStyle.Render(fmt.Sprintf(
			"Installed components come from registry %s; the registry is now %s. Use --overwrite to refresh.",
			cfg.RegistryVersion, reg.Version)))
	}

	names, err := selectComponents(reg, args)
	if err != nil {
		return err
	}

	var extraLibs []string
	if addWithAPI {
		extraLibs = apiLibModules
	}

	if len(names) == 0 && len(extraLibs) == 0 {
		fmt.Fprintln(out, "Nothing to install.")
		return nil
	}

	opts := installer.Options{
		Overwrite:      addOverwrite,
		DryRun:         addDryRun,
		NonInteractive: addYes,
		Confirm:        confirmOverwrite(cmd.ErrOrStderr()),
		Progress:       printProgress(out),
	}
	ins := installer.New(reg, cfg, root, opts, nil)

	result, err := ins.Add(names, extraLibs)
	if err != nil {
		var notFound *registry.NotFoundError
		if errors.As(err, &notFound) {
			printSuggestions(cmd.ErrOrStderr(), notFound)
		}
		return err
	}

	if addDryRun {
		installer.PrintPlan(out, result)
		return nil
	}

	// The config is the single durable source of truth; persist it exactly
	// once, after the whole batch.
	cfg.RegistryVersion = reg.Version
	if err := project.Save(root, cfg); err != nil {
		return err
	}

	indexWarnings, err := installer.GenerateIndex(reg, cfg, root)
	if err != nil {
		return err
	}
	result.Warnings = append(result.Warnings, indexWarnings...)

	handleExternalDeps(out, root, result)
	printSummary(out, result)
	return nil
}

// selectComponents picks the install set: explicit names win over
// --category, which wins over --all.
func selectComponents(reg *registry.Registry, args []string) ([]string, error) {
	switch {
	case len(args) > 0:
		return args, nil
	case addCategory != "":
		if !reg.HasCategory(addCategory) {
			return nil, fmt.Errorf("unknown category %q", addCategory)
		}
		var names []string
		for _, c := range reg.ComponentsInCategory(addCategory) {
			names = append(names, c.Name)
		}
		return names, nil
	case addAll:
		var names []string
		for _, c := range reg.Components {
			names = append(names, c.Name)
		}
		return names, nil
	case addWithAPI:
		// Bare --with-api installs just the api/auth lib modules.
		return nil, nil
	default:
		return nil, fmt.Errorf("specify component names, --category, or --all")
	}
}

// confirmOverwrite supplies the interactive overwrite answer by prompting
// on stdin. The installer never calls it in non-interactive mode.
func confirmOverwrite(w io.Writer) installer.ConfirmFunc {
	return func(name string) (bool, error) {
		fmt.Fprintf(w, "? Component %q is already installed. Overwrite? (y/N) ", name)
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			return false, scanner.Err()
		}
		answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
		return answer == "y" || answer == "yes", nil
	}
}

// printProgress renders one line per resolved item.
func printProgress(out io.Writer) installer.ProgressFunc {
	return func(kind, name string, status installer.Status, err error) {
		switch status {
		case installer.StatusInstalled:
			fmt.Fprintf(out, "  %s %s: %s\n", SuccessStyle.Render("✓"), kind, name)
		case installer.StatusSkipped:
			fmt.Fprintf(out, "  %s %s: %s (already installed, skipped)\n", MutedStyle.Render("-"), kind, name)
		case installer.StatusFailed:
			fmt.Fprintf(out, "  %s %s: %s (%v)\n", ErrorStyle.Render("✗"), kind, name, err)
		}
	}
}

func printSuggestions(w io.Writer, notFound *registry.NotFoundError) {
	if len(notFound.Suggestions) == 0 {
		return
	}
	fmt.Fprintln(w, "Did you mean:")
	for _, s := range notFound.Suggestions {
		if s.Category != "" {
			fmt.Fprintf(w, "  %s %s\n", s.Name, MutedStyle.Render("("+s.Category+")"))
		} else {
			fmt.Fprintf(w, "  %s\n", s.Name)
		}
	}
}

// handleExternalDeps installs the batch's npm packages in non-interactive
// mode, or prints the command to run otherwise. Failure here never
// invalidates the copied files.
func handleExternalDeps(out io.Writer, root string, result *installer.Result) {
	if len(result.External) == 0 {
		return
	}

	if !addYes {
		fmt.Fprintf(out, "\nExternal packages required: %s\n", strings.Join(result.External, ", "))
		fmt.Fprintf(out, "Run %s to install them.\n", CmdStyle.Render("npm install "+strings.Join(result.External, " ")))
		return
	}

	warning, err := installer.InstallExternalDeps(root, result.External)
	switch {
	case err != nil:
		fmt.Fprintf(out, "  %s %v\n", WarningStyle.Render("⚠"), err)
	case warning != "":
		fmt.Fprintf(out, "  %s %s\n", WarningStyle.Render("⚠"), warning)
	default:
		fmt.Fprintf(out, "  %s installed npm packages: %s\n", SuccessStyle.Render("✓"), strings.Join(result.External, ", "))
	}
}

// printSummary prints batch-end counts and collected warnings for triage
// without re-running.
func printSummary(out io.Writer, result *installer.Result) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s Installed %d, skipped %d, failed %d.\n",
		SuccessStyle.Render("Done."), len(result.Installed), len(result.Skipped), len(result.Failed))

	if len(result.Warnings) > 0 {
		fmt.Fprintf(out, "\n%d warning(s):\n", len(result.Warnings))
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  %s %s\n", WarningStyle.Render("⚠"), w)
		}
	}
}
