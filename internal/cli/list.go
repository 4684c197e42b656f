package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stackui-dev/stackui/internal/project"
	"github.com/stackui-dev/stackui/internal/registry"
)

var (
	listCategory  string
	listInstalled bool
	listJSON      bool
	listRegistry  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registry components",
	Long:  `List components available in the registry, with install status for the current project.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category")
	listCmd.Flags().BoolVar(&listInstalled, "installed", false, "Show only installed components")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listRegistry, "registry", "", "Path to the registry directory")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents one component for display.
type listEntry struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Installed   bool   `json:"installed"`
	Version     string `json:"version,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	regDir, err := resolveRegistryDir(listRegistry)
	if err != nil {
		return err
	}
	reg, err := registry.Load(regDir)
	if err != nil {
		return err
	}

	if listCategory != "" && !reg.HasCategory(listCategory) {
		return fmt.Errorf("unknown category %q", listCategory)
	}

	// Install status is optional context: listing works outside a project.
	var cfg *project.Config
	if root, err := os.Getwd(); err == nil {
		cfg, _ = project.Load(root)
	}

	var entries []listEntry
	for _, c := range reg.Components {
		if listCategory != "" && c.Category != listCategory {
			continue
		}

		entry := listEntry{
			Name:        c.Name,
			Category:    c.Category,
			Description: c.Description,
		}
		if cfg != nil && cfg.HasComponent(c.Name) {
			entry.Installed = true
			if info, ok := cfg.Installed[c.Name]; ok {
				entry.Version = info.Version
			}
		}
		if listInstalled && !entry.Installed {
			continue
		}

		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No components found.")
		return nil
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	return printListTable(cmd, entries)
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tCATEGORY\tINSTALLED\tDESCRIPTION")
	for _, e := range entries {
		installed := "-"
		if e.Installed {
			installed = "yes"
			if e.Version != "" {
				installed = "yes (" + e.Version + ")"
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.Category, installed, e.Description)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
