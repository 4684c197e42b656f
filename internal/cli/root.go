package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stackui-dev/stackui/internal/branding"
	"github.com/stackui-dev/stackui/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` installs copy-and-own UI components and their shared lib
modules from a static registry into your project, rewriting imports for your
project layout and tracking installed state in ` + branding.ConfigFile() + `.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("error:")+" "+err.Error())
	}
	return err
}
