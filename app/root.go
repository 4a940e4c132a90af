// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "holy-grail",
	Short: "holy-grail is a key/value settings service behind a greeting API",
	Long: `holy-grail is a small web service that keeps a single name suffix
in an embedded SQLite database and serves a greeting built from it,
together with the browser page that reads and updates it.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
