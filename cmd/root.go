package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "industry-flow",
	Short: "Project, pipeline and task management for industrial contractors",
	Long: `industry-flow tracks client projects through the business development
pipeline, plans work on task boards and reports revenue across currencies.

Run "serve" to start the REST API, "migrate" to manage the database schema,
and "projects" or "watch" to use a running API from the terminal.`,
	SilenceUsage: true,
}

// Execute runs the command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "Log level override (debug, info, warn, error)")
}
