// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio-cms",
	Short: "portfolio-cms is a personal portfolio website with a small CMS backend",
	Long: `portfolio-cms serves a personal portfolio website together with a
password-protected admin panel for managing the profile, skills, projects
and hobbies shown on it.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
