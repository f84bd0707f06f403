// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gofolio",
	Short: "Gofolio is a personal portfolio website with an admin CMS",
	Long: `Gofolio serves a personal portfolio website (home, about, skills,
projects, certificates, blog, contact, resume) together with an admin
interface for managing all of its content and uploads.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
