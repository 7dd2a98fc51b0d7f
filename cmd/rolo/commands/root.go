// Package commands wires the rolo CLI together.
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Version string passed through for telemetry identification.
	version string
)

// Execute runs the root command.
func Execute(ctx context.Context, ver, commit, buildDate string) error {
	version = ver
	rootCmd := newRootCommand(ver, commit, buildDate)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(ver, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rolo",
		Short: "Rolodex - personal contact-book assistant",
		Long: `Rolodex is a personal contact-book assistant: it keeps names, phone
numbers and birthdays for the duration of a session and answers queries
about them through a line-oriented command interface.

Session commands:
  hello                              greeting
  add <name> <phone>                 add a contact or another phone
  change <name> <old> <new>          replace a phone number
  phone <name>                       list a contact's phones
  all                                list every contact
  add-birthday <name> <DD.MM.YYYY>   set a birthday
  show-birthday <name>               show a birthday
  birthdays [days]                   contacts with birthdays coming up
  days-to <name>                     days until a contact's birthday
  delete <name>                      remove a contact
  close | exit                       end the session`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", ver, commit, buildDate),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Running rolo with no subcommand starts a session.
			return runSession(cmd.Context())
		},
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(newReplCommand())

	return rootCmd
}
