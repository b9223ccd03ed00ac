package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// MigrateCmd returns the migrate command
func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, _, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			fmt.Fprintf(cmd.OutOrStdout(), "schema up to date (%s)\n", cfg.DBDriver)
			return nil
		},
	}
}
