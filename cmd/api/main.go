package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/chair-scheduler/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chair",
		Short: "Hairdresser chair scheduler",
		Long: `chair keeps each stylist's calendar on a half-hour grid, rejects
overlapping bookings and sends reminders 15 and 5 minutes before each one.`,
	}

	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.MigrateCmd())
	rootCmd.AddCommand(cli.SlotsCmd())
	rootCmd.AddCommand(cli.DayCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
