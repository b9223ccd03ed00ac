package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	domain "github.com/BruksfildServices01/chair-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/chair-scheduler/internal/domain/timeslot"
)

// SlotsCmd returns the slots command
func SlotsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Print the half-hour grid of a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			open, _ := cmd.Flags().GetInt("open")
			closeHour, _ := cmd.Flags().GetInt("close")

			printSlots(cmd.OutOrStdout(), domain.Policy{OpenHour: open, CloseHour: closeHour})
			return nil
		},
	}

	def := domain.DefaultPolicy()
	cmd.Flags().Int("open", def.OpenHour, "First bookable hour")
	cmd.Flags().Int("close", def.CloseHour, "Last bookable start hour")
	return cmd
}

func printSlots(w io.Writer, p domain.Policy) {
	faint := color.New(color.Faint)
	for s := range timeslot.All() {
		if p.InWindow(s) {
			fmt.Fprintln(w, s.String())
			continue
		}
		faint.Fprintln(w, s.String())
	}
}
