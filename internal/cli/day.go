package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	domain "github.com/BruksfildServices01/chair-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/chair-scheduler/internal/domain/timeslot"
	"github.com/BruksfildServices01/chair-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/chair-scheduler/internal/models"
	"github.com/BruksfildServices01/chair-scheduler/internal/timezone"
)

// DayCmd returns the day command
func DayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day <stylist-id>",
		Short: "Show a stylist's day grid",
		Long: `Show a stylist's day, one line per half-hour slot.

Examples:
  chair day 7f1c2d4e-...                  # today
  chair day 7f1c2d4e-... --date tomorrow
  chair day 7f1c2d4e-... --date 2024-05-02`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stylistID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid stylist id %q", args[0])
			}
			dateStr, _ := cmd.Flags().GetString("date")

			cfg, log, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			loc := timezone.Location(cfg.ShopTimezone)
			day, err := timezone.ParseDay(dateStr, timezone.NowIn(cfg.ShopTimezone), loc)
			if err != nil {
				return err
			}

			repo := repository.NewScheduleGormRepository(db)
			ctx := context.Background()

			stylist, err := repo.GetStylist(ctx, stylistID)
			if err != nil {
				return err
			}
			list, err := repo.ListForDay(ctx, stylistID, day)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", stylist.Name, day.Format(models.DayLayout))
			printDay(cmd.OutOrStdout(), list, domain.Policy{
				OpenHour:  cfg.BusinessOpenHour,
				CloseHour: cfg.BusinessCloseHour,
			})
			return nil
		},
	}

	cmd.Flags().String("date", "today", "today, tomorrow or YYYY-MM-DD")
	return cmd
}

// printDay marca cada horário como livre, ocupado (início) ou continuação.
func printDay(w io.Writer, list []models.Appointment, p domain.Policy) {
	busy := color.New(color.FgRed)
	free := color.New(color.FgGreen)
	faint := color.New(color.Faint)

	for s := range timeslot.All() {
		ap := domain.FindConflict(list, s, timeslot.SlotMinutes, uuid.Nil)

		switch {
		case ap != nil && ap.Slot() == s:
			busy.Fprintf(w, "%s  ● %s (%s-%s)\n", s, ap.CustomerName, s, ap.EndLabel())
		case ap != nil:
			busy.Fprintf(w, "%s  │\n", s)
		case p.InWindow(s):
			free.Fprintf(w, "%s  ·\n", s)
		default:
			faint.Fprintf(w, "%s\n", s)
		}
	}
}
