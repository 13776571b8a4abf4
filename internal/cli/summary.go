package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jisook325/tracker/internal/auth"
	"github.com/jisook325/tracker/internal/config"
	"github.com/jisook325/tracker/internal/domain"
	"github.com/jisook325/tracker/internal/repository"
	"github.com/jisook325/tracker/internal/service"
	"github.com/jisook325/tracker/pkg/daterange"
)

// SummaryOptions holds flags for the summary command.
type SummaryOptions struct {
	User string
	From string
	To   string
}

// NewSummaryCommand creates the summary command.
func NewSummaryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SummaryOptions{}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the range summary for a user",
		Long: `Print the per-day summary and sleep pairs for a user, read directly
from the database. Omitted dates default to the last 30 days through tomorrow.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.User, "user", auth.DefaultMockUser, "external user id")
	cmd.Flags().StringVar(&opts.From, "from", "", "first date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.To, "to", "", "last date (YYYY-MM-DD)")

	return cmd
}

func runSummary(rootOpts *RootOptions, opts *SummaryOptions, cmd *cobra.Command) error {
	for _, d := range []string{opts.From, opts.To} {
		if d != "" && !daterange.IsDate(d) {
			return fmt.Errorf("invalid date %q: want YYYY-MM-DD", d)
		}
	}

	cfg := rootOpts.LoadConfig()
	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("timezone %q: %w", cfg.TimezoneName, err)
	}
	db, err := config.NewDatabase(cfg)
	if err != nil {
		return err
	}
	if err := repository.Migrate(db); err != nil {
		return err
	}

	users := service.NewUserService(repository.NewUserRepository(db))
	user, err := users.GetByExternalID(cmd.Context(), opts.User)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("user %q not found", opts.User)
		}
		return err
	}

	days := service.NewDayService(repository.NewDayEntryRepository(db), repository.NewSleepEventRepository(db), loc)
	summary, err := days.Summary(cmd.Context(), user.ID, opts.From, opts.To)
	if err != nil {
		return err
	}

	if rootOpts.Format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}
	return writeSummaryText(cmd.OutOrStdout(), summary)
}

func writeSummaryText(w io.Writer, s *domain.RangeSummary) error {
	fmt.Fprintf(w, "%s .. %s\n\n", s.From, s.To)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tSTATE\tMOOD\tSLEEP")
	for _, d := range s.Days {
		mood := "-"
		if d.HasMood() {
			mood = *d.Mood
		}
		sleep := "-"
		if len(d.SleepPairs) > 0 {
			var total int
			for _, p := range d.SleepPairs {
				total += p.DurationMinutes
			}
			sleep = fmt.Sprintf("%dh%02dm", total/60, total%60)
		} else if len(d.SleepEvents) > 0 {
			sleep = fmt.Sprintf("%d unpaired", len(d.SleepEvents))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.Date, d.State, mood, sleep)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%d pairs, unmatched: %d beds, %d wakes\n",
		len(s.Pairs), s.SleepUnmatched.Beds, s.SleepUnmatched.Wakes)
	return err
}
