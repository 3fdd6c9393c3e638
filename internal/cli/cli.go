package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"termcal/internal/fetch"
	"termcal/internal/gcal"
	"termcal/internal/logger"
	"termcal/internal/section"
	"termcal/internal/term"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagYear        int
	flagSemester    string
	flagCalendarID  string
	flagCredentials string
	flagToken       string
	flagFormat      string
	flagDryRun      bool
	flagVerbose     bool
)

// envDefault returns the environment value for key, or fallback when
// unset. A .env file, if present, has already been folded into the
// environment by Execute.
func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "termcal",
		Short: "Import a university term's key dates into Google Calendar",
		Long: `Scrapes the University of Memphis academic-year and dates & deadlines
pages for one term, derives the instructional week schedule, and writes
every key date, break, holiday, deadline, and week label to a Google
Calendar as idempotent all-day events.`,
		RunE: runImport,
	}

	cmd.Flags().IntVar(&flagYear, "year", 0, "Calendar year of the term, e.g. 2025 for Fall 2025, 2026 for Spring 2026 (required)")
	cmd.Flags().StringVar(&flagSemester, "semester", "", "Term semester: fall or spring (required)")
	cmd.Flags().StringVar(&flagCalendarID, "calendar-id", envDefault("TERMCAL_CALENDAR_ID", gcal.DefaultCalendarID), "Target Google Calendar ID")
	cmd.Flags().StringVar(&flagCredentials, "credentials", envDefault("TERMCAL_CREDENTIALS", "credentials.json"), "OAuth credentials JSON path")
	cmd.Flags().StringVar(&flagToken, "token", envDefault("TERMCAL_TOKEN", "token.json"), "OAuth token cache path")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Dry-run output format: text or json")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the fact list without writing to Google Calendar")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.MarkFlagRequired("year")
	cmd.MarkFlagRequired("semester")

	return cmd
}

// runImport is the main command logic
func runImport(cmd *cobra.Command, args []string) error {
	semester := strings.ToLower(strings.TrimSpace(flagSemester))
	if semester != section.Fall && semester != section.Spring {
		return fmt.Errorf("invalid semester: %s (must be 'fall' or 'spring')", flagSemester)
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	model, err := term.Build(fetch.New(), flagYear, semester)
	if err != nil {
		return err
	}

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Academic year page: %s\n", model.AcademicURL)
		fmt.Fprintf(os.Stderr, "Dates & deadlines page: %s\n", model.DeadlinesURL)
	}

	facts := model.Facts()

	if flagDryRun {
		return WriteFacts(os.Stdout, model, facts, format)
	}

	ctx := context.Background()
	sink, err := gcal.NewClient(ctx, flagCredentials, flagToken)
	if err != nil {
		return err
	}

	for _, f := range facts {
		if err := sink.Upsert(ctx, flagCalendarID, f.Title, f.Start, f.End, f.Description); err != nil {
			return err
		}
	}

	fmt.Printf("Imported %d events for %s.\n", len(facts), model.Name())
	return nil
}

// Execute runs the CLI
func Execute() {
	_ = godotenv.Load()

	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
