package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"temporal-intent-engine/internal/conflict"
	"temporal-intent-engine/internal/model"
	"temporal-intent-engine/internal/parser"
	"temporal-intent-engine/internal/scheduling"
	"temporal-intent-engine/internal/scheduling/usecase"
	"temporal-intent-engine/pkg/gcalendar"
	"temporal-intent-engine/pkg/log"
)

// contextFlags are shared by every command that parses text.
type contextFlags struct {
	date        string
	timezone    string
	workStart   string
	workEnd     string
	workingDays []int
	verbose     bool
}

func (f *contextFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.date, "date", "", "reference date, YYYY-MM-DD or RFC3339 (default: now)")
	cmd.Flags().StringVar(&f.timezone, "tz", usecase.DefaultTimezone, "IANA timezone of the user")
	cmd.Flags().StringVar(&f.workStart, "work-start", usecase.DefaultWorkStart, "start of working hours, HH:MM")
	cmd.Flags().StringVar(&f.workEnd, "work-end", usecase.DefaultWorkEnd, "end of working hours, HH:MM")
	cmd.Flags().IntSliceVar(&f.workingDays, "working-days", usecase.DefaultWorkingDays, "working weekdays, 0=Sunday")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log to stderr")
}

func (f *contextFlags) parseInput(args []string) (scheduling.ParseInput, error) {
	in := scheduling.ParseInput{
		Text:         strings.Join(args, " "),
		Timezone:     f.timezone,
		WorkingHours: &model.WorkingHours{Start: f.workStart, End: f.workEnd},
		WorkingDays:  f.workingDays,
	}
	if f.date == "" {
		return in, nil
	}

	if t, err := time.Parse(time.RFC3339, f.date); err == nil {
		in.CurrentDate = t
		return in, nil
	}
	loc, err := time.LoadLocation(f.timezone)
	if err != nil {
		return in, fmt.Errorf("--tz: %w", err)
	}
	t, err := time.ParseInLocation("2006-01-02", f.date, loc)
	if err != nil {
		return in, fmt.Errorf("--date: expected YYYY-MM-DD or RFC3339, got %q", f.date)
	}
	in.CurrentDate = t
	return in, nil
}

func (f *contextFlags) logger() log.Logger {
	if !f.verbose {
		return log.NewNop()
	}
	return log.Init(log.ZapConfig{Level: "debug", Mode: "development", Encoding: log.EncodingConsole, ColorEnabled: true})
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "temporalctl",
		Short: "Resolve scheduling text and check it against a calendar",
		Long: `temporalctl parses French or English scheduling text ("lundi prochain à 14h",
"tous les mardis matin", "next Friday afternoon") into candidate dates and
times, and optionally checks the resulting slots against busy periods.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(checkCmd())
	return rootCmd
}

func parseCmd() *cobra.Command {
	var flags contextFlags
	cmd := &cobra.Command{
		Use:     "parse <text>",
		Short:   "Parse scheduling text and print the result as JSON",
		Example: `  temporalctl parse --date 2025-01-13 --tz Europe/Paris "mardi 14 janvier à 10h"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := flags.parseInput(args)
			if err != nil {
				return err
			}
			l := flags.logger()
			uc := usecase.New(l, parser.New(l), nil, usecase.Config{})

			out, err := uc.Parse(cmd.Context(), in)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out.Parsed)
		},
	}
	flags.register(cmd)
	return cmd
}

func checkCmd() *cobra.Command {
	var (
		flags       contextFlags
		busyFile    string
		credentials string
		calendarID  string
		useEvents   bool
		granularity int
		timeout     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "check <text>",
		Short: "Parse text, plan slots and report calendar conflicts",
		Long: `check parses the text, plans candidate slots and checks them against busy
periods read either from a JSON file (--busy-file) or from Google Calendar
(--credentials).

The busy file holds a JSON array of {"start", "end", "eventTitle"} objects
with RFC3339 times.`,
		Example: `  temporalctl check --date 2025-01-13 --busy-file busy.json "demain à 14h"
  temporalctl check --credentials credentials.json --events "vendredi après-midi"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := flags.parseInput(args)
			if err != nil {
				return err
			}
			l := flags.logger()

			ctx := cmd.Context()
			cal, err := calendarSource(ctx, busyFile, credentials, calendarID, flags.timezone, useEvents)
			if err != nil {
				return err
			}
			loc, _ := time.LoadLocation(flags.timezone) // validated by parseInput
			detector := conflict.New(cal, l, nil, conflict.Config{Location: loc, FetchTimeout: timeout})
			uc := usecase.New(l, parser.New(l), detector, usecase.Config{Timezone: flags.timezone})

			out, err := uc.Analyze(ctx, scheduling.AnalyzeInput{ParseInput: in, Granularity: granularity})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"parsed":             out.Parsed,
				"dates":              out.Dates,
				"time_slots_by_date": out.TimeSlotsByDate,
				"conflicts":          out.Conflicts,
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&busyFile, "busy-file", "", "JSON file of busy intervals")
	cmd.Flags().StringVar(&credentials, "credentials", "", "Google credentials file (service account, or OAuth desktop with token.json in the working directory)")
	cmd.Flags().StringVar(&calendarID, "calendar", gcalendar.DefaultCalendarID, "Google calendar id")
	cmd.Flags().BoolVar(&useEvents, "events", false, "use Events.List instead of FreeBusy to get event titles")
	cmd.Flags().IntVar(&granularity, "granularity", conflict.DefaultGranularity, "slot length and step in minutes")
	cmd.Flags().DurationVar(&timeout, "timeout", conflict.DefaultFetchTimeout, "timeout per calendar call")
	cmd.MarkFlagsMutuallyExclusive("busy-file", "credentials")
	return cmd
}

func calendarSource(ctx context.Context, busyFile, credentials, calendarID, timezone string, useEvents bool) (conflict.Calendar, error) {
	switch {
	case busyFile != "":
		busy, err := readBusyFile(busyFile)
		if err != nil {
			return nil, err
		}
		return conflict.NewStatic(busy), nil
	case credentials != "":
		client, err := gcalendar.NewClientFromCredentialsFile(ctx, credentials)
		if err != nil {
			return nil, err
		}
		if useEvents {
			return conflict.NewGoogleEvents(client, calendarID), nil
		}
		return conflict.NewGoogleFreeBusy(client, calendarID, timezone), nil
	default:
		return nil, fmt.Errorf("one of --busy-file or --credentials is required")
	}
}

func readBusyFile(path string) ([]model.BusyInterval, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read busy file: %w", err)
	}
	var busy []model.BusyInterval
	if err := json.Unmarshal(data, &busy); err != nil {
		return nil, fmt.Errorf("decode busy file: %w", err)
	}
	for i, b := range busy {
		if !b.Start.Before(b.End) {
			return nil, fmt.Errorf("busy interval %d: start must be before end", i)
		}
	}
	return busy, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
