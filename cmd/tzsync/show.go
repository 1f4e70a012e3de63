package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/five82/tzsync/internal/anchor"
	"github.com/five82/tzsync/internal/app"
	"github.com/five82/tzsync/internal/catalog"
	"github.com/five82/tzsync/internal/config"
	"github.com/five82/tzsync/internal/logging"
	"github.com/five82/tzsync/internal/timemath"
)

func newShowCmd(root *rootFlags) *cobra.Command {
	var (
		at      string
		twelve  bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "show [city...]",
		Short: "Print every location at one instant",
		Long: `Print the configured locations, or the given city slugs, at the current
slot. The first city is home; --at sets home's wall clock instead.`,
		Example: `  tzsync show
  tzsync show london tokyo new-york --at 09:00
  tzsync show sydney --at 2:30pm --12h`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if len(args) > 0 {
				cfg.Locations = args
			}

			level := slog.LevelWarn
			if root.verbose {
				level = slog.LevelDebug
			}
			logger := logging.New(logging.Config{Level: level, Output: cmd.ErrOrStderr()})

			engine, err := app.NewEngine(cfg, nil, logger)
			if err != nil {
				return err
			}
			if len(engine.Locations) == 0 {
				return fmt.Errorf("no known locations (see 'tzsync cities')")
			}

			st := engine.Sync.Initialize(engine.Locations)
			if at != "" {
				minutes, err := parseClock(at)
				if err != nil {
					return err
				}
				st = engine.Sync.EditAuthoritativeTime(st, minutes)
			}

			if noColor {
				color.NoColor = true
			}
			rows := engine.Sync.Rows(st, timemath.FormatFor(!twelve))
			renderShow(cmd.OutOrStdout(), rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "home wall clock, e.g. 09:00 or 2:30pm")
	cmd.Flags().BoolVar(&twelve, "12h", false, "12-hour labels")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colors")
	return cmd
}

func newCitiesCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "cities [query]",
		Short: "List or search the built-in city catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := catalog.All()
			if len(args) == 1 {
				entries = catalog.Search(args[0], limit)
			}
			if len(entries) == 0 {
				return fmt.Errorf("no matching cities")
			}
			renderCities(cmd.OutOrStdout(), entries)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", catalog.DefaultSearchLimit, "maximum search results")
	return cmd
}

// renderShow writes rows as a table with home highlighted.
func renderShow(w io.Writer, rows []anchor.Row) {
	homeColor := color.New(color.FgHiCyan, color.Bold)
	workColor := color.New(color.FgHiGreen)
	dimColor := color.New(color.FgHiBlack)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"", "Location", "Time", "Date", "Offset", "Diff", "Status", "Sun"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})

	for _, r := range rows {
		marker, name := "", r.Location.DisplayName()
		diff := r.DiffLabel
		if r.IsHome {
			marker = homeColor.Sprint("⌂")
			name = homeColor.Sprint(name)
			diff = dimColor.Sprint("home")
		}

		status := dimColor.Sprint("☾ night")
		if r.Daytime {
			status = "☀ day"
		}
		if r.Working {
			status = workColor.Sprint("working")
		}

		sun := fmt.Sprintf("↑%s ↓%s", clockLabel(r.Solar.SunriseMinutes), clockLabel(r.Solar.SunsetMinutes))
		t.AppendRow(table.Row{marker, name, r.TimeLabel, r.DateLabel, r.OffsetLabel, diff, status, sun})
	}
	t.Render()
}

func renderCities(w io.Writer, entries []catalog.Entry) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Slug", "City", "Country", "Zone"})
	for _, e := range entries {
		city := e.Name
		if e.State != "" {
			city += ", " + e.State
		}
		t.AppendRow(table.Row{e.Slug, city, e.Country, e.TimeZone})
	}
	t.Render()
}

func clockLabel(minutes float64) string {
	m := int(minutes)
	if m >= timemath.MinutesPerDay {
		m = timemath.MinutesPerDay - 1
	}
	return timemath.FormatClock(m, timemath.Format24Hour)
}

// parseClock accepts "HH:MM", "H:MMam", "Hpm" and bare hours.
func parseClock(s string) (int, error) {
	v := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	suffix := ""
	for _, sfx := range []string{"am", "pm"} {
		if strings.HasSuffix(v, sfx) {
			suffix = sfx
			v = strings.TrimSuffix(v, sfx)
		}
	}

	hourPart, minutePart, hasMinutes := strings.Cut(v, ":")
	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	minute := 0
	if hasMinutes {
		if minute, err = strconv.Atoi(minutePart); err != nil || len(minutePart) != 2 {
			return 0, fmt.Errorf("invalid time %q", s)
		}
	}

	switch suffix {
	case "":
		if hour < 0 || hour > 23 {
			return 0, fmt.Errorf("invalid time %q: hour out of range", s)
		}
	default:
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("invalid time %q: hour out of range", s)
		}
		hour %= 12
		if suffix == "pm" {
			hour += 12
		}
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q: minute out of range", s)
	}
	return hour*60 + minute, nil
}
