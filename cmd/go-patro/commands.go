package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tartampluch/go-patro/internal/calendar"
	"github.com/tartampluch/go-patro/internal/config"
	"github.com/tartampluch/go-patro/internal/engine"
	"github.com/tartampluch/go-patro/internal/server"
	"github.com/tartampluch/go-patro/internal/ui"
	"github.com/tartampluch/go-patro/internal/worker"
)

// app carries the state shared by all commands.
type app struct {
	clock calendar.Clock
	debug bool
	logs  io.Closer
}

func newApp(clock calendar.Clock) *app {
	return &app{clock: clock}
}

func (a *app) closeLogs() {
	if a.logs != nil {
		_ = a.logs.Close() // Best effort close
		a.logs = nil
	}
}

// rootCmd builds the command tree. Without a subcommand the feed server runs.
func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          config.CmdName,
		Short:        config.CmdShort,
		Version:      config.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runServe(cmd.Context())
		},
	}
	cmd.SetVersionTemplate(versionLine())
	cmd.Flags().Bool(config.FlagVersion, false, config.FlagDescVersion)
	cmd.PersistentFlags().BoolVar(&a.debug, config.FlagDebug, false, config.FlagDescDebug)

	cmd.AddCommand(a.serveCmd(), a.convertCmd(), a.monthCmd())
	return cmd
}

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdServeUse,
		Short: config.CmdServeShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runServe(cmd.Context())
		},
	}
}

// runServe loads the settings, then runs the HTTP server and the refresh
// worker until ctx is cancelled or the server fails.
func (a *app) runServe(ctx context.Context) error {
	a.logs = setupLogging(os.Stdout, slog.LevelInfo, a.debug, true)
	logStartupInfo()

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	// Reject grid options the worker would fail on at every tick.
	grid, err := engine.GridConfigFromSettings(settings, calendar.Today(a.clock, settings.System))
	if err == nil {
		err = grid.Validate()
	}
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrSettings, err)
	}
	slog.Info(config.MsgSettings,
		config.LogKeyComponent, config.CompMain,
		config.LogKeyPort, settings.Port,
		config.LogKeySystem, settings.System,
		config.LogKeyBounded, settings.HasBoundaries,
		config.LogKeyInterval, settings.RefreshInterval(),
	)

	srv := server.NewCalendarServer(settings.Port)
	refresher := &worker.Refresher{
		Renderer:  &engine.Generator{Clock: a.clock},
		Publisher: srv,
		Settings:  settings,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		refresher.Run(ctx)
		return nil
	})
	g.Go(func() error {
		return srv.Start(ctx)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return nil
}

// cliLogging sends warnings and errors of one-shot commands to stderr.
func (a *app) cliLogging(cmd *cobra.Command) {
	a.logs = setupLogging(cmd.ErrOrStderr(), slog.LevelWarn, a.debug, false)
}

func (a *app) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdConvertUse,
		Short: config.CmdConvertShort,
		Args:  cobra.ExactArgs(2),
		PreRun: func(cmd *cobra.Command, _ []string) {
			a.cliLogging(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			system, err := calendar.ParseSystem(args[1])
			if err != nil {
				return fmt.Errorf("%s: %w", config.ErrDateArg, err)
			}
			date, err := calendar.Parse(args[0], system)
			if err != nil {
				return fmt.Errorf("%s: %w", config.ErrDateArg, err)
			}
			converted := date.Reverse()
			slog.Debug(config.CmdConvertShort,
				config.LogKeyComponent, config.CompCLI,
				config.LogKeyStart, date.String(),
				config.LogKeyEnd, converted.String(),
			)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), config.MsgConvertOutput, date, converted, date.DayOfWeek())
			return err
		},
	}
}

// monthOptions are the flags of the month command.
type monthOptions struct {
	system      string
	firstDay    string
	rows        int
	months      int
	json        bool
	counterpart bool
}

func (a *app) monthCmd() *cobra.Command {
	var opts monthOptions
	cmd := &cobra.Command{
		Use:   config.CmdMonthUse,
		Short: config.CmdMonthShort,
		Args:  cobra.MaximumNArgs(1),
		PreRun: func(cmd *cobra.Command, _ []string) {
			a.cliLogging(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMonth(cmd, args, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.system, config.FlagSystem, config.DefaultSystem, config.FlagDescSystem)
	f.StringVar(&opts.firstDay, config.FlagFirstDay, config.DefaultFirstDay, config.FlagDescFirstDay)
	f.IntVar(&opts.rows, config.FlagRows, config.DefaultMaxRowCount, config.FlagDescRows)
	f.IntVar(&opts.months, config.FlagMonths, 1, config.FlagDescMonths)
	f.BoolVar(&opts.json, config.FlagJSON, false, config.FlagDescJSON)
	f.BoolVar(&opts.counterpart, config.FlagCounterpart, false, config.FlagDescCounter)
	return cmd
}

// runMonth prints opts.months months starting at the month given as
// YYYY-MM, or at the current month when no argument is given.
func (a *app) runMonth(cmd *cobra.Command, args []string, opts monthOptions) error {
	system, err := calendar.ParseSystem(opts.system)
	if err != nil {
		return err
	}
	first, err := calendar.ParseDayOfWeek(opts.firstDay)
	if err != nil {
		return err
	}
	if opts.months < 1 {
		return errors.New(config.MsgMonthCount)
	}

	today := calendar.Today(a.clock, system)
	start := today.AtStartOfMonth()
	if len(args) == 1 {
		if start, err = calendar.Parse(args[0]+"-01", system); err != nil {
			return fmt.Errorf("%s: %w", config.ErrMonthArg, err)
		}
	}

	grid := engine.GridConfig{
		StartBound:     start,
		EndBound:       start.PlusMonths(opts.months - 1).AtEndOfMonth(),
		FirstDayOfWeek: first,
		MaxRowCount:    opts.rows,
		InDateStyle:    engine.InDateAllMonths,
		OutDateStyle:   engine.OutDateEndOfRow,
		HasBoundaries:  true,
	}
	pages, err := grid.Generate()
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrGridGenerate, err)
	}

	out := cmd.OutOrStdout()
	if opts.json {
		data, err := engine.EncodeJSON(pages)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	view := ui.NewMonthView(lipgloss.NewRenderer(out), first)
	view.Today = today
	view.ShowCounterpart = opts.counterpart
	_, err = fmt.Fprintln(out, view.Render(pages))
	return err
}
