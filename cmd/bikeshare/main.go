// Package main is the entry point for the Bike Share Dashboard TUI. It loads
// configuration and both record sets, then runs the Bubble Tea program.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/app"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/config"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/logger"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/services"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/ui/tabs/dashboard"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/ui/tabs/info"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/ui/tabs/trend"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/version"
)

type options struct {
	flags       config.Flags
	showVersion bool
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	if opts.showVersion {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	if err := run(opts.flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("bikeshare", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.flags.DayFile, "day", "", "day-level CSV file")
	fs.StringVar(&opts.flags.HourFile, "hour", "", "hour-level CSV file")
	fs.StringVar(&opts.flags.DatabasePath, "db", "", "SQLite database holding both record sets")
	fs.BoolVar(&opts.showVersion, "v", false, "show version information")
	fs.BoolVar(&opts.showVersion, "version", false, "show version information")
	fs.Usage = func() { printUsage(output, fs) }

	err := fs.Parse(args)
	return opts, err
}

// run contains the main application logic, separated for cleaner error handling.
func run(flags config.Flags) error {
	cfg, err := config.Load(flags)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logCloser, err := logger.Init(cfg.LogFile, logger.ParseLevel(cfg.LogLevel))
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logCloser.Close()

	logger.Info("starting", "version", version.GetVersion(), "source", cfg.Source)

	svcManager, err := services.NewManager(cfg)
	if err != nil {
		logger.Error("failed to load data", "error", err)
		return err
	}
	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: error closing services: %v\n", closeErr)
		}
	}()

	model := app.NewModel(svcManager)

	// Tab order matches app.TabDashboard, app.TabTrend and app.TabInfo.
	state := model.GetState()
	model.SetTabs([]app.Tab{
		dashboard.New(state),
		trend.New(state),
		info.New(state, cfg),
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	p := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		<-sigChan
		p.Send(tea.Quit())
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	logger.Info("exiting")
	return nil
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprint(w, `Bike Share Dashboard TUI - rentals by date, hour and season

Usage:
  bikeshare [flags]

Flags:
`)
	fs.PrintDefaults()
	fmt.Fprint(w, `
Keyboard Shortcuts:
  1-3, [ ]        Switch tabs (Dashboard, Trend, Info)
  tab             Switch between start and end date
  ←/→ ↑/↓         Move the focused date by a day or a week
  pgup/pgdn       Move the focused date by 30 days
  e               Type a date (YYYY-MM-DD)
  J/K             Scroll the dashboard
  ?               Toggle help
  q, Ctrl+C       Quit

Environment Variables:
  BIKESHARE_SOURCE         csv or sqlite (default: csv)
  BIKESHARE_DAY_FILE       Day-level CSV (default: day_clean.csv)
  BIKESHARE_HOUR_FILE      Hour-level CSV (default: hour_clean.csv)
  BIKESHARE_DATABASE_PATH  SQLite database path
  BIKESHARE_LOG_FILE       Log file path
  BIKESHARE_LOG_LEVEL      debug, info, warn or error (default: info)

Configuration:
  The application looks for .env files in the current directory,
  ~/.config/bikeshare-tui/.env and the parent directory.
`)
}
