package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusring/internal/alert"
	"github.com/ayoisaiah/focusring/internal/apperr"
	"github.com/ayoisaiah/focusring/internal/config"
	"github.com/ayoisaiah/focusring/internal/logging"
	"github.com/ayoisaiah/focusring/internal/models"
	"github.com/ayoisaiah/focusring/internal/osutil"
	"github.com/ayoisaiah/focusring/internal/pathutil"
	"github.com/ayoisaiah/focusring/internal/screen"
	"github.com/ayoisaiah/focusring/internal/store"
	"github.com/ayoisaiah/focusring/internal/timeutil"
	"github.com/ayoisaiah/focusring/internal/ui"
)

const (
	envNoColor          = "NO_COLOR"
	envFocusringNoColor = "FOCUSRING_NO_COLOR"
)

var errInvalidPeriod = &apperr.Error{
	Message: "period %q is not recognised. Expected one of: %s",
}

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func parsePeriod(s string) (timeutil.Period, error) {
	p := timeutil.Period(s)

	if !slices.Contains(timeutil.PeriodCollection, p) {
		return "", errInvalidPeriod.Fmt(s, periodUsage())
	}

	return p, nil
}

func loadConfig(ctx *cli.Context) (*config.Config, error) {
	if err := pathutil.Initialize(); err != nil {
		return nil, err
	}

	return config.New(
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
}

// defaultAction runs the interactive timer.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	logFile, err := logging.Setup(pathutil.LogFilePath(), cfg.Settings.LogLevel)
	if err != nil {
		return err
	}

	defer logFile.Close()

	ui.DarkTheme = cfg.Display.DarkTheme

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	notifier := alert.New(alert.Options{
		Notify:   cfg.Notifications.Enabled,
		Sound:    cfg.Notifications.Sound,
		Cmd:      cfg.Settings.Cmd,
		Messages: cfg.Messages(),
	})

	m := screen.New(
		cfg,
		screen.WithRecorder(db),
		screen.WithAlerter(notifier),
	)

	slog.InfoContext(
		ctx.Context,
		"starting timer",
		slog.Duration("work", cfg.Durations().Work),
		slog.Duration("rest", cfg.Durations().Rest),
		slog.Duration("tick_interval", cfg.Timer.TickInterval),
	)

	_, err = tea.NewProgram(m, tea.WithContext(ctx.Context)).Run()

	return err
}

// historyAction prints the phases completed within the requested period.
func historyAction(ctx *cli.Context) error {
	period, err := parsePeriod(ctx.String("period"))
	if err != nil {
		return err
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	since, until := timeutil.PeriodBounds(period, time.Now())

	records, err := db.Records(since, until)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		if records == nil {
			records = []models.Record{}
		}

		b, err := json.Marshal(records)
		if err != nil {
			return err
		}

		fmt.Fprintln(ctx.App.Writer, string(b))

		return nil
	}

	ui.PrintHistory(records, ctx.App.Writer)

	return nil
}

// editConfigAction opens the config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	if err := pathutil.Initialize(); err != nil {
		return err
	}

	// make sure the file exists before the editor opens it
	if _, err := config.New(config.WithViperConfig(pathutil.ConfigFilePath())); err != nil {
		pterm.Warning.Println(err)
	}

	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	if _, exists := os.LookupEnv(envFocusringNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting focusring")

	return nil
}
