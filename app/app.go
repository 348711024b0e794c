// Package app wires the focusring command-line interface.
package app

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusring/internal/config"
)

// disableStyling disables all styling provided by pterm and lipgloss.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""

	lipgloss.SetColorProfile(termenv.Ascii)
}

// Get retrieves the focusring app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "focusring",
		Usage: `
		focusring alternates between a short work phase and a short rest phase,
		showing the time left in each as a draining progress ring.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "history",
				Usage:  "List the phases completed within a period. Defaults to 7 days",
				Action: historyAction,
				Flags: []cli.Flag{
					jsonFlag,
					periodFlag,
				},
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
			disableNotificationFlag,
			noSoundFlag,
			sessionCmdFlag,
			logLevelFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
