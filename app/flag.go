package app

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusring/internal/timeutil"
)

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a phase is completed",
	}

	noSoundFlag = &cli.BoolFlag{
		Name:  "no-sound",
		Usage: "Disable the chime that plays after a phase is completed",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each phase",
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log verbosity: debug, info, warn or error",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the history as JSON",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Reporting period: " + periodUsage(),
		Value:   string(timeutil.Period7Days),
	}
)

func periodUsage() string {
	var s string

	for i, p := range timeutil.PeriodCollection {
		if i > 0 {
			s += ", "
		}

		s += string(p)
	}

	return s
}
