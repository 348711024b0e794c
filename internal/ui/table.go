package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focusring/internal/models"
	"github.com/ayoisaiah/focusring/internal/phase"
	"github.com/ayoisaiah/focusring/internal/timeutil"
)

const timeLayout = "Jan 02 15:04:05"

func PrintTable(data [][]string, writer io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output history table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}

// HistoryTable converts records into table rows with a header.
func HistoryTable(records []models.Record) [][]string {
	data := [][]string{
		{"#", "PHASE", "STARTED", "COMPLETED", "LENGTH"},
	}

	for i := range records {
		r := records[i]

		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			PhaseColor(r.Phase, r.Phase.Title()),
			r.StartedAt.Local().Format(timeLayout),
			r.CompletedAt.Local().Format(timeLayout),
			timeutil.MMSS(r.Duration),
		})
	}

	return data
}

// Totals sums the time spent in each phase.
func Totals(records []models.Record) map[phase.Phase]time.Duration {
	totals := make(map[phase.Phase]time.Duration, 2)

	for i := range records {
		totals[records[i].Phase] += records[i].Duration
	}

	return totals
}

// PrintHistory writes the history table followed by per-phase totals.
func PrintHistory(records []models.Record, writer io.Writer) {
	if len(records) == 0 {
		pterm.Info.Println("No completed phases in this period")
		return
	}

	PrintTable(HistoryTable(records), writer)

	totals := Totals(records)

	for _, p := range []phase.Phase{phase.Work, phase.Rest} {
		fmt.Fprintf(
			writer,
			"%s: %s\n",
			Highlight(p.Title()),
			PhaseColor(p, timeutil.MMSS(totals[p])),
		)
	}
}
