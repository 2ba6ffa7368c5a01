// Package ui provides terminal UI components using pterm.
package ui

import (
	"fmt"
	"sort"
	"time"

	"github.com/pterm/pterm"
)

// UI wraps pterm components for samrup.
type UI struct {
	quiet   bool
	verbose bool
}

// New creates a new UI instance.
func New(quiet, verbose bool) *UI {
	if quiet {
		pterm.DisableOutput()
	}
	return &UI{quiet: quiet, verbose: verbose}
}

// Banner prints the application banner.
func (u *UI) Banner() {
	pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("sam", pterm.NewStyle(pterm.FgCyan)),
		pterm.NewLettersFromStringWithStyle("rup", pterm.NewStyle(pterm.FgLightBlue)),
	).Render()

	pterm.DefaultCenter.Println(
		pterm.FgGray.Sprint("Approximate Matcher for Romanized Tokens"),
	)
	fmt.Println()
}

// Config prints the configuration summary.
func (u *UI) Config(reference string, radius, gramSize, gramLimit, workers int) {
	pterm.DefaultSection.Println("Configuration")

	data := [][]string{
		{"Reference", reference},
		{"BK-tree Radius", fmt.Sprintf("%d", radius)},
		{"Gram Size / Limit", fmt.Sprintf("%d / %d", gramSize, gramLimit)},
		{"Workers", fmt.Sprintf("%d", workers)},
	}

	pterm.DefaultTable.WithData(data).Render()
	fmt.Println()
}

// Phase prints a phase header.
func (u *UI) Phase(number int, total int, name string) {
	pterm.DefaultSection.WithLevel(2).Println(
		fmt.Sprintf("[%d/%d] %s", number, total, name),
	)
}

// Spinner creates a spinner for long operations.
func (u *UI) Spinner(message string) *pterm.SpinnerPrinter {
	spinner, _ := pterm.DefaultSpinner.
		WithRemoveWhenDone(true).
		Start(message)
	return spinner
}

// Progress creates a progress bar.
func (u *UI) Progress(title string, total int) *pterm.ProgressbarPrinter {
	pb, _ := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle(title).
		WithShowElapsedTime(true).
		WithShowCount(true).
		Start()
	return pb
}

// MatchStats prints per-status and per-stage counts for a batch run.
func (u *UI) MatchStats(matched, emptyInput, emptyVocab int, byStage map[string]int) {
	data := pterm.TableData{{"Outcome", "Queries"}}
	data = append(data, []string{"matched", fmt.Sprintf("%d", matched)})
	if emptyInput > 0 {
		data = append(data, []string{"empty input", fmt.Sprintf("%d", emptyInput)})
	}
	if emptyVocab > 0 {
		data = append(data, []string{"empty vocabulary", fmt.Sprintf("%d", emptyVocab)})
	}

	stages := make([]string, 0, len(byStage))
	for stage := range byStage {
		stages = append(stages, stage)
	}
	sort.Strings(stages)
	for _, stage := range stages {
		data = append(data, []string{"via " + stage, fmt.Sprintf("%d", byStage[stage])})
	}

	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	fmt.Println()
}

// Accuracy prints the gold-scored accuracy for a batch run.
func (u *UI) Accuracy(correct, scored, skipped int, rate float64) {
	pterm.DefaultSection.WithLevel(2).Println("Accuracy")
	data := [][]string{
		{"Correct", fmt.Sprintf("%d / %d", correct, scored)},
		{"Rate", fmt.Sprintf("%.2f%%", rate*100)},
	}
	if skipped > 0 {
		data = append(data, []string{"No gold row", fmt.Sprintf("%d", skipped)})
	}
	pterm.DefaultTable.WithData(data).Render()
	fmt.Println()
}

// FinalReport prints the final summary report.
func (u *UI) FinalReport(queries, matched int, duration time.Duration) {
	pterm.DefaultSection.Println("Summary")

	throughput := float64(0)
	if duration.Seconds() > 0 {
		throughput = float64(queries) / duration.Seconds()
	}

	panel := pterm.DefaultBox.WithTitle("Results").Sprint(
		fmt.Sprintf(
			"  Queries:     %s\n"+
				"  Matched:     %s\n"+
				"  Duration:    %s\n"+
				"  Throughput:  %s queries/sec",
			pterm.FgGreen.Sprintf("%d", queries),
			pterm.FgCyan.Sprintf("%d", matched),
			pterm.FgYellow.Sprint(duration.Round(time.Millisecond)),
			pterm.FgMagenta.Sprintf("%.0f", throughput),
		),
	)
	fmt.Println(panel)
}

// Success prints a success message.
func (u *UI) Success(message string) {
	pterm.Success.Println(message)
}

// Error prints an error message.
func (u *UI) Error(message string) {
	pterm.Error.Println(message)
}

// Warning prints a warning message.
func (u *UI) Warning(message string) {
	pterm.Warning.Println(message)
}

// Info prints an info message.
func (u *UI) Info(message string) {
	pterm.Info.Println(message)
}

// Debug prints a debug message (only in verbose mode).
func (u *UI) Debug(message string) {
	if u.verbose {
		pterm.Debug.Println(message)
	}
}

// Done prints the completion message.
func (u *UI) Done() {
	fmt.Println()
	pterm.DefaultCenter.Println(
		pterm.FgGreen.Sprint("✓ Done!"),
	)
}
