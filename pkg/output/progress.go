package output

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// ProgressReporter renders pipeline progress as a pterm spinner when
// stdout is an interactive terminal and stays silent otherwise. Its
// Report method satisfies types.ProgressFunc.
type ProgressReporter struct {
	enabled bool
	spinner *pterm.SpinnerPrinter
	phase   string
}

// NewProgressReporter creates a reporter wired to stdout.
func NewProgressReporter() *ProgressReporter {
	return &ProgressReporter{enabled: stdoutIsTerminal()}
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Report updates the spinner for the given phase and item. Spinner
// mutations only happen on phase transitions and item updates; the
// fraction is folded into the text.
func (r *ProgressReporter) Report(phase, item string, fraction float64) {
	if !r.enabled {
		return
	}

	text := phase
	if item != "" {
		text = phase + " " + item
	}

	if r.spinner == nil {
		r.spinner, _ = pterm.DefaultSpinner.Start(text)
		r.phase = phase
		return
	}

	if phase != r.phase {
		r.phase = phase
	}
	r.spinner.UpdateText(text)
}

// Done stops the spinner, marking it according to the run's outcome.
func (r *ProgressReporter) Done(success bool) {
	if r.spinner == nil {
		return
	}
	if success {
		r.spinner.Success("Organized")
	} else {
		r.spinner.Fail("Failed")
	}
	r.spinner = nil
}
