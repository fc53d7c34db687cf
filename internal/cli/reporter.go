package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/sagesearch/copy-assets/internal/domain"
)

// Ensure consoleReporter implements domain.Reporter.
var _ domain.Reporter = (*consoleReporter)(nil)

// Status line colors.
var (
	colorSuccess = lipgloss.Color("#00B894") // Green
	colorError   = lipgloss.Color("#D63031") // Red
	colorMuted   = lipgloss.Color("#636E72") // Gray
)

// consoleReporter prints human-readable progress lines.
type consoleReporter struct {
	out     io.Writer
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
	dryRun  bool
}

// newConsoleReporter creates a reporter writing to out. Colors are applied
// only when color is true and out is a terminal.
func newConsoleReporter(out io.Writer, color, dryRun bool) *consoleReporter {
	r := &consoleReporter{
		out:     out,
		success: lipgloss.NewStyle(),
		failure: lipgloss.NewStyle(),
		muted:   lipgloss.NewStyle(),
		dryRun:  dryRun,
	}
	if color {
		renderer := lipgloss.NewRenderer(out)
		r.success = renderer.NewStyle().Foreground(colorSuccess)
		r.failure = renderer.NewStyle().Foreground(colorError)
		r.muted = renderer.NewStyle().Foreground(colorMuted)
	}
	return r
}

func (r *consoleReporter) Start() {
	_, _ = fmt.Fprintln(r.out, "Copying image assets...")
	if r.dryRun {
		_, _ = fmt.Fprintln(r.out, r.muted.Render("(dry run: nothing is written to disk)"))
	}
}

func (r *consoleReporter) Outcome(o domain.Outcome) {
	switch o.Kind {
	case domain.OutcomeCopied:
		_, _ = fmt.Fprintf(r.out, "%s %s → %s\n", r.success.Render("✅ Copied:"), o.Entry.Source, o.Entry.Destination)
	case domain.OutcomeSourceMissing:
		_, _ = fmt.Fprintf(r.out, "%s %s\n", r.failure.Render("❌ Source file not found:"), o.Entry.Source)
	case domain.OutcomeCopyFailed:
		_, _ = fmt.Fprintf(r.out, "%s %s → %s: %v\n", r.failure.Render("❌ Copy failed:"), o.Entry.Source, o.Entry.Destination, o.Err)
	}
}

func (r *consoleReporter) Summary(destinations []string) {
	_, _ = fmt.Fprintln(r.out)
	_, _ = fmt.Fprintln(r.out, "Assets copied successfully!")
	_, _ = fmt.Fprintln(r.out, "Files should now be available at:")
	for _, dst := range destinations {
		_, _ = fmt.Fprintf(r.out, "- %s\n", dst)
	}
}
