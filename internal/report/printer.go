// Package report prints per-item outcomes to the console.
//
// Each download.ProgressEvent becomes one line:
//
//	downloaded: http://pd.npr.org/anon.npr-mp3/npr/money/2016/01/20160115_up_first.mp3
//	failed: https://www.npr.org/some/page
//
// Events without a URL print their message alone. Labels are colored when
// the writer is a terminal and left plain otherwise.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/planetmoney-dl/internal/download"
)

// Printer writes progress events to a writer, one line each.
type Printer struct {
	w       io.Writer
	styles  map[download.ProgressLevel]lipgloss.Style
	verbose bool
}

// NewPrinter creates a Printer writing to w.
//
// Events at LevelVerbose are dropped unless verbose is set.
func NewPrinter(w io.Writer, verbose bool) *Printer {
	r := lipgloss.NewRenderer(w)

	return &Printer{
		w: w,
		styles: map[download.ProgressLevel]lipgloss.Style{
			download.LevelInfo:    r.NewStyle(),
			download.LevelVerbose: r.NewStyle().Faint(true),
			download.LevelWarning: r.NewStyle().Foreground(lipgloss.Color("3")),
			download.LevelError:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
			download.LevelSuccess: r.NewStyle().Foreground(lipgloss.Color("2")),
		},
		verbose: verbose,
	}
}

// Print writes one event. It has the signature download.NewManager expects.
func (p *Printer) Print(event download.ProgressEvent) {
	if event.Level == download.LevelVerbose && !p.verbose {
		return
	}

	style := p.styles[event.Level]
	if event.URL == "" {
		fmt.Fprintln(p.w, style.Render(event.Message))
		return
	}
	fmt.Fprintf(p.w, "%s %s\n", style.Render(event.Message+":"), event.URL)
}
