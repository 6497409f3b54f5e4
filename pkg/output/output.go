// Package output renders command results to the terminal.
package output

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/stackborn/ticketlog/pkg/logscan"
)

var (
	styleSuccess  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	styleInfo     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleHeader   = lipgloss.NewStyle().Bold(true)
	styleID       = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	styleEndpoint = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// Printer writes styled command output to a writer.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Successf prints a success message.
func (p *Printer) Successf(format string, args ...any) {
	fmt.Fprintln(p.w, styleSuccess.Render(fmt.Sprintf(format, args...)))
}

// Infof prints a neutral informational message.
func (p *Printer) Infof(format string, args ...any) {
	fmt.Fprintln(p.w, styleInfo.Render(fmt.Sprintf(format, args...)))
}

// Headerf prints a bold header line.
func (p *Printer) Headerf(format string, args ...any) {
	fmt.Fprintln(p.w, styleHeader.Render(fmt.Sprintf(format, args...)))
}

// Correlation prints a find result: id, endpoint, and the response payload
// when one was extracted.
func (p *Printer) Correlation(c *logscan.Correlation) {
	line := styleID.Render("#" + c.Entry.ID)
	if c.Entry.Endpoint != "" {
		line += " " + styleEndpoint.Render(c.Entry.Endpoint)
	}
	fmt.Fprintln(p.w, line)

	if c.Payload != "" {
		fmt.Fprintln(p.w, c.Payload)
	} else {
		p.Infof("(no response payload recorded for this entry)")
	}
}

// Matches prints search results grouped by source file, in scan order.
func (p *Printer) Matches(matches []logscan.Match) {
	var current string
	for _, m := range matches {
		if m.Source != current {
			current = m.Source
			p.Headerf("%s:", filepath.Base(m.Source))
		}
		line := "  " + styleID.Render("#"+m.ID)
		if m.Endpoint != "" {
			line += " " + styleEndpoint.Render(m.Endpoint)
		}
		fmt.Fprintln(p.w, line)
	}
}
