package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/feierabend/internal/work"
	"github.com/muesli/termenv"
)

// Format selects how a budget is written.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatSVG   Format = "svg"
	FormatHTML  Format = "html"
)

// Formats lists every supported output format.
var Formats = []Format{FormatText, FormatTable, FormatJSON, FormatSVG, FormatHTML}

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format: %s (use text, table, json, svg or html)", s)
}

// indent lines continuation rows up under the "[HH:MM:SS] " prefix.
var indent = strings.Repeat(" ", len("[15:04:05] "))

// Printer writes budgets to one destination.
type Printer struct {
	w io.Writer

	label  lipgloss.Style
	value  lipgloss.Style
	more   lipgloss.Style
	remain lipgloss.Style
	dim    lipgloss.Style
}

// NewPrinter returns a Printer for w. Without color every style renders
// plain text.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		w:      w,
		label:  r.NewStyle().Foreground(lipgloss.Color("#928374")),
		value:  r.NewStyle().Bold(true),
		more:   r.NewStyle().Foreground(lipgloss.Color("#8ec07c")).Bold(true),
		remain: r.NewStyle().Foreground(lipgloss.Color("#fabd2f")).Bold(true),
		dim:    r.NewStyle().Foreground(lipgloss.Color("#928374")).Italic(true),
	}
}

// Print writes b in one of the terminal formats: text, table or json.
func (p *Printer) Print(b *work.Budget, f Format) error {
	switch f {
	case FormatText, "":
		return p.Text(b)
	case FormatTable:
		return p.Table(b)
	case FormatJSON:
		return p.JSON(b)
	default:
		return fmt.Errorf("%s is not a terminal format", f)
	}
}

// Text writes the three line summary:
//
//	[14:00:00] start: 09:00:00; 8h: 17:30:00; 9h: 18:45:00; 10h: 19:45:00
//	           already done: 04:30; 03:30 remaining; no longer than: 05:45
//	           total break time: 00:30 (assumed); longest break: 00:30
func (p *Printer) Text(b *work.Budget) error {
	status := p.remain.Render(RemainingLabel(b))
	if b.Done {
		status = p.more.Render(RemainingLabel(b))
	}

	totalBreak := p.value.Render(HHMM(b.TotalBreak))
	if b.Inferred {
		totalBreak += " " + p.dim.Render("(assumed)")
	}

	lines := []string{
		fmt.Sprintf("[%s] %s %s; %s %s; %s %s; %s %s",
			Clock(b.Now),
			p.label.Render("start:"), p.value.Render(Clock(b.Start)),
			p.label.Render(HoursLabel(b.Target)+":"), p.value.Render(Clock(b.TargetAt)),
			p.label.Render(HoursLabel(b.SoftLimit)+":"), p.value.Render(Clock(b.SoftAt)),
			p.label.Render(HoursLabel(b.HardLimit)+":"), p.value.Render(Clock(b.HardAt)),
		),
		fmt.Sprintf("%s%s %s; %s %s; %s %s",
			indent,
			p.label.Render("already done:"), p.value.Render(HHMM(b.Worked)),
			p.value.Render(HHMM(b.Remaining)), status,
			p.label.Render("no longer than:"), p.value.Render(HHMM(b.LatestStop)),
		),
		fmt.Sprintf("%s%s %s; %s %s",
			indent,
			p.label.Render("total break time:"), totalBreak,
			p.label.Render("longest break:"), p.value.Render(HHMM(b.LongestBreak)),
		),
	}

	_, err := fmt.Fprintln(p.w, strings.Join(lines, "\n"))
	return err
}

// RemainingLabel is "more" once the target is exceeded, "remaining" before.
func RemainingLabel(b *work.Budget) string {
	if b.Done {
		return "more"
	}
	return "remaining"
}

// RemainingTitle is RemainingLabel for headings.
func RemainingTitle(b *work.Budget) string {
	if b.Done {
		return "More"
	}
	return "Remaining"
}

// HoursLabel renders a threshold such as "9h" or "7.8h".
func HoursLabel(d time.Duration) string {
	return DecimalHours(d) + "h"
}
