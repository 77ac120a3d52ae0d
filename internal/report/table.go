package report

import (
	"fmt"

	"github.com/feierabend/internal/work"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Table writes every figure of b as a two column table followed by one row
// per break.
func (p *Printer) Table(b *work.Budget) error {
	t := table.NewWriter()
	t.SetOutputMirror(p.w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"", "Value"})

	t.AppendRows([]table.Row{
		{"Now", Clock(b.Now)},
		{"Start", Clock(b.Start)},
		{fmt.Sprintf("%s reached at", HoursLabel(b.Target)), Clock(b.TargetAt)},
		{fmt.Sprintf("%s reached at", HoursLabel(b.SoftLimit)), Clock(b.SoftAt)},
		{fmt.Sprintf("%s reached at", HoursLabel(b.HardLimit)), Clock(b.HardAt)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Already done", HHMM(b.Worked)},
		{RemainingTitle(b), HHMM(b.Remaining)},
		{"No longer than", HHMM(b.LatestStop)},
	})
	t.AppendSeparator()
	for i, d := range b.Breaks {
		name := fmt.Sprintf("Break %d", i+1)
		if b.Inferred && i == len(b.Breaks)-1 {
			name += " (assumed)"
		}
		t.AppendRow(table.Row{name, HHMM(d)})
	}
	t.AppendFooter(table.Row{"Total break", HHMM(b.TotalBreak)})
	t.AppendFooter(table.Row{"Longest break", HHMM(b.LongestBreak)})

	t.Render()
	return nil
}

