package report

import (
	"encoding/json"

	"github.com/feierabend/internal/work"
)

type budgetExport struct {
	Now          string   `json:"now"`
	Start        string   `json:"start"`
	Target       string   `json:"target"`
	TargetHours  string   `json:"target_hours"`
	Elapsed      string   `json:"elapsed"`
	Worked       string   `json:"worked"`
	Done         bool     `json:"done"`
	Remaining    string   `json:"remaining"`
	Status       string   `json:"status"`
	LatestStop   string   `json:"latest_stop"`
	TargetAt     string   `json:"target_at"`
	SoftLimitAt  string   `json:"soft_limit_at"`
	HardLimitAt  string   `json:"hard_limit_at"`
	Breaks       []string `json:"breaks"`
	Inferred     bool     `json:"break_inferred"`
	TotalBreak   string   `json:"total_break"`
	LongestBreak string   `json:"longest_break"`
	NotStarted   bool     `json:"not_started,omitempty"`
}

// JSON writes b as an indented JSON document with HH:MM and HH:MM:SS strings.
func (p *Printer) JSON(b *work.Budget) error {
	breaks := make([]string, 0, len(b.Breaks))
	for _, d := range b.Breaks {
		breaks = append(breaks, HHMM(d))
	}

	encoder := json.NewEncoder(p.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(budgetExport{
		Now:          Clock(b.Now),
		Start:        Clock(b.Start),
		Target:       HHMM(b.Target),
		TargetHours:  DecimalHours(b.Target),
		Elapsed:      HHMM(b.Elapsed),
		Worked:       HHMM(b.Worked),
		Done:         b.Done,
		Remaining:    HHMM(b.Remaining),
		Status:       RemainingLabel(b),
		LatestStop:   HHMM(b.LatestStop),
		TargetAt:     Clock(b.TargetAt),
		SoftLimitAt:  Clock(b.SoftAt),
		HardLimitAt:  Clock(b.HardAt),
		Breaks:       breaks,
		Inferred:     b.Inferred,
		TotalBreak:   HHMM(b.TotalBreak),
		LongestBreak: HHMM(b.LongestBreak),
		NotStarted:   b.NotStarted(),
	})
}
