package visualization

import (
	"fmt"
	"strings"
	"time"

	"github.com/feierabend/internal/report"
	"github.com/feierabend/internal/work"
)

type Visualizer struct{}

func New() *Visualizer {
	return &Visualizer{}
}

const (
	width   = 800
	height  = 220
	padding = 40
	barY    = 100
	barH    = 36

	xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>`
)

// GenerateDaySVG draws the day as a horizontal bar from start to the hard
// limit, with the time already spent filled in and the target, soft and
// hard limit marked.
func (v *Visualizer) GenerateDaySVG(b *work.Budget) string {
	end := b.HardAt
	if b.Now.After(end) {
		end = b.Now
	}
	span := end.Sub(b.Start)
	if span <= 0 {
		span = time.Minute
	}
	xOf := func(t time.Time) float64 {
		frac := float64(t.Sub(b.Start)) / float64(span)
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
		return float64(padding) + frac*float64(width-2*padding)
	}

	fill := "#3498DB"
	switch {
	case b.Now.After(b.HardAt):
		fill = "#F44336"
	case b.Now.After(b.SoftAt):
		fill = "#FF9800"
	case b.Done:
		fill = "#4CAF50"
	}

	var markers strings.Builder
	for _, m := range []struct {
		label string
		at    time.Time
	}{
		{report.HoursLabel(b.Target), b.TargetAt},
		{report.HoursLabel(b.SoftLimit), b.SoftAt},
		{report.HoursLabel(b.HardLimit), b.HardAt},
	} {
		x := xOf(m.at)
		markers.WriteString(fmt.Sprintf(`<line x1="%.0f" y1="%d" x2="%.0f" y2="%d" stroke="#E74C3C" stroke-width="2" stroke-dasharray="5,5"/>
  <text x="%.0f" y="%d" text-anchor="middle" font-size="11" fill="#E74C3C">%s %s</text>
  `,
			x, barY-14, x, barY+barH+14,
			x, barY-20, m.label, m.at.Format("15:04")))
	}

	nowX := xOf(b.Now)
	return xmlHeader + fmt.Sprintf(`
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">
  <defs>
    <linearGradient id="bgGrad" x1="0%%" y1="0%%" x2="0%%" y2="100%%">
      <stop offset="0%%" style="stop-color:#f5f7fa"/>
      <stop offset="100%%" style="stop-color:#e4e8ec"/>
    </linearGradient>
  </defs>
  <rect width="%d" height="%d" fill="url(#bgGrad)" rx="10"/>
  <text x="%d" y="30" text-anchor="middle" font-size="18" font-weight="bold" fill="#2c3e50">Workday</text>
  <text x="%d" y="55" text-anchor="middle" font-size="12" fill="#7f8c8d">Done: %s | %s %s | Breaks: %s</text>

  <!-- Track -->
  <rect x="%d" y="%d" width="%d" height="%d" fill="#E0E0E0" rx="4"/>
  <rect x="%d" y="%d" width="%.0f" height="%d" fill="%s" rx="4"/>

  <!-- Thresholds -->
  %s
  <!-- Now -->
  <line x1="%.0f" y1="%d" x2="%.0f" y2="%d" stroke="#2c3e50" stroke-width="3"/>
  <text x="%.0f" y="%d" text-anchor="middle" font-size="12" font-weight="bold" fill="#2c3e50">now %s</text>

  <!-- Hours -->
  %s
</svg>`,
		width, height, width, height,
		width, height,
		width/2,
		width/2, report.HHMM(b.Worked), report.HHMM(b.Remaining), report.RemainingLabel(b), report.HHMM(b.TotalBreak),
		padding, barY, width-2*padding, barH,
		padding, barY, nowX-float64(padding), barH, fill,
		markers.String(),
		nowX, barY-4, nowX, barY+barH+4,
		nowX, barY+barH+32, b.Now.Format("15:04"),
		v.generateHourLabels(b.Start, end, xOf),
	)
}

// generateHourLabels puts a tick under every full hour between start and end.
func (v *Visualizer) generateHourLabels(start, end time.Time, xOf func(time.Time) float64) string {
	var labels strings.Builder
	y := barY + barH + 60
	for t := start.Truncate(time.Hour).Add(time.Hour); !t.After(end); t = t.Add(time.Hour) {
		x := xOf(t)
		labels.WriteString(fmt.Sprintf(`<line x1="%.0f" y1="%d" x2="%.0f" y2="%d" stroke="#BDBDBD"/>`,
			x, y-16, x, y-10))
		labels.WriteString(fmt.Sprintf(`<text x="%.0f" y="%d" text-anchor="middle" font-size="10" fill="#7f8c8d">%s</text>`,
			x, y, t.Format("15:04")))
	}
	return labels.String()
}

// GenerateHTMLReport wraps the day timeline and the budget figures in a
// standalone HTML page.
func (v *Visualizer) GenerateHTMLReport(b *work.Budget) string {
	breakRows := make([]string, 0, len(b.Breaks))
	for i, d := range b.Breaks {
		name := fmt.Sprintf("Break %d", i+1)
		if b.Inferred && i == len(b.Breaks)-1 {
			name += " (assumed)"
		}
		breakRows = append(breakRows, fmt.Sprintf("<tr><td>%s</td><td>%s</td></tr>", name, report.HHMM(d)))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Feierabend - %s</title>
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; margin: 40px; background: #f5f7fa; }
    .container { max-width: 860px; margin: 0 auto; }
    .card { background: white; border-radius: 10px; padding: 24px; margin-bottom: 20px; box-shadow: 0 2px 8px rgba(0,0,0,0.1); }
    h1 { color: #2c3e50; margin-bottom: 8px; }
    h2 { color: #34495e; font-size: 18px; margin-bottom: 16px; }
    .subtitle { color: #7f8c8d; margin-bottom: 30px; }
    .stat { display: inline-block; text-align: center; padding: 20px; margin: 10px; background: #f8f9fa; border-radius: 8px; min-width: 120px; }
    .stat-value { font-size: 32px; font-weight: bold; color: #3498DB; }
    .stat-label { font-size: 12px; color: #7f8c8d; margin-top: 4px; }
    table { width: 100%%; border-collapse: collapse; margin-top: 16px; }
    th, td { padding: 12px; text-align: left; border-bottom: 1px solid #eee; }
    th { color: #7f8c8d; font-weight: 500; }
  </style>
</head>
<body>
  <div class="container">
    <h1>Workday</h1>
    <p class="subtitle">Started %s, as of %s</p>

    <div class="card">
      <div class="stat">
        <div class="stat-value">%s</div>
        <div class="stat-label">Already done</div>
      </div>
      <div class="stat">
        <div class="stat-value">%s</div>
        <div class="stat-label">%s</div>
      </div>
      <div class="stat">
        <div class="stat-value">%s</div>
        <div class="stat-label">No longer than</div>
      </div>
    </div>

    <div class="card">
      %s
    </div>

    <div class="card">
      <h2>Breaks</h2>
      <table>
        <tr><th>Break</th><th>Length</th></tr>
        %s
        <tr><th>Total</th><th>%s</th></tr>
      </table>
    </div>
  </div>
</body>
</html>`,
		b.Now.Format("Monday, January 2, 2006"),
		report.Clock(b.Start), report.Clock(b.Now),
		report.HHMM(b.Worked),
		report.HHMM(b.Remaining), report.RemainingTitle(b),
		report.HHMM(b.LatestStop),
		strings.TrimPrefix(v.GenerateDaySVG(b), xmlHeader+"\n"),
		strings.Join(breakRows, "\n        "),
		report.HHMM(b.TotalBreak),
	)
}
