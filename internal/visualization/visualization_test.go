package visualization

import (
	"strings"
	"testing"
	"time"

	"github.com/feierabend/internal/work"
)

func budgetAt(t *testing.T, start, now time.Time, breaks work.Breaks) *work.Budget {
	t.Helper()
	b, err := work.DefaultRules().Calculate(work.Session{
		Start:  start,
		Now:    now,
		Target: 8 * time.Hour,
		Breaks: breaks,
	})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	return b
}

func TestGenerateDaySVGBasics(t *testing.T) {
	v := New()
	day := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	b := budgetAt(t, day.Add(9*time.Hour), day.Add(14*time.Hour), nil)

	svg := v.GenerateDaySVG(b)

	assertContains(t, svg, "<?xml")
	assertContains(t, svg, "Workday")
	assertContains(t, svg, "Done: 04:30 | 03:30 remaining | Breaks: 00:30")
	assertContains(t, svg, ">8h 17:30</text>")
	assertContains(t, svg, ">9h 18:45</text>")
	assertContains(t, svg, ">10h 19:45</text>")
	assertContains(t, svg, ">now 14:00</text>")
	assertContains(t, svg, ">10:00</text>")
	assertContains(t, svg, ">19:00</text>")
	assertContains(t, svg, `fill="#3498DB"`)

	rectCount := strings.Count(svg, "<rect")
	if rectCount != 3 {
		t.Fatalf("expected 3 rects (background, track, progress), got %d", rectCount)
	}
	// 3 thresholds + now + 10 hour ticks (10:00 to 19:00)
	lineCount := strings.Count(svg, "<line ")
	if lineCount != 14 {
		t.Fatalf("expected 14 lines, got %d", lineCount)
	}
}

func TestGenerateDaySVGColors(t *testing.T) {
	v := New()
	day := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	start := day.Add(8 * time.Hour)

	tests := []struct {
		name string
		now  time.Time
		fill string
	}{
		{"working", day.Add(12 * time.Hour), "#3498DB"},
		{"target met", day.Add(17 * time.Hour), "#4CAF50"},
		{"past soft limit", day.Add(18 * time.Hour), "#FF9800"},
		{"past hard limit", day.Add(19 * time.Hour), "#F44336"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := budgetAt(t, start, tt.now, work.Breaks{45 * time.Minute})
			assertContains(t, v.GenerateDaySVG(b), `fill="`+tt.fill+`"`)
		})
	}
}

func TestGenerateDaySVGBeforeStart(t *testing.T) {
	v := New()
	day := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	b := budgetAt(t, day.Add(9*time.Hour), day.Add(8*time.Hour), nil)

	svg := v.GenerateDaySVG(b)
	assertContains(t, svg, `width="0" height="36"`)
}

func TestGenerateHTMLReport(t *testing.T) {
	v := New()
	day := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	b := budgetAt(t, day.Add(9*time.Hour), day.Add(14*time.Hour), nil)

	html := v.GenerateHTMLReport(b)

	assertContains(t, html, "<!DOCTYPE html>")
	assertContains(t, html, "Feierabend - Monday, January 8, 2024")
	assertContains(t, html, "Started 09:00:00, as of 14:00:00")
	assertContains(t, html, `<div class="stat-label">Remaining</div>`)
	assertContains(t, html, "<tr><td>Break 1 (assumed)</td><td>00:30</td></tr>")
	assertContains(t, html, "<svg xmlns")
	if strings.Contains(html, "<?xml") {
		t.Fatal("inline SVG must not carry an XML declaration")
	}

	rowCount := strings.Count(html, "<tr><td>")
	if rowCount != 1 {
		t.Fatalf("expected 1 break row, got %d", rowCount)
	}
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q", needle)
	}
}
