package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFormatChartLabel(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.5, "0,50"},
		{850, "850"},
		{1000, "1k"},
		{1500, "1,5k"},
		{12000, "12k"},
		{2e6, "2M"},
	}
	for _, tt := range tests {
		if got := formatChartLabel(tt.in); got != tt.want {
			t.Errorf("formatChartLabel(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestChartTickStep(t *testing.T) {
	tests := []struct{ max, want float64 }{
		{0, 1},
		{100, 20},
		{500, 100},
		{2000, 500},
	}
	for _, tt := range tests {
		if got := chartTickStep(tt.max); got != tt.want {
			t.Errorf("chartTickStep(%v) = %v, want %v", tt.max, got, tt.want)
		}
	}
}

func TestSparklineOneRunePerValue(t *testing.T) {
	out := Sparkline([]float64{0, 5, 10, -3}, "#FFFFFF")
	if got := lipgloss.Width(out); got != 4 {
		t.Errorf("sparkline width = %d, want 4", got)
	}
	if Sparkline(nil, "#FFFFFF") != "" {
		t.Error("empty series should render nothing")
	}
}

func TestBarChartFitsWidth(t *testing.T) {
	vals := make([]float64, 31)
	labels := make([]string, 31)
	for i := range vals {
		vals[i] = float64(i * 37 % 400)
		labels[i] = string(rune('a' + i%26))
	}
	out := BarChart(vals, labels, "#FFFFFF", 50, 8)
	for i, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > 50 {
			t.Errorf("line %d width %d exceeds 50", i, w)
		}
	}
}

func TestGoalBarShowsUncappedPercent(t *testing.T) {
	out := GoalBar(1.5, 30)
	if !strings.Contains(out, "150%") {
		t.Errorf("goal bar %q should show 150%%", out)
	}
	if w := lipgloss.Width(out); w != 30 {
		t.Errorf("goal bar width = %d, want 30", w)
	}
}

func TestTabBarWidths(t *testing.T) {
	bar := RenderTabBar(0, 100)
	if w := lipgloss.Width(bar); w != 100 {
		t.Errorf("tab bar width = %d, want 100", w)
	}
	for i := range Tabs {
		if TabIdxByKey(Tabs[i].Key) != i {
			t.Errorf("TabIdxByKey(%q) != %d", Tabs[i].Key, i)
		}
	}
	if TabIdxByKey('z') != -1 {
		t.Error("unknown key should map to -1")
	}
}
