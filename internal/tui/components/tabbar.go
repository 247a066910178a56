package components

import (
	"strings"

	"github.com/theirongolddev/finsimples/internal/model"
	"github.com/theirongolddev/finsimples/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab is one entry in the tab bar.
type Tab struct {
	View model.View
	Name string
	Key  rune
}

var tabNames = map[model.View]string{
	model.ViewHome:     "Home",
	model.ViewIncome:   "Income",
	model.ViewExpenses: "Expenses",
	model.ViewFixed:    "Fixed",
	model.ViewVariable: "Variable",
	model.ViewGoals:    "Goals",
}

// Tabs follows model.Views; shortcuts are the digits 1..n.
var Tabs = func() []Tab {
	tabs := make([]Tab, len(model.Views))
	for i, v := range model.Views {
		tabs[i] = Tab{View: v, Name: tabNames[v], Key: rune('1' + i)}
	}
	return tabs
}()

// tabLabel is the visible text of a tab: inactive tabs show their shortcut.
func tabLabel(tab Tab, active bool) string {
	if active {
		return tab.Name
	}
	return string(tab.Key) + " " + tab.Name
}

// TabVisualWidth is the rendered width of a tab, padding included.
func TabVisualWidth(tab Tab, active bool) int {
	return lipgloss.Width(tabLabel(tab, active)) + 2
}

// RenderTabBar renders the single-row tab bar padded to width.
func RenderTabBar(activeIdx, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.SurfaceHover).
		Bold(true).
		Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Padding(0, 1)
	sep := lipgloss.NewStyle().Foreground(t.Border).Background(t.Surface).Render("│")

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts[i] = activeStyle.Render(tabLabel(tab, true))
		} else {
			parts[i] = inactiveStyle.Render(tabLabel(tab, false))
		}
	}

	row := strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(row)
}

// TabIdxByKey returns the tab index for a shortcut key, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
