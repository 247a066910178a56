// Package tui provides the interactive Bubble Tea dashboard for finsimples.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/finsimples/internal/account"
	"github.com/theirongolddev/finsimples/internal/cli"
	"github.com/theirongolddev/finsimples/internal/coach"
	"github.com/theirongolddev/finsimples/internal/ledger"
	"github.com/theirongolddev/finsimples/internal/model"
	"github.com/theirongolddev/finsimples/internal/summary"
	"github.com/theirongolddev/finsimples/internal/tui/components"
	"github.com/theirongolddev/finsimples/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// App is the root Bubble Tea model.
type App struct {
	store *account.Store
	cache *summary.Cache

	// Active user, reloaded from the store after every mutation
	user string
	rec  model.UserRecord
	err  error

	// Month on screen and derived figures
	today  model.Date
	ref    model.Date
	month  []model.Transaction
	stats  model.FinancialSummary
	advice coach.Advice

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	cursor    int
	offset    int
	keys      keyMap
	help      help.Model

	// Modal huh form (add, edit, deposit, delete, settings)
	form     *huh.Form
	formKind formKind
	formVals *formValues

	// Status line
	note    string
	noteErr bool

	loggedOut bool
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 160
	minContentHeight = 5

	// recentLimit is the number of entries listed on the home tab.
	recentLimit = 10
)

// NewApp creates the dashboard for the logged-in user of store, showing
// ref's month. today anchors the daily budget and goal estimates.
func NewApp(store *account.Store, today, ref model.Date) App {
	a := App{
		store: store,
		cache: summary.NewCache(),
		today: today,
		ref:   ref,
		keys:  newKeyMap(),
		help:  newHelp(),
	}
	a.recompute()
	return a
}

func newHelp() help.Model {
	t := theme.Active
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	return h
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// recompute reloads the active record and derives the month's figures.
func (a *App) recompute() {
	user, rec, err := a.store.Active()
	if err != nil {
		a.err = err
		return
	}
	a.user, a.rec, a.err = user, rec, nil
	a.month = ledger.FilterByMonth(rec.Transactions, a.ref)
	a.stats = a.cache.Get(a.store.Version(), a.month, rec.Settings, a.ref, a.today)
	a.advice = coach.Advise(a.stats)

	n := len(a.listItems())
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// setMonth moves the dashboard to d's month. The current month keeps
// today's day so days remaining stays meaningful.
func (a *App) setMonth(d model.Date) {
	if d.SameMonth(a.today) {
		a.ref = a.today
	} else {
		a.ref = d.FirstOfMonth()
	}
	a.cursor, a.offset = 0, 0
	a.recompute()
}

func (a App) currentView() model.View {
	return components.Tabs[a.activeTab].View
}

func (a *App) switchTab(idx int) {
	n := len(components.Tabs)
	a.activeTab = (idx%n + n) % n
	a.cursor, a.offset = 0, 0
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		if a.form != nil {
			a.form = a.form.WithWidth(min(msg.Width, 70))
		}
		return a, nil

	case tea.MouseMsg:
		if a.form != nil || a.showHelp {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.moveCursor(-1)
		case tea.MouseButtonWheelDown:
			a.moveCursor(1)
		case tea.MouseButtonLeft:
			if msg.Action == tea.MouseActionPress && msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.switchTab(tab)
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.form != nil {
			if msg.String() == "esc" {
				a.closeForm()
				return a, nil
			}
			return a.updateForm(msg)
		}
		return a.updateKeys(msg)
	}

	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Help) {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}
	if a.err != nil {
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		return a, nil
	}

	if r := msg.Runes; len(r) == 1 {
		if idx := components.TabIdxByKey(r[0]); idx >= 0 {
			a.switchTab(idx)
			return a, nil
		}
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.NextTab):
		a.switchTab(a.activeTab + 1)
	case key.Matches(msg, a.keys.PrevTab):
		a.switchTab(a.activeTab - 1)
	case key.Matches(msg, a.keys.NextMonth):
		a.setMonth(a.ref.FirstOfMonth().AddMonths(1))
	case key.Matches(msg, a.keys.PrevMonth):
		a.setMonth(a.ref.FirstOfMonth().AddMonths(-1))
	case key.Matches(msg, a.keys.ThisMonth):
		a.setMonth(a.today)
	case key.Matches(msg, a.keys.Down):
		a.moveCursor(1)
	case key.Matches(msg, a.keys.Up):
		a.moveCursor(-1)
	case key.Matches(msg, a.keys.Add):
		return a.openAddForm()
	case key.Matches(msg, a.keys.Edit):
		return a.openEditForm()
	case key.Matches(msg, a.keys.Settings):
		return a.openSettingsForm()
	case key.Matches(msg, a.keys.Logout):
		a.store.Logout()
		a.loggedOut = true
		return a, tea.Quit
	case key.Matches(msg, a.keys.Deposit):
		return a.openDepositForm()
	case key.Matches(msg, a.keys.Delete):
		return a.openDeleteForm()
	}
	return a, nil
}

func (a *App) moveCursor(delta int) {
	n := len(a.listItems())
	if n == 0 {
		return
	}
	a.cursor = max(0, min(a.cursor+delta, n-1))
}

// listItem is one selectable row on a list tab.
type listItem struct {
	id    string
	label string
}

// listItems returns the selectable rows of the current tab.
func (a App) listItems() []listItem {
	if a.currentView() == model.ViewGoals {
		items := make([]listItem, len(a.rec.Goals))
		for i, g := range a.rec.Goals {
			items[i] = listItem{id: g.ID, label: g.Name}
		}
		return items
	}
	txs := a.viewTransactions()
	items := make([]listItem, len(txs))
	for i, t := range txs {
		items[i] = listItem{id: t.ID, label: t.Description}
	}
	return items
}

// viewTransactions filters the month for the current tab.
func (a App) viewTransactions() []model.Transaction {
	switch a.currentView() {
	case model.ViewIncome:
		return ledger.ByType(a.month, model.Income)
	case model.ViewExpenses:
		return ledger.ByType(a.month, model.Expense)
	case model.ViewFixed:
		return ledger.ByFrequency(a.month, model.Recurring)
	case model.ViewVariable:
		return ledger.ByFrequency(a.month, model.Variable)
	case model.ViewGoals:
		return nil
	}
	return a.month[:min(len(a.month), recentLimit)]
}

// LoggedOut reports whether the dashboard was closed by logging out.
func (a App) LoggedOut() bool { return a.loggedOut }

func (a App) selected() (listItem, bool) {
	items := a.listItems()
	if a.cursor < 0 || a.cursor >= len(items) {
		return listItem{}, false
	}
	return items[a.cursor], true
}

// ─── Forms ──────────────────────────────────────────────────────

func (a App) openForm(kind formKind, vals *formValues, form *huh.Form) (tea.Model, tea.Cmd) {
	a.formKind, a.formVals = kind, vals
	a.form = form
	if a.width > 0 {
		a.form = a.form.WithWidth(min(a.width, 70))
	}
	a.note = ""
	return a, a.form.Init()
}

func (a App) openAddForm() (tea.Model, tea.Cmd) {
	if a.currentView() == model.ViewGoals {
		v := &formValues{Start: a.today.String()}
		return a.openForm(formGoal, v, newGoalForm(v))
	}
	v := newTxValues(a.currentView(), a.defaultEntryDate())
	return a.openForm(formTx, v, newTxForm(v, "New entry"))
}

func (a App) openEditForm() (tea.Model, tea.Cmd) {
	if a.currentView() == model.ViewGoals {
		return a, nil
	}
	item, ok := a.selected()
	if !ok {
		return a, nil
	}
	tx, ok := ledger.Find(a.rec.Transactions, item.id)
	if !ok {
		return a, nil
	}
	v := editTxValues(tx)
	return a.openForm(formEdit, v, newTxForm(v, "Edit entry"))
}

func (a App) openSettingsForm() (tea.Model, tea.Cmd) {
	v := settingsValues(a.rec.Settings)
	return a.openForm(formSettings, v, newSettingsForm(v))
}

// defaultEntryDate is today when browsing the current month, otherwise the
// first day of the month on screen.
func (a App) defaultEntryDate() model.Date {
	if a.ref.SameMonth(a.today) {
		return a.today
	}
	return a.ref.FirstOfMonth()
}

func (a App) openDepositForm() (tea.Model, tea.Cmd) {
	if a.currentView() != model.ViewGoals {
		return a, nil
	}
	item, ok := a.selected()
	if !ok {
		return a, nil
	}
	v := &formValues{TargetID: item.id, Label: item.label}
	return a.openForm(formDeposit, v, newDepositForm(v))
}

func (a App) openDeleteForm() (tea.Model, tea.Cmd) {
	item, ok := a.selected()
	if !ok {
		return a, nil
	}
	v := &formValues{TargetID: item.id, Label: fmt.Sprintf("%q", item.label)}
	return a.openForm(formDelete, v, newDeleteForm(v))
}

func (a *App) closeForm() {
	a.form, a.formVals, a.formKind = nil, nil, formNone
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		note, err := a.submitForm()
		a.closeForm()
		a.note, a.noteErr = note, err != nil
		if err != nil {
			a.note = err.Error()
		}
		a.recompute()
		return a, nil
	case huh.StateAborted:
		a.closeForm()
		return a, nil
	}
	return a, cmd
}

// ─── View ───────────────────────────────────────────────────────

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.err != nil {
		return a.viewError()
	}
	if a.form != nil {
		return a.viewForm()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  finsimples needs at least %d columns.\n",
		a.width, minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) overlay(body string) string {
	t := theme.Active
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3).
		Render(body)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewError() string {
	t := theme.Active
	title := lipgloss.NewStyle().Foreground(t.Expense).Background(t.Surface).Bold(true)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	return a.overlay(title.Render(a.err.Error()) + "\n\n" +
		muted.Render("Log in and finish onboarding from the command line first.") + "\n" +
		muted.Render("Press q to quit."))
}

func (a App) viewForm() string {
	return a.overlay(a.form.View())
}

func (a App) viewHelp() string {
	t := theme.Active
	title := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	h := a.help
	h.ShowAll = true

	var b strings.Builder
	b.WriteString(title.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(h.View(a.keys))
	b.WriteString("\n\n")
	b.WriteString(dim.Render(fmt.Sprintf("1-%d jump to a tab · click a tab to open it", len(components.Tabs))))
	b.WriteString("\n")
	b.WriteString(dim.Render("Press any key to close"))
	return a.overlay(b.String())
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()

	// Header: tab bar + month/user line
	pill := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	accent := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	info := pill.Render(" ") + accent.Render(cli.FormatMonth(a.ref)) +
		pill.Render(" │ ") + accent.Render(a.rec.Settings.UserName) +
		pill.Render(" │ [ ] to change month ")
	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		lipgloss.NewStyle().Background(t.Surface).Width(w).Render(info)

	statusBar := components.RenderStatusBar(w, a.help.View(a.keys), a.note, a.noteErr)

	contentH := max(a.height-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.currentView() {
	case model.ViewHome:
		content = a.renderHomeTab(cw)
	case model.ViewGoals:
		content = a.renderGoalsTab(cw, contentH)
	default:
		content = a.renderLedgerTab(cw, contentH)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, a.height, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes follow the widths used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1 // separator
	}
	return -1
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}
