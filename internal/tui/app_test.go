package tui

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/finsimples/internal/account"
	"github.com/theirongolddev/finsimples/internal/model"
	"github.com/theirongolddev/finsimples/internal/store"
	"github.com/theirongolddev/finsimples/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

var today = model.NewDate(2025, time.March, 15)

func newTestStore(t *testing.T) *account.Store {
	t.Helper()
	s := account.Open(store.NewMemory(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err := s.Register("ana", "pw"); err != nil {
		t.Fatal(err)
	}
	err := s.CompleteOnboarding(model.UserSettings{UserName: "Ana", SavingsGoal: decimal.NewFromInt(500)})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func addTx(t *testing.T, s *account.Store, desc, amount string, day int, typ model.TransactionType, f model.Frequency) {
	t.Helper()
	_, err := s.AddTransaction(model.Transaction{
		Description: desc,
		Amount:      decimal.RequireFromString(amount),
		Date:        model.NewDate(2025, time.March, day),
		Type:        typ,
		Frequency:   f,
		Category:    model.CategoryOther,
	})
	if err != nil {
		t.Fatal(err)
	}
}

func seeded(t *testing.T) (App, *account.Store) {
	t.Helper()
	s := newTestStore(t)
	addTx(t, s, "salary", "3000", 1, model.Income, model.Recurring)
	addTx(t, s, "rent", "1000", 5, model.Expense, model.Recurring)
	addTx(t, s, "market", "200", 10, model.Expense, model.Variable)
	addTx(t, s, "freelance", "400", 12, model.Income, model.Variable)
	return NewApp(s, today, today), s
}

func press(t *testing.T, a App, keys ...string) App {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ := a.Update(msg)
		a = m.(App)
	}
	return a
}

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range components.Tabs {
		a := App{activeTab: active}
		pos := 0
		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			if got := a.tabAtX(pos + w/2); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, pos+w/2, got, i)
			}
			pos += w + 1
		}
		if got := a.tabAtX(pos + 50); got != -1 {
			t.Errorf("click past the last tab = %d, want -1", got)
		}
	}
}

func TestTabNavigation(t *testing.T) {
	a, _ := seeded(t)

	a = press(t, a, "3")
	if a.currentView() != model.ViewExpenses {
		t.Fatalf("key 3 -> %s", a.currentView())
	}
	a = press(t, a, "right", "right", "right")
	if a.currentView() != model.ViewGoals {
		t.Fatalf("after three rights -> %s", a.currentView())
	}
	a = press(t, a, "right")
	if a.currentView() != model.ViewHome {
		t.Fatalf("right from the last tab should wrap, got %s", a.currentView())
	}
	a = press(t, a, "left")
	if a.currentView() != model.ViewGoals {
		t.Fatalf("left from the first tab should wrap, got %s", a.currentView())
	}
}

func TestMonthNavigation(t *testing.T) {
	a, _ := seeded(t)
	if len(a.month) != 4 {
		t.Fatalf("march entries = %d, want 4", len(a.month))
	}

	a = press(t, a, "]")
	if a.ref != model.NewDate(2025, time.April, 1) {
		t.Fatalf("next month ref = %s", a.ref)
	}
	if len(a.month) != 0 || a.stats.DaysRemaining != 0 {
		t.Errorf("april: %d entries, %d days remaining", len(a.month), a.stats.DaysRemaining)
	}

	a = press(t, a, "[", "[")
	if a.ref != model.NewDate(2025, time.February, 1) {
		t.Fatalf("two months back ref = %s", a.ref)
	}

	a = press(t, a, "t")
	if a.ref != today {
		t.Fatalf("this month should restore today, got %s", a.ref)
	}
	if a.stats.DaysRemaining != 16 {
		t.Errorf("days remaining = %d, want 16", a.stats.DaysRemaining)
	}
}

func TestViewTransactionsPerTab(t *testing.T) {
	a, _ := seeded(t)

	want := map[model.View][]string{
		model.ViewIncome:   {"freelance", "salary"},
		model.ViewExpenses: {"market", "rent"},
		model.ViewFixed:    {"rent", "salary"},
		model.ViewVariable: {"freelance", "market"},
	}
	for i, tab := range components.Tabs {
		exp, ok := want[tab.View]
		if !ok {
			continue
		}
		a.activeTab = i
		var got []string
		for _, tx := range a.viewTransactions() {
			got = append(got, tx.Description)
		}
		if strings.Join(got, ",") != strings.Join(exp, ",") {
			t.Errorf("%s: got %v, want %v", tab.View, got, exp)
		}
	}
}

func TestHomeFigures(t *testing.T) {
	a, _ := seeded(t)

	// income 3400, expenses 1200, savings 500 -> 1700 over 16 days
	if !a.stats.Balance.Equal(decimal.NewFromInt(2200)) {
		t.Errorf("balance = %s", a.stats.Balance)
	}
	if !a.stats.TotalSafeToSpend.Equal(decimal.NewFromInt(1700)) {
		t.Errorf("safe to spend = %s", a.stats.TotalSafeToSpend)
	}
	if !a.stats.DailySafeToSpend.Equal(decimal.RequireFromString("106.25")) {
		t.Errorf("daily = %s", a.stats.DailySafeToSpend)
	}
	if a.advice.Title == "" {
		t.Error("advice not computed")
	}
}

func TestCursorStaysInBounds(t *testing.T) {
	a, s := seeded(t)
	a = press(t, a, "3", "down", "down", "down", "down")
	if a.cursor != 1 {
		t.Fatalf("cursor = %d, want 1 (two expenses)", a.cursor)
	}

	item, _ := a.selected()
	if err := s.DeleteTransaction(item.id); err != nil {
		t.Fatal(err)
	}
	a.recompute()
	if a.cursor != 0 {
		t.Errorf("cursor after delete = %d, want 0", a.cursor)
	}
}

func TestSubmitTransactionForm(t *testing.T) {
	a, s := seeded(t)
	a = press(t, a, "2")

	vals := newTxValues(a.currentView(), today)
	if vals.Type != string(model.Income) {
		t.Fatalf("income tab preset type %q", vals.Type)
	}
	vals.Description = "bonus"
	vals.Amount = "1.250,50"
	vals.Date = "2025-04-02"
	a.formKind, a.formVals = formTx, vals

	note, err := a.submitForm()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(note, "bonus") {
		t.Errorf("note = %q", note)
	}
	if a.ref != model.NewDate(2025, time.April, 1) {
		t.Errorf("dashboard should follow the new entry's month, ref = %s", a.ref)
	}

	_, rec, _ := s.Active()
	if len(rec.Transactions) != 5 || !rec.Transactions[0].Amount.Equal(decimal.RequireFromString("1250.50")) {
		t.Errorf("stored entry: %+v", rec.Transactions[0])
	}
}

func TestSubmitDeleteNeedsConfirmation(t *testing.T) {
	a, s := seeded(t)
	a = press(t, a, "3")
	item, _ := a.selected()

	a.formKind = formDelete
	a.formVals = &formValues{TargetID: item.id, Label: item.label}
	if _, err := a.submitForm(); err != nil {
		t.Fatal(err)
	}
	_, rec, _ := s.Active()
	if len(rec.Transactions) != 4 {
		t.Fatal("unconfirmed delete removed an entry")
	}

	a.formVals.Confirm = true
	if _, err := a.submitForm(); err != nil {
		t.Fatal(err)
	}
	_, rec, _ = s.Active()
	if len(rec.Transactions) != 3 {
		t.Errorf("entries after delete = %d, want 3", len(rec.Transactions))
	}
}

func TestGoalFormsAndDeposit(t *testing.T) {
	a, s := seeded(t)
	a = press(t, a, "6")

	a.formKind = formGoal
	a.formVals = &formValues{Name: "Trip", Target: "1000", Start: "2025-03-01", Deadline: "2025-12-31"}
	if _, err := a.submitForm(); err != nil {
		t.Fatal(err)
	}
	a.recompute()

	item, ok := a.selected()
	if !ok || item.label != "Trip" {
		t.Fatalf("selected goal = %+v", item)
	}

	a.formKind = formDeposit
	a.formVals = &formValues{TargetID: item.id, Label: item.label, Amount: "250"}
	if _, err := a.submitForm(); err != nil {
		t.Fatal(err)
	}

	_, rec, _ := s.Active()
	if !rec.Goals[0].CurrentAmount.Equal(decimal.NewFromInt(250)) {
		t.Errorf("current amount = %s", rec.Goals[0].CurrentAmount)
	}

	a.formVals.Amount = "0"
	if _, err := a.submitForm(); err == nil {
		t.Error("zero deposit accepted")
	}
}

func TestEscClosesForm(t *testing.T) {
	a, _ := seeded(t)
	m, _ := a.openAddForm()
	a = m.(App)
	if a.form == nil || a.formKind != formTx {
		t.Fatal("add form not opened")
	}
	a = press(t, a, "esc")
	if a.form != nil {
		t.Error("esc did not close the form")
	}
}

func TestViewRendersEveryTab(t *testing.T) {
	a, _ := seeded(t)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 130, Height: 40})
	a = m.(App)

	for i, tab := range components.Tabs {
		a.activeTab = i
		out := a.View()
		if !strings.Contains(out, tab.Name) {
			t.Errorf("%s: tab name missing from view", tab.View)
		}
		if h := len(strings.Split(out, "\n")); h != 40 {
			t.Errorf("%s: view height = %d, want 40", tab.View, h)
		}
	}
}

func TestViewTooNarrow(t *testing.T) {
	a, _ := seeded(t)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	if out := m.(App).View(); !strings.Contains(out, "too narrow") {
		t.Errorf("narrow view = %q", out)
	}
}

func TestNeedsOnboardingShowsError(t *testing.T) {
	s := account.Open(store.NewMemory(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err := s.Register("bia", "pw"); err != nil {
		t.Fatal(err)
	}
	a := NewApp(s, today, today)
	if a.err == nil {
		t.Fatal("expected onboarding error")
	}
	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if out := m.(App).View(); !strings.Contains(out, "onboarding") {
		t.Error("error view does not mention onboarding")
	}
}

func TestEditFromList(t *testing.T) {
	a, s := seeded(t)
	a = press(t, a, "3", "e")
	if a.form == nil || a.formKind != formEdit {
		t.Fatal("edit form not opened")
	}
	if a.formVals.Description != "market" || a.formVals.Amount != "200" {
		t.Fatalf("edit form prefill = %+v", a.formVals)
	}
	id := a.formVals.TargetID

	a.formVals.Amount = "1.250"
	a.formVals.Description = "market run"
	note, err := a.submitForm()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(note, "market run") {
		t.Errorf("note = %q", note)
	}

	_, rec, _ := s.Active()
	if len(rec.Transactions) != 4 {
		t.Fatalf("entries after edit = %d, want 4", len(rec.Transactions))
	}
	for _, tx := range rec.Transactions {
		if tx.ID == id {
			if !tx.Amount.Equal(decimal.NewFromInt(1250)) || tx.Description != "market run" {
				t.Errorf("edited entry = %+v", tx)
			}
			return
		}
	}
	t.Errorf("edited entry %s lost its id", id)
}

func TestEditIgnoredOnGoals(t *testing.T) {
	a, _ := seeded(t)
	a = press(t, a, "6", "e")
	if a.form != nil {
		t.Error("edit opened a form on the goals tab")
	}
}

func TestSettingsForm(t *testing.T) {
	a, s := seeded(t)
	a = press(t, a, "s")
	if a.formKind != formSettings || a.formVals.Name != "Ana" || a.formVals.Savings != "500" {
		t.Fatalf("settings form = %v %+v", a.formKind, a.formVals)
	}

	a.formVals.Savings = "-1"
	if _, err := a.submitForm(); err == nil {
		t.Error("negative savings goal accepted")
	}

	a.formVals.Savings = "600"
	a.formVals.Profession = " dev "
	if _, err := a.submitForm(); err != nil {
		t.Fatal(err)
	}
	a.recompute()
	if !a.stats.SavingsGoal.Equal(decimal.NewFromInt(600)) {
		t.Errorf("savings goal = %s", a.stats.SavingsGoal)
	}
	_, rec, _ := s.Active()
	if rec.Settings.Profession != "dev" {
		t.Errorf("profession = %q", rec.Settings.Profession)
	}
}

func TestLogoutQuits(t *testing.T) {
	a, s := seeded(t)
	m, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("L")})
	if cmd == nil {
		t.Fatal("logout should quit")
	}
	if !m.(App).LoggedOut() {
		t.Error("LoggedOut = false")
	}
	if _, _, err := s.Current(); err != account.ErrNotLoggedIn {
		t.Errorf("session after logout: %v", err)
	}
}

func TestHomeListsRecentEntries(t *testing.T) {
	a, s := seeded(t)
	for day := 16; day <= 23; day++ {
		addTx(t, s, "coffee", "5", day, model.Expense, model.Variable)
	}
	a.recompute()

	recent := a.viewTransactions()
	if len(recent) != recentLimit {
		t.Fatalf("recent entries = %d, want %d", len(recent), recentLimit)
	}
	if recent[0].Date != model.NewDate(2025, time.March, 23) {
		t.Errorf("newest entry first, got %s", recent[0].Date)
	}

	a = press(t, a, "x")
	if a.formKind != formDelete {
		t.Error("delete from the home list did not open a confirmation")
	}

	m, _ := a.Update(tea.WindowSizeMsg{Width: 130, Height: 40})
	a = m.(App)
	a.closeForm()
	if out := a.View(); !strings.Contains(out, "Recent entries") {
		t.Error("home view has no recent entries card")
	}
}

func TestGoalsShowMonthlyCommitment(t *testing.T) {
	a, _ := seeded(t)
	a = press(t, a, "6")
	m, _ := a.Update(tea.WindowSizeMsg{Width: 130, Height: 40})
	if out := m.(App).View(); !strings.Contains(out, "Monthly commitment") {
		t.Error("goals view has no monthly commitment card")
	}
}
