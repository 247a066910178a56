package goals

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/finsimples/internal/model"
)

const (
	daysPerYear  = 365
	daysPerMonth = 30
)

// MaxProjectionDays bounds Project. Slower paces report ProjectionTooFar.
const MaxProjectionDays = 100 * daysPerYear

// RemainingKind classifies a deadline relative to today.
type RemainingKind int

const (
	DeadlinePassed RemainingKind = iota
	DeadlineToday
	DeadlineAhead
)

// Remaining is the time left until a goal's deadline, bucketed into
// 365-day years and 30-day months.
type Remaining struct {
	Kind   RemainingKind
	Years  int
	Months int
	Days   int
}

func (r Remaining) String() string {
	switch r.Kind {
	case DeadlinePassed:
		return "Deadline passed"
	case DeadlineToday:
		return "Due today!"
	}

	var parts []string
	if r.Years > 0 {
		parts = append(parts, plural(r.Years, "year"))
	}
	if r.Months > 0 {
		parts = append(parts, plural(r.Months, "month"))
	}
	if r.Days > 0 {
		parts = append(parts, plural(r.Days, "day"))
	}
	if len(parts) == 0 {
		return "Due today!"
	}
	return strings.Join(parts, ", ") + " left"
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// TimeRemaining reports how far today is from deadline. ok is false when
// there is no deadline.
func TimeRemaining(deadline *model.Date, today model.Date) (r Remaining, ok bool) {
	if !deadline.IsSet() {
		return Remaining{}, false
	}

	switch {
	case deadline.Before(today):
		return Remaining{Kind: DeadlinePassed}, true
	case *deadline == today:
		return Remaining{Kind: DeadlineToday}, true
	}

	diff := today.DaysUntil(*deadline)
	rest := diff % daysPerYear
	r = Remaining{
		Kind:   DeadlineAhead,
		Years:  diff / daysPerYear,
		Months: rest / daysPerMonth,
		Days:   rest % daysPerMonth,
	}
	if r.Years == 0 && r.Months == 0 && r.Days == 0 {
		r.Kind = DeadlineToday
	}
	return r, true
}

// ProjectionKind classifies a completion estimate.
type ProjectionKind int

const (
	ProjectionFutureStart ProjectionKind = iota
	ProjectionReached
	ProjectionDate
	ProjectionTooFar
)

// Projection is the estimated completion of a goal, assuming the average
// daily savings rate since StartDate continues unchanged.
type Projection struct {
	Kind       ProjectionKind
	Date       model.Date
	DaysNeeded int
}

// Format renders the projection, using layout for the date.
func (p Projection) Format(layout string) string {
	switch p.Kind {
	case ProjectionFutureStart:
		return "Start date in the future"
	case ProjectionReached:
		return "Goal reached!"
	case ProjectionTooFar:
		return "More than 100 years at this pace"
	}
	return p.Date.Format(layout)
}

// Project estimates when g will be reached. ok is false when the goal has
// no start date or nothing saved yet; no start date is ever inferred.
func Project(g model.SavingsGoal, today model.Date) (p Projection, ok bool) {
	if !g.StartDate.IsSet() || !g.CurrentAmount.IsPositive() {
		return Projection{}, false
	}
	start := *g.StartDate
	if start.After(today) {
		return Projection{Kind: ProjectionFutureStart}, true
	}

	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if !remaining.IsPositive() {
		return Projection{Kind: ProjectionReached}, true
	}

	daysPassed := start.DaysUntil(today)
	if daysPassed < 1 {
		daysPassed = 1
	}

	// remaining / (current / daysPassed), without rounding the daily average.
	needed := remaining.Mul(decimal.NewFromInt(int64(daysPassed))).Div(g.CurrentAmount).Ceil()
	if needed.GreaterThan(decimal.NewFromInt(MaxProjectionDays)) {
		return Projection{Kind: ProjectionTooFar}, true
	}
	days := int(needed.IntPart())

	return Projection{
		Kind:       ProjectionDate,
		Date:       today.AddDays(days),
		DaysNeeded: days,
	}, true
}
