package coach

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/finsimples/internal/model"
)

func sum(income, fixed, variable, daily string) model.FinancialSummary {
	d := decimal.RequireFromString
	in, fx, vr := d(income), d(fixed), d(variable)
	return model.FinancialSummary{
		TotalIncome:           in,
		TotalFixedExpenses:    fx,
		TotalVariableExpenses: vr,
		Balance:               in.Sub(fx).Sub(vr),
		DailySafeToSpend:      d(daily),
	}
}

func TestAdvise(t *testing.T) {
	tests := []struct {
		name string
		s    model.FinancialSummary
		want Kind
	}{
		{"no income", sum("0", "100", "50", "-10"), Welcome},
		{"negative daily beats excellent", sum("3000", "100", "100", "-1"), Overspending},
		{"saving over twenty percent", sum("1000", "300", "400", "5"), Excellent},
		{"exactly twenty percent is not excellent", sum("1000", "500", "300", "5"), DailyTip},
		{"variable above fixed", sum("1000", "200", "700", "1"), VariableFocus},
		{"variable with no fixed", sum("1000", "0", "900", "1"), DailyTip},
		{"fixed above variable", sum("1000", "600", "300", "1"), DailyTip},
		{"zero daily is not overspending", sum("1000", "600", "300", "0"), DailyTip},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advise(tt.s)
			if got.Kind != tt.want {
				t.Fatalf("Advise = %s, want %s", got.Kind, tt.want)
			}
			if got.Title == "" || got.Message == "" {
				t.Errorf("empty advice text for %s", got.Kind)
			}
		})
	}
}

func TestAdvise_Deterministic(t *testing.T) {
	s := sum("2000", "500", "800", "3")
	if Advise(s) != Advise(s) {
		t.Fatal("same summary produced different advice")
	}
}
