package theme

import "testing"

func TestByName(t *testing.T) {
	for _, th := range All {
		if got := ByName(th.Name); got.Name != th.Name {
			t.Errorf("ByName(%q) = %q", th.Name, got.Name)
		}
	}
	if got := ByName("no-such-theme"); got.Name != FlexokiDark.Name {
		t.Errorf("unknown theme fell back to %q", got.Name)
	}
}

func TestSetActive(t *testing.T) {
	defer SetActive(FlexokiDark.Name)

	SetActive("tokyo-night")
	if Active.Name != "tokyo-night" {
		t.Fatalf("Active = %q", Active.Name)
	}
	if Active.Signed(true) != TokyoNight.Expense || Active.Signed(false) != TokyoNight.Income {
		t.Error("Signed does not follow the active theme")
	}
}

func TestThemesDefineEveryRole(t *testing.T) {
	for _, th := range All {
		roles := map[string]string{
			"Background": string(th.Background), "Surface": string(th.Surface),
			"TextPrimary": string(th.TextPrimary), "Accent": string(th.Accent),
			"Income": string(th.Income), "Expense": string(th.Expense),
			"Warning": string(th.Warning), "Savings": string(th.Savings),
		}
		for role, c := range roles {
			if c == "" {
				t.Errorf("%s: %s is empty", th.Name, role)
			}
		}
	}
}
