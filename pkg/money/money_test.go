package money

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

func TestUnitByLocale(t *testing.T) {
	if got := Unit("zh"); got != currency.CNY {
		t.Errorf("Unit(zh) = %v, want CNY", got)
	}
	if got := Unit("en"); got != currency.USD {
		t.Errorf("Unit(en) = %v, want USD", got)
	}
	if got := Unit("fr"); got != currency.USD {
		t.Errorf("Unit(fr) = %v, want USD fallback", got)
	}
}

func TestFormatRoundsToCents(t *testing.T) {
	// The exact tax total keeps its fraction; display rounds to two places.
	got := Format(decimal.RequireFromString("10.554375"), "en")
	if !strings.Contains(got, "10.55") {
		t.Errorf("Format(10.554375) = %q, want the 10.55 display amount", got)
	}
	if strings.Contains(got, "10.554") {
		t.Errorf("Format(10.554375) = %q leaked sub-cent digits", got)
	}
}

func TestFormatFloatMatchesFormat(t *testing.T) {
	a := FormatFloat(3.50, "en")
	b := Format(decimal.NewFromFloat(3.50), "en")
	if a != b {
		t.Errorf("FormatFloat = %q, Format = %q", a, b)
	}
}
