package catalog

import (
	"testing"

	"github.com/receiptforge/receiptforge-api/internal/domain/enum"
)

func TestCatalogComplete(t *testing.T) {
	all := All()
	if len(all) != 6 {
		t.Fatalf("catalog has %d presets, want 6", len(all))
	}

	seen := make(map[enum.TemplateID]bool)
	for _, tpl := range all {
		if !tpl.ID.Valid() {
			t.Errorf("preset %q has an invalid ID", tpl.ID)
		}
		if seen[tpl.ID] {
			t.Errorf("duplicate preset %q", tpl.ID)
		}
		seen[tpl.ID] = true

		if tpl.NameKey == "" || tpl.DefaultStoreKey == "" {
			t.Errorf("preset %q missing i18n keys", tpl.ID)
		}
		if tpl.ItemLabelKey == "" || tpl.PriceLabelKey == "" || tpl.QuantityLabelKey == "" {
			t.Errorf("preset %q missing column label keys", tpl.ID)
		}
		if tpl.Background == "" {
			t.Errorf("preset %q missing a background texture", tpl.ID)
		}
	}
}

func TestDefaultIsRetail(t *testing.T) {
	if got := Default().ID; got != enum.TemplateRetail {
		t.Errorf("default template = %q, want retail", got)
	}
}

func TestByID(t *testing.T) {
	tpl, ok := ByID(enum.TemplateRealEstate)
	if !ok {
		t.Fatal("ByID(realestate) not found")
	}
	if !tpl.PriceOptional {
		t.Error("real estate preset must allow priceless items")
	}
	if !tpl.Fields.PurchaseAmount || !tpl.Fields.BalancePayment {
		t.Error("real estate preset missing its monetary fields")
	}

	if _, ok := ByID("polaroid"); ok {
		t.Error("ByID found a template that does not exist")
	}
}

func TestOnlyRestaurantShowsTip(t *testing.T) {
	for _, tpl := range All() {
		want := tpl.ID == enum.TemplateRestaurant
		if tpl.ShowTip != want {
			t.Errorf("preset %q ShowTip = %v, want %v", tpl.ID, tpl.ShowTip, want)
		}
	}
}
