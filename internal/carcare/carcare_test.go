package carcare

import (
	"testing"

	"lumiere-studio/internal/catalog"
)

func itemByID(t *testing.T, items []Item, id string) Item {
	t.Helper()
	for _, it := range items {
		if it.ID == id {
			return it
		}
	}
	t.Fatalf("item %q not found", id)
	return Item{}
}

func TestItemsForUnitPricing(t *testing.T) {
	tests := []struct {
		size     catalog.SizeClass
		plugUnit int64
		plugQty  int
		coilUnit int64
	}{
		{catalog.SizeCompact, 40_000, 4, 50_000},
		{catalog.SizeSedan, 33_000, 6, 50_000},
		{catalog.SizeSUV, 33_000, 6, 50_000},
		{catalog.SizeSupercar, 60_000, 8, 100_000},
	}

	for _, tt := range tests {
		items := ItemsFor(tt.size)
		if len(items) != 7 {
			t.Fatalf("%s: got %d items, want 7", tt.size, len(items))
		}

		plugs := itemByID(t, items, "spark_plugs")
		if plugs.UnitPrice != tt.plugUnit || plugs.DefaultQty != tt.plugQty {
			t.Errorf("%s plugs: got %d x%d, want %d x%d",
				tt.size, plugs.UnitPrice, plugs.DefaultQty, tt.plugUnit, tt.plugQty)
		}

		coils := itemByID(t, items, "ignition_coils")
		if coils.UnitPrice != tt.coilUnit {
			t.Errorf("%s coils: got %d, want %d", tt.size, coils.UnitPrice, tt.coilUnit)
		}
		if coils.DefaultQty != tt.plugQty {
			t.Errorf("%s coils qty: got %d, want %d", tt.size, coils.DefaultQty, tt.plugQty)
		}
	}
}

func TestItemsForSizeOverrides(t *testing.T) {
	sedan := ItemsFor(catalog.SizeSedan)
	if oil := itemByID(t, sedan, "oil"); oil.UnitPrice != 180_000 {
		t.Errorf("sedan oil: got %d, want 180000", oil.UnitPrice)
	}

	suv := ItemsFor(catalog.SizeSUV)
	if diff := itemByID(t, suv, "diff"); diff.UnitPrice != 180_000 {
		t.Errorf("suv diff: got %d, want 180000", diff.UnitPrice)
	}
	if fluid := itemByID(t, suv, "brake_fluid"); fluid.UnitPrice != 100_000 {
		t.Errorf("suv brake fluid: got %d, want sedan baseline 100000", fluid.UnitPrice)
	}

	super := ItemsFor(catalog.SizeSupercar)
	if oil := itemByID(t, super, "oil"); oil.UnitPrice != 550_000 {
		t.Errorf("supercar oil: got %d, want 550000", oil.UnitPrice)
	}
	if pads := itemByID(t, super, "brake_pads_f"); pads.UnitPrice != 800_000 {
		t.Errorf("supercar front pads: got %d, want 800000", pads.UnitPrice)
	}
}

func TestEngineUncataloguedModelUsesSedan(t *testing.T) {
	eng := NewEngine(catalog.New())
	items := eng.Items("존재하지 않는 모델")
	if oil := itemByID(t, items, "oil"); oil.UnitPrice != 180_000 {
		t.Errorf("fallback oil: got %d, want sedan 180000", oil.UnitPrice)
	}
}

func TestSelectionLifecycle(t *testing.T) {
	items := ItemsFor(catalog.SizeSupercar)
	sel := NewSelection(items)

	if qty, ok := sel["oil"]; !ok || qty != 1 {
		t.Fatalf("initial selection: got %v, want oil x1", sel)
	}
	if len(sel) != 1 {
		t.Fatalf("initial selection has %d items, want 1", len(sel))
	}

	plugs := itemByID(t, items, "spark_plugs")
	sel.Toggle(plugs)
	if sel["spark_plugs"] != 8 {
		t.Errorf("toggled plugs qty: got %d, want 8", sel["spark_plugs"])
	}

	sel.Adjust("spark_plugs", -3)
	if sel["spark_plugs"] != 5 {
		t.Errorf("after -3: got %d, want 5", sel["spark_plugs"])
	}
	sel.Adjust("spark_plugs", -10)
	if sel["spark_plugs"] != 1 {
		t.Errorf("clamp: got %d, want 1", sel["spark_plugs"])
	}

	sel.Adjust("diff", 2)
	if _, ok := sel["diff"]; ok {
		t.Error("adjust on unselected item must not select it")
	}

	sel.Toggle(plugs)
	if _, ok := sel["spark_plugs"]; ok {
		t.Error("second toggle must deselect")
	}

	// Reselecting restores the default quantity, not the adjusted one.
	sel.Toggle(plugs)
	if sel["spark_plugs"] != 8 {
		t.Errorf("reselected plugs qty: got %d, want default 8", sel["spark_plugs"])
	}
}

func TestTotal(t *testing.T) {
	items := ItemsFor(catalog.SizeSedan)
	sel := Selection{"oil": 1, "spark_plugs": 6, "brake_pads_f": 1}

	want := int64(180_000 + 6*33_000 + 250_000)
	if got := Total(items, sel); got != want {
		t.Errorf("total: got %d, want %d", got, want)
	}

	if got := Total(items, Selection{}); got != 0 {
		t.Errorf("empty selection total: got %d, want 0", got)
	}
}
