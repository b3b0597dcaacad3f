package catalog

import "testing"

func TestLookupKnownModel(t *testing.T) {
	c := New()

	v, ok := c.Lookup("BMW 5시리즈")
	if !ok {
		t.Fatal("BMW 5시리즈 must be catalogued")
	}
	if v.Size != SizeSedan {
		t.Errorf("size = %s, want sedan", v.Size)
	}
	if v.Transparent != 4_800_000 {
		t.Errorf("transparent = %d, want 4800000", v.Transparent)
	}

	if _, ok := c.Lookup("없는 모델"); ok {
		t.Error("unknown model must not resolve")
	}

	// Matching is exact, not case-folded.
	if _, ok := c.Lookup("bmw 5시리즈"); ok {
		t.Error("lookup must be case-sensitive")
	}
}

func TestSizeOfDefaultsToSedan(t *testing.T) {
	c := New()

	if got := c.SizeOf("람보르기니 가야르도"); got != SizeSupercar {
		t.Errorf("SizeOf supercar model = %s", got)
	}
	if got := c.SizeOf("없는 모델"); got != SizeSedan {
		t.Errorf("SizeOf unknown model = %s, want sedan", got)
	}
}

func TestFallbackTable(t *testing.T) {
	c := New()

	tests := []struct {
		size        SizeClass
		transparent int64
		wrap        int64
		color       int64
	}{
		{SizeCompact, 4_500_000, 2_500_000, 5_800_000},
		{SizeSedan, 4_800_000, 2_800_000, 6_200_000},
		{SizeSUV, 5_500_000, 3_200_000, 6_800_000},
		{SizeSupercar, 5_500_000, 3_100_000, 7_000_000},
	}

	for _, tt := range tests {
		f := c.Fallback(tt.size)
		if f.Transparent != tt.transparent || f.Wrap != tt.wrap || f.Color != tt.color {
			t.Errorf("fallback %s = {%d %d %d}, want {%d %d %d}",
				tt.size, f.Transparent, f.Wrap, f.Color,
				tt.transparent, tt.wrap, tt.color)
		}
	}

	// Unknown size prices as sedan.
	if f := c.Fallback("bogus"); f.Transparent != 4_800_000 {
		t.Errorf("unknown size fallback = %d, want sedan prices", f.Transparent)
	}
}

func TestSearch(t *testing.T) {
	c := New()

	all := c.Models("")
	if len(all) == 0 {
		t.Fatal("catalog is empty")
	}

	hits := c.Search("bmw", SizeSupercar)
	if len(hits) == 0 {
		t.Fatal("expected supercar BMW hits")
	}
	for _, m := range hits {
		v, _ := c.Lookup(m)
		if v.Size != SizeSupercar {
			t.Errorf("%s leaked into supercar filter", m)
		}
	}

	// Search is case-insensitive, unlike Lookup.
	if len(c.Search("BMW", "")) != len(c.Search("bmw", "")) {
		t.Error("search must be case-insensitive")
	}

	if got := c.Search("", SizeSedan); len(got) != len(c.Models(SizeSedan)) {
		t.Error("empty query must list all models of the size")
	}
}

func TestEtcServices(t *testing.T) {
	c := New()

	services := c.EtcServices()
	if len(services) != 14 {
		t.Fatalf("etc list has %d entries, want 14", len(services))
	}

	svc, ok := c.EtcByID("front_ppf")
	if !ok {
		t.Fatal("front_ppf missing")
	}
	if svc.BasePrice != 1_700_000 {
		t.Errorf("front_ppf base price = %d", svc.BasePrice)
	}
	if svc.PriceText == "" {
		t.Error("front_ppf has no display price")
	}

	if _, ok := c.EtcByID("bogus"); ok {
		t.Error("unknown etc id must not resolve")
	}
}

func TestSizeLabels(t *testing.T) {
	for _, s := range SizeClasses() {
		if s.Label() == string(s) {
			t.Errorf("size %s has no display label", s)
		}
		if !s.Valid() {
			t.Errorf("size %s reported invalid", s)
		}
	}
	if SizeClass("bogus").Valid() {
		t.Error("bogus size reported valid")
	}
}
