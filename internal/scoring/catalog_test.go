package scoring

import "testing"

func TestCatalogContents(t *testing.T) {
	c := NewCatalog()

	cases := []struct {
		id        string
		itemCount int
		scaleMax  int
		traits    int
	}{
		{"sdt3", 27, 5, 3},
		{"dirty_dozen", 12, 5, 3},
		{"sdt4", 28, 5, 4},
		{"mach_iv", 20, 7, 1},
	}
	for _, tc := range cases {
		def := c.Get(tc.id)
		if def == nil {
			t.Fatalf("missing definition %q", tc.id)
		}
		if len(def.Items) != tc.itemCount {
			t.Fatalf("%s has %d items, want %d", tc.id, len(def.Items), tc.itemCount)
		}
		if def.ScaleMax != tc.scaleMax {
			t.Fatalf("%s scaleMax = %d, want %d", tc.id, def.ScaleMax, tc.scaleMax)
		}
		if got := len(def.Traits()); got != tc.traits {
			t.Fatalf("%s has %d traits, want %d", tc.id, got, tc.traits)
		}
	}

	if got := len(c.All()); got != 4 {
		t.Fatalf("catalog has %d definitions, want 4", got)
	}
}

func TestCatalogItemOrderIsContiguous(t *testing.T) {
	for _, def := range NewCatalog().All() {
		for i, item := range def.Items {
			if item.Order != i+1 {
				t.Fatalf("%s item %d has order %d", def.ID, i, item.Order)
			}
			if item.Text == "" || item.Trait == "" {
				t.Fatalf("%s item %d is missing text or trait", def.ID, i)
			}
		}
	}
}

func TestCatalogReversedCounts(t *testing.T) {
	c := NewCatalog()
	cases := map[string]int{
		"sdt3":        5,
		"dirty_dozen": 0,
		"sdt4":        0,
		"mach_iv":     10,
	}
	for id, want := range cases {
		var got int
		for _, item := range c.Get(id).Items {
			if item.Reversed {
				got++
			}
		}
		if got != want {
			t.Fatalf("%s has %d reversed items, want %d", id, got, want)
		}
	}
}
