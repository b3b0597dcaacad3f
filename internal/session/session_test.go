package session

import (
	"context"
	"errors"
	"testing"

	"lumiere-studio/internal/carcare"
	"lumiere-studio/internal/catalog"
)

func TestMemoryStoreEstimatorLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, err := store.GetEstimator(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get missing: got %v, want ErrNotFound", err)
	}

	state := NewEstimatorState("s1")
	if state.Size != catalog.SizeSedan || state.Coverage != catalog.CoverageFullBody {
		t.Fatalf("fresh session defaults wrong: %+v", state)
	}

	if err := store.SaveEstimator(ctx, state); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetEstimator(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	got.Model = "BMW 5시리즈"

	// Mutation of the returned copy must not leak into the store.
	again, err := store.GetEstimator(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if again.Model != "" {
		t.Error("store returned a shared reference")
	}

	if err := store.DeleteEstimator(ctx, "s1"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.GetEstimator(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete: got %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreSeqIsMonotonic(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var last int64
	for i := 0; i < 5; i++ {
		n, err := store.NextSeq(ctx, "s1")
		if err != nil {
			t.Fatal(err)
		}
		if n <= last {
			t.Fatalf("seq went backwards: %d after %d", n, last)
		}
		last = n
	}

	// Deleting the session resets its counter.
	if err := store.DeleteEstimator(ctx, "s1"); err != nil {
		t.Fatal(err)
	}
	n, err := store.NextSeq(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("seq after delete = %d, want 1", n)
	}
}

func TestMemoryStoreCareQuantitiesCopied(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	items := carcare.ItemsFor(catalog.SizeSupercar)
	state := NewCareState("c1", items)
	if state.Quantities["oil"] != 1 {
		t.Fatalf("fresh care session: %+v", state.Quantities)
	}

	if err := store.SaveCare(ctx, state); err != nil {
		t.Fatal(err)
	}
	state.Quantities["spark_plugs"] = 8

	got, err := store.GetCare(ctx, "c1")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got.Quantities["spark_plugs"]; ok {
		t.Error("saved state shares the caller's map")
	}

	got.Quantities["diff"] = 1
	again, err := store.GetCare(ctx, "c1")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := again.Quantities["diff"]; ok {
		t.Error("returned state shares the stored map")
	}
}
