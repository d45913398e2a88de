package landing

import "testing"

func TestSafeGuardCopy(t *testing.T) {
	t.Parallel()

	page := SafeGuard()
	if page.Brand != "SafeGuard" {
		t.Fatalf("brand = %q", page.Brand)
	}
	if len(page.Features) != 3 {
		t.Fatalf("expected three feature cards, got %d", len(page.Features))
	}
	if len(page.Steps) != 4 {
		t.Fatalf("expected four steps, got %d", len(page.Steps))
	}
	for i, step := range page.Steps {
		if step.Number != i+1 {
			t.Fatalf("step %d numbered %d", i, step.Number)
		}
		if step.Title == "" || step.Description == "" {
			t.Fatalf("step %d missing copy: %+v", i, step)
		}
	}
}

func TestNavAnchors(t *testing.T) {
	t.Parallel()

	page := SafeGuard()
	want := map[string]Anchor{
		"1": AnchorFeatures,
		"2": AnchorHowItWorks,
		"3": AnchorAnalyzer,
	}
	for key, anchor := range want {
		item, ok := page.NavFor(key)
		if !ok {
			t.Fatalf("no nav item for %q", key)
		}
		if item.Anchor != anchor {
			t.Fatalf("nav %q -> %q, want %q", key, item.Anchor, anchor)
		}
	}
	if _, ok := page.NavFor("9"); ok {
		t.Fatal("unexpected nav item for 9")
	}
}
