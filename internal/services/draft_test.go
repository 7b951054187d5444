package services_test

import (
	"testing"

	"github.com/mehuljariwala/admin-dashboard/internal/services"
)

func TestDraftQuantityFloor(t *testing.T) {
	d := services.NewDraft("d1", "pt-gurudev", "2025-01-15")

	d.SetRequested("cl-red", -7)
	if got := d.Line("cl-red").Requested; got != 0 {
		t.Fatalf("negative set should clamp to 0, got %d", got)
	}

	d.Decrement("cl-red")
	d.Decrement("cl-red")
	if got := d.Line("cl-red").Requested; got != 0 {
		t.Fatalf("decrement at zero should stay 0, got %d", got)
	}

	d.Increment("cl-red")
	d.Increment("cl-red")
	d.Decrement("cl-red")
	if got := d.Line("cl-red").Requested; got != 1 {
		t.Fatalf("want 1 after ++/--, got %d", got)
	}
}

func TestDraftDeliveryFollowsUntilEdited(t *testing.T) {
	d := services.NewDraft("d1", "pt-gurudev", "2025-01-15")

	// Untouched delivery mirrors every requested change.
	d.SetRequested("cl-red", 5)
	if l := d.Line("cl-red"); l.Delivery != 5 {
		t.Fatalf("delivery should track requested, got %d", l.Delivery)
	}
	d.Increment("cl-red")
	if l := d.Line("cl-red"); l.Delivery != 6 {
		t.Fatalf("delivery should track increment, got %d", l.Delivery)
	}

	// One explicit delivery edit breaks the link for good.
	d.SetDelivery("cl-red", 3)
	d.SetRequested("cl-red", 8)
	l := d.Line("cl-red")
	if l.Requested != 8 || l.Delivery != 3 {
		t.Fatalf("after divergence want req=8 del=3, got req=%d del=%d", l.Requested, l.Delivery)
	}
	if !l.Diverged {
		t.Fatal("line should be marked diverged")
	}

	// Divergence is per color, not per draft.
	d.SetRequested("cl-rani", 4)
	if got := d.Line("cl-rani").Delivery; got != 4 {
		t.Fatalf("untouched color should still track, got %d", got)
	}
}

func TestDraftDeliveryClamp(t *testing.T) {
	d := services.NewDraft("d1", "pt-gurudev", "2025-01-15")
	d.SetRequested("cl-red", 5)
	d.SetDelivery("cl-red", -2)
	if got := d.Line("cl-red").Delivery; got != 0 {
		t.Fatalf("negative delivery should clamp to 0, got %d", got)
	}
}

func TestDraftClear(t *testing.T) {
	d := services.NewDraft("d1", "pt-gurudev", "2025-01-15")
	d.SetRequested("cl-red", 3)
	d.SetRequested("cl-rani", 7)
	d.SetDelivery("cl-rani", 2)

	d.Clear()

	if n := len(d.Lines()); n != 0 {
		t.Fatalf("clear should drop every line, %d left", n)
	}
	// Divergence marks go with the lines.
	d.SetRequested("cl-rani", 5)
	if got := d.Line("cl-rani").Delivery; got != 5 {
		t.Fatalf("cleared line should track again, got delivery=%d", got)
	}
}
