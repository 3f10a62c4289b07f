package mapview

import "testing"

func TestTooltipSuppressedOverOwnPopup(t *testing.T) {
	var it Interaction
	it.Click("A")
	if it.PopupID() != "A" {
		t.Fatalf("popup = %q, want A", it.PopupID())
	}

	// Hovering the popup's own spot never produces a visible tooltip.
	it.HoverEnter("A")
	if got := it.TooltipID(); got != "" {
		t.Errorf("tooltip over own popup = %q, want suppressed", got)
	}

	// Hovering a different spot shows its tooltip alongside the popup.
	it.HoverEnter("B")
	if got := it.TooltipID(); got != "B" {
		t.Errorf("tooltip over other spot = %q, want B", got)
	}
	if it.PopupID() != "A" {
		t.Error("hover must not disturb the open popup")
	}
}

func TestSinglePopupInvariant(t *testing.T) {
	var it Interaction
	it.Click("A")
	it.Click("B")
	if it.PopupID() != "B" {
		t.Errorf("popup = %q, want B (A closed first)", it.PopupID())
	}
	// Clicking also hides any tooltip.
	if it.TooltipID() != "" {
		t.Error("tooltip should be hidden after a click")
	}
}

func TestHoverLifecycle(t *testing.T) {
	var it Interaction
	if it.TooltipID() != "" {
		t.Error("idle state should show no tooltip")
	}
	it.HoverEnter("A")
	if it.TooltipID() != "A" {
		t.Errorf("tooltip = %q, want A", it.TooltipID())
	}
	it.HoverEnter("B") // pointer slid onto a neighboring marker
	if it.TooltipID() != "B" {
		t.Errorf("tooltip = %q, want B", it.TooltipID())
	}
	it.HoverLeave()
	if it.TooltipID() != "" || it.HoveredID() != "" {
		t.Error("leaving the layer must drop the hover")
	}
}

func TestClosePopupReturnsToPointerState(t *testing.T) {
	// Close while hovering another spot resumes that hover.
	var it Interaction
	it.Click("A")
	it.HoverEnter("B")
	it.ClosePopup()
	if it.PopupID() != "" {
		t.Error("popup should be closed")
	}
	if it.TooltipID() != "B" {
		t.Errorf("tooltip after close = %q, want B", it.TooltipID())
	}

	// Close with the pointer off the layer returns to idle.
	var it2 Interaction
	it2.Click("A")
	it2.ClosePopup()
	if it2.TooltipID() != "" || it2.HoveredID() != "" {
		t.Error("close with no hover should return to idle")
	}

	// Close while hovering the popup's own spot: the hover survives and
	// its tooltip is no longer suppressed.
	var it3 Interaction
	it3.Click("A")
	it3.HoverEnter("A")
	it3.ClosePopup()
	if it3.TooltipID() != "A" {
		t.Errorf("tooltip after closing own-spot popup = %q, want A", it3.TooltipID())
	}
}

func TestDropMissing(t *testing.T) {
	var it Interaction
	it.Click("A")
	it.HoverEnter("B")

	it.DropMissing(func(id string) bool { return id == "A" || id == "B" })
	if it.PopupID() != "A" || it.HoveredID() != "B" {
		t.Error("surviving ids must be left alone")
	}

	it.DropMissing(func(id string) bool { return id == "B" })
	if it.PopupID() != "" {
		t.Error("popup for a vanished spot must close")
	}
	if it.TooltipID() != "B" {
		t.Errorf("hover should survive and show, got %q", it.TooltipID())
	}
}
