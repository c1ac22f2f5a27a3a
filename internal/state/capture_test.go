package state

import (
	"errors"
	"strings"
	"testing"

	"github.com/danieljhkim/screenkeep/internal/display"
)

func TestCapture(t *testing.T) {
	outputs := []display.Output{
		{Name: "DP-1", Make: " Dell ", Model: "U2412", Serial: "S1", Mode: fhd(0)},
		{Name: "eDP-1", Make: "BOE", Model: "0x095F", Mode: display.Mode{}},
	}

	layout, err := Capture(outputs, testTime)
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}

	if len(layout.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(layout.Entries))
	}
	if layout.Entries[0].Make != "Dell" {
		t.Errorf("make should be trimmed, got %q", layout.Entries[0].Make)
	}
	if layout.Entries[0].Name != "DP-1" {
		t.Errorf("name = %q, want DP-1", layout.Entries[0].Name)
	}
	if layout.Entries[0].Mode != fhd(0) {
		t.Errorf("mode not captured verbatim: %+v", layout.Entries[0].Mode)
	}
	// Disabled outputs are recorded too.
	if layout.Entries[1].Mode.Enabled {
		t.Error("disabled output should be saved as disabled")
	}
	if layout.Entries[1].Identity().Key() != "boe|0x095f" {
		t.Errorf("unexpected key %q", layout.Entries[1].Identity().Key())
	}
}

func TestCapture_RejectsAmbiguousIdentity(t *testing.T) {
	outputs := []display.Output{
		{Name: "DP-1", Make: "Acme", Model: "View", Mode: fhd(0)},
		{Name: "DP-2", Make: "Acme", Model: "View", Mode: fhd(1920)},
	}

	_, err := Capture(outputs, testTime)
	if !errors.Is(err, ErrAmbiguousIdentity) {
		t.Fatalf("expected ErrAmbiguousIdentity, got %v", err)
	}
	if !strings.Contains(err.Error(), "DP-1, DP-2") {
		t.Errorf("error should name both heads: %v", err)
	}
}

func TestCapture_NoOutputs(t *testing.T) {
	layout, err := Capture(nil, testTime)
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}
	if len(layout.Entries) != 0 {
		t.Errorf("expected empty layout, got %d entries", len(layout.Entries))
	}
}
