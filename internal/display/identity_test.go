package display

import (
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		output  Output
		wantKey string
	}{
		{
			name:    "full identity",
			output:  Output{Name: "DP-1", Make: "Dell Inc.", Model: "DELL U2412M", Serial: "S1"},
			wantKey: "dell inc.|dell u2412m|s1",
		},
		{
			name:    "whitespace and case are normalized",
			output:  Output{Name: "DP-1", Make: "  DELL INC. ", Model: "Dell U2412M\t", Serial: " s1 "},
			wantKey: "dell inc.|dell u2412m|s1",
		},
		{
			name:    "missing serial falls back to make and model",
			output:  Output{Name: "HDMI-A-1", Make: "Goldstar", Model: "LG TV"},
			wantKey: "goldstar|lg tv",
		},
		{
			name:    "whitespace-only serial is treated as missing",
			output:  Output{Name: "HDMI-A-1", Make: "Goldstar", Model: "LG TV", Serial: "   "},
			wantKey: "goldstar|lg tv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.output).Key()
			if got != tt.wantKey {
				t.Errorf("Resolve(%+v).Key() = %q, want %q", tt.output, got, tt.wantKey)
			}
		})
	}
}

func TestResolve_IndependentOfName(t *testing.T) {
	a := Output{Name: "DP-1", Make: "Dell", Model: "U2412", Serial: "S1"}
	b := Output{Name: "DP-7", Make: "Dell", Model: "U2412", Serial: "S1"}

	if Resolve(a) != Resolve(b) {
		t.Errorf("identity depends on the port name: %v != %v", Resolve(a), Resolve(b))
	}
	if Resolve(a).Key() != Resolve(a).Key() {
		t.Error("resolving the same output twice gave different keys")
	}
}

func TestIdentity_KeySeparatorInComponent(t *testing.T) {
	fallback := Resolve(Output{Make: "Acme", Model: "View|X"})
	full := Resolve(Output{Make: "Acme", Model: "View", Serial: "X"})

	if fallback.Key() == full.Key() {
		t.Errorf("distinct identities share key %q", full.Key())
	}
	if got := fallback.Key(); got != `acme|view\|x` {
		t.Errorf("Key() = %q, want %q", got, `acme|view\|x`)
	}

	// A trailing backslash must not swallow the separator.
	a := Resolve(Output{Make: `Acme\`, Model: "View"})
	b := Resolve(Output{Make: "Acme", Model: `\|View`})
	if a.Key() == b.Key() {
		t.Errorf("distinct identities share key %q", a.Key())
	}
}

func TestIdentity_IsFallback(t *testing.T) {
	if NewIdentity("Dell", "U2412", "S1").IsFallback() {
		t.Error("identity with serial reported as fallback")
	}
	if !NewIdentity("Dell", "U2412", "").IsFallback() {
		t.Error("identity without serial not reported as fallback")
	}
}

func TestCollisions(t *testing.T) {
	outputs := []Output{
		{Name: "DP-1", Make: "Acme", Model: "View"},
		{Name: "DP-2", Make: "ACME", Model: "view "},
		{Name: "DP-3", Make: "Acme", Model: "View", Serial: "X"},
	}

	got := Collisions(outputs)
	if len(got) != 1 {
		t.Fatalf("expected 1 collision, got %d: %v", len(got), got)
	}
	names := got["acme|view"]
	if len(names) != 2 || names[0] != "DP-1" || names[1] != "DP-2" {
		t.Errorf("unexpected colliding names: %v", names)
	}

	if len(Collisions(outputs[2:])) != 0 {
		t.Error("expected no collisions for a single output")
	}
}

func TestMode_Equal(t *testing.T) {
	base := Mode{Width: 1920, Height: 1080, Refresh: 60.0, Scale: 1, Transform: "normal", Enabled: true}

	tests := []struct {
		name  string
		other Mode
		want  bool
	}{
		{name: "identical", other: base, want: true},
		{name: "refresh within tolerance", other: func() Mode { m := base; m.Refresh = 60.0004; return m }(), want: true},
		{name: "empty transform equals normal", other: func() Mode { m := base; m.Transform = ""; return m }(), want: true},
		{name: "different position", other: func() Mode { m := base; m.X = 1920; return m }(), want: false},
		{name: "different refresh", other: func() Mode { m := base; m.Refresh = 59.95; return m }(), want: false},
		{name: "disabled", other: Mode{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Equal(tt.other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}

	if !(Mode{Width: 800}).Equal(Mode{Width: 1024}) {
		t.Error("two disabled modes should compare equal")
	}
}

func TestTransformIndex(t *testing.T) {
	for i := 0; i < 8; i++ {
		name := TransformFromIndex(i)
		if TransformIndex(name) != i {
			t.Errorf("TransformIndex(TransformFromIndex(%d)) = %d", i, TransformIndex(name))
		}
	}
	if TransformFromIndex(42) != TransformNormal {
		t.Error("out of range index should map to normal")
	}
	if NormalizeTransform("sideways") != TransformNormal {
		t.Error("unknown transform should normalize to normal")
	}
}
