package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestLoadSpecsMatchesDefaults(t *testing.T) {
	specs, err := LoadSpecs()
	if err != nil {
		t.Fatalf("LoadSpecs: %v", err)
	}

	def := DefaultSpecs()
	if specs.Player.WalkSpeed != def.Player.WalkSpeed || specs.Player.AirSpeed != def.Player.AirSpeed {
		t.Fatalf("player speeds = %v/%v, want %v/%v", specs.Player.WalkSpeed, specs.Player.AirSpeed, def.Player.WalkSpeed, def.Player.AirSpeed)
	}
	if specs.Player.JumpCooldown != 0.25 || specs.Player.JumpForce != 1000 {
		t.Fatalf("player jump = %v/%v", specs.Player.JumpForce, specs.Player.JumpCooldown)
	}
	if specs.Guard.TurnAroundCooldown != 0.75 {
		t.Fatalf("guard turn cooldown = %v, want 0.75", specs.Guard.TurnAroundCooldown)
	}
	if specs.Physics.Gravity != 30 || specs.Physics.MaxDelta != 0.05 {
		t.Fatalf("physics = %+v", specs.Physics)
	}
	if specs.Player.Color == nil || specs.Player.Color.A != 255 {
		t.Fatalf("player color not decoded: %+v", specs.Player.Color)
	}
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{name: "rgb", in: `c: "#102030"`, want: color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}},
		{name: "rgba", in: `c: "10203040"`, want: color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{name: "short", in: `c: "#123"`, wantErr: true},
		{name: "not hex", in: `c: "#zz0000"`, wantErr: true},
		{name: "not scalar", in: "c: [1, 2]", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				C *YAMLColor `yaml:"c"`
			}
			err := yaml.Unmarshal([]byte(tt.in), &out)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := out.C.Or(color.RGBA{}); got != tt.want {
				t.Fatalf("color = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestYAMLColorOrFallback(t *testing.T) {
	var c *YAMLColor
	fallback := color.RGBA{R: 1, A: 255}
	if got := c.Or(fallback); got != fallback {
		t.Fatalf("nil color = %+v, want fallback", got)
	}
}

func TestPhysicsSpecValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PhysicsSpec)
		ok     bool
	}{
		{name: "defaults", mutate: func(*PhysicsSpec) {}, ok: true},
		{name: "zero max delta", mutate: func(s *PhysicsSpec) { s.MaxDelta = 0 }},
		{name: "negative min delta", mutate: func(s *PhysicsSpec) { s.MinDelta = -1 }},
		{name: "min above max", mutate: func(s *PhysicsSpec) { s.MinDelta = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := DefaultPhysicsSpec()
			tt.mutate(&spec)
			err := spec.Validate()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("err = %v, want ErrInvalidSpec", err)
			}
		})
	}
}

func TestBodySpecValidate(t *testing.T) {
	if err := (BodySpec{Width: 1, Height: 1, Mass: 1}).validate("x"); err != nil {
		t.Fatalf("valid body rejected: %v", err)
	}
	if err := (BodySpec{Width: 0, Height: 1, Mass: 1}).validate("x"); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("zero width err = %v", err)
	}
	if err := (BodySpec{Width: 1, Height: 1}).validate("x"); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("zero mass err = %v", err)
	}
}

func TestCleanPrefabPath(t *testing.T) {
	tests := map[string]string{
		"":                    "",
		"player.yaml":         "player.yaml",
		"prefabs/player.yaml": "player.yaml",
	}
	for in, want := range tests {
		if got := cleanPrefabPath(in); got != want {
			t.Errorf("cleanPrefabPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWatcherReportsSpecWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write txt: %v", err)
	}
	target := filepath.Join(dir, "guard.yaml")
	if err := os.WriteFile(target, []byte("patrol_speed: 9\n"), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}

	select {
	case <-w.Changed():
	case <-time.After(2 * time.Second):
		t.Fatal("no watcher event for spec write")
	}

	// a second write to the same file is folded into the pending entry
	if err := os.WriteFile(target, []byte("patrol_speed: 10\n"), 0o644); err != nil {
		t.Fatalf("rewrite yaml: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	changed := w.Drain()
	if len(changed) != 1 || changed[0] != target {
		t.Fatalf("drained %v, want [%s]", changed, target)
	}
}

func TestIsSpecFile(t *testing.T) {
	if !IsSpecFile("a/b/guard.YAML") || !IsSpecFile("x.yml") {
		t.Fatal("yaml files not recognised")
	}
	if IsSpecFile("level_1.json") {
		t.Fatal("json treated as spec")
	}
}
