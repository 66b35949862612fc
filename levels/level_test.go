package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/artsmajor/common"
)

func TestLoadEmbeddedLevel(t *testing.T) {
	lvl, err := LoadLevelFromFS("level_1.json")
	if err != nil {
		t.Fatalf("LoadLevelFromFS: %v", err)
	}
	layout, err := lvl.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	if layout.Width != 40 || layout.Height != 20 {
		t.Fatalf("size = %vx%v, want 40x20", layout.Width, layout.Height)
	}
	if want := (cp.Vector{X: 3, Y: 16}); layout.PlayerSpawn != want {
		t.Fatalf("player spawn = %v, want %v", layout.PlayerSpawn, want)
	}
	if len(layout.GuardSpawns) != 1 {
		t.Fatalf("guard spawns = %d, want 1", len(layout.GuardSpawns))
	}
	if len(layout.TurnAround) != 2 {
		t.Fatalf("turn around boxes = %d, want 2", len(layout.TurnAround))
	}
	if len(layout.Collision) != 4 {
		t.Fatalf("collision boxes = %d, want 4", len(layout.Collision))
	}
	if want := (cp.BB{L: 35, B: 16, R: 37, T: 18}); layout.Easel != want {
		t.Fatalf("easel = %v, want %v", layout.Easel, want)
	}
	if len(lvl.TileLayers()) != 1 {
		t.Fatalf("tile layers = %d, want 1", len(lvl.TileLayers()))
	}
}

func TestLayoutTagsJumpBoxes(t *testing.T) {
	lvl := &Level{
		Width: 10, Height: 10, TileWidth: 16, TileHeight: 16,
		Layers: []Layer{{
			Name: ObjectLayer,
			Type: "objectgroup",
			Objects: []Object{
				{Name: "easel", X: 0, Y: 0, Width: 16, Height: 16},
				{Type: "jump_left", X: 16, Y: 0, Width: 32, Height: 16},
				{Class: "jump_right", X: 64, Y: 0, Width: 32, Height: 16},
			},
		}},
	}

	layout, err := lvl.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(layout.Jump) != 2 {
		t.Fatalf("jump boxes = %d, want 2", len(layout.Jump))
	}
	if layout.Jump[0].Direction != common.Left || layout.Jump[1].Direction != common.Right {
		t.Fatalf("jump directions = %v, %v", layout.Jump[0].Direction, layout.Jump[1].Direction)
	}
	if want := (cp.BB{L: 4, B: 0, R: 6, T: 1}); layout.Jump[1].Box != want {
		t.Fatalf("jump right box = %v, want %v", layout.Jump[1].Box, want)
	}
}

func TestLayoutOptionalZones(t *testing.T) {
	lvl := &Level{
		Width: 4, Height: 4,
		Layers: []Layer{{
			Name:    ObjectLayer,
			Type:    "objectgroup",
			Objects: []Object{{Name: "easel", Width: 16, Height: 16}},
		}},
	}

	layout, err := lvl.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if layout.PlayerSpawn != (cp.Vector{}) {
		t.Fatalf("default spawn = %v, want origin", layout.PlayerSpawn)
	}
	if len(layout.GuardSpawns) != 0 || len(layout.Jump) != 0 || len(layout.TurnAround) != 0 || len(layout.Collision) != 0 {
		t.Fatalf("expected empty collections, got %+v", layout)
	}
}

func TestLayoutMissingEasel(t *testing.T) {
	tests := []struct {
		name string
		lvl  *Level
	}{
		{name: "no objects layer", lvl: &Level{Width: 1, Height: 1}},
		{name: "no easel object", lvl: &Level{Width: 1, Height: 1, Layers: []Layer{{
			Name:    ObjectLayer,
			Type:    "objectgroup",
			Objects: []Object{{Name: "player_spawn", Point: true}},
		}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.lvl.Layout(); !errors.Is(err, ErrMissingEasel) {
				t.Fatalf("err = %v, want ErrMissingEasel", err)
			}
		})
	}
}

func TestObjectGroupNotFound(t *testing.T) {
	lvl := &Level{Layers: []Layer{{Name: ObjectLayer, Type: "tilelayer"}}}
	if _, err := lvl.ObjectGroup(ObjectLayer); !errors.Is(err, ErrNoObjectLayer) {
		t.Fatalf("err = %v, want ErrNoObjectLayer", err)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	if _, err := Parse([]byte("{")); err == nil {
		t.Fatal("expected unmarshal error")
	}
	if _, err := Parse([]byte(`{"width":0,"height":5}`)); err == nil {
		t.Fatal("expected dimension error")
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	data := `{"width":2,"height":3,"tilewidth":16,"tileheight":16,"layers":[]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	lvl, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lvl.Width != 2 || lvl.Height != 3 {
		t.Fatalf("size = %dx%d", lvl.Width, lvl.Height)
	}
	if _, err := Load("missing.json"); err == nil {
		t.Fatal("expected error for missing level")
	}
}

func TestLoadWithoutExtension(t *testing.T) {
	lvl, err := Load("level_1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lvl.Width != 40 {
		t.Fatalf("width = %d, want 40", lvl.Width)
	}
}
