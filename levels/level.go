package levels

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/artsmajor/common"
)

var (
	ErrMissingEasel  = errors.New("levels: missing easel zone")
	ErrNoObjectLayer = errors.New("levels: object layer not found")
)

const (
	ObjectLayer    = "objects"
	CollisionLayer = "collision"
)

// Level is a Tiled map export. Coordinates are in pixels.
type Level struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	TileWidth  int     `json:"tilewidth"`
	TileHeight int     `json:"tileheight"`
	Layers     []Layer `json:"layers"`
}

type Layer struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Data    []int    `json:"data,omitempty"`
	Objects []Object `json:"objects,omitempty"`
	Visible bool     `json:"visible"`
}

type Object struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Class  string  `json:"class"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Point  bool    `json:"point"`
}

// Kind is the object's type, which newer Tiled versions export as class.
func (o Object) Kind() string {
	if o.Type != "" {
		return o.Type
	}
	return o.Class
}

func (o Object) is(kind string) bool {
	return o.Name == kind || o.Kind() == kind
}

// Box returns the object's rectangle in tile units. Y grows downward, so B is
// the top edge and T the bottom edge.
func (o Object) Box() cp.BB {
	return cp.BB{
		L: common.PixelsToTiles(o.X),
		B: common.PixelsToTiles(o.Y),
		R: common.PixelsToTiles(o.X + o.Width),
		T: common.PixelsToTiles(o.Y + o.Height),
	}
}

func (o Object) Position() cp.Vector {
	return cp.Vector{X: common.PixelsToTiles(o.X), Y: common.PixelsToTiles(o.Y)}
}

// ObjectGroup returns the object layer with the given name.
func (l *Level) ObjectGroup(name string) (*Layer, error) {
	for i := range l.Layers {
		if l.Layers[i].Type == "objectgroup" && l.Layers[i].Name == name {
			return &l.Layers[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoObjectLayer, name)
}

// TileLayers returns the layers drawn as tiles, bottom first.
func (l *Level) TileLayers() []Layer {
	var out []Layer
	for _, layer := range l.Layers {
		if layer.Type == "tilelayer" {
			out = append(out, layer)
		}
	}
	return out
}

// JumpBox is a guard jump trigger tagged with the direction it leads.
type JumpBox struct {
	Direction common.Direction
	Box       cp.BB
}

// Layout is everything the simulation needs from a level, in tile units.
type Layout struct {
	Width       float64
	Height      float64
	PlayerSpawn cp.Vector
	GuardSpawns []cp.Vector
	Easel       cp.BB
	TurnAround  []cp.BB
	Jump        []JumpBox
	Collision   []cp.BB
}

// Layout extracts spawns, zones and collision rectangles. Only the easel is
// required; other zones default to empty and the player spawns at the origin
// when no player_spawn exists.
func (l *Level) Layout() (*Layout, error) {
	out := &Layout{
		Width:  common.PixelsToTiles(float64(l.Width * l.tileWidth())),
		Height: common.PixelsToTiles(float64(l.Height * l.tileHeight())),
	}

	if collision, err := l.ObjectGroup(CollisionLayer); err == nil {
		for _, obj := range collision.Objects {
			if obj.Width <= 0 || obj.Height <= 0 {
				continue
			}
			out.Collision = append(out.Collision, obj.Box())
		}
	}

	objects, err := l.ObjectGroup(ObjectLayer)
	if err != nil {
		return nil, fmt.Errorf("%w (%v)", ErrMissingEasel, err)
	}

	easelFound := false
	for _, obj := range objects.Objects {
		switch {
		case obj.Name == "player_spawn":
			out.PlayerSpawn = obj.Position()
		case obj.Name == "easel":
			out.Easel = obj.Box()
			easelFound = true
		case obj.is("guard_spawn"):
			out.GuardSpawns = append(out.GuardSpawns, obj.Position())
		case obj.is("turn_around"):
			out.TurnAround = append(out.TurnAround, obj.Box())
		case obj.is("jump_left"):
			out.Jump = append(out.Jump, JumpBox{Direction: common.Left, Box: obj.Box()})
		case obj.is("jump_right"):
			out.Jump = append(out.Jump, JumpBox{Direction: common.Right, Box: obj.Box()})
		}
	}
	if !easelFound {
		return nil, ErrMissingEasel
	}

	return out, nil
}

func (l *Level) tileWidth() int {
	if l.TileWidth <= 0 {
		return common.TileSize
	}
	return l.TileWidth
}

func (l *Level) tileHeight() int {
	if l.TileHeight <= 0 {
		return common.TileSize
	}
	return l.TileHeight
}
