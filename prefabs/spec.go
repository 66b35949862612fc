package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

// BodySpec sizes a dynamic box collider in tile units.
type BodySpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
}

func (b BodySpec) validate(name string) error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: %s: body size must be positive", ErrInvalidSpec, name)
	}
	if b.Mass <= 0 {
		return fmt.Errorf("%w: %s: mass must be positive", ErrInvalidSpec, name)
	}
	return nil
}

type PlayerSpec struct {
	Name         string     `yaml:"name"`
	Body         BodySpec   `yaml:"body"`
	WalkSpeed    float64    `yaml:"walk_speed"`
	AirSpeed     float64    `yaml:"air_speed"`
	JumpForce    float64    `yaml:"jump_force"`
	JumpCooldown float64    `yaml:"jump_cooldown"`
	Color        *YAMLColor `yaml:"color"`
}

func DefaultPlayerSpec() PlayerSpec {
	return PlayerSpec{
		Name:         "player",
		Body:         BodySpec{Width: 0.9, Height: 1.8, Mass: 1},
		WalkSpeed:    50,
		AirSpeed:     10,
		JumpForce:    1000,
		JumpCooldown: 0.25,
	}
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec := DefaultPlayerSpec()
	if err := loadInto("player.yaml", &spec); err != nil {
		return nil, err
	}
	if err := spec.Body.validate("player"); err != nil {
		return nil, err
	}
	return &spec, nil
}

type GuardSpec struct {
	Name               string     `yaml:"name"`
	Body               BodySpec   `yaml:"body"`
	PatrolSpeed        float64    `yaml:"patrol_speed"`
	PatrolAirSpeed     float64    `yaml:"patrol_air_speed"`
	ChaseSpeed         float64    `yaml:"chase_speed"`
	ChaseAirSpeed      float64    `yaml:"chase_air_speed"`
	JumpForce          float64    `yaml:"jump_force"`
	JumpCooldown       float64    `yaml:"jump_cooldown"`
	TurnAroundCooldown float64    `yaml:"turn_around_cooldown"`
	EyeOffset          float64    `yaml:"eye_offset"`
	Facing             string     `yaml:"facing"`
	Color              *YAMLColor `yaml:"color"`
}

func DefaultGuardSpec() GuardSpec {
	return GuardSpec{
		Name:               "guard",
		Body:               BodySpec{Width: 0.9, Height: 1.8, Mass: 1},
		PatrolSpeed:        7,
		PatrolAirSpeed:     5,
		ChaseSpeed:         25,
		ChaseAirSpeed:      10,
		JumpForce:          1000,
		JumpCooldown:       0.25,
		TurnAroundCooldown: 0.75,
		EyeOffset:          0.25,
		Facing:             "left",
	}
}

func LoadGuardSpec() (*GuardSpec, error) {
	spec := DefaultGuardSpec()
	if err := loadInto("guard.yaml", &spec); err != nil {
		return nil, err
	}
	if err := spec.Body.validate("guard"); err != nil {
		return nil, err
	}
	switch strings.ToLower(spec.Facing) {
	case "left", "right":
	default:
		return nil, fmt.Errorf("%w: guard: facing must be left or right, got %q", ErrInvalidSpec, spec.Facing)
	}
	return &spec, nil
}

type PhysicsSpec struct {
	Gravity         float64 `yaml:"gravity"`
	GroundFriction  float64 `yaml:"ground_friction"`
	AirFriction     float64 `yaml:"air_friction"`
	GroundThreshold float64 `yaml:"ground_threshold"`
	MaxDelta        float64 `yaml:"max_delta"`
	MinDelta        float64 `yaml:"min_delta"`
	Iterations      uint    `yaml:"iterations"`
	WallFriction    float64 `yaml:"wall_friction"`
}

func DefaultPhysicsSpec() PhysicsSpec {
	return PhysicsSpec{
		Gravity:         30,
		GroundFriction:  0.1,
		AirFriction:     0.02,
		GroundThreshold: 0.25,
		MaxDelta:        1.0 / 20,
		MinDelta:        1.0 / 1000,
		Iterations:      10,
	}
}

func LoadPhysicsSpec() (*PhysicsSpec, error) {
	spec := DefaultPhysicsSpec()
	if err := loadInto("physics.yaml", &spec); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s PhysicsSpec) Validate() error {
	if s.MaxDelta <= 0 {
		return fmt.Errorf("%w: physics: max_delta must be positive", ErrInvalidSpec)
	}
	if s.MinDelta <= 0 || s.MinDelta > s.MaxDelta {
		return fmt.Errorf("%w: physics: min_delta must be in (0, max_delta]", ErrInvalidSpec)
	}
	return nil
}

// Specs bundles every tuning file the simulation reads.
type Specs struct {
	Player  PlayerSpec
	Guard   GuardSpec
	Physics PhysicsSpec
}

func DefaultSpecs() *Specs {
	return &Specs{
		Player:  DefaultPlayerSpec(),
		Guard:   DefaultGuardSpec(),
		Physics: DefaultPhysicsSpec(),
	}
}

func LoadSpecs() (*Specs, error) {
	player, err := LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	guard, err := LoadGuardSpec()
	if err != nil {
		return nil, err
	}
	physics, err := LoadPhysicsSpec()
	if err != nil {
		return nil, err
	}
	return &Specs{Player: *player, Guard: *guard, Physics: *physics}, nil
}

// loadInto decodes filename over the defaults already in spec. Keys missing
// from the file keep their default value.
func loadInto[T any](filename string, spec *T) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

type YAMLColor struct {
	color.RGBA
}

// Or returns c, or fallback when the color was not set.
func (c *YAMLColor) Or(fallback color.RGBA) color.RGBA {
	if c == nil {
		return fallback
	}
	return c.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.RGBA = color.RGBA{R: r, G: g, B: b, A: a}
	return nil
}
