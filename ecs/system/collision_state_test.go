package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/artsmajor/ecs"
	"github.com/milk9111/artsmajor/prefabs"
)

func TestCollisionStateDecaysCooldown(t *testing.T) {
	tests := []struct {
		name     string
		cooldown float64
		dt       float64
		want     float64
	}{
		{name: "partial", cooldown: 0.25, dt: 0.1, want: 0.15},
		{name: "clamps at zero", cooldown: 0.05, dt: 0.1, want: 0},
		{name: "already zero", cooldown: 0, dt: 0.1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := newLooseActor(t, w, cp.Vector{})
			cs := collisionState(t, w, e)
			cs.JumpCooldown = tt.cooldown
			cs.Ground = true

			sys := NewCollisionStateSystem(nil, nil)
			if err := sys.Update(w, &ecs.Frame{Dt: tt.dt}); err != nil {
				t.Fatalf("Update: %v", err)
			}
			if !approx(cs.JumpCooldown, tt.want) {
				t.Fatalf("cooldown = %v, want %v", cs.JumpCooldown, tt.want)
			}
			if cs.JumpCooldown < 0 {
				t.Fatalf("cooldown went negative")
			}
			if cs.Ground {
				t.Fatalf("ground not reset without contacts")
			}
		})
	}
}

func TestCollisionStateGroundFromContacts(t *testing.T) {
	tests := []struct {
		name   string
		normal cp.Vector
		want   bool
	}{
		{name: "floor below", normal: cp.Vector{X: 0, Y: 1}, want: true},
		{name: "slope", normal: cp.Vector{X: 0.7, Y: 0.7}, want: true},
		{name: "ceiling", normal: cp.Vector{X: 0, Y: -1}, want: false},
		{name: "wall", normal: cp.Vector{X: 1, Y: 0}, want: false},
		{name: "at threshold", normal: cp.Vector{X: 0.9, Y: 0.25}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := newLooseActor(t, w, cp.Vector{})
			contacts := ecs.NewEventChannel[ContactEvent](0)
			spec := prefabs.DefaultPhysicsSpec()
			sys := NewCollisionStateSystem(&spec, contacts)

			contacts.Publish(ContactEvent{Entity: e, Normal: tt.normal})
			if err := sys.Update(w, &ecs.Frame{Dt: testDt}); err != nil {
				t.Fatalf("Update: %v", err)
			}
			if got := collisionState(t, w, e).Ground; got != tt.want {
				t.Fatalf("ground = %v, want %v", got, tt.want)
			}

			// events are consumed once
			if err := sys.Update(w, &ecs.Frame{Dt: testDt}); err != nil {
				t.Fatalf("Update: %v", err)
			}
			if collisionState(t, w, e).Ground {
				t.Fatalf("ground survived a tick without contacts")
			}
		})
	}
}

func TestCollisionStateIgnoresEntitiesWithoutState(t *testing.T) {
	w := ecs.NewWorld()
	wall := w.CreateEntity()
	contacts := ecs.NewEventChannel[ContactEvent](0)
	sys := NewCollisionStateSystem(nil, contacts)

	contacts.Publish(ContactEvent{Entity: wall, Normal: cp.Vector{Y: 1}})
	if err := sys.Update(w, &ecs.Frame{Dt: testDt}); err != nil {
		t.Fatalf("Update: %v", err)
	}
}

func TestCollisionStateReaderIsIndependent(t *testing.T) {
	w := ecs.NewWorld()
	e := newLooseActor(t, w, cp.Vector{})
	contacts := ecs.NewEventChannel[ContactEvent](0)
	sys := NewCollisionStateSystem(nil, contacts)
	debug := NewPhysicsDebug(contacts, nil)

	contacts.Publish(ContactEvent{Entity: e, Normal: cp.Vector{Y: 1}})
	if err := sys.Update(w, &ecs.Frame{Dt: testDt}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	debug.Collect()

	if !collisionState(t, w, e).Ground {
		t.Fatalf("tracker missed the contact")
	}
	if len(debug.Recent()) != 1 {
		t.Fatalf("debug reader saw %d events, want 1", len(debug.Recent()))
	}
}
