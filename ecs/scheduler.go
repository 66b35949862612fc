package ecs

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateSystem   = errors.New("ecs: duplicate system name")
	ErrUnknownDependency = errors.New("ecs: dependency not registered before dependent")
	ErrNilSystem         = errors.New("ecs: nil system")
)

// System updates a world once per frame.
type System interface {
	Update(w *World, f *Frame) error
}

// SystemFunc adapts a function to System.
type SystemFunc func(w *World, f *Frame) error

func (fn SystemFunc) Update(w *World, f *Frame) error {
	return fn(w, f)
}

type stage struct {
	name   string
	system System
	deps   []string
}

// Scheduler runs systems in registration order. A system can only depend on
// systems registered before it, so the order always satisfies every declared
// dependency.
type Scheduler struct {
	stages []stage
	index  map[string]int
}

func NewScheduler() *Scheduler {
	return &Scheduler{index: make(map[string]int)}
}

// Add registers a named system that must run after every system in deps.
func (s *Scheduler) Add(name string, system System, deps ...string) error {
	if system == nil {
		return fmt.Errorf("%w: %s", ErrNilSystem, name)
	}
	if _, exists := s.index[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSystem, name)
	}
	for _, dep := range deps {
		if _, ok := s.index[dep]; !ok {
			return fmt.Errorf("%w: %s needs %s", ErrUnknownDependency, name, dep)
		}
	}
	s.index[name] = len(s.stages)
	s.stages = append(s.stages, stage{name: name, system: system, deps: append([]string(nil), deps...)})
	return nil
}

// MustAdd is Add for fixed pipelines assembled at startup.
func (s *Scheduler) MustAdd(name string, system System, deps ...string) {
	if err := s.Add(name, system, deps...); err != nil {
		panic(err)
	}
}

// Update runs every system once, stopping at the first error.
func (s *Scheduler) Update(w *World, f *Frame) error {
	for _, st := range s.stages {
		if err := st.system.Update(w, f); err != nil {
			return fmt.Errorf("ecs: system %s: %w", st.name, err)
		}
	}
	return nil
}

// Names returns the stage names in run order.
func (s *Scheduler) Names() []string {
	names := make([]string, 0, len(s.stages))
	for _, st := range s.stages {
		names = append(names, st.name)
	}
	return names
}
