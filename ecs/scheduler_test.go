package ecs

import (
	"errors"
	"reflect"
	"testing"
)

func TestSchedulerRunsInRegistrationOrder(t *testing.T) {
	var order []string
	record := func(name string) System {
		return SystemFunc(func(*World, *Frame) error {
			order = append(order, name)
			return nil
		})
	}

	s := NewScheduler()
	s.MustAdd("a", record("a"))
	s.MustAdd("b", record("b"), "a")
	s.MustAdd("c", record("c"), "a", "b")

	if err := s.Update(NewWorld(), &Frame{Dt: 0.01}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(order, want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	if !reflect.DeepEqual(s.Names(), []string{"a", "b", "c"}) {
		t.Fatalf("names = %v", s.Names())
	}
}

func TestSchedulerAddErrors(t *testing.T) {
	noop := SystemFunc(func(*World, *Frame) error { return nil })

	tests := []struct {
		name string
		add  func(s *Scheduler) error
		want error
	}{
		{
			name: "unknown dependency",
			add:  func(s *Scheduler) error { return s.Add("b", noop, "a") },
			want: ErrUnknownDependency,
		},
		{
			name: "duplicate",
			add: func(s *Scheduler) error {
				if err := s.Add("a", noop); err != nil {
					return err
				}
				return s.Add("a", noop)
			},
			want: ErrDuplicateSystem,
		},
		{
			name: "nil system",
			add:  func(s *Scheduler) error { return s.Add("a", nil) },
			want: ErrNilSystem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.add(NewScheduler()); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSchedulerStopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	ran := false

	s := NewScheduler()
	s.MustAdd("fail", SystemFunc(func(*World, *Frame) error { return boom }))
	s.MustAdd("after", SystemFunc(func(*World, *Frame) error {
		ran = true
		return nil
	}), "fail")

	err := s.Update(NewWorld(), &Frame{})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
	if ran {
		t.Fatalf("system after the failure ran")
	}
}

func TestMustAddPanicsOnBadDependency(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	NewScheduler().MustAdd("x", SystemFunc(func(*World, *Frame) error { return nil }), "missing")
}
