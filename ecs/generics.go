package ecs

import "github.com/milk9111/artsmajor/ecs/component"

// Add stores a copy of value on e, replacing any previous value of the same kind.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	v := value
	return w.addComponent(e, handle.Kind().ID(), &v)
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.removeComponent(e, handle.Kind().ID())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	_, ok := w.component(e, handle.Kind().ID())
	return ok
}

// Get returns a pointer to the stored component; writes through it are visible
// to every later reader.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	return getKind(w, e, handle.Kind())
}

// ForEach visits every entity owning the component, in entity index order.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	for _, e := range w.Query(kind) {
		if v, ok := getKind(w, e, kind); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits every entity owning both components.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range w.Query(ka, kb) {
		a, okA := getKind(w, e, ka)
		b, okB := getKind(w, e, kb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

func getKind[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	value, ok := w.component(e, kind.ID())
	if !ok {
		return nil, false
	}
	cast, ok := value.(*T)
	return cast, ok
}
