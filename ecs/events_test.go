package ecs

import "testing"

func TestEventChannelIndependentReaders(t *testing.T) {
	ch := NewEventChannel[int](0)
	a := ch.Register()
	b := ch.Register()

	ch.Publish(1, 2, 3)

	if got := ch.Read(a); len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("reader a got %v", got)
	}
	if got := ch.Read(a); len(got) != 0 {
		t.Fatalf("reader a read twice: %v", got)
	}

	ch.Publish(4)
	if got := ch.Read(b); len(got) != 4 || got[3] != 4 {
		t.Fatalf("reader b got %v", got)
	}
	if got := ch.Read(a); len(got) != 1 || got[0] != 4 {
		t.Fatalf("reader a got %v after second publish", got)
	}
}

func TestEventChannelLateReaderSeesOnlyNewEvents(t *testing.T) {
	ch := NewEventChannel[string](0)
	early := ch.Register()
	ch.Publish("before")
	late := ch.Register()
	ch.Publish("after")

	if got := ch.Read(late); len(got) != 1 || got[0] != "after" {
		t.Fatalf("late reader got %v", got)
	}
	if got := ch.Read(early); len(got) != 2 {
		t.Fatalf("early reader got %v", got)
	}
}

func TestEventChannelBacklogLimit(t *testing.T) {
	ch := NewEventChannel[int](2)
	r := ch.Register()
	ch.Publish(1, 2, 3)

	if ch.Dropped() != 1 {
		t.Fatalf("dropped = %d, want 1", ch.Dropped())
	}
	got := ch.Read(r)
	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Fatalf("got %v, want [2 3]", got)
	}
}

func TestEventChannelPending(t *testing.T) {
	ch := NewEventChannel[int](0)
	r := ch.Register()
	if ch.Pending(r) != 0 {
		t.Fatalf("expected nothing pending")
	}
	ch.Publish(1, 2)
	if ch.Pending(r) != 2 {
		t.Fatalf("pending = %d, want 2", ch.Pending(r))
	}
	ch.Read(r)
	if ch.Pending(r) != 0 {
		t.Fatalf("pending after read = %d", ch.Pending(r))
	}
	if got := ch.Read(ReaderID(99)); got != nil {
		t.Fatalf("unknown reader got %v", got)
	}
}

func TestEventChannelReadSliceSurvivesPublish(t *testing.T) {
	ch := NewEventChannel[int](0)
	r := ch.Register()
	ch.Publish(1, 2)
	got := ch.Read(r)
	ch.Publish(9, 9, 9)
	if got[0] != 1 || got[1] != 2 {
		t.Fatalf("earlier read corrupted: %v", got)
	}
}
