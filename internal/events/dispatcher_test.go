package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcher_DeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var received []Event
	d.Subscribe(EventMemberStatusChanged, func(_ context.Context, event Event) error {
		received = append(received, event)
		return nil
	})
	d.Subscribe(EventMemberDeleted, func(_ context.Context, event Event) error {
		t.Fatalf("handler for %s must not receive %s", EventMemberDeleted, event.Type)
		return nil
	})

	err := d.Publish(context.Background(), Event{
		ID:       "evt-1",
		Type:     EventMemberStatusChanged,
		MemberID: 5,
	})
	if err != nil {
		t.Fatalf("Publish returned err: %v", err)
	}
	if len(received) != 1 || received[0].ID != "evt-1" || received[0].MemberID != 5 {
		t.Fatalf("unexpected delivery: %+v", received)
	}
}

func TestDispatcher_HandlerErrorDoesNotStopOthers(t *testing.T) {
	d := NewInMemoryDispatcher()

	d.Subscribe(EventMemberRegistered, func(context.Context, Event) error {
		return errors.New("handler failure")
	})
	var called bool
	d.Subscribe(EventMemberRegistered, func(context.Context, Event) error {
		called = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventMemberRegistered}); err != nil {
		t.Fatalf("Publish returned err: %v", err)
	}
	if !called {
		t.Fatal("second handler must run despite first handler error")
	}
}

func TestDispatcher_NoSubscribersIsNoop(t *testing.T) {
	d := NewInMemoryDispatcher()
	if err := d.Publish(context.Background(), Event{Type: EventMemberDeleted}); err != nil {
		t.Fatalf("Publish returned err: %v", err)
	}
}
