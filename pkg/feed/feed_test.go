package feed_test

import (
	"testing"
	"time"

	"github.com/shashiranjanraj/cartinhas/pkg/feed"
)

func receive(t *testing.T, ch <-chan feed.Event) feed.Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return feed.Event{}
	}
}

func TestPublishReachesAllSubscribers(t *testing.T) {
	hub := feed.NewHub()

	a, cancelA := hub.Subscribe()
	b, cancelB := hub.Subscribe()
	defer cancelA()
	defer cancelB()

	hub.Publish(feed.CardCreated, map[string]any{"id": 1})

	for _, ch := range []<-chan feed.Event{a, b} {
		ev := receive(t, ch)
		if ev.Kind != feed.CardCreated {
			t.Errorf("expected %s, got %s", feed.CardCreated, ev.Kind)
		}
	}
}

func TestCancelClosesChannel(t *testing.T) {
	hub := feed.NewHub()

	ch, cancel := hub.Subscribe()
	if hub.SubscriberCount() != 1 {
		t.Fatalf("expected 1 subscriber, got %d", hub.SubscriberCount())
	}

	cancel()
	cancel() // idempotent

	if hub.SubscriberCount() != 0 {
		t.Errorf("expected 0 subscribers, got %d", hub.SubscriberCount())
	}

	select {
	case _, open := <-ch:
		if open {
			t.Error("expected channel to be closed")
		}
	case <-time.After(time.Second):
		t.Error("expected closed channel to be readable")
	}
}

func TestPublishAfterCancelDoesNotReach(t *testing.T) {
	hub := feed.NewHub()

	ch, cancel := hub.Subscribe()
	cancel()

	hub.Publish(feed.OrderCreated, nil)

	if ev, open := <-ch; open {
		t.Errorf("expected no event, got %v", ev)
	}
}

func TestSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	hub := feed.NewHub()

	_, cancel := hub.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		// Well past the subscriber buffer size.
		for i := 0; i < 200; i++ {
			hub.Publish(feed.CardUpdated, i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}
