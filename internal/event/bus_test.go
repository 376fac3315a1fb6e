package event

import (
	"context"
	"errors"
	"testing"

	"github.com/dshills/modeline/internal/event/topic"
)

func TestBus_PublishDeliversToMatchingHandlers(t *testing.T) {
	b := NewBus()
	var got []string

	b.SubscribeFunc("buffer.loaded", func(_ context.Context, event any) error {
		got = append(got, "exact:"+event.(string))
		return nil
	})
	b.SubscribeFunc("buffer.*", func(_ context.Context, event any) error {
		got = append(got, "wildcard:"+event.(string))
		return nil
	})
	b.SubscribeFunc("config.changed", func(_ context.Context, _ any) error {
		t.Error("unrelated handler was called")
		return nil
	})

	if err := b.Publish(context.Background(), "buffer.loaded", "payload"); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	want := []string{"exact:payload", "wildcard:payload"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("delivered = %v, want %v", got, want)
	}
}

func TestBus_PublishJoinsHandlerErrors(t *testing.T) {
	b := NewBus()
	sentinel := errors.New("handler failed")

	b.SubscribeFunc("buffer.loaded", func(_ context.Context, _ any) error {
		return sentinel
	})

	err := b.Publish(context.Background(), "buffer.loaded", nil)
	if !errors.Is(err, sentinel) {
		t.Errorf("Publish error = %v, want %v", err, sentinel)
	}
}

func TestBus_PublishRecoversHandlerPanics(t *testing.T) {
	b := NewBus()
	called := false

	b.SubscribeFunc("buffer.loaded", func(_ context.Context, _ any) error {
		panic("boom")
	})
	b.SubscribeFunc("buffer.loaded", func(_ context.Context, _ any) error {
		called = true
		return nil
	})

	err := b.Publish(context.Background(), "buffer.loaded", nil)
	if err == nil {
		t.Error("expected an error from the panicking handler")
	}
	if !called {
		t.Error("panic stopped delivery to later handlers")
	}
}

func TestSubscription_Cancel(t *testing.T) {
	b := NewBus()
	calls := 0

	sub := b.SubscribeFunc("buffer.loaded", func(_ context.Context, _ any) error {
		calls++
		return nil
	})

	_ = b.Publish(context.Background(), "buffer.loaded", nil)
	sub.Cancel()
	_ = b.Publish(context.Background(), "buffer.loaded", nil)

	if calls != 1 {
		t.Errorf("handler called %d times after cancel, want 1", calls)
	}
}

func TestTopicPatternMismatchSkipsHandler(t *testing.T) {
	b := NewBus()

	b.SubscribeFunc(topic.Topic("buffer.closed"), func(_ context.Context, _ any) error {
		t.Error("handler for a different topic was called")
		return nil
	})

	if err := b.Publish(context.Background(), "buffer.loaded", nil); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
}
