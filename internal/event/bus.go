// Package event provides the synchronous event bus that triggers the
// mode-line scan.
//
// The host delivers a buffer-loaded event; subscribed handlers run in
// the publisher's goroutine and to completion before Publish returns.
// Handler panics are recovered into errors so one misbehaving handler
// cannot take down the publisher.
package event

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dshills/modeline/internal/event/topic"
)

// Handler processes a published event.
type Handler interface {
	Handle(ctx context.Context, event any) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, event any) error

// Handle calls the function.
func (f HandlerFunc) Handle(ctx context.Context, event any) error {
	return f(ctx, event)
}

// Subscription identifies one registered handler and can cancel it.
type Subscription struct {
	bus *Bus
	id  uint64
}

// Cancel removes the subscription from its bus.
func (s Subscription) Cancel() {
	s.bus.unsubscribe(s.id)
}

type subscriber struct {
	id      uint64
	pattern topic.Topic
	handler Handler
}

// Bus is a synchronous publish/subscribe bus keyed by topic pattern.
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []subscriber
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for topics matching the pattern.
func (b *Bus) Subscribe(pattern topic.Topic, handler Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.subs = append(b.subs, subscriber{id: b.nextID, pattern: pattern, handler: handler})
	return Subscription{bus: b, id: b.nextID}
}

// SubscribeFunc registers a function handler.
func (b *Bus) SubscribeFunc(pattern topic.Topic, fn HandlerFunc) Subscription {
	return b.Subscribe(pattern, fn)
}

func (b *Bus) unsubscribe(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers the event to every matching handler in subscription
// order. It blocks until all handlers finish and returns the joined
// handler errors; a panicking handler contributes an error instead of
// unwinding into the publisher.
func (b *Bus) Publish(ctx context.Context, t topic.Topic, event any) error {
	b.mu.RLock()
	matched := make([]subscriber, 0, len(b.subs))
	for _, s := range b.subs {
		if t.Match(s.pattern) {
			matched = append(matched, s)
		}
	}
	b.mu.RUnlock()

	var errs []error
	for _, s := range matched {
		if err := safeHandle(ctx, s.handler, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// safeHandle runs one handler with panic recovery.
func safeHandle(ctx context.Context, h Handler, event any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("event: handler panic: %v", r)
		}
	}()
	return h.Handle(ctx, event)
}
