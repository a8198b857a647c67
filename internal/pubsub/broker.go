package pubsub

import (
	"context"
	"sync"
)

const (
	// subBufferSize is the buffer size of the channel for each subscription.
	subBufferSize = 1024
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Broker relays events from background goroutines, e.g. the file watcher or
// the logger, to subscribers. Unlike Signal it is safe for concurrent use and
// delivery is asynchronous.
type Broker[T any] struct {
	subs map[chan T]struct{} // subscriptions
	mu   sync.Mutex          // sync access to map

	logger Logger
}

func NewBroker[T any](logger Logger) *Broker[T] {
	return &Broker[T]{
		subs:   make(map[chan T]struct{}),
		logger: logger,
	}
}

// Subscribe subscribes the caller to a stream of events. The subscription is
// closed when the context is canceled.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan T {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := make(chan T, subBufferSize)
	b.subs[sub] = struct{}{}

	// when the context is canceled remove the subscriber
	go func() {
		<-ctx.Done()
		b.unsubscribe(sub)
	}()

	return sub
}

// Publish an event to subscribers. A subscriber whose buffer is full is
// unsubscribed.
func (b *Broker[T]) Publish(payload T) {
	var fullSubscribers []chan T

	b.mu.Lock()
	for sub := range b.subs {
		select {
		case sub <- payload:
			continue
		default:
			fullSubscribers = append(fullSubscribers, sub)
		}
	}
	b.mu.Unlock()

	for _, sub := range fullSubscribers {
		if b.logger != nil {
			b.logger.Error("unsubscribing full subscriber", "queue_length", subBufferSize)
		}
		b.unsubscribe(sub)
	}
}

func (b *Broker[T]) unsubscribe(sub chan T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[sub]; !ok {
		// already unsubscribed
		return
	}
	close(sub)
	delete(b.subs, sub)
}
