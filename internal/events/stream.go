package events

import (
	"context"
	"sync"
)

// Stream subscribes a buffered channel to the broker until ctx is done,
// at which point the subscription is removed and the channel closed.
// Events that arrive while the buffer is full are dropped and counted in dropped.
func (b *Broker) Stream(ctx context.Context, buffer int) (events <-chan Event, dropped func() int) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	var (
		mu     sync.Mutex
		closed bool
		misses int
	)

	unsubscribe := b.Subscribe(func(e Event) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case ch <- e:
		default:
			misses++
		}
	})

	go func() {
		<-ctx.Done()
		unsubscribe()
		mu.Lock()
		closed = true
		close(ch)
		mu.Unlock()
	}()

	return ch, func() int {
		mu.Lock()
		defer mu.Unlock()
		return misses
	}
}
