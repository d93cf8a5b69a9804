package events

import (
	"sync"
	"time"
)

type subscription struct {
	id       uint64
	listener Listener
}

// Broker fans change notifications out to registered listeners.
// Listeners are invoked in subscription order, outside the subscriber lock,
// so a listener may subscribe, unsubscribe or read stores while handling an event.
// A listener must not publish to the broker that is delivering to it.
type Broker struct {
	// deliverMu serializes Publish so listeners see sequence numbers in order.
	deliverMu sync.Mutex

	mu     sync.Mutex
	subs   []subscription
	nextID uint64
	seq    uint64
	now    func() time.Time
}

// NewBroker creates a broker with no subscribers.
func NewBroker() *Broker {
	return &Broker{now: time.Now}
}

// Subscribe registers a listener and returns a function that removes it.
// The returned function is safe to call more than once.
func (b *Broker) Subscribe(l Listener) func() {
	if l == nil {
		return func() {}
	}

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, listener: l})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Broker) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subs {
		if sub.id == id {
			// Copy instead of splicing so in-flight Publish snapshots stay intact.
			next := make([]subscription, 0, len(b.subs)-1)
			next = append(next, b.subs[:i]...)
			b.subs = append(next, b.subs[i+1:]...)
			return
		}
	}
}

// Publish stamps the event with the next sequence number and a timestamp,
// delivers it to every current listener, and returns the stamped event.
// It returns only after all listeners have run.
func (b *Broker) Publish(e Event) Event {
	b.deliverMu.Lock()
	defer b.deliverMu.Unlock()

	b.mu.Lock()
	b.seq++
	e.Sequence = b.seq
	if e.Timestamp.IsZero() {
		e.Timestamp = b.now()
	}
	subs := b.subs
	b.mu.Unlock()

	for _, sub := range subs {
		sub.listener(e)
	}
	return e
}

// Relay returns a listener that republishes every event it receives on dst.
// dst assigns its own sequence numbers; the original timestamp is kept.
func Relay(dst *Broker) Listener {
	return func(e Event) {
		e.Sequence = 0
		dst.Publish(e)
	}
}

// Len reports the number of registered listeners.
func (b *Broker) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
