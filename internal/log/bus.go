package log

// Bus is a synchronous publish/subscribe stream of GameEvents. Dispatch is
// in-order and single-threaded: Publish calls every live handler before
// returning, in subscription order. Handlers may themselves Publish; the
// resulting events are dispatched depth-first.
type Bus struct {
	subs   []*Subscription
	nextID int
	seq    int
}

// Subscription is the handle returned by Subscribe. It must be closed when
// the subscriber is torn down, or its handler keeps firing against a dead
// component.
type Subscription struct {
	id      int
	bus     *Bus
	handler func(GameEvent)
	closed  bool
}

// Close unregisters the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	if s.closed {
		return
	}
	s.closed = true
	subs := s.bus.subs
	for i, sub := range subs {
		if sub.id == s.id {
			s.bus.subs = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for every published event.
func (b *Bus) Subscribe(handler func(GameEvent)) *Subscription {
	b.nextID++
	sub := &Subscription{id: b.nextID, bus: b, handler: handler}
	b.subs = append(b.subs, sub)
	return sub
}

// Publish assigns a sequence number and dispatches the event to all
// subscribers synchronously.
func (b *Bus) Publish(event GameEvent) {
	b.seq++
	event.Seq = b.seq

	// Snapshot so handlers can subscribe/unsubscribe during dispatch.
	subs := make([]*Subscription, len(b.subs))
	copy(subs, b.subs)
	for _, sub := range subs {
		if !sub.closed {
			sub.handler(event)
		}
	}
}

// SubscriberCount reports the number of live subscriptions.
func (b *Bus) SubscriberCount() int {
	return len(b.subs)
}
