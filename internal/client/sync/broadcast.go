package sync

import "sync"

// Broadcaster fans out refresh signals to every subscribed sync client in
// the process. Delivery is fire-and-forget: a subscriber with a pending
// signal does not get a second one, and there is no ordering guarantee.
// Subscribers created after a publish simply get current state on their
// next fetch.
//
// This is the in-process analog of the cross-tab broadcast channel an
// editing session uses to make edits feel instantaneous without a push
// channel.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[chan struct{}]struct{})}
}

// Subscribe registers a refresh channel. The returned cancel function
// removes the subscription.
func (b *Broadcaster) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		delete(b.subs, ch)
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish signals every current subscriber without blocking.
func (b *Broadcaster) Publish() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs {
		select {
		case ch <- struct{}{}:
		default:
			// subscriber already has a pending signal
		}
	}
}
