package storage

import "sync"

// notifier fans out change signals to live query subscriptions.
//
// Each subscriber gets a buffered signal channel of capacity one, so
// bursts of mutations coalesce: a subscriber that is busy re-querying
// picks up a single pending signal covering everything it missed. The
// version counter increases once per notification and lets tests assert
// the strictly-increasing logical version per mutation.
type notifier struct {
	mu      sync.Mutex
	subs    map[int]chan struct{}
	nextID  int
	version uint64
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[int]chan struct{})}
}

// Notify signals all current subscribers that store state changed.
func (n *notifier) Notify() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.version++
	for _, ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default: // a signal is already pending; coalesce
		}
	}
}

// Version returns the current logical version of the store state.
func (n *notifier) Version() uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.version
}

// subscribe registers a new subscriber and returns its id and signal channel.
func (n *notifier) subscribe() (int, chan struct{}) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	ch := make(chan struct{}, 1)
	n.subs[id] = ch
	return id, ch
}

// unsubscribe removes a subscriber. Safe to call more than once.
func (n *notifier) unsubscribe(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.subs, id)
}

// subscriberCount returns the number of active subscriptions.
func (n *notifier) subscriberCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}
