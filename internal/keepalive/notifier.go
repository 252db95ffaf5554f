package keepalive

import "sync"

// Notifier hands events to at most one observer. Emit is synchronous, does
// not buffer or retry, and drops the event when nobody is observing.
type Notifier struct {
	mu       sync.Mutex
	observer func(Event)
	sub      *subscription
}

// NewNotifier returns a notifier without an observer.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// SetObserver installs fn as the observer; nil removes it.
func (n *Notifier) SetObserver(fn func(Event)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.observer = fn
	n.sub = nil
}

// Emit delivers event to the current observer, if any. The observer runs
// on the caller's goroutine without the notifier lock held.
func (n *Notifier) Emit(event Event) {
	if n == nil {
		return
	}
	n.mu.Lock()
	observer := n.observer
	n.mu.Unlock()

	if observer != nil {
		observer(event)
	}
}

// Subscribe installs a channel-backed observer and returns the channel with
// a cancel function that detaches and closes it. Sends never block: an event
// that does not fit in the buffer is dropped.
func (n *Notifier) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 1
	}
	sub := &subscription{ch: make(chan Event, buffer)}

	n.mu.Lock()
	n.observer = sub.send
	n.sub = sub
	n.mu.Unlock()

	cancel := func() {
		n.mu.Lock()
		if n.sub == sub {
			n.observer = nil
			n.sub = nil
		}
		n.mu.Unlock()
		sub.close()
	}
	return sub.ch, cancel
}

type subscription struct {
	mu     sync.Mutex
	ch     chan Event
	closed bool
}

func (s *subscription) send(event Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- event:
	default:
	}
}

func (s *subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}
