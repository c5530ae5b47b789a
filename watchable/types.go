package watchable

import "fmt"

// Watchable is anything an evaluation can depend on.
type Watchable interface {
	Subscribe(watcher func()) *Subscription
	String() string
}

// Subscription is a single registration of a watcher. It must be disposed exactly once.
type Subscription struct {
	dispose  func()
	disposed bool
}

func NewSubscription(dispose func()) *Subscription {
	return &Subscription{dispose: dispose}
}

func (s *Subscription) Dispose() {
	if s.disposed {
		panic("watchable: subscription disposed twice")
	}
	s.disposed = true
	if s.dispose != nil {
		s.dispose()
	}
}

func (s *Subscription) Disposed() bool {
	return s.disposed
}

// SerialSubscription holds at most one subscription and disposes the old one
// whenever it is replaced.
type SerialSubscription struct {
	current *Subscription
}

func (s *SerialSubscription) Set(sub *Subscription) {
	old := s.current
	s.current = nil
	if old != nil {
		old.Dispose()
	}
	s.current = sub
}

func (s *SerialSubscription) Dispose() {
	s.Set(nil)
}

func (s *SerialSubscription) Active() bool {
	return s.current != nil
}

type watcher struct {
	fn     func()
	active bool
}

// notifier is the shared watcher list of variables and computeds.
type notifier struct {
	name     string
	kind     string
	watchers []*watcher
}

func (n *notifier) Subscribe(fn func()) *Subscription {
	if fn == nil {
		panic("watchable: nil watcher")
	}
	w := &watcher{fn: fn, active: true}
	n.watchers = append(n.watchers, w)
	return NewSubscription(func() {
		w.active = false
		for i, other := range n.watchers {
			if other == w {
				n.watchers = append(n.watchers[:i], n.watchers[i+1:]...)
				return
			}
		}
	})
}

// notify calls the watchers registered when it started. Watchers that subscribe
// while it runs are left for the next notification.
func (n *notifier) notify() {
	if len(n.watchers) == 0 {
		return
	}
	snapshot := make([]*watcher, len(n.watchers))
	copy(snapshot, n.watchers)
	for _, w := range snapshot {
		if w.active {
			w.fn()
		}
	}
}

func (n *notifier) WatcherCount() int {
	return len(n.watchers)
}

func (n *notifier) String() string {
	if n.name != "" {
		return n.name
	}
	return fmt.Sprintf("%s@%p", n.kind, n)
}
