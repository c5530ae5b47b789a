package livelist

import "fmt"

type EventType int

const (
	Add EventType = iota
	Remove
)

func (t EventType) String() string {
	switch t {
	case Add:
		return "add"
	case Remove:
		return "remove"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// Event is a single change to a live list. For Add, Previous is the element the
// new one follows, or zero for the head. For Remove, Previous is the element
// the removed one followed just before removal.
type Event[T any] struct {
	Type     EventType
	Item     T
	ID       ID
	Previous ID
}

func (e Event[T]) String() string {
	return fmt.Sprintf("%s %v (%s after %s)", e.Type, e.Item, e.ID, e.Previous)
}

type Observer[T any] func(Event[T])

// Subscription ends a list subscription, or asks the list to re-deliver one
// element as a Remove followed by an Add of the same ID.
type Subscription interface {
	Dispose()
	Refresh(id ID)
}

// List is a cold source of events. Every Subscribe first replays the current
// content as Adds, head to tail, then delivers changes as they happen.
type List[T any] interface {
	Subscribe(observer Observer[T]) Subscription
}
