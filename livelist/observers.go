package livelist

type registration[T any] struct {
	observer Observer[T]
	active   bool
}

// observerSet delivers events to observers in subscription order. Observers
// added during a delivery do not receive it; observers removed during a
// delivery are skipped.
type observerSet[T any] struct {
	registrations []*registration[T]
}

func (s *observerSet[T]) add(observer Observer[T]) *registration[T] {
	r := &registration[T]{observer: observer, active: true}
	s.registrations = append(s.registrations, r)
	return r
}

func (s *observerSet[T]) remove(r *registration[T]) {
	r.active = false
	for i, other := range s.registrations {
		if other == r {
			s.registrations = append(s.registrations[:i], s.registrations[i+1:]...)
			return
		}
	}
}

func (s *observerSet[T]) len() int {
	return len(s.registrations)
}

func (s *observerSet[T]) emit(e Event[T]) {
	if len(s.registrations) == 0 {
		return
	}
	snapshot := make([]*registration[T], len(s.registrations))
	copy(snapshot, s.registrations)
	for _, r := range snapshot {
		if r.active {
			r.observer(e)
		}
	}
}

// manifestation is the folded content of an event stream.
type manifestation[T any] struct {
	order *chain
	items map[ID]T
}

func newManifestation[T any]() *manifestation[T] {
	return &manifestation[T]{order: newChain(), items: map[ID]T{}}
}

func (m *manifestation[T]) apply(operator string, e Event[T]) {
	switch e.Type {
	case Add:
		if m.order.contains(e.ID) {
			panic(protocolErrorf(operator, e.ID, "add of known id"))
		}
		if !e.Previous.IsZero() && !m.order.contains(e.Previous) {
			panic(protocolErrorf(operator, e.ID, "unknown previous id %s", e.Previous))
		}
		m.order.insertAfter(e.ID, e.Previous)
		m.items[e.ID] = e.Item
	case Remove:
		if !m.order.contains(e.ID) {
			panic(protocolErrorf(operator, e.ID, "remove of unknown id"))
		}
		m.order.remove(e.ID)
		delete(m.items, e.ID)
	}
}

func (m *manifestation[T]) replay(observer Observer[T]) {
	previous := ID{}
	for _, id := range m.order.ids() {
		observer(Event[T]{Type: Add, Item: m.items[id], ID: id, Previous: previous})
		previous = id
	}
}

// refresh re-delivers one element to one registration.
func (m *manifestation[T]) refresh(operator string, r *registration[T], id ID) {
	if !m.order.contains(id) {
		panic(protocolErrorf(operator, id, "refresh of unknown id"))
	}
	previous := m.order.previousOf(id)
	item := m.items[id]
	r.observer(Event[T]{Type: Remove, Item: item, ID: id, Previous: previous})
	if r.active {
		r.observer(Event[T]{Type: Add, Item: item, ID: id, Previous: previous})
	}
}

func (m *manifestation[T]) values() []T {
	values := make([]T, 0, m.order.len())
	for id := m.order.head(); !id.IsZero(); id = m.order.nextOf(id) {
		values = append(values, m.items[id])
	}
	return values
}
