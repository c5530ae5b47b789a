package livelist

// ToSlice subscribes to list, collects its current content and unsubscribes.
func ToSlice[T any](list List[T]) []T {
	content := newManifestation[T]()
	list.Subscribe(func(e Event[T]) {
		content.apply("ToSlice", e)
	}).Dispose()
	return content.values()
}

// Change is an event translated to list positions. Index is the position of
// the element after an Add and before a Remove.
type Change[T any] struct {
	Type  EventType
	Index int
	Item  T
}

type manifestEntry[T any] struct {
	id   ID
	item T
}

type manifestListener[T any] struct {
	fn func(Change[T])
}

// Manifest keeps an indexable copy of a list while anyone listens to it. It
// subscribes on the first Listen and unsubscribes when the last listener
// cancels.
type Manifest[T any] struct {
	source       List[T]
	subscription Subscription
	entries      []manifestEntry[T]
	listeners    []*manifestListener[T]
}

func NewManifest[T any](source List[T]) *Manifest[T] {
	return &Manifest[T]{source: source}
}

func (m *Manifest[T]) Listen(fn func(Change[T])) (cancel func()) {
	if fn == nil {
		panic("livelist: nil listener")
	}
	if m.subscription == nil {
		m.subscription = m.source.Subscribe(m.apply)
	}
	l := &manifestListener[T]{fn: fn}
	m.listeners = append(m.listeners, l)

	cancelled := false
	return func() {
		if cancelled {
			return
		}
		cancelled = true
		for i, other := range m.listeners {
			if other == l {
				m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
				break
			}
		}
		if len(m.listeners) == 0 {
			m.subscription.Dispose()
			m.subscription = nil
			m.entries = nil
		}
	}
}

func (m *Manifest[T]) Listening() bool {
	return m.subscription != nil
}

func (m *Manifest[T]) Len() int {
	if m.subscription == nil {
		return len(ToSlice(m.source))
	}
	return len(m.entries)
}

func (m *Manifest[T]) Get(index int) T {
	if m.subscription == nil {
		return ToSlice(m.source)[index]
	}
	return m.entries[index].item
}

func (m *Manifest[T]) Items() []T {
	if m.subscription == nil {
		return ToSlice(m.source)
	}
	items := make([]T, len(m.entries))
	for i, e := range m.entries {
		items[i] = e.item
	}
	return items
}

func (m *Manifest[T]) indexOf(id ID) int {
	for i, e := range m.entries {
		if e.id == id {
			return i
		}
	}
	return -1
}

func (m *Manifest[T]) apply(e Event[T]) {
	var index int
	switch e.Type {
	case Add:
		if !e.Previous.IsZero() {
			index = m.indexOf(e.Previous) + 1
			if index == 0 {
				panic(protocolErrorf("Manifest", e.ID, "unknown previous id %s", e.Previous))
			}
		}
		m.entries = append(m.entries, manifestEntry[T]{})
		copy(m.entries[index+1:], m.entries[index:])
		m.entries[index] = manifestEntry[T]{id: e.ID, item: e.Item}
	case Remove:
		index = m.indexOf(e.ID)
		if index < 0 {
			panic(protocolErrorf("Manifest", e.ID, "remove of unknown id"))
		}
		m.entries = append(m.entries[:index], m.entries[index+1:]...)
	}

	if len(m.listeners) == 0 {
		return
	}
	change := Change[T]{Type: e.Type, Index: index, Item: e.Item}
	listeners := make([]*manifestListener[T], len(m.listeners))
	copy(listeners, m.listeners)
	for _, l := range listeners {
		l.fn(change)
	}
}
