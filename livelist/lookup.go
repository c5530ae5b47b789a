package livelist

import (
	"github.com/delaneyj/livesignals/watchable"
)

// Group is the live list of the elements of a Lookup that share one key, in
// upstream order. Element IDs are the upstream IDs.
type Group[K comparable, T any] struct {
	key    K
	lookup *Lookup[K, T]

	content   *manifestation[T]
	observers observerSet[T]

	// members plus live subscriptions; the group is evicted at zero
	refs int
	// position on the lookup's list of groups, zero while the group is empty
	listID ID
}

func (g *Group[K, T]) Key() K {
	return g.key
}

// Len is the number of elements currently in the group.
func (g *Group[K, T]) Len() int {
	return g.canonical(false).content.order.len()
}

func (g *Group[K, T]) Items() []T {
	return g.canonical(false).content.values()
}

// canonical returns the group the lookup currently holds for this key. A group
// handed out for a key that had no elements is only registered once something
// subscribes to it.
func (g *Group[K, T]) canonical(register bool) *Group[K, T] {
	if current, ok := g.lookup.groups[g.key]; ok {
		return current
	}
	if register {
		g.lookup.groups[g.key] = g
	}
	return g
}

func (g *Group[K, T]) Subscribe(observer Observer[T]) Subscription {
	if observer == nil {
		panic("livelist: nil observer")
	}
	c := g.canonical(true)
	c.refs++
	c.content.replay(observer)
	r := c.observers.add(observer)

	return NewSubscription(
		func(id ID) { c.content.refresh("Group", r, id) },
		func() {
			c.observers.remove(r)
			c.release()
		},
	)
}

func (g *Group[K, T]) release() {
	g.refs--
	if g.refs == 0 && g.lookup.groups[g.key] == g {
		delete(g.lookup.groups, g.key)
	}
}

type lookupMember[K comparable, T any] struct {
	group *Group[K, T]
	item  T
}

// Lookup partitions a list by key. It subscribes to its source when created and
// holds that subscription until Dispose. As a List it delivers the non-empty
// groups in the order they became non-empty.
type Lookup[K comparable, T any] struct {
	groups   map[K]*Group[K, T]
	members  map[ID]lookupMember[K, T]
	upstream *chain

	active    *manifestation[*Group[K, T]]
	observers observerSet[*Group[K, T]]

	subscription Subscription
	deps         *dependencies
}

func ToLookup[T any, K comparable](rs *watchable.Repository, source List[T], key func(T) K) *Lookup[K, T] {
	return ToLookupBy(rs, source, key, identity[T])
}

type keyedElement[K comparable, E any] struct {
	key     K
	element E
}

// ToLookupBy is ToLookup with the groups holding element(item) instead of the
// item. Key and element are evaluated together, so a change to anything either
// one read moves or rebuilds that element.
func ToLookupBy[T any, K comparable, E any](rs *watchable.Repository, source List[T], key func(T) K, element func(T) E) *Lookup[K, E] {
	if key == nil {
		panic("livelist: nil key selector")
	}
	if element == nil {
		panic("livelist: nil element selector")
	}
	l := &Lookup[K, E]{
		groups:   map[K]*Group[K, E]{},
		members:  map[ID]lookupMember[K, E]{},
		upstream: newChain(),
		active:   newManifestation[*Group[K, E]](),
	}
	l.deps = newDependencies(rs, "GroupBy", func(id ID) {
		l.subscription.Refresh(id)
	})

	l.subscription = source.Subscribe(func(e Event[T]) {
		switch e.Type {
		case Add:
			item := e.Item
			ke := evaluateFor(l.deps, e.ID, func() keyedElement[K, E] {
				return keyedElement[K, E]{key: key(item), element: element(item)}
			})
			l.add(ke.key, ke.element, e.ID, e.Previous)
		case Remove:
			l.remove(e.ID)
			l.deps.release(e.ID)
		}
	})
	return l
}

// GroupBy is a cold ToLookup: every subscription partitions the source anew.
func GroupBy[T any, K comparable](rs *watchable.Repository, source List[T], key func(T) K) List[*Group[K, T]] {
	return GroupByElement(rs, source, key, identity[T])
}

// GroupByElement is a cold ToLookupBy.
func GroupByElement[T any, K comparable, E any](rs *watchable.Repository, source List[T], key func(T) K, element func(T) E) List[*Group[K, E]] {
	return Create(func(observer Observer[*Group[K, E]]) Subscription {
		l := ToLookupBy(rs, source, key, element)
		return Nest(l.Subscribe(observer), l.Dispose)
	})
}

// GroupByResult maps every group to result(key, group) as it appears.
func GroupByResult[T any, K comparable, R any](rs *watchable.Repository, source List[T], key func(T) K, result func(K, List[T]) R) List[R] {
	return GroupByElementResult(rs, source, key, identity[T], result)
}

func GroupByElementResult[T any, K comparable, E, R any](rs *watchable.Repository, source List[T], key func(T) K, element func(T) E, result func(K, List[E]) R) List[R] {
	return Select(rs, GroupByElement(rs, source, key, element), func(g *Group[K, E]) R {
		return result(g.Key(), g)
	})
}

func identity[T any](item T) T {
	return item
}

// Get returns the group for key, which is empty if no element has that key.
func (l *Lookup[K, T]) Get(key K) *Group[K, T] {
	if g, ok := l.groups[key]; ok {
		return g
	}
	return l.newGroup(key)
}

func (l *Lookup[K, T]) Contains(key K) bool {
	g, ok := l.groups[key]
	return ok && g.content.order.len() > 0
}

// Len is the number of non-empty groups.
func (l *Lookup[K, T]) Len() int {
	return l.active.order.len()
}

func (l *Lookup[K, T]) Dispose() {
	l.subscription.Dispose()
	l.deps.releaseAll()
}

func (l *Lookup[K, T]) Subscribe(observer Observer[*Group[K, T]]) Subscription {
	if observer == nil {
		panic("livelist: nil observer")
	}
	l.active.replay(observer)
	r := l.observers.add(observer)

	return NewSubscription(
		func(id ID) { l.active.refresh("Lookup", r, id) },
		func() { l.observers.remove(r) },
	)
}

func (l *Lookup[K, T]) newGroup(key K) *Group[K, T] {
	return &Group[K, T]{
		key:     key,
		lookup:  l,
		content: newManifestation[T](),
	}
}

func (l *Lookup[K, T]) add(key K, item T, id, previous ID) {
	if !previous.IsZero() && !l.upstream.contains(previous) {
		panic(protocolErrorf("GroupBy", id, "unknown previous id %s", previous))
	}
	g, ok := l.groups[key]
	if !ok {
		g = l.newGroup(key)
		l.groups[key] = g
	}
	l.upstream.insertAfter(id, previous)
	l.members[id] = lookupMember[K, T]{group: g, item: item}
	g.refs++

	groupPrevious := previous
	for !groupPrevious.IsZero() && l.members[groupPrevious].group != g {
		groupPrevious = l.upstream.previousOf(groupPrevious)
	}
	e := Event[T]{Type: Add, Item: item, ID: id, Previous: groupPrevious}
	g.content.apply("GroupBy", e)
	g.observers.emit(e)

	if g.content.order.len() == 1 {
		g.listID = NewID()
		l.emit(Event[*Group[K, T]]{Type: Add, Item: g, ID: g.listID, Previous: l.active.order.tail()})
	}
}

func (l *Lookup[K, T]) remove(id ID) {
	m, ok := l.members[id]
	if !ok {
		panic(protocolErrorf("GroupBy", id, "remove of unknown id"))
	}
	g := m.group
	delete(l.members, id)
	l.upstream.remove(id)

	e := Event[T]{Type: Remove, Item: m.item, ID: id, Previous: g.content.order.previousOf(id)}
	g.content.apply("GroupBy", e)
	g.observers.emit(e)

	if g.content.order.len() == 0 {
		listID := g.listID
		g.listID = ID{}
		l.emit(Event[*Group[K, T]]{Type: Remove, Item: g, ID: listID, Previous: l.active.order.previousOf(listID)})
	}
	g.release()
}

func (l *Lookup[K, T]) emit(e Event[*Group[K, T]]) {
	l.active.apply("Lookup", e)
	l.observers.emit(e)
}
