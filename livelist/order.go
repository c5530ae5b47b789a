package livelist

import (
	"slices"
	"sort"

	"github.com/delaneyj/livesignals/watchable"
	"golang.org/x/exp/constraints"
)

type sortKey[T any] struct {
	selector   func(T) any
	compare    func(a, b any) int
	descending bool
}

// Ordered is a sorted view of a list. ThenBy and friends add tie-breaking keys;
// elements that compare equal on every key stay in ID order.
type Ordered[T any] struct {
	rs     *watchable.Repository
	source List[T]
	keys   []sortKey[T]
}

func OrderBy[T any, K constraints.Ordered](rs *watchable.Repository, source List[T], key func(T) K) *Ordered[T] {
	return OrderByFunc(rs, source, key, compareOrdered[K], false)
}

func OrderByDescending[T any, K constraints.Ordered](rs *watchable.Repository, source List[T], key func(T) K) *Ordered[T] {
	return OrderByFunc(rs, source, key, compareOrdered[K], true)
}

// OrderByFunc sorts by keys of any type using compare.
func OrderByFunc[T, K any](rs *watchable.Repository, source List[T], key func(T) K, compare func(a, b K) int, descending bool) *Ordered[T] {
	return withKey(&Ordered[T]{rs: rs, source: source}, key, compare, descending)
}

func ThenBy[T any, K constraints.Ordered](o *Ordered[T], key func(T) K) *Ordered[T] {
	return withKey(o, key, compareOrdered[K], false)
}

func ThenByDescending[T any, K constraints.Ordered](o *Ordered[T], key func(T) K) *Ordered[T] {
	return withKey(o, key, compareOrdered[K], true)
}

func ThenByFunc[T, K any](o *Ordered[T], key func(T) K, compare func(a, b K) int, descending bool) *Ordered[T] {
	return withKey(o, key, compare, descending)
}

func withKey[T, K any](o *Ordered[T], key func(T) K, compare func(a, b K) int, descending bool) *Ordered[T] {
	if key == nil || compare == nil {
		panic("livelist: nil sort key")
	}
	keys := make([]sortKey[T], len(o.keys), len(o.keys)+1)
	copy(keys, o.keys)
	keys = append(keys, sortKey[T]{
		selector:   func(item T) any { return key(item) },
		compare:    func(a, b any) int { return compare(a.(K), b.(K)) },
		descending: descending,
	})
	return &Ordered[T]{rs: o.rs, source: o.source, keys: keys}
}

func compareOrdered[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

type sortedEntry[T any] struct {
	item T
	id   ID
	keys []any
}

func (o *Ordered[T]) compare(a, b *sortedEntry[T]) int {
	for i, k := range o.keys {
		c := k.compare(a.keys[i], b.keys[i])
		if k.descending {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	return a.id.Compare(b.id)
}

func (o *Ordered[T]) Subscribe(observer Observer[T]) Subscription {
	if observer == nil {
		panic("livelist: nil observer")
	}

	var (
		upstream Subscription
		entries  []*sortedEntry[T]
		byID     = map[ID]*sortedEntry[T]{}
		deps     *dependencies
	)

	keysOf := func(e *sortedEntry[T]) []any {
		item := e.item
		return evaluateFor(deps, e.id, func() []any {
			keys := make([]any, len(o.keys))
			for i, k := range o.keys {
				keys[i] = k.selector(item)
			}
			return keys
		})
	}
	previousOf := func(index int) ID {
		if index == 0 {
			return ID{}
		}
		return entries[index-1].id
	}
	// locate finds e by its cached keys.
	locate := func(e *sortedEntry[T]) int {
		index := sort.Search(len(entries), func(i int) bool {
			return o.compare(entries[i], e) >= 0
		})
		if index >= len(entries) || entries[index] != e {
			panic(protocolErrorf("OrderBy", e.id, "element not found at its sorted position"))
		}
		return index
	}
	insert := func(e *sortedEntry[T]) {
		index := sort.Search(len(entries), func(i int) bool {
			return o.compare(entries[i], e) > 0
		})
		entries = slices.Insert(entries, index, e)
		observer(Event[T]{Type: Add, Item: e.item, ID: e.id, Previous: previousOf(index)})
	}
	removeAt := func(index int) {
		e := entries[index]
		previous := previousOf(index)
		entries = slices.Delete(entries, index, index+1)
		observer(Event[T]{Type: Remove, Item: e.item, ID: e.id, Previous: previous})
	}

	// A key change re-sorts the element in place rather than refreshing upstream.
	deps = newDependencies(o.rs, "OrderBy", func(id ID) {
		e, ok := byID[id]
		if !ok {
			return
		}
		index := locate(e)
		rekeyed := &sortedEntry[T]{item: e.item, id: e.id, keys: keysOf(e)}

		stays := (index == 0 || o.compare(entries[index-1], rekeyed) < 0) &&
			(index == len(entries)-1 || o.compare(rekeyed, entries[index+1]) < 0)
		if stays {
			e.keys = rekeyed.keys
			return
		}
		removeAt(index)
		e.keys = rekeyed.keys
		insert(e)
	})

	upstream = o.source.Subscribe(func(ev Event[T]) {
		switch ev.Type {
		case Add:
			if _, ok := byID[ev.ID]; ok {
				panic(protocolErrorf("OrderBy", ev.ID, "add of known id"))
			}
			e := &sortedEntry[T]{item: ev.Item, id: ev.ID}
			e.keys = keysOf(e)
			byID[ev.ID] = e
			insert(e)
		case Remove:
			e, ok := byID[ev.ID]
			if !ok {
				panic(protocolErrorf("OrderBy", ev.ID, "remove of unknown id"))
			}
			removeAt(locate(e))
			delete(byID, ev.ID)
			deps.release(ev.ID)
		}
	})

	return Nest(upstream, deps.releaseAll)
}
