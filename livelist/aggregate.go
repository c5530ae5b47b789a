package livelist

import (
	"github.com/delaneyj/livesignals/watchable"
	"golang.org/x/exp/constraints"
)

// Aggregate is a running fold over a list, kept in a watchable.Variable so
// computeds can depend on it.
type Aggregate[V any] struct {
	value        *watchable.Variable[V]
	subscription Subscription
}

// Value reads the current result, recording a dependency on it.
func (a *Aggregate[V]) Value() V {
	return a.value.Value()
}

func (a *Aggregate[V]) Variable() *watchable.Variable[V] {
	return a.value
}

func (a *Aggregate[V]) Dispose() {
	a.subscription.Dispose()
}

func Count[T any](rs *watchable.Repository, source List[T]) *Aggregate[int] {
	return fold(rs, source,
		func(n int, _ T) int { return n + 1 },
		func(n int, _ T) int { return n - 1 },
	)
}

// Sum adds up selector over the list. The selector is tracked like a Select
// projection.
func Sum[T any, V constraints.Integer | constraints.Float](rs *watchable.Repository, source List[T], selector func(T) V) *Aggregate[V] {
	return fold(rs, Select(rs, source, selector),
		func(total V, v V) V { return total + v },
		func(total V, v V) V { return total - v },
	)
}

func fold[T, V any](rs *watchable.Repository, source List[T], add, remove func(V, T) V) *Aggregate[V] {
	a := &Aggregate[V]{}
	var total V
	a.subscription = source.Subscribe(func(e Event[T]) {
		switch e.Type {
		case Add:
			total = add(total, e.Item)
		case Remove:
			total = remove(total, e.Item)
		}
		if a.value != nil {
			a.value.SetValue(total)
		}
	})
	a.value = watchable.Var(rs, total)
	return a
}
