package livelist

import (
	"github.com/delaneyj/livesignals/watchable"
)

// Select projects every element through selector. The projection is evaluated
// once per Add; when anything it read changes the element is refreshed
// upstream and projected again. IDs pass through unchanged.
func Select[S, R any](rs *watchable.Repository, source List[S], selector func(S) R) List[R] {
	return Create(func(observer Observer[R]) Subscription {
		var upstream Subscription
		projected := map[ID]R{}
		deps := newDependencies(rs, "Select", func(id ID) {
			upstream.Refresh(id)
		})

		upstream = source.Subscribe(func(e Event[S]) {
			switch e.Type {
			case Add:
				item := e.Item
				r := evaluateFor(deps, e.ID, func() R { return selector(item) })
				projected[e.ID] = r
				observer(Event[R]{Type: Add, Item: r, ID: e.ID, Previous: e.Previous})
			case Remove:
				r, ok := projected[e.ID]
				if !ok {
					panic(protocolErrorf("Select", e.ID, "remove of unknown id"))
				}
				delete(projected, e.ID)
				deps.release(e.ID)
				observer(Event[R]{Type: Remove, Item: r, ID: e.ID, Previous: e.Previous})
			}
		})

		return NewSubscription(
			func(id ID) {
				if _, ok := projected[id]; !ok {
					panic(protocolErrorf("Select", id, "refresh of unknown id"))
				}
				upstream.Refresh(id)
			},
			upstream.Dispose,
			deps.releaseAll,
		)
	})
}

// SelectMany projects every element to a list and concatenates the results.
func SelectMany[S, R any](rs *watchable.Repository, source List[S], selector func(S) List[R]) List[R] {
	return Flatten(Select(rs, source, selector))
}

// SelectManyWith pairs every element with each member of its collection and
// concatenates result over those pairs.
func SelectManyWith[S, C, R any](rs *watchable.Repository, source List[S], collection func(S) List[C], result func(S, C) R) List[R] {
	return SelectMany(rs, source, func(s S) List[R] {
		return Select(rs, collection(s), func(c C) R {
			return result(s, c)
		})
	})
}
