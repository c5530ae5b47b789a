package livelist

import (
	"github.com/delaneyj/livesignals/watchable"
)

type filterEntry struct {
	id       ID
	accepted bool
}

// Where passes on the elements for which predicate holds. The predicate is
// tracked like a Select projection, so a change to anything it read re-decides
// that element.
func Where[T any](rs *watchable.Repository, source List[T], predicate func(T) bool) List[T] {
	return Create(func(observer Observer[T]) Subscription {
		var upstream Subscription
		var shadow []filterEntry
		deps := newDependencies(rs, "Where", func(id ID) {
			upstream.Refresh(id)
		})

		indexOf := func(id ID) int {
			for i, e := range shadow {
				if e.id == id {
					return i
				}
			}
			return -1
		}
		acceptedBefore := func(index int) ID {
			for i := index - 1; i >= 0; i-- {
				if shadow[i].accepted {
					return shadow[i].id
				}
			}
			return ID{}
		}

		upstream = source.Subscribe(func(e Event[T]) {
			switch e.Type {
			case Add:
				item := e.Item
				accepted := evaluateFor(deps, e.ID, func() bool { return predicate(item) })

				index := 0
				if !e.Previous.IsZero() {
					index = indexOf(e.Previous) + 1
					if index == 0 {
						panic(protocolErrorf("Where", e.ID, "unknown predecessor %s", e.Previous))
					}
				}
				shadow = append(shadow, filterEntry{})
				copy(shadow[index+1:], shadow[index:])
				shadow[index] = filterEntry{id: e.ID, accepted: accepted}

				if accepted {
					observer(Event[T]{Type: Add, Item: item, ID: e.ID, Previous: acceptedBefore(index)})
				}
			case Remove:
				index := indexOf(e.ID)
				if index < 0 {
					panic(protocolErrorf("Where", e.ID, "remove of unknown id"))
				}
				entry := shadow[index]
				previous := acceptedBefore(index)
				shadow = append(shadow[:index], shadow[index+1:]...)
				deps.release(e.ID)

				if entry.accepted {
					observer(Event[T]{Type: Remove, Item: e.Item, ID: e.ID, Previous: previous})
				}
			}
		})

		return NewSubscription(
			func(id ID) {
				index := indexOf(id)
				if index < 0 || !shadow[index].accepted {
					panic(protocolErrorf("Where", id, "refresh of unknown id"))
				}
				upstream.Refresh(id)
			},
			upstream.Dispose,
			deps.releaseAll,
		)
	})
}
