package livelist

// Reverse delivers the source back to front. Each event names the element's
// upstream successor as its predecessor.
func Reverse[T any](source List[T]) List[T] {
	return Create(func(observer Observer[T]) Subscription {
		order := newChain()

		return source.Subscribe(func(e Event[T]) {
			switch e.Type {
			case Add:
				order.insertAfter(e.ID, e.Previous)
				observer(Event[T]{Type: Add, Item: e.Item, ID: e.ID, Previous: order.nextOf(e.ID)})
			case Remove:
				if !order.contains(e.ID) {
					panic(protocolErrorf("Reverse", e.ID, "remove of unknown id"))
				}
				successor := order.nextOf(e.ID)
				order.remove(e.ID)
				observer(Event[T]{Type: Remove, Item: e.Item, ID: e.ID, Previous: successor})
			}
		})
	})
}
