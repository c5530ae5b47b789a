package livelist

// CheckSanity passes events through unchanged and panics with a
// *ProtocolError on the first one that does not fit the list built so far.
func CheckSanity[T any](source List[T]) List[T] {
	return Create(func(observer Observer[T]) Subscription {
		order := newChain()

		return source.Subscribe(func(e Event[T]) {
			switch e.Type {
			case Add:
				if e.ID.IsZero() {
					panic(protocolErrorf("CheckSanity", e.ID, "zero id at insertion"))
				}
				if order.contains(e.ID) {
					panic(protocolErrorf("CheckSanity", e.ID, "known id at insertion"))
				}
				if !e.Previous.IsZero() && !order.contains(e.Previous) {
					panic(protocolErrorf("CheckSanity", e.ID, "unknown previous id %s at insertion", e.Previous))
				}
				order.insertAfter(e.ID, e.Previous)
			case Remove:
				if !order.contains(e.ID) {
					panic(protocolErrorf("CheckSanity", e.ID, "unknown id at removal"))
				}
				if actual := order.previousOf(e.ID); actual != e.Previous {
					panic(protocolErrorf("CheckSanity", e.ID, "previous id %s at removal, actual predecessor is %s", e.Previous, actual))
				}
				order.remove(e.ID)
			default:
				panic(protocolErrorf("CheckSanity", e.ID, "unknown event type %s", e.Type))
			}

			observer(e)
		})
	})
}
