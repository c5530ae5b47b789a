package livelist

type flattenAttachment[T any] struct {
	prev, next   *flattenAttachment[T]
	subscription Subscription

	order    *chain
	items    map[ID]T
	outgoing map[ID]ID

	// the last inner Remove, so that a refresh keeps its outgoing ID
	retiredInner, retiredOutgoing ID
}

type flattenOrigin[T any] struct {
	attachment *flattenAttachment[T]
	inner      ID
}

// Flatten concatenates the inner lists in the order of the outer list. Every
// element gets a fresh outgoing ID, since the same inner list may appear more
// than once.
func Flatten[T any](lists List[List[T]]) List[T] {
	return Create(func(observer Observer[T]) Subscription {
		attachments := map[ID]*flattenAttachment[T]{}
		origins := map[ID]flattenOrigin[T]{}
		sentinel := &flattenAttachment[T]{}
		sentinel.prev, sentinel.next = sentinel, sentinel

		// lastBefore is the outgoing ID of the last element of the nearest
		// non-empty attachment before a.
		lastBefore := func(a *flattenAttachment[T]) ID {
			for p := a.prev; p != sentinel; p = p.prev {
				if p.order.len() > 0 {
					return p.outgoing[p.order.tail()]
				}
			}
			return ID{}
		}
		outgoingPrevious := func(a *flattenAttachment[T], inner ID) ID {
			if inner.IsZero() {
				return lastBefore(a)
			}
			return a.outgoing[inner]
		}

		attach := func(a *flattenAttachment[T], list List[T]) {
			a.subscription = list.Subscribe(func(e Event[T]) {
				switch e.Type {
				case Add:
					out := NewID()
					if !a.retiredInner.IsZero() && a.retiredInner == e.ID {
						out = a.retiredOutgoing
					}
					a.retiredInner, a.retiredOutgoing = ID{}, ID{}

					previous := outgoingPrevious(a, e.Previous)
					a.order.insertAfter(e.ID, e.Previous)
					a.items[e.ID] = e.Item
					a.outgoing[e.ID] = out
					origins[out] = flattenOrigin[T]{attachment: a, inner: e.ID}
					observer(Event[T]{Type: Add, Item: e.Item, ID: out, Previous: previous})
				case Remove:
					out, ok := a.outgoing[e.ID]
					if !ok {
						panic(protocolErrorf("Flatten", e.ID, "remove of unknown inner id"))
					}
					previous := outgoingPrevious(a, e.Previous)
					a.order.remove(e.ID)
					delete(a.items, e.ID)
					delete(a.outgoing, e.ID)
					delete(origins, out)
					a.retiredInner, a.retiredOutgoing = e.ID, out
					observer(Event[T]{Type: Remove, Item: e.Item, ID: out, Previous: previous})
				}
			})
		}

		detach := func(a *flattenAttachment[T]) {
			for id := a.order.tail(); !id.IsZero(); id = a.order.tail() {
				out := a.outgoing[id]
				item := a.items[id]
				inner := a.order.remove(id)
				delete(a.items, id)
				delete(a.outgoing, id)
				delete(origins, out)
				observer(Event[T]{Type: Remove, Item: item, ID: out, Previous: outgoingPrevious(a, inner)})
			}
			a.subscription.Dispose()
			a.prev.next, a.next.prev = a.next, a.prev
		}

		outer := lists.Subscribe(func(e Event[List[T]]) {
			switch e.Type {
			case Add:
				after := sentinel
				if !e.Previous.IsZero() {
					p, ok := attachments[e.Previous]
					if !ok {
						panic(protocolErrorf("Flatten", e.ID, "unknown previous list %s", e.Previous))
					}
					after = p
				}
				a := &flattenAttachment[T]{
					prev:     after,
					next:     after.next,
					order:    newChain(),
					items:    map[ID]T{},
					outgoing: map[ID]ID{},
				}
				after.next.prev = a
				after.next = a
				attachments[e.ID] = a
				attach(a, e.Item)
			case Remove:
				a, ok := attachments[e.ID]
				if !ok {
					panic(protocolErrorf("Flatten", e.ID, "remove of unknown list"))
				}
				delete(attachments, e.ID)
				detach(a)
			}
		})

		return NewSubscription(
			func(id ID) {
				origin, ok := origins[id]
				if !ok {
					panic(protocolErrorf("Flatten", id, "refresh of unknown id"))
				}
				origin.attachment.subscription.Refresh(origin.inner)
			},
			outer.Dispose,
			func() {
				for id, a := range attachments {
					a.subscription.Dispose()
					delete(attachments, id)
				}
			},
		)
	})
}

// Concat is Flatten over a fixed sequence of lists.
func Concat[T any](lists ...List[T]) List[T] {
	return Flatten[T](NewSource(lists...))
}
