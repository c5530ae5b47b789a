package livelist

// Subject is a list fed by hand through OnNext. It keeps what it has been told
// so that late subscribers get the current content.
type Subject[T any] struct {
	content   *manifestation[T]
	observers observerSet[T]
	upstream  Subscription
}

func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{content: newManifestation[T]()}
}

func (s *Subject[T]) OnNext(e Event[T]) {
	s.content.apply("Subject", e)
	s.observers.emit(e)
}

// Connect feeds the subject from source until the returned subscription is
// disposed. While connected, refresh requests go to source.
func (s *Subject[T]) Connect(source List[T]) Subscription {
	if s.upstream != nil {
		panic("livelist: subject is already connected")
	}
	upstream := source.Subscribe(s.OnNext)
	s.upstream = upstream
	return Nest(upstream, func() { s.upstream = nil })
}

func (s *Subject[T]) Subscribe(observer Observer[T]) Subscription {
	if observer == nil {
		panic("livelist: nil observer")
	}
	s.content.replay(observer)
	r := s.observers.add(observer)

	return NewSubscription(
		func(id ID) {
			if s.upstream != nil {
				s.upstream.Refresh(id)
				return
			}
			s.content.refresh("Subject", r, id)
		},
		func() { s.observers.remove(r) },
	)
}

func (s *Subject[T]) Len() int {
	return s.content.order.len()
}

func (s *Subject[T]) Items() []T {
	return s.content.values()
}
