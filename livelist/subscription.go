package livelist

type subscription struct {
	refresh   func(ID)
	disposers []func()
	disposed  bool
}

// NewSubscription returns a Subscription that forwards Refresh to refresh and
// runs the disposers in order on Dispose. Disposing twice panics.
func NewSubscription(refresh func(ID), disposers ...func()) Subscription {
	return &subscription{refresh: refresh, disposers: disposers}
}

// Nest wraps inner so that disposing the result disposes inner first and then
// runs the extra disposers.
func Nest(inner Subscription, disposers ...func()) Subscription {
	all := make([]func(), 0, len(disposers)+1)
	all = append(all, inner.Dispose)
	all = append(all, disposers...)
	return NewSubscription(inner.Refresh, all...)
}

func (s *subscription) Dispose() {
	if s.disposed {
		panic("livelist: subscription disposed twice")
	}
	s.disposed = true
	for _, dispose := range s.disposers {
		dispose()
	}
}

func (s *subscription) Refresh(id ID) {
	if s.disposed {
		panic("livelist: refresh on a disposed subscription")
	}
	if s.refresh == nil {
		panic("livelist: subscription does not support refresh")
	}
	s.refresh(id)
}

type listFunc[T any] func(Observer[T]) Subscription

func (f listFunc[T]) Subscribe(observer Observer[T]) Subscription {
	if observer == nil {
		panic("livelist: nil observer")
	}
	return f(observer)
}

// Create makes a List from its subscribe function.
func Create[T any](subscribe func(Observer[T]) Subscription) List[T] {
	return listFunc[T](subscribe)
}

// Wrap hides the concrete type of a list.
func Wrap[T any](list List[T]) List[T] {
	return Create(list.Subscribe)
}
