package livelist_test

import (
	"testing"

	"github.com/delaneyj/livesignals/livelist"
	"github.com/stretchr/testify/require"
)

// recorder folds the events of a sanity-checked subscription.
type recorder[T any] struct {
	t      *testing.T
	ids    []livelist.ID
	items  []T
	events []livelist.Event[T]
	sub    livelist.Subscription
}

func record[T any](t *testing.T, list livelist.List[T]) *recorder[T] {
	t.Helper()
	r := &recorder[T]{t: t, ids: []livelist.ID{}, items: []T{}}
	r.sub = livelist.CheckSanity(list).Subscribe(r.observe)
	return r
}

func (r *recorder[T]) observe(e livelist.Event[T]) {
	r.events = append(r.events, e)
	switch e.Type {
	case livelist.Add:
		index := 0
		if !e.Previous.IsZero() {
			index = r.indexOf(e.Previous) + 1
			require.NotZero(r.t, index, "unknown previous id")
		}
		r.ids = append(r.ids, livelist.ID{})
		copy(r.ids[index+1:], r.ids[index:])
		r.ids[index] = e.ID
		var zero T
		r.items = append(r.items, zero)
		copy(r.items[index+1:], r.items[index:])
		r.items[index] = e.Item
	case livelist.Remove:
		index := r.indexOf(e.ID)
		require.GreaterOrEqual(r.t, index, 0, "unknown id")
		r.ids = append(r.ids[:index], r.ids[index+1:]...)
		r.items = append(r.items[:index], r.items[index+1:]...)
	}
}

func (r *recorder[T]) indexOf(id livelist.ID) int {
	for i, other := range r.ids {
		if other == id {
			return i
		}
	}
	return -1
}

func (r *recorder[T]) Items() []T {
	items := make([]T, len(r.items))
	copy(items, r.items)
	return items
}

func (r *recorder[T]) reset() {
	r.events = nil
}

// sampleSteps is a short mutation history covering inserts and removals at the
// head, middle and tail, with duplicate values.
var sampleSteps = []struct {
	name   string
	mutate func(s *livelist.Source[int])
}{
	{"add 0", func(s *livelist.Source[int]) { s.Add(0) }},
	{"add 1", func(s *livelist.Source[int]) { s.Add(1) }},
	{"add 2", func(s *livelist.Source[int]) { s.Add(2) }},
	{"add 3", func(s *livelist.Source[int]) { s.Add(3) }},
	{"remove at 0", func(s *livelist.Source[int]) { s.RemoveAt(0) }},
	{"remove at 2", func(s *livelist.Source[int]) { s.RemoveAt(2) }},
	{"insert 1 at 0", func(s *livelist.Source[int]) { s.Insert(0, 1) }},
	{"insert 1 at 3", func(s *livelist.Source[int]) { s.Insert(3, 1) }},
	{"remove at 2", func(s *livelist.Source[int]) { s.RemoveAt(2) }},
	{"set 1 to 8", func(s *livelist.Source[int]) { s.Set(1, 8) }},
	{"add range", func(s *livelist.Source[int]) { s.AddRange(5, 4, 7) }},
	{"clear", func(s *livelist.Source[int]) { s.Clear() }},
	{"add again", func(s *livelist.Source[int]) { s.InsertRange(0, 3, 6, 9) }},
}
