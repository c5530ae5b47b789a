package livelist_test

import (
	"testing"

	"github.com/delaneyj/livesignals/livelist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceEvents(t *testing.T) {
	s := livelist.NewSource("a", "c")
	r := record[string](t, s)
	require.Len(t, r.events, 2)
	assert.True(t, r.events[0].Previous.IsZero())
	assert.Equal(t, r.events[0].ID, r.events[1].Previous)

	r.reset()
	id := s.Insert(1, "b")
	require.Len(t, r.events, 1)
	assert.Equal(t, livelist.Event[string]{Type: livelist.Add, Item: "b", ID: id, Previous: s.IDs()[0]}, r.events[0])

	r.reset()
	assert.Equal(t, "c", s.RemoveAt(2))
	require.Len(t, r.events, 1)
	assert.Equal(t, livelist.Remove, r.events[0].Type)
	assert.Equal(t, id, r.events[0].Previous)

	assert.Equal(t, []string{"a", "b"}, r.Items())
	assert.Equal(t, s.Items(), r.Items())
	assert.Equal(t, s.IDs(), r.ids)
	assert.Equal(t, 1, s.IndexOfID(id))
	assert.Equal(t, -1, s.IndexOfID(livelist.NewID()))
}

func TestSourceIdentities(t *testing.T) {
	s := livelist.NewSource[int]()
	first := s.Add(1)
	second := s.Add(1)
	assert.NotEqual(t, first, second, "equal values get distinct ids")
	assert.Negative(t, first.Compare(second), "ids are minted in increasing order")
	assert.False(t, first.IsZero())

	replaced := s.Set(0, 1)
	assert.NotEqual(t, first, replaced, "ids are never reused")
	assert.Equal(t, []livelist.ID{replaced, second}, s.IDs())
}

func TestSourceReplayEquivalence(t *testing.T) {
	s := livelist.NewSource[int]()
	early := record[int](t, s)
	for _, step := range sampleSteps {
		step.mutate(s)
		late := record[int](t, s)
		assert.Equal(t, early.Items(), late.Items(), step.name)
		assert.Equal(t, early.ids, late.ids, step.name)
		late.sub.Dispose()
	}
}

func TestSourceRefresh(t *testing.T) {
	s := livelist.NewSource(1, 2, 3)
	a := record[int](t, s)
	b := record[int](t, s)
	a.reset()
	b.reset()

	id := s.IDs()[1]
	a.sub.Refresh(id)
	require.Len(t, a.events, 2)
	assert.Equal(t, livelist.Remove, a.events[0].Type)
	assert.Equal(t, livelist.Add, a.events[1].Type)
	assert.Equal(t, id, a.events[1].ID)
	assert.Equal(t, s.IDs()[0], a.events[1].Previous)
	assert.Empty(t, b.events, "refresh only reaches the requesting subscriber")
	assert.Equal(t, []int{1, 2, 3}, a.Items())

	assert.Panics(t, func() { a.sub.Refresh(livelist.NewID()) })
}

func TestSourceDispose(t *testing.T) {
	s := livelist.NewSource(1)
	a := record[int](t, s)
	b := record[int](t, s)

	a.sub.Dispose()
	s.Add(2)
	assert.Equal(t, []int{1}, a.Items())
	assert.Equal(t, []int{1, 2}, b.Items())
	assert.Panics(t, a.sub.Dispose)
}

func TestSourceDisposeDuringDelivery(t *testing.T) {
	s := livelist.NewSource[int]()
	var second livelist.Subscription
	s.Subscribe(func(e livelist.Event[int]) {
		if second != nil {
			second.Dispose()
			second = nil
		}
	})
	calls := 0
	second = s.Subscribe(func(e livelist.Event[int]) { calls++ })

	s.Add(1)
	assert.Equal(t, 0, calls)
}

func TestSourceRejectsBadInput(t *testing.T) {
	s := livelist.NewSource[*int]()
	assert.Panics(t, func() { s.Add(nil) })

	ints := livelist.NewSource(1, 2)
	assert.Panics(t, func() { ints.Insert(3, 0) })
	assert.Panics(t, func() { ints.RemoveAt(2) })
	assert.Panics(t, func() { ints.Get(-1) })
	assert.Panics(t, func() { ints.Subscribe(nil) })
	assert.NotPanics(t, func() { ints.Insert(2, 0) })
}

func TestSubscriptionHelpers(t *testing.T) {
	var order []string
	refreshed := livelist.ID{}
	inner := livelist.NewSubscription(func(id livelist.ID) { refreshed = id }, func() { order = append(order, "inner") })
	outer := livelist.Nest(inner, func() { order = append(order, "outer") })

	id := livelist.NewID()
	outer.Refresh(id)
	assert.Equal(t, id, refreshed)

	outer.Dispose()
	assert.Equal(t, []string{"inner", "outer"}, order)
	assert.Panics(t, outer.Dispose)
	assert.Panics(t, func() { outer.Refresh(id) })

	noRefresh := livelist.NewSubscription(nil)
	assert.Panics(t, func() { noRefresh.Refresh(id) })
}

func TestWrapHidesConcreteType(t *testing.T) {
	s := livelist.NewSource(1, 2)
	wrapped := livelist.Wrap[int](s)
	_, isSource := wrapped.(*livelist.Source[int])
	assert.False(t, isSource)
	assert.Equal(t, []int{1, 2}, livelist.ToSlice(wrapped))
}
