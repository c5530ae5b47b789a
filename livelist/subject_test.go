package livelist_test

import (
	"testing"

	"github.com/delaneyj/livesignals/livelist"
	"github.com/delaneyj/livesignals/watchable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectManualFeed(t *testing.T) {
	s := livelist.NewSubject[string]()
	first, second := livelist.NewID(), livelist.NewID()

	s.OnNext(livelist.Event[string]{Type: livelist.Add, Item: "a", ID: first})
	r := record[string](t, s)
	s.OnNext(livelist.Event[string]{Type: livelist.Add, Item: "b", ID: second, Previous: first})
	assert.Equal(t, []string{"a", "b"}, r.Items())
	assert.Equal(t, []string{"a", "b"}, s.Items())

	r.reset()
	r.sub.Refresh(second)
	require.Len(t, r.events, 2)
	assert.Equal(t, []string{"a", "b"}, r.Items())

	s.OnNext(livelist.Event[string]{Type: livelist.Remove, Item: "a", ID: first})
	assert.Equal(t, []string{"b"}, r.Items())
	assert.Equal(t, 1, s.Len())

	assert.Panics(t, func() {
		s.OnNext(livelist.Event[string]{Type: livelist.Remove, Item: "a", ID: first})
	})
}

func TestSubjectConnect(t *testing.T) {
	src := livelist.NewSource(1, 2)
	s := livelist.NewSubject[int]()
	conn := s.Connect(src)
	assert.Panics(t, func() { s.Connect(src) })

	r := record[int](t, s)
	src.Add(3)
	assert.Equal(t, []int{1, 2, 3}, r.Items())

	other := record[int](t, s)
	r.reset()
	other.reset()
	r.sub.Refresh(src.IDs()[0])
	assert.Len(t, r.events, 2)
	assert.Len(t, other.events, 2, "a connected subject refreshes through its source")

	conn.Dispose()
	src.Add(4)
	assert.Equal(t, []int{1, 2, 3}, r.Items())
}

func TestManifestListeners(t *testing.T) {
	src := livelist.NewSource("a", "b")
	m := livelist.NewManifest[string](src)
	assert.False(t, m.Listening())
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, "b", m.Get(1))

	var changes []livelist.Change[string]
	cancel := m.Listen(func(c livelist.Change[string]) { changes = append(changes, c) })
	assert.True(t, m.Listening())
	assert.Empty(t, changes, "existing content is not replayed to listeners")

	src.Insert(1, "x")
	src.RemoveAt(0)
	assert.Equal(t, []livelist.Change[string]{
		{Type: livelist.Add, Index: 1, Item: "x"},
		{Type: livelist.Remove, Index: 0, Item: "a"},
	}, changes)
	assert.Equal(t, []string{"x", "b"}, m.Items())

	cancelOther := m.Listen(func(livelist.Change[string]) {})
	cancel()
	cancel()
	assert.True(t, m.Listening())
	cancelOther()
	assert.False(t, m.Listening())

	src.Add("c")
	assert.Equal(t, []string{"x", "b", "c"}, m.Items())
}

func TestAggregates(t *testing.T) {
	rs := watchable.NewRepository()
	src := livelist.NewSource(1, 2, 3)

	count := livelist.Count[int](rs, src)
	sum := livelist.Sum(rs, src, func(x int) float64 { return float64(x) / 2 })
	defer count.Dispose()
	defer sum.Dispose()

	assert.Equal(t, 3, count.Variable().Peek())
	assert.InDelta(t, 3.0, sum.Variable().Peek(), 1e-9)

	evaluations := 0
	average := watchable.EvalValue(rs, func() float64 {
		evaluations++
		return sum.Value() / float64(count.Value())
	})
	assert.InDelta(t, 1.0, average.MustValue(), 1e-9)

	src.Add(6)
	assert.InDelta(t, 1.5, average.MustValue(), 1e-9)
	assert.Equal(t, 2, evaluations)

	src.Clear()
	assert.Equal(t, 0, count.Variable().Peek())
	assert.InDelta(t, 0.0, sum.Variable().Peek(), 1e-9)
}

func TestSumTracksSelector(t *testing.T) {
	rs := watchable.NewRepository()
	bonus := watchable.Var(rs, 0)
	src := livelist.NewSource(10, 20)

	total := livelist.Sum(rs, src, func(x int) int { return x + bonus.Value() })
	defer total.Dispose()
	assert.Equal(t, 30, total.Variable().Peek())

	bonus.SetValue(5)
	assert.Equal(t, 40, total.Variable().Peek())
}
