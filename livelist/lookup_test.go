package livelist_test

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/delaneyj/livesignals/livelist"
	"github.com/delaneyj/livesignals/watchable"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupsOf(l *livelist.Lookup[int, int]) map[int][]int {
	out := map[int][]int{}
	for _, g := range livelist.ToSlice[*livelist.Group[int, int]](l) {
		out[g.Key()] = g.Items()
	}
	return out
}

func directGroups(xs []int, key func(int) int) map[int][]int {
	out := map[int][]int{}
	for _, x := range xs {
		out[key(x)] = append(out[key(x)], x)
	}
	return out
}

func TestLookupTransparency(t *testing.T) {
	rs := watchable.NewRepository()
	mod3 := func(x int) int { return x % 3 }

	s := livelist.NewSource[int]()
	l := livelist.ToLookup(rs, s, mod3)
	defer l.Dispose()

	// subscribe to every group as it appears, as a consumer would
	contents := map[int]*recorder[int]{}
	outer := record[*livelist.Group[int, int]](t, livelist.Select(rs, l, func(g *livelist.Group[int, int]) *livelist.Group[int, int] {
		if _, ok := contents[g.Key()]; !ok {
			contents[g.Key()] = record[int](t, g)
		}
		return g
	}))
	defer outer.sub.Dispose()

	for _, step := range sampleSteps {
		step.mutate(s)
		want := directGroups(s.Items(), mod3)
		if diff := cmp.Diff(want, groupsOf(l)); diff != "" {
			t.Fatalf("after %s (-want +got):\n%s", step.name, diff)
		}
		assert.Equal(t, len(want), l.Len(), step.name)
		for key, r := range contents {
			assert.Equal(t, want[key], nilIfEmpty(r.Items()), "group %d after %s", key, step.name)
		}
		for key := range want {
			assert.True(t, l.Contains(key))
		}
	}
}

func nilIfEmpty(xs []int) []int {
	if len(xs) == 0 {
		return nil
	}
	return xs
}

func TestGroupOrderIsActivationOrder(t *testing.T) {
	rs := watchable.NewRepository()
	s := livelist.NewSource(5, 2, 7, 4)
	groups := livelist.GroupBy(rs, s, func(x int) string {
		if x%2 == 0 {
			return "even"
		}
		return "odd"
	})
	r := record(t, groups)
	keys := func() []string {
		out := []string{}
		for _, g := range r.Items() {
			out = append(out, g.Key())
		}
		return out
	}
	assert.Equal(t, []string{"odd", "even"}, keys())

	s.RemoveAt(0)
	s.RemoveAt(1)
	assert.Equal(t, []string{"even"}, keys(), "a group leaves when its last element does")

	s.Add(9)
	assert.Equal(t, []string{"even", "odd"}, keys(), "a returning group is appended")
	assert.Equal(t, []int{2, 4}, r.Items()[0].Items())
}

func TestGroupPlacementFollowsUpstreamOrder(t *testing.T) {
	rs := watchable.NewRepository()
	s := livelist.NewSource(1, 2, 3, 4, 5)
	l := livelist.ToLookup(rs, s, func(x int) bool { return x%2 == 1 })
	defer l.Dispose()

	odd := record[int](t, l.Get(true))
	s.Insert(2, 11)
	s.Insert(0, 13)
	s.Add(15)
	assert.Equal(t, []int{13, 1, 11, 3, 5, 15}, odd.Items())
	assert.Equal(t, []int{2, 4}, l.Get(false).Items())
}

func TestGroupKeyChangeMovesElement(t *testing.T) {
	rs := watchable.NewRepository()
	team := map[string]*watchable.Variable[string]{
		"ann": watchable.Var(rs, "red"),
		"bob": watchable.Var(rs, "blue"),
		"cyd": watchable.Var(rs, "red"),
	}
	s := livelist.NewSource("ann", "bob", "cyd")
	l := livelist.ToLookup(rs, s, func(name string) string { return team[name].Value() })
	defer l.Dispose()

	red := record[string](t, l.Get("red"))
	blue := record[string](t, l.Get("blue"))
	assert.Equal(t, []string{"ann", "cyd"}, red.Items())
	assert.Equal(t, []string{"bob"}, blue.Items())

	team["ann"].SetValue("blue")
	assert.Equal(t, []string{"cyd"}, red.Items())
	assert.Equal(t, []string{"ann", "bob"}, blue.Items())

	team["cyd"].SetValue("blue")
	assert.Empty(t, red.Items())
	assert.False(t, l.Contains("red"))
	assert.Equal(t, 1, l.Len())

	team["bob"].SetValue("red")
	assert.Equal(t, []string{"bob"}, red.Items(), "the subscribed group is reused")
}

func TestLookupGetBeforeElementsArrive(t *testing.T) {
	rs := watchable.NewRepository()
	s := livelist.NewSource[int]()
	l := livelist.ToLookup(rs, s, func(x int) int { return x / 10 })
	defer l.Dispose()

	placeholder := l.Get(4)
	assert.Equal(t, 0, placeholder.Len())
	assert.False(t, l.Contains(4))

	s.Add(42)
	assert.Equal(t, []int{42}, placeholder.Items(), "an unsubscribed placeholder resolves to the live group")

	later := l.Get(5)
	r := record[int](t, later)
	s.Add(51)
	s.Add(55)
	assert.Equal(t, []int{51, 55}, r.Items())
	assert.Same(t, later, l.Get(5))

	r.sub.Dispose()
	s.Clear()
	assert.Equal(t, 0, l.Len())
}

func TestGroupEviction(t *testing.T) {
	rs := watchable.NewRepository()
	s := livelist.NewSource(0, 3, 1)
	l := livelist.ToLookup(rs, s, func(x int) int { return x % 3 })
	defer l.Dispose()

	g := l.Get(0)
	assert.Same(t, g, l.Get(0), "a group with elements is held by the lookup")

	sub := g.Subscribe(func(livelist.Event[int]) {})
	s.Clear()
	assert.False(t, l.Contains(0))
	assert.Same(t, g, l.Get(0), "a subscribed group outlives its elements")

	sub.Dispose()
	assert.NotSame(t, g, l.Get(0), "the group is evicted with its last reference")
	assert.NotSame(t, l.Get(1), l.Get(1), "an empty unsubscribed key holds no group")

	s.Add(6)
	fresh := l.Get(0)
	assert.NotSame(t, g, fresh)
	assert.Equal(t, []int{6}, fresh.Items())
}

func TestLookupByElement(t *testing.T) {
	rs := watchable.NewRepository()
	scale := watchable.Var(rs, 1)
	s := livelist.NewSource("apple", "avocado", "banana")
	l := livelist.ToLookupBy(rs, s,
		func(w string) byte { return w[0] },
		func(w string) int { return len(w) * scale.Value() },
	)
	defer l.Dispose()

	a := record[int](t, l.Get('a'))
	assert.Equal(t, []int{5, 7}, a.Items())
	assert.Equal(t, []int{6}, l.Get('b').Items())
	ids := slices.Clone(a.ids)

	scale.SetValue(10)
	assert.Equal(t, []int{50, 70}, a.Items(), "elements are tracked like keys")
	assert.Equal(t, ids, a.ids)
	assert.Equal(t, []int{60}, l.Get('b').Items())

	s.Insert(1, "apricot")
	assert.Equal(t, []int{50, 70, 70}, a.Items())
}

func TestGroupByResult(t *testing.T) {
	rs := watchable.NewRepository()
	parity := func(x int) string {
		if x%2 == 0 {
			return "even"
		}
		return "odd"
	}
	s := livelist.NewSource(5, 2, 7, 4)

	summaries := livelist.GroupByResult(rs, s, parity, func(key string, g livelist.List[int]) string {
		return fmt.Sprintf("%s%v", key, livelist.ToSlice(g))
	})
	assert.Equal(t, []string{"odd[5 7]", "even[2 4]"}, livelist.ToSlice(summaries))

	upper := livelist.GroupByElementResult(rs, livelist.NewSource("ab", "c", "de"),
		func(w string) int { return len(w) },
		strings.ToUpper,
		func(n int, g livelist.List[string]) string {
			return fmt.Sprintf("%d%v", n, livelist.ToSlice(g))
		},
	)
	assert.Equal(t, []string{"2[AB DE]", "1[C]"}, livelist.ToSlice(upper))

	byLength := livelist.GroupByElement(rs, livelist.NewSource("ab", "c", "de"),
		func(w string) int { return len(w) },
		func(w string) int { return len(w) },
	)
	r := record(t, byLength)
	require.Len(t, r.Items(), 2)
	assert.Equal(t, []int{2, 2}, r.Items()[0].Items())
}

type order struct {
	id       int
	customer string
}

type customer struct {
	name string
	city string
}

func TestJoinMatchesNestedLoop(t *testing.T) {
	rs := watchable.NewRepository()
	customers := livelist.NewSource(
		customer{"ann", "oslo"},
		customer{"bob", "rome"},
	)
	orders := livelist.NewSource(
		order{1, "ann"},
		order{2, "cyd"},
		order{3, "ann"},
	)

	joined := livelist.Join(rs, customers, orders,
		func(c customer) string { return c.name },
		func(o order) string { return o.customer },
		func(c customer, o order) string { return fmt.Sprintf("%s/%s#%d", c.city, c.name, o.id) },
	)
	r := record(t, joined)

	direct := func() []string {
		out := []string{}
		for _, c := range customers.Items() {
			for _, o := range orders.Items() {
				if c.name == o.customer {
					out = append(out, fmt.Sprintf("%s/%s#%d", c.city, c.name, o.id))
				}
			}
		}
		slices.Sort(out)
		return out
	}
	check := func(step string) {
		t.Helper()
		got := r.Items()
		slices.Sort(got)
		if diff := cmp.Diff(direct(), got); diff != "" {
			t.Fatalf("after %s (-want +got):\n%s", step, diff)
		}
		late := livelist.ToSlice(joined)
		slices.Sort(late)
		assert.Equal(t, got, late, step)
	}

	check("bootstrap")
	assert.Equal(t, []string{"oslo/ann#1", "oslo/ann#3"}, r.Items())

	customers.Add(customer{"cyd", "lima"})
	check("customer for a waiting order")
	orders.Add(order{4, "bob"})
	check("order for a known customer")
	customers.Add(customer{"ann", "kyiv"})
	check("second customer with the same key")
	orders.RemoveAt(0)
	check("order removed")
	customers.RemoveAt(0)
	check("customer removed")
	customers.Clear()
	check("all customers removed")
	assert.Empty(t, r.Items())
	orders.Clear()
	check("all orders removed")
	customers.Add(customer{"bob", "rome"})
	orders.Add(order{5, "bob"})
	check("both sides again")
	assert.Equal(t, []string{"rome/bob#5"}, r.Items())
}

func TestJoinOrdering(t *testing.T) {
	rs := watchable.NewRepository()
	outer := livelist.NewSource("b1", "a1", "b2")
	inner := livelist.NewSource("a-x", "b-x", "b-y")

	joined := livelist.Join(rs, outer, inner,
		func(o string) byte { return o[0] },
		func(i string) byte { return i[0] },
		func(o, i string) string { return o + ":" + i },
	)
	assert.Equal(t, []string{"b1:b-x", "b1:b-y", "b2:b-x", "b2:b-y", "a1:a-x"}, livelist.ToSlice(joined))
}

func TestGroupJoin(t *testing.T) {
	rs := watchable.NewRepository()
	customers := livelist.NewSource(customer{"ann", "oslo"}, customer{"bob", "rome"})
	orders := livelist.NewSource(order{1, "ann"})

	type summary struct {
		name   string
		orders *livelist.Manifest[order]
	}
	joined := livelist.GroupJoin(rs, customers, orders,
		func(c customer) string { return c.name },
		func(o order) string { return o.customer },
		func(c customer, os livelist.List[order]) summary {
			return summary{name: c.name, orders: livelist.NewManifest(os)}
		},
	)
	r := record(t, joined)
	require.Len(t, r.Items(), 2)

	byName := map[string]*livelist.Manifest[order]{}
	cancels := []func(){}
	for _, s := range r.Items() {
		byName[s.name] = s.orders
		cancels = append(cancels, s.orders.Listen(func(livelist.Change[order]) {}))
	}
	assert.Equal(t, 1, byName["ann"].Len())
	assert.Equal(t, 0, byName["bob"].Len())

	orders.Add(order{2, "bob"})
	orders.Add(order{3, "ann"})
	assert.Equal(t, []order{{1, "ann"}, {3, "ann"}}, byName["ann"].Items())
	assert.Equal(t, []order{{2, "bob"}}, byName["bob"].Items())
	assert.Len(t, r.Items(), 2, "inner changes do not touch outer rows")

	for _, cancel := range cancels {
		cancel()
	}
	r.sub.Dispose()
}
