package livelist

import (
	"github.com/delaneyj/livesignals/watchable"
)

type joinPair[K comparable, O, I any] struct {
	key   K
	outer *Group[K, O]
	inner *Group[K, I]
}

// GroupJoin correlates every outer element with the live list of inner
// elements sharing its key. Results are ordered by the first appearance of
// their key on either side, then by outer order.
func GroupJoin[O, I any, K comparable, R any](
	rs *watchable.Repository,
	outer List[O],
	inner List[I],
	outerKey func(O) K,
	innerKey func(I) K,
	result func(O, List[I]) R,
) List[R] {
	return Create(func(observer Observer[R]) Subscription {
		outerLookup := ToLookup(rs, outer, outerKey)
		innerLookup := ToLookup(rs, inner, innerKey)

		pairs := NewSource[*joinPair[K, O, I]]()
		pairIDs := map[K]ID{}

		sighted := func(key K) {
			if _, ok := pairIDs[key]; ok {
				return
			}
			pairIDs[key] = pairs.Add(&joinPair[K, O, I]{
				key:   key,
				outer: outerLookup.Get(key),
				inner: innerLookup.Get(key),
			})
		}
		vanished := func(key K) {
			if outerLookup.Contains(key) || innerLookup.Contains(key) {
				return
			}
			id, ok := pairIDs[key]
			if !ok {
				return
			}
			delete(pairIDs, key)
			pairs.RemoveAt(pairs.IndexOfID(id))
		}

		outerGroups := outerLookup.Subscribe(func(e Event[*Group[K, O]]) {
			switch e.Type {
			case Add:
				sighted(e.Item.Key())
			case Remove:
				vanished(e.Item.Key())
			}
		})
		innerGroups := innerLookup.Subscribe(func(e Event[*Group[K, I]]) {
			switch e.Type {
			case Add:
				sighted(e.Item.Key())
			case Remove:
				vanished(e.Item.Key())
			}
		})

		results := Flatten(Select[*joinPair[K, O, I], List[R]](rs, pairs, func(p *joinPair[K, O, I]) List[R] {
			return Select[O, R](rs, p.outer, func(o O) R {
				return result(o, p.inner)
			})
		}))

		return Nest(results.Subscribe(observer),
			outerGroups.Dispose,
			innerGroups.Dispose,
			outerLookup.Dispose,
			innerLookup.Dispose,
		)
	})
}

type joinMatch[O, I any] struct {
	outer   O
	matches List[I]
}

// Join pairs every outer element with every inner element of equal key.
func Join[O, I any, K comparable, R any](
	rs *watchable.Repository,
	outer List[O],
	inner List[I],
	outerKey func(O) K,
	innerKey func(I) K,
	result func(O, I) R,
) List[R] {
	matched := GroupJoin(rs, outer, inner, outerKey, innerKey, func(o O, matches List[I]) joinMatch[O, I] {
		return joinMatch[O, I]{outer: o, matches: matches}
	})
	return SelectManyWith(rs, matched,
		func(m joinMatch[O, I]) List[I] { return m.matches },
		func(m joinMatch[O, I], i I) R { return result(m.outer, i) },
	)
}
