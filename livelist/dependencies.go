package livelist

import (
	"github.com/delaneyj/livesignals/watchable"
)

// dependencies holds the watchable subscriptions of per-element evaluations,
// keyed by the element's ID. When something an element's evaluation read
// changes, onChange is called with that element's ID.
type dependencies struct {
	rs       *watchable.Repository
	name     string
	byID     map[ID]*watchable.SerialSubscription
	onChange func(ID)
}

func newDependencies(rs *watchable.Repository, name string, onChange func(ID)) *dependencies {
	if rs == nil {
		panic("livelist: nil repository")
	}
	return &dependencies{
		rs:       rs,
		name:     name,
		byID:     map[ID]*watchable.SerialSubscription{},
		onChange: onChange,
	}
}

func evaluateFor[R any](d *dependencies, id ID, fn func() R) R {
	subs, ok := d.byID[id]
	if !ok {
		subs = &watchable.SerialSubscription{}
		d.byID[id] = subs
	}
	r, _ := watchable.EvaluateAndSubscribe(d.rs, d.name, subs, func() (R, error) {
		return fn(), nil
	}, func() {
		d.onChange(id)
	})
	return r
}

func (d *dependencies) release(id ID) {
	if subs, ok := d.byID[id]; ok {
		subs.Dispose()
		delete(d.byID, id)
	}
}

func (d *dependencies) releaseAll() {
	for id, subs := range d.byID {
		subs.Dispose()
		delete(d.byID, id)
	}
}
