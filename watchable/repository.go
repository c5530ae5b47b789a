package watchable

import (
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/golang/glog"
)

type frame struct {
	name  string
	reads mapset.Set[Watchable] // nil for frames whose reads are discarded
}

// Repository records which watchables each running evaluation reads.
// It is confined to one goroutine, like everything built on it.
type Repository struct {
	frames []*frame
}

func NewRepository() *Repository {
	return &Repository{
		frames: []*frame{{name: "root"}},
	}
}

// NoteEvaluation records a read of w in the innermost evaluation.
// Outside of any evaluation the read is dropped.
func (rs *Repository) NoteEvaluation(w Watchable) {
	top := rs.frames[len(rs.frames)-1]
	if top.reads == nil {
		return
	}
	top.reads.Add(w)
}

// Depth is the number of evaluations currently running.
func (rs *Repository) Depth() int {
	return len(rs.frames) - 1
}

func (rs *Repository) push(name string, tracked bool) *frame {
	f := &frame{name: name}
	if tracked {
		f.reads = mapset.NewThreadUnsafeSet[Watchable]()
	}
	rs.frames = append(rs.frames, f)
	if glog.V(3) {
		rs.tracef("Evaluating [%s]", name)
	}
	return f
}

func (rs *Repository) pop(f *frame) {
	last := len(rs.frames) - 1
	if last == 0 || rs.frames[last] != f {
		panic("watchable: evaluation frames popped out of order")
	}
	rs.frames[last] = nil
	rs.frames = rs.frames[:last]
}

func (rs *Repository) tracef(format string, args ...any) {
	indent := strings.Repeat("  ", rs.Depth())
	glog.InfoDepth(2, indent+fmt.Sprintf(format, args...))
}

func (rs *Repository) traceDone(f *frame, err error) {
	if !glog.V(3) {
		return
	}
	names := make([]string, 0, f.reads.Cardinality())
	f.reads.Each(func(w Watchable) bool {
		names = append(names, w.String())
		return false
	})
	sort.Strings(names)
	if err != nil {
		rs.tracef("Evaluated [%s] failed: %v, depends on [%s]", f.name, err, strings.Join(names, ", "))
		return
	}
	rs.tracef("Evaluated [%s], depends on [%s]", f.name, strings.Join(names, ", "))
}

// Evaluate runs fn in a fresh frame and returns its result together with every
// watchable it read. The read set is returned even when fn fails.
func Evaluate[T any](rs *Repository, name string, fn func() (T, error)) (T, mapset.Set[Watchable], error) {
	f := rs.push(name, true)
	defer rs.pop(f)

	result, err := fn()
	rs.traceDone(f, err)
	return result, f.reads, err
}

// EvaluateAndSubscribe evaluates fn and subscribes onChange to everything it
// read. Whatever subs held before is disposed first.
func EvaluateAndSubscribe[T any](rs *Repository, name string, subs *SerialSubscription, fn func() (T, error), onChange func()) (T, error) {
	if onChange == nil {
		panic("watchable: nil onChange")
	}
	result, deps, err := Evaluate(rs, name, fn)

	subs.Dispose()
	subs.Set(subscribeAll(deps, onChange))
	return result, err
}

func subscribeAll(deps mapset.Set[Watchable], onChange func()) *Subscription {
	if deps.Cardinality() == 0 {
		return nil
	}
	subs := make([]*Subscription, 0, deps.Cardinality())
	deps.Each(func(w Watchable) bool {
		subs = append(subs, w.Subscribe(onChange))
		return false
	})
	return NewSubscription(func() {
		for _, s := range subs {
			s.Dispose()
		}
	})
}

// Untracked runs fn without recording its reads in the enclosing evaluation.
func Untracked[T any](rs *Repository, fn func() T) T {
	f := rs.push("untracked", false)
	defer rs.pop(f)
	return fn()
}
