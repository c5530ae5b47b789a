package watchable

import "fmt"

// Computed caches the result of an evaluation until one of the watchables it
// read changes. Watchers are told as soon as it goes stale; the evaluation
// itself runs on the next Value.
type Computed[T any] struct {
	notifier
	rs         *Repository
	evaluation func() (T, error)
	subs       SerialSubscription

	dirty      bool
	evaluating bool
	value      T
	err        error
}

func Eval[T any](rs *Repository, evaluation func() (T, error)) *Computed[T] {
	if evaluation == nil {
		panic("watchable: nil evaluation")
	}
	return &Computed[T]{
		notifier:   notifier{kind: "eval"},
		rs:         rs,
		evaluation: evaluation,
		dirty:      true,
	}
}

// EvalValue adapts an evaluation that cannot fail.
func EvalValue[T any](rs *Repository, evaluation func() T) *Computed[T] {
	return Eval(rs, func() (T, error) {
		return evaluation(), nil
	})
}

func (c *Computed[T]) Named(name string) *Computed[T] {
	c.name = name
	return c
}

func (c *Computed[T]) Value() (T, error) {
	c.rs.NoteEvaluation(c)

	if c.dirty {
		if c.evaluating {
			panic(fmt.Sprintf("watchable: %s depends on itself", c.String()))
		}
		c.evaluating = true
		defer func() { c.evaluating = false }()

		value, err := EvaluateAndSubscribe(c.rs, c.String(), &c.subs, c.evaluation, c.markDirtyAndNotify)
		c.value, c.err = value, err
		c.dirty = false
		return value, err
	}

	if c.err != nil {
		var zero T
		return zero, &RethrowError{Name: c.String(), Err: c.err}
	}
	return c.value, nil
}

// MustValue is Value for evaluations that are not expected to fail.
func (c *Computed[T]) MustValue() T {
	v, err := c.Value()
	if err != nil {
		panic(err)
	}
	return v
}

func (c *Computed[T]) Dirty() bool {
	return c.dirty
}

// Dispose drops the dependency subscriptions. The next Value evaluates again.
func (c *Computed[T]) Dispose() {
	c.subs.Dispose()
	c.dirty = true
}

func (c *Computed[T]) markDirtyAndNotify() {
	c.dirty = true
	c.notify()
}
