package watchable

// Variable is a settable cell. Reads inside an evaluation become dependencies.
type Variable[T any] struct {
	notifier
	rs    *Repository
	value T
}

func Var[T any](rs *Repository, value T) *Variable[T] {
	return &Variable[T]{
		notifier: notifier{kind: "var"},
		rs:       rs,
		value:    value,
	}
}

func (v *Variable[T]) Named(name string) *Variable[T] {
	v.name = name
	return v
}

func (v *Variable[T]) Value() T {
	v.rs.NoteEvaluation(v)
	return v.value
}

// Peek reads the value without recording a dependency.
func (v *Variable[T]) Peek() T {
	return v.value
}

// SetValue stores value and notifies every watcher, even when the value is unchanged.
func (v *Variable[T]) SetValue(value T) {
	v.value = value
	v.notify()
}

// Update is SetValue(fn(current)).
func (v *Variable[T]) Update(fn func(T) T) {
	v.SetValue(fn(v.value))
}
