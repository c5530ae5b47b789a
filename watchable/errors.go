package watchable

import "fmt"

// RethrowError is returned by a Computed whose last evaluation failed and whose
// dependencies have not changed since. Err is the original failure.
type RethrowError struct {
	Name string
	Err  error
}

func (e *RethrowError) Error() string {
	return fmt.Sprintf("evaluation of %s failed the last time it was attempted and its dependencies have not changed since: %v", e.Name, e.Err)
}

func (e *RethrowError) Unwrap() error {
	return e.Err
}
