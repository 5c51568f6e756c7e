package tempus

// Result is the outcome of a parse: either a value or a ParseError, never
// both. Expected parse failures travel in results rather than panics so
// that trying several patterns in sequence stays cheap; MustValue is the
// explicit opt-in for callers that want failures to be loud.
type Result[T any] struct {
	value T
	err   *ParseError
}

func resultFor[T any](value T) Result[T] {
	return Result[T]{value: value}
}

func resultErr[T any](err *ParseError) Result[T] {
	return Result[T]{err: err}
}

// Success reports whether the parse produced a value.
func (r Result[T]) Success() bool { return r.err == nil }

// Value returns the parsed value, or the parse failure as an error.
func (r Result[T]) Value() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// MustValue returns the parsed value and panics on failure.
func (r Result[T]) MustValue() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// Err returns the parse failure, or nil on success.
func (r Result[T]) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}
