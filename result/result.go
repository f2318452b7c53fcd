package result

// Result encapsulates a value along with an error. Exactly one branch is
// meaningful: a non-nil error marks the failed outcome, a nil error marks
// the successful one. Constructing Err with a nil error therefore yields a
// value indistinguishable from Ok, mirroring Go's (T, error) convention.
type Result[T any] struct {
	// value is the success payload; meaningful only when err is nil.
	value T
	// err is the failure payload and the union tag.
	err error
}

// Ok creates a Result representing a successful outcome with the given value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err creates a Result representing a failed outcome with the given error.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Of adapts a conventional (T, error) return pair into a Result.
func Of[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}

	return Ok(value)
}

// Get returns the value and error contained in the Result. Using this
// function forces the caller to handle potential errors.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Value returns the success payload, which is the zero value on failure.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the carried error, nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// IsOk reports whether the Result carries a successful outcome.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the Result carries a failed outcome.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// UnwrapOr returns the success payload, or the fallback on failure.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.err != nil {
		return fallback
	}

	return r.value
}

// Must returns the success payload and panics with the carried error on
// failure. Reserve it for places where a failure is a programming error.
func (r Result[T]) Must() T {
	if r.err != nil {
		panic(r.err)
	}

	return r.value
}

// Map transforms the success payload with fn, passing failures through
// unchanged. fn is not called on the failure branch.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}

	return Ok(fn(r.value))
}

// FlatMap chains a fallible transformation, passing failures through
// unchanged. fn is not called on the failure branch.
func FlatMap[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}

	return fn(r.value)
}
