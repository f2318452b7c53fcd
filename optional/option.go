package optional

import (
	"github.com/metaworm/log-error/result"
)

// Option encapsulates a value that may be absent. Exactly one branch is
// meaningful: present carries the value, absent carries nothing. The zero
// value of Option is Absent.
type Option[T any] struct {
	// value is the payload; meaningful only when present is true.
	value T
	// present is the union tag.
	present bool
}

// Present creates an Option holding the given value.
func Present[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// Absent creates an Option holding nothing.
func Absent[T any]() Option[T] {
	return Option[T]{}
}

// Of adapts a conventional (T, bool) lookup pair into an Option.
func Of[T any](value T, ok bool) Option[T] {
	if !ok {
		return Absent[T]()
	}

	return Present(value)
}

// Get returns the payload and whether it is present. Using this function
// forces the caller to handle the absent case.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet returns the payload and panics when the Option is absent.
// Reserve it for places where absence is a programming error.
func (o Option[T]) MustGet() T {
	if !o.present {
		panic("optional: no value present")
	}

	return o.value
}

// IsPresent reports whether the Option holds a value.
func (o Option[T]) IsPresent() bool {
	return o.present
}

// IsAbsent reports whether the Option holds nothing.
func (o Option[T]) IsAbsent() bool {
	return !o.present
}

// OrElse returns the payload, or the fallback when absent.
func (o Option[T]) OrElse(fallback T) T {
	if !o.present {
		return fallback
	}

	return o.value
}

// ToResult converts the Option into a Result, calling errFn to produce the
// failure payload when the Option is absent. errFn is not called on the
// present branch.
func (o Option[T]) ToResult(errFn func() error) result.Result[T] {
	if !o.present {
		return result.Err[T](errFn())
	}

	return result.Ok(o.value)
}

// Map transforms the payload with fn, passing absence through unchanged.
// fn is not called on the absent branch.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.present {
		return Absent[U]()
	}

	return Present(fn(o.value))
}
