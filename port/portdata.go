package port

import "time"

// Data is an immutable, timestamped value envelope. Once constructed its
// value is never mutated; a new publication produces a fresh Data with a
// fresh timestamp. Copying a Data copies T by value (a shallow copy): a
// slice, map or pointer held as T shares its backing storage across copies,
// while an array or struct held as T is copied in full.
type Data[T any] struct {
	value     T
	timestamp time.Time
}

// New records the current monotonic-backed time and wraps v.
func New[T any](v T) Data[T] {
	return Data[T]{value: v, timestamp: time.Now()}
}

// Value returns the wrapped value.
func (d Data[T]) Value() T { return d.value }

// Timestamp returns the instant this Data was constructed.
func (d Data[T]) Timestamp() time.Time { return d.timestamp }
