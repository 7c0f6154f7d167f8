package types

// Result carries the outcome of an asynchronous operation: either a value or
// an error, never both.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] { return Result[T]{value: v} }

// Err wraps a failure.
func Err[T any](err error) Result[T] { return Result[T]{err: err} }

// IsOk reports whether the operation succeeded.
func (r Result[T]) IsOk() bool { return r.err == nil }

// Error returns the failure, or nil.
func (r Result[T]) Error() error { return r.err }

// Unwrap returns the value and error as a regular Go pair.
func (r Result[T]) Unwrap() (T, error) { return r.value, r.err }

// Lookup is the outcome of reading a key: the stored value and whether the
// key existed at all.
type Lookup struct {
	Value string
	Found bool
}

// Done is the value type of operations that only report success.
type Done struct{}
