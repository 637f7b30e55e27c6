package mock

// Stub stands in for a single external function. It returns Value, or Err
// when set, and counts invocations.
type Stub[T any] struct {
	Value T
	Err   error
	Calls int
}

// Invoke records the call and returns the preset outcome.
func (s *Stub[T]) Invoke() (T, error) {
	s.Calls++
	if s.Err != nil {
		var zero T
		return zero, s.Err
	}
	return s.Value, nil
}

// Func returns Invoke as a plain function for injection.
func (s *Stub[T]) Func() func() (T, error) { return s.Invoke }

// Success returns a stub reporting a successful call.
func Success() *Stub[bool] { return &Stub[bool]{Value: true} }

// Failure returns a stub reporting an unsuccessful call without an error.
func Failure() *Stub[bool] { return &Stub[bool]{Value: false} }

// Custom returns a stub that always returns v.
func Custom[T any](v T) *Stub[T] { return &Stub[T]{Value: v} }

// Failing returns a stub that always fails with err.
func Failing[T any](err error) *Stub[T] { return &Stub[T]{Err: err} }
