package assert

import (
	stderrors "errors"
	"fmt"
)

// Failure is returned by an assertion whose expectation wasn't met.
type Failure struct {
	Message string

	Expected interface{}
	Actual   interface{}
}

func (f *Failure) Error() string {
	return f.Message
}

func fail(expected, actual interface{}, msg string, args ...interface{}) error {
	return &Failure{
		Message:  fmt.Sprintf(msg, args...),
		Expected: expected,
		Actual:   actual,
	}
}

// IsFailure reports whether err is, or wraps, an assertion failure.
func IsFailure(err error) (*Failure, bool) {
	var f *Failure
	if stderrors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// Must panics with err if it's non-nil. It lets a test body that doesn't
// return an error stop at the first failed assertion. The runner recovers
// the panic and records the failure.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
