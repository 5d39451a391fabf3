// Package runner executes the tests of a suite one at a time, bracketing each
// with the suite's before and after hooks, and tallies the outcomes.
package runner

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/kelda/harness/pkg/errors"
	"github.com/kelda/harness/pkg/suite"
)

// Runner runs the tests of one suite. Run may be called any number of
// times, and each call starts from a fresh Result.
type Runner struct {
	suite interface{}
	log   Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the sink that the run is narrated to. By default the
// logrus standard logger is used.
func WithLogger(logger Logger) Option {
	return func(r *Runner) {
		r.log = logger
	}
}

// New returns a Runner bound to the given suite. See suite.Discover for how
// the suite's tests and hooks are found.
func New(s interface{}, opts ...Option) *Runner {
	r := &Runner{
		suite: s,
		log:   NewLogrusLogger(log.StandardLogger()),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every test of the suite in discovery order. A failing test,
// or a failing hook, never stops the remaining tests from running. The
// returned error is only set if the suite's members couldn't be
// enumerated, in which case no tests were run.
func (r *Runner) Run() (Result, error) {
	set, err := suite.Discover(r.suite)
	if err != nil {
		return Result{}, errors.WithContext("discover suite members", err)
	}

	var result Result
	for _, test := range set.Tests() {
		if err := r.runTest(set, test); err != nil {
			msg := message(err)
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", test.Name, msg))
			r.log.Log(fmt.Sprintf("Test failed: %s - %s", test.Name, msg))
			continue
		}
		result.Passed++
	}

	r.log.Log(fmt.Sprintf("%d tests passed", result.Passed))
	r.log.Log(fmt.Sprintf("%d tests failed", result.Failed))
	for _, line := range result.Errors {
		r.log.Log(line)
	}
	return result, nil
}

// runTest returns the reason the test failed, if any. Errors from the after
// hook are logged, and never change the test's outcome.
func (r *Runner) runTest(set suite.Set, test suite.Member) error {
	defer func() {
		after, ok := set.Hook(suite.AfterHook)
		if !ok {
			return
		}
		if err := invoke(after); err != nil {
			r.log.Log(fmt.Sprintf("After hook failed: %s", message(err)))
		}
	}()

	if before, ok := set.Hook(suite.BeforeHook); ok {
		if err := invoke(before); err != nil {
			return errors.New("%s: %s", suite.BeforeHook, message(err))
		}
	}

	r.log.Log(fmt.Sprintf("Running test: %s", test.Label()))
	if !test.Callable() {
		return errors.New("%s is not a function", test.Name)
	}
	return invoke(test)
}

// invoke calls the member, converting a panic into an error. A member that
// doesn't return normally has failed, even if the panic value was nil.
func invoke(m suite.Member) (err error) {
	completed := false
	defer func() {
		p := recover()
		if completed {
			return
		}
		if err = errors.FromPanic(p); err == nil {
			err = errors.PanicError{}
		}
	}()
	err = m.Fn()
	completed = true
	return err
}

// message returns err's message. Error methods belong to the suite, so a
// panic in one, such as from a nil pointer receiver, falls back to fmt.
func message(err error) (msg string) {
	defer func() {
		if recover() != nil {
			msg = fmt.Sprint(err)
		}
	}()
	return err.Error()
}
