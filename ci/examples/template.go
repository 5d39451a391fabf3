package examples

import (
	"github.com/kelda/harness/pkg/assert"
	"github.com/kelda/harness/pkg/runner"
)

// ExampleTest is a template for new suites. Copy it, name it after the type
// you're testing, and replace the test bodies.
type ExampleTest struct {
	Log runner.Logger
}

// Before happens before every test.
func (t *ExampleTest) Before() {
	t.Log.Log("before()")
}

// After happens after every test.
func (t *ExampleTest) After() {
	t.Log.Log("after()")
}

func (t *ExampleTest) Test_testName1() error {
	t.Log.Log("GIVEN")
	t.Log.Log("WHEN")
	t.Log.Log("THEN")
	return assert.Equals(true, false)
}

func (t *ExampleTest) Test_testName2() error {
	t.Log.Log("GIVEN")
	t.Log.Log("WHEN")
	t.Log.Log("THEN")
	return assert.IsTrue(true)
}

// RunExample runs ExampleTest, narrating to logger.
func RunExample(logger runner.Logger) (runner.Result, error) {
	return runner.New(&ExampleTest{Log: logger}, runner.WithLogger(logger)).Run()
}
