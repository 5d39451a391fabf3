package examples

import (
	"strings"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelda/harness/pkg/runner"
)

type recorder []string

func (r *recorder) Log(message string) {
	*r = append(*r, message)
}

func TestRunExample(t *testing.T) {
	var rec recorder
	result, err := RunExample(&rec)
	require.NoError(t, err)

	assert.Equal(t, runner.Result{
		Passed: 1,
		Failed: 1,
		Errors: []string{"test_testName1: Assertion failed: expected true, but got false"},
	}, result)

	exp := strings.TrimSpace(dedent.Dedent(`
		before()
		Running test: testName1
		GIVEN
		WHEN
		THEN
		after()
		Test failed: test_testName1 - Assertion failed: expected true, but got false
		before()
		Running test: testName2
		GIVEN
		WHEN
		THEN
		after()
		1 tests passed
		1 tests failed
		test_testName1: Assertion failed: expected true, but got false`))
	assert.Equal(t, exp, strings.Join(rec, "\n"))
}

func TestArithmetic(t *testing.T) {
	var rec recorder
	result, err := runner.New(NewArithmetic(), runner.WithLogger(&rec)).Run()
	require.NoError(t, err)
	assert.Equal(t, runner.Result{Passed: 4}, result)
	assert.Equal(t, []string{
		"Running test: sum",
		"Running test: formatted",
		"Running test: doubled",
		"Running test: isolated",
		"4 tests passed",
		"0 tests failed",
	}, []string(rec))
}

func TestRegistry(t *testing.T) {
	var names []string
	for _, s := range All() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"arithmetic", "example"}, names)

	s, ok := Get("example")
	require.True(t, ok)
	var rec recorder
	result, err := s.Run(&rec)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total())

	_, ok = Get("missing")
	assert.False(t, ok)
}
