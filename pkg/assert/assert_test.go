package assert_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	harnessAssert "github.com/kelda/harness/pkg/assert"
	"github.com/kelda/harness/pkg/errors"
)

type namedBool bool

func TestIsTrue(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		expOK bool
	}{
		{name: "true", value: true, expOK: true},
		{name: "named bool", value: namedBool(true), expOK: true},
		{name: "false", value: false},
		{name: "truthy number", value: 1},
		{name: "truthy string", value: "true"},
		{name: "nil", value: nil},
		{name: "pointer to true", value: func() *bool { b := true; return &b }()},
	}

	for _, test := range tests {
		err := harnessAssert.IsTrue(test.value)
		if test.expOK {
			assert.NoError(t, err, test.name)
			continue
		}
		assert.EqualError(t, err, "Value is not true", test.name)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		expected interface{}
		actual   interface{}
		expOK    bool
	}{
		{name: "number and numeric string", expected: 1, actual: "1", expOK: true},
		{name: "different int types", expected: int64(3), actual: uint8(3), expOK: true},
		{name: "int and float", expected: 2, actual: 2.0, expOK: true},
		{name: "true and one", expected: true, actual: 1, expOK: true},
		{name: "false and empty string", expected: false, actual: "", expOK: true},
		{name: "true and numeric string", expected: true, actual: "1", expOK: true},
		{name: "padded string", expected: " 42\n", actual: 42, expOK: true},
		{name: "hex string", expected: "0x10", actual: 16, expOK: true},
		{name: "nil and nil", expected: nil, actual: nil, expOK: true},
		{name: "equal strings", expected: "a", actual: "a", expOK: true},
		{name: "different strings", expected: "a", actual: "b"},
		{name: "number and word", expected: 1, actual: "one"},
		{name: "NaN", expected: math.NaN(), actual: math.NaN()},
		{name: "nil and zero", expected: nil, actual: 0},
		{name: "true and word", expected: true, actual: "true"},
	}

	for _, test := range tests {
		err := harnessAssert.Match(test.expected, test.actual)
		assert.Equal(t, test.expOK, err == nil, test.name)
	}
}

func TestMatchMessage(t *testing.T) {
	err := harnessAssert.Match(map[string]int{"b": 2, "a": 1}, []string{"x"})
	assert.EqualError(t, err, `Expected value is ({"a":1,"b":2}) but is (["x"])`)

	err = harnessAssert.Match("<tag>", 3)
	assert.EqualError(t, err, `Expected value is ("<tag>") but is (3)`)
}

func TestEquals(t *testing.T) {
	slice := []int{1, 2}
	m := map[string]int{"a": 1}
	type point struct{ X, Y int }

	tests := []struct {
		name     string
		expected interface{}
		actual   interface{}
		expOK    bool
	}{
		{name: "same int", expected: 1, actual: 1, expOK: true},
		{name: "same string", expected: "1", actual: "1", expOK: true},
		{name: "same slice", expected: slice, actual: slice, expOK: true},
		{name: "same map", expected: m, actual: m, expOK: true},
		{name: "equal structs", expected: point{1, 2}, actual: point{1, 2}, expOK: true},
		{name: "nil and nil", expected: nil, actual: nil, expOK: true},
		{name: "number and numeric string", expected: 1, actual: "1"},
		{name: "different int types", expected: int64(1), actual: 1},
		{name: "equal but distinct slices", expected: []int{1, 2}, actual: []int{1, 2}},
		{name: "different structs", expected: point{1, 2}, actual: point{2, 1}},
		{name: "NaN", expected: math.NaN(), actual: math.NaN()},
		{name: "nil and empty string", expected: nil, actual: ""},
	}

	for _, test := range tests {
		err := harnessAssert.Equals(test.expected, test.actual)
		assert.Equal(t, test.expOK, err == nil, test.name)
	}
}

func TestEqualsMessage(t *testing.T) {
	err := harnessAssert.Equals(1, "1")
	require.Error(t, err)
	assert.Equal(t, `Assertion failed: expected 1, but got "1"`, err.Error())

	failure, ok := harnessAssert.IsFailure(err)
	require.True(t, ok)
	assert.Equal(t, 1, failure.Expected)
	assert.Equal(t, "1", failure.Actual)

	assert.EqualError(t, harnessAssert.Equals(true, false),
		"Assertion failed: expected true, but got false")
}

func TestDeepEquals(t *testing.T) {
	tests := []struct {
		name     string
		expected interface{}
		actual   interface{}
		expErr   string
	}{
		{
			name:     "nested equal",
			expected: []interface{}{1, []int{2, 3}},
			actual:   []interface{}{1, []int{2, 3}},
		},
		{
			name:     "array and slice",
			expected: [2]string{"a", "b"},
			actual:   []string{"a", "b"},
		},
		{
			name:     "maps compared by serialization",
			expected: []map[string]int{{"a": 1, "b": 2}},
			actual:   []interface{}{map[string]interface{}{"b": 2, "a": 1}},
		},
		{
			name:     "same serialization, different types",
			expected: []interface{}{struct{ A int }{1}},
			actual:   []interface{}{map[string]int{"A": 1}},
		},
		{
			name:     "empty",
			expected: []int{},
			actual:   []string{},
		},
		{
			name:     "length mismatch",
			expected: []int{1, 2},
			actual:   []int{1, 2, 3},
			expErr:   "Arrays have different lengths: 2 !== 3",
		},
		{
			name:     "nested mismatch",
			expected: []interface{}{1, []int{2, 3}},
			actual:   []interface{}{1, []int{2, 4}},
			expErr:   "Arrays differ at index 1: 3 !== 4",
		},
		{
			name:     "string and number",
			expected: []interface{}{"1"},
			actual:   []interface{}{1},
			expErr:   `Arrays differ at index 0: "1" !== 1`,
		},
		{
			name:     "sequence and scalar",
			expected: []interface{}{[]int{1}},
			actual:   []interface{}{1},
			expErr:   "Arrays differ at index 0: [1] !== 1",
		},
		{
			name:     "not a sequence",
			expected: []int{1},
			actual:   "1",
			expErr:   "Both arguments must be arrays",
		},
		{
			name:     "nil",
			expected: nil,
			actual:   []int{},
			expErr:   "Both arguments must be arrays",
		},
	}

	for _, test := range tests {
		err := harnessAssert.DeepEquals(test.expected, test.actual)
		if test.expErr == "" {
			assert.NoError(t, err, test.name)
			continue
		}
		assert.EqualError(t, err, test.expErr, test.name)
	}
}

func TestDeepEqualsStopsAtFirstDifference(t *testing.T) {
	err := harnessAssert.DeepEquals([]int{1, 2, 3}, []int{9, 8, 7})
	assert.EqualError(t, err, "Arrays differ at index 0: 1 !== 9")

	failure, ok := harnessAssert.IsFailure(err)
	require.True(t, ok)
	assert.Equal(t, 1, failure.Expected)
	assert.Equal(t, 9, failure.Actual)
}

func TestIsFailure(t *testing.T) {
	failure := harnessAssert.IsTrue(false)

	_, ok := harnessAssert.IsFailure(failure)
	assert.True(t, ok)

	_, ok = harnessAssert.IsFailure(errors.WithContext("before", failure))
	assert.True(t, ok)

	_, ok = harnessAssert.IsFailure(fmt.Errorf("wrapped: %w", failure))
	assert.True(t, ok)

	_, ok = harnessAssert.IsFailure(errors.New("unexpected"))
	assert.False(t, ok)
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { harnessAssert.Must(nil) })

	failure := harnessAssert.Equals(1, 2)
	assert.PanicsWithValue(t, failure, func() { harnessAssert.Must(failure) })
}
