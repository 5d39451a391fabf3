// Package assert contains the checks that test bodies use to signal failure.
// Every check returns nil when its expectation holds, and a *Failure
// describing the expected and actual values otherwise.
package assert

import (
	"reflect"
)

// IsTrue succeeds only for the boolean true. Truthy values such as 1 or
// "true" fail.
func IsTrue(value interface{}) error {
	v := reflect.ValueOf(value)
	if v.IsValid() && v.Kind() == reflect.Bool && v.Bool() {
		return nil
	}
	return fail(true, value, "Value is not true")
}

// Match compares with coercive equality, so 1 matches "1".
func Match(expected, actual interface{}) error {
	if looseEqual(expected, actual) {
		return nil
	}
	return fail(expected, actual, "Expected value is (%s) but is (%s)",
		serialize(expected), serialize(actual))
}

// Equals compares with strict equality. The values must have the same type.
func Equals(expected, actual interface{}) error {
	if strictEqual(expected, actual) {
		return nil
	}
	return fail(expected, actual, "Assertion failed: expected %s, but got %s",
		display(expected), display(actual))
}

// DeepEquals compares two slices or arrays element by element. Nested
// sequences are compared recursively, and any other element is compared by
// its serialized form. It stops at the first difference.
//
// Elements with the same serialization are considered equal even if their
// types differ.
func DeepEquals(expected, actual interface{}) error {
	exp, expOK := sequence(expected)
	act, actOK := sequence(actual)
	if !expOK || !actOK {
		return fail(expected, actual, "Both arguments must be arrays")
	}

	if exp.Len() != act.Len() {
		return fail(expected, actual, "Arrays have different lengths: %d !== %d",
			exp.Len(), act.Len())
	}

	for i := 0; i < exp.Len(); i++ {
		expElem := exp.Index(i).Interface()
		actElem := act.Index(i).Interface()

		_, expIsSeq := sequence(expElem)
		_, actIsSeq := sequence(actElem)
		if expIsSeq && actIsSeq {
			if err := DeepEquals(expElem, actElem); err != nil {
				return err
			}
			continue
		}

		expStr, actStr := serialize(expElem), serialize(actElem)
		if expStr != actStr {
			return fail(expElem, actElem, "Arrays differ at index %d: %s !== %s",
				i, expStr, actStr)
		}
	}
	return nil
}

func sequence(value interface{}) (reflect.Value, bool) {
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		return v, false
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return v, true
	}
	return v, false
}
