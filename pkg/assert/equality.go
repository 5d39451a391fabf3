package assert

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

type class int

const (
	classOther class = iota
	classNumber
	classString
	classBool
)

func classify(v reflect.Value) class {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return classNumber
	case reflect.String:
		return classString
	case reflect.Bool:
		return classBool
	}
	return classOther
}

// looseEqual allows conversions between numbers, strings and booleans.
// Everything else falls back to strictEqual.
func looseEqual(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	ca, cb := classify(va), classify(vb)
	if ca == classOther || cb == classOther {
		return strictEqual(a, b)
	}

	if ca == cb {
		switch ca {
		case classString:
			return va.String() == vb.String()
		case classBool:
			return va.Bool() == vb.Bool()
		}
	}
	return toNumber(va) == toNumber(vb)
}

// strictEqual requires identical dynamic types. Slices, maps, funcs, chans
// and pointers are only equal to themselves. Go gives distinct zero-capacity
// slices no identity, so those compare equal whenever their types match.
func strictEqual(a, b interface{}) (equal bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len() && va.Cap() == vb.Cap()
	case reflect.Map, reflect.Func, reflect.Chan, reflect.Ptr, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	}

	if !va.Type().Comparable() {
		return reflect.DeepEqual(a, b)
	}

	// Comparable structs and arrays can still hold interface values whose
	// dynamic types aren't comparable, which makes == panic.
	defer func() {
		if recover() != nil {
			equal = reflect.DeepEqual(a, b)
		}
	}()
	return a == b
}

func toNumber(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.Bool:
		if v.Bool() {
			return 1
		}
		return 0
	case reflect.String:
		return parseNumber(v.String())
	}
	return math.NaN()
}

// parseNumber converts a string the way a loosely typed comparison would:
// surrounding whitespace is ignored, the empty string is zero, and anything
// that isn't entirely a number is NaN.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if strings.Contains(s, "_") {
		return math.NaN()
	}

	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			n, err := strconv.ParseUint(s, 0, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(n)
		}
	}

	// ParseFloat also accepts spellings like "inf", "NaN" and hex floats.
	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.Contains(lower, "x") {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return f
		}
		return math.NaN()
	}
	return f
}
