package suite

import (
	"reflect"

	"github.com/kelda/harness/pkg/errors"
	"github.com/kelda/harness/pkg/strs"
)

// Owner is implemented by suites that carry their own members, such as
// Object. Owned members come before the suite type's methods.
type Owner interface {
	Members() []Member
}

// Set is the result of enumerating a suite's members.
type Set struct {
	names   []string
	members map[string]Member
}

// Names returns every member name, deduplicated, in discovery order.
func (s Set) Names() []string {
	return append([]string(nil), s.names...)
}

// Tests returns the test members in discovery order.
func (s Set) Tests() []Member {
	var tests []Member
	for _, name := range s.names {
		if m := s.members[name]; m.IsTest() {
			tests = append(tests, m)
		}
	}
	return tests
}

// Hook returns the named member if it exists and is callable.
func (s Set) Hook(name string) (Member, bool) {
	m, ok := s.members[name]
	if !ok || !m.Callable() {
		return Member{}, false
	}
	return m, true
}

// Discover enumerates the members of a suite. Members come from, in order:
//   - exported func-typed struct fields, in declaration order,
//   - Members() if the suite implements Owner,
//   - exported methods of the suite's type, in lexicographic order.
//
// Field and method names have their first letter lower-cased, so a method
// named Test_sum is the member test_sum. When a name appears more than once
// the first occurrence wins.
func Discover(s interface{}) (Set, error) {
	v := reflect.ValueOf(s)
	if !v.IsValid() || (v.Kind() == reflect.Ptr && v.IsNil()) {
		return Set{}, errors.New("suite is nil")
	}

	fields, err := fieldMembers(v)
	if err != nil {
		return Set{}, errors.WithContext("fields", err)
	}
	candidates := fields

	if owner, ok := s.(Owner); ok {
		candidates = append(candidates, owner.Members()...)
	}

	methods, err := methodMembers(v)
	if err != nil {
		return Set{}, errors.WithContext("methods", err)
	}
	candidates = append(candidates, methods...)

	set := Set{members: map[string]Member{}}
	var names []string
	for _, m := range candidates {
		names = append(names, m.Name)
		if _, ok := set.members[m.Name]; !ok {
			set.members[m.Name] = m
		}
	}
	set.names = strs.Unique(names)
	return set, nil
}

func fieldMembers(v reflect.Value) ([]Member, error) {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, nil
	}

	var members []Member
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" || field.Type.Kind() != reflect.Func {
			continue
		}

		name := strs.LowerFirst(field.Name)
		fn, ok := reflectFunc(v.Field(i))
		if !ok {
			if isReserved(name) {
				return nil, errors.New("member %q has unsupported signature %s", name, field.Type)
			}
			continue
		}
		members = append(members, Member{Name: name, Fn: fn})
	}
	return members, nil
}

func methodMembers(v reflect.Value) ([]Member, error) {
	var members []Member
	t := v.Type()
	for i := 0; i < t.NumMethod(); i++ {
		name := strs.LowerFirst(t.Method(i).Name)
		method := v.Method(i)
		fn, ok := reflectFunc(method)
		if !ok {
			if isReserved(name) {
				return nil, errors.New("member %q has unsupported signature %s", name, method.Type())
			}
			continue
		}
		members = append(members, Member{Name: name, Fn: fn})
	}
	return members, nil
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// reflectFunc wraps a func value that takes no arguments and returns either
// nothing or a single error.
func reflectFunc(fv reflect.Value) (Func, bool) {
	t := fv.Type()
	if t.NumIn() != 0 {
		return nil, false
	}
	switch {
	case t.NumOut() == 0:
	case t.NumOut() == 1 && t.Out(0) == errorType:
	default:
		return nil, false
	}

	if fv.IsNil() {
		return nil, true
	}

	return func() error {
		out := fv.Call(nil)
		if len(out) == 0 || out[0].IsNil() {
			return nil
		}
		return out[0].Interface().(error)
	}, true
}

func isReserved(name string) bool {
	return name == BeforeHook || name == AfterHook || Member{Name: name}.IsTest()
}
