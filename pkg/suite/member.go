package suite

import (
	"strings"

	"github.com/kelda/harness/pkg/errors"
)

const (
	// TestPrefix marks a member as a test case. The rest of the name is the
	// test's label.
	TestPrefix = "test_"

	// BeforeHook is run before every test.
	BeforeHook = "before"

	// AfterHook is run after every test, whether or not it passed.
	AfterHook = "after"
)

// Func is the normalized form of every suite member.
type Func func() error

// Member is a named callable of a suite. Fn is nil if the member exists but
// isn't callable.
type Member struct {
	Name string
	Fn   Func
}

// IsTest returns whether the member is a test case.
func (m Member) IsTest() bool {
	return strings.HasPrefix(m.Name, TestPrefix)
}

// Label returns the member's name without the test prefix.
func (m Member) Label() string {
	return strings.TrimPrefix(m.Name, TestPrefix)
}

// Callable returns whether the member can be invoked.
func (m Member) Callable() bool {
	return m.Fn != nil
}

// ToFunc converts the function shapes a suite may use into a Func. The bool
// is false if fn has an unsupported type.
func ToFunc(fn interface{}) (Func, bool) {
	switch fn := fn.(type) {
	case nil:
		return nil, true
	case Func:
		return fn, true
	case func() error:
		if fn == nil {
			return nil, true
		}
		return Func(fn), true
	case func():
		if fn == nil {
			return nil, true
		}
		return func() error {
			fn()
			return nil
		}, true
	}
	return nil, false
}

// Object is a suite built from plain data rather than from a type's
// methods. Members keep the order they were first set in.
type Object struct {
	members []Member
	index   map[string]int
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{index: map[string]int{}}
}

// Set adds the named member, or replaces the callable of an existing member
// while keeping its position. It panics if fn isn't a func(), func() error,
// Func or nil.
func (o *Object) Set(name string, fn interface{}) *Object {
	f, ok := ToFunc(fn)
	if !ok {
		panic(errors.New("member %q has unsupported type %T", name, fn))
	}

	if o.index == nil {
		o.index = map[string]int{}
	}
	if i, ok := o.index[name]; ok {
		o.members[i].Fn = f
		return o
	}
	o.index[name] = len(o.members)
	o.members = append(o.members, Member{Name: name, Fn: f})
	return o
}

// Members implements Owner.
func (o *Object) Members() []Member {
	members := make([]Member, len(o.members))
	copy(members, o.members)
	return members
}
