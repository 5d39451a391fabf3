// Package examples contains sample suites. ExampleTest doubles as a
// template for writing new suites.
package examples

import (
	"sort"

	"github.com/kelda/harness/pkg/runner"
)

// Suite is a named suite that can be run from the command line.
type Suite struct {
	Name string

	// New builds a fresh instance of the suite. Suites that narrate use
	// the given logger.
	New func(logger runner.Logger) interface{}
}

// Run builds the suite and runs it.
func (s Suite) Run(logger runner.Logger) (runner.Result, error) {
	return runner.New(s.New(logger), runner.WithLogger(logger)).Run()
}

var registry = map[string]Suite{}

func register(s Suite) {
	registry[s.Name] = s
}

func init() {
	register(Suite{
		Name: "example",
		New: func(logger runner.Logger) interface{} {
			return &ExampleTest{Log: logger}
		},
	})
	register(Suite{
		Name: "arithmetic",
		New: func(_ runner.Logger) interface{} {
			return NewArithmetic()
		},
	})
}

// All returns every registered suite, sorted by name.
func All() []Suite {
	var suites []Suite
	for _, s := range registry {
		suites = append(suites, s)
	}
	sort.Slice(suites, func(i, j int) bool {
		return suites[i].Name < suites[j].Name
	})
	return suites
}

// Get returns the suite with the given name.
func Get(name string) (Suite, bool) {
	s, ok := registry[name]
	return s, ok
}
