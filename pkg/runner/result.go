package runner

// Result is the outcome of a single run.
type Result struct {
	Passed int
	Failed int

	// Errors holds one "<member name>: <message>" line per failed test, in
	// the order the tests ran.
	Errors []string
}

// OK returns whether every test passed.
func (r Result) OK() bool {
	return r.Failed == 0
}

// Total returns the number of tests that ran.
func (r Result) Total() int {
	return r.Passed + r.Failed
}
