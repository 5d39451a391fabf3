package examples

import (
	"strconv"

	"github.com/kelda/harness/pkg/assert"
	"github.com/kelda/harness/pkg/suite"
)

// NewArithmetic returns a suite built from plain data rather than methods.
// The tests run in the order they're set.
func NewArithmetic() *suite.Object {
	var acc []int

	return suite.NewObject().
		Set(suite.BeforeHook, func() {
			acc = []int{1, 2, 3}
		}).
		Set("test_sum", func() error {
			sum := 0
			for _, n := range acc {
				sum += n
			}
			return assert.Equals(6, sum)
		}).
		Set("test_formatted", func() error {
			return assert.Match(strconv.Itoa(len(acc)), 3)
		}).
		Set("test_doubled", func() {
			var doubled [][]int
			for _, n := range acc {
				doubled = append(doubled, []int{n, n * 2})
			}
			assert.Must(assert.DeepEquals([][]int{{1, 2}, {2, 4}, {3, 6}}, doubled))
		}).
		Set("test_isolated", func() error {
			// Each test starts from the state the before hook sets up.
			acc = append(acc, 4)
			return assert.DeepEquals([]int{1, 2, 3, 4}, acc)
		})
}
