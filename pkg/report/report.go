package report

import (
	"fmt"
	"io"

	"github.com/buger/goterm"

	"github.com/kelda/harness/pkg/runner"
)

// Suite is the result of running one named suite.
type Suite struct {
	Name   string
	Result runner.Result
}

// Print writes a plain text summary of the given suites to out.
func Print(out io.Writer, suites []Suite, color bool) {
	var passed, failed int
	for _, s := range suites {
		fmt.Fprintf(out, "%s: %d passed, %d failed\n", s.Name, s.Result.Passed, s.Result.Failed)
		passed += s.Result.Passed
		failed += s.Result.Failed
	}

	fmt.Fprintln(out)
	if failed == 0 {
		fmt.Fprintln(out, paint("ALL TESTS PASSED", goterm.GREEN, color))
		return
	}
	fmt.Fprintln(out, paint(fmt.Sprintf("%d / %d TESTS FAILED", failed, passed+failed), goterm.RED, color))
}

func paint(msg string, c int, color bool) string {
	if !color {
		return msg
	}
	return goterm.Color(msg, c)
}
