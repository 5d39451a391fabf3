package run

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kelda/harness/ci/examples"
	"github.com/kelda/harness/cli/util"
	"github.com/kelda/harness/pkg/errors"
	"github.com/kelda/harness/pkg/report"
	"github.com/kelda/harness/pkg/runner"
)

// ErrTestsFailed is returned when every suite ran, but some tests failed.
var ErrTestsFailed = errors.NewFriendlyError("tests failed")

func New(flags *util.GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run [suite...]",
		Short: "Run the named suites, or all suites if none are named",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), *flags, args)
		},
	}
}

func run(out, logOut io.Writer, flags util.GlobalFlags, names []string) error {
	config, err := flags.Config()
	if err != nil {
		return err
	}

	logger, err := util.NewLogger(config, logOut)
	if err != nil {
		return err
	}

	suites, err := selectSuites(names)
	if err != nil {
		return err
	}

	var reports []report.Suite
	var failures int
	for _, s := range suites {
		result, err := s.Run(runner.NewLogrusLogger(logger.WithField("suite", s.Name)))
		if err != nil {
			return errors.WithContext(fmt.Sprintf("run suite %s", s.Name), err)
		}

		msg := "SUITE PASSED"
		fields := log.Fields{
			"suite":  s.Name,
			"passed": result.Passed,
			"failed": result.Failed,
		}
		if !result.OK() {
			msg = "SUITE FAILED"
			failures += result.Failed
		}
		logger.WithFields(fields).Info(msg)

		reports = append(reports, report.Suite{Name: s.Name, Result: result})
	}

	report.Print(out, reports, config.ColorEnabled())
	if failures != 0 {
		return ErrTestsFailed
	}
	return nil
}

func selectSuites(names []string) ([]examples.Suite, error) {
	if len(names) == 0 {
		return examples.All(), nil
	}

	var suites []examples.Suite
	for _, name := range names {
		s, ok := examples.Get(name)
		if !ok {
			return nil, errors.NewFriendlyError("No suite named %q. "+
				"Run `harness list` for the available suites.", name)
		}
		suites = append(suites, s)
	}
	return suites, nil
}
