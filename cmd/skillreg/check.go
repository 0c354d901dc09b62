package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/skillreg/skillreg/pkg/presenter"
	"github.com/skillreg/skillreg/pkg/skills"
)

var checkCmd = &cobra.Command{
	Use:   "check <skill-name>",
	Short: "Check whether a skill can be used in this environment",
	Long: `Check the OS, binary and environment requirements of a skill, and report
its next run time when it has a cron trigger.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		registry := loadRegistry(cmd.Context())

		entry, ok := registry.GetByName(args[0])
		if !ok {
			presenter.Error(errors.Errorf("skill '%s' not found", args[0]), "Skill not found")
			os.Exit(1)
		}

		presenter.Section(fmt.Sprintf("Skill '%s'", entry.Name))
		presenter.Field("Kind", entry.Kind.String())
		presenter.Field("Source", entry.Source.String())
		presenter.Separator()

		problems := eligibilityProblems(entry)
		if len(problems) > 0 {
			for _, p := range problems {
				presenter.Warning(p)
			}
			presenter.Error(errors.Errorf("%d requirement(s) not met", len(problems)), fmt.Sprintf("Skill '%s' is not eligible", entry.Name))
			os.Exit(1)
		}

		presenter.Success(fmt.Sprintf("Skill '%s' is eligible", entry.Name))
		if next, ok := nextRun(entry, time.Now()); ok {
			presenter.Field("Next run", next.Format(time.RFC3339))
		}
	},
}

// eligibilityProblems flattens the eligibility error into messages
func eligibilityProblems(entry skills.Entry) []string {
	err := skills.CheckEligibility(entry)
	if err == nil {
		return nil
	}

	var merr *multierror.Error
	if !errors.As(err, &merr) {
		return []string{err.Error()}
	}

	problems := make([]string, 0, len(merr.Errors))
	for _, e := range merr.Errors {
		problems = append(problems, e.Error())
	}
	return problems
}

// nextRun returns the next activation of a cron-triggered skill after now
func nextRun(entry skills.Entry, now time.Time) (time.Time, bool) {
	schedule, err := entry.Metadata.Trigger.CronSchedule()
	if err != nil {
		return time.Time{}, false
	}
	return schedule.Next(now), true
}
