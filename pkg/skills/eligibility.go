package skills

import (
	"os"
	"os/exec"
	"runtime"
	"slices"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
)

// CheckEligibility reports every requirement of the skill that the current
// environment does not meet. A nil error means the skill is usable.
func CheckEligibility(entry Entry) error {
	var result *multierror.Error

	if len(entry.Metadata.OS) > 0 && !slices.Contains(entry.Metadata.OS, runtime.GOOS) {
		result = multierror.Append(result, errors.Errorf("requires one of OS %v, running on %s", entry.Metadata.OS, runtime.GOOS))
	}

	for _, bin := range entry.Metadata.RequiresBins {
		if _, err := exec.LookPath(bin); err != nil {
			result = multierror.Append(result, errors.Errorf("required binary '%s' not found in PATH", bin))
		}
	}

	for _, env := range entry.Metadata.RequiresEnv {
		if _, ok := os.LookupEnv(env); !ok {
			result = multierror.Append(result, errors.Errorf("required environment variable '%s' is not set", env))
		}
	}

	if !entry.IsApproved() {
		result = multierror.Append(result, errors.New("proposed skill has not been approved"))
	}

	return result.ErrorOrNil()
}

// IsEligible reports whether the skill can be used in the current environment
func IsEligible(entry Entry) bool {
	return CheckEligibility(entry) == nil
}

// Eligible filters entries down to the usable ones, preserving order
func Eligible(entries []Entry) []Entry {
	result := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if IsEligible(e) {
			result = append(result, e)
		}
	}
	return result
}

// CronSchedule parses the schedule of a cron trigger using the standard
// five-field syntax (descriptors such as @daily are accepted)
func (t *Trigger) CronSchedule() (cron.Schedule, error) {
	if t == nil || t.Type != "cron" {
		return nil, ErrNotCronTrigger
	}

	spec, ok := t.Schedule.(string)
	if !ok || spec == "" {
		return nil, errors.Errorf("cron trigger schedule must be a non-empty string, got %T", t.Schedule)
	}

	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid cron schedule '%s'", spec)
	}
	return schedule, nil
}
