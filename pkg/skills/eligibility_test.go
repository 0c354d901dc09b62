package skills

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEligible(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  bool
	}{
		{name: "bundled", entry: Entry{Name: "b", Source: SourceBundled}, want: true},
		{name: "user global", entry: Entry{Name: "u", Source: SourceUserGlobal}, want: true},
		{name: "proposed not approved", entry: Entry{Name: "p", Source: SourcePatternProposed}, want: false},
		{name: "proposed approved", entry: Entry{Name: "p", Source: SourcePatternProposed, Approved: true}, want: true},
		{
			name:  "wrong os",
			entry: Entry{Name: "o", Metadata: Metadata{OS: []string{"not-an-os"}}},
			want:  false,
		},
		{
			name:  "correct os",
			entry: Entry{Name: "o", Metadata: Metadata{OS: []string{"not-an-os", runtime.GOOS}}},
			want:  true,
		},
		{
			name:  "missing binary",
			entry: Entry{Name: "b", Metadata: Metadata{RequiresBins: []string{"skillreg-nonexistent-binary-xyz"}}},
			want:  false,
		},
		{
			name:  "missing env",
			entry: Entry{Name: "e", Metadata: Metadata{RequiresEnv: []string{"SKILLREG_NONEXISTENT_ENV_XYZ"}}},
			want:  false,
		},
		{name: "no constraints", entry: Entry{Name: "n"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEligible(tt.entry))
		})
	}
}

func TestCheckEligibilityReportsEveryProblem(t *testing.T) {
	err := CheckEligibility(Entry{
		Name:   "blocked",
		Source: SourcePatternProposed,
		Metadata: Metadata{
			OS:           []string{"not-an-os"},
			RequiresBins: []string{"skillreg-nonexistent-binary-xyz"},
			RequiresEnv:  []string{"SKILLREG_NONEXISTENT_ENV_XYZ"},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "4 errors occurred")
	assert.Contains(t, err.Error(), "skillreg-nonexistent-binary-xyz")
	assert.Contains(t, err.Error(), "SKILLREG_NONEXISTENT_ENV_XYZ")
}

func TestRequiredEnvSet(t *testing.T) {
	t.Setenv("SKILLREG_TEST_TOKEN", "x")
	assert.True(t, IsEligible(Entry{Name: "e", Metadata: Metadata{RequiresEnv: []string{"SKILLREG_TEST_TOKEN"}}}))
}

func TestEligible(t *testing.T) {
	entries := []Entry{
		{Name: "a"},
		{Name: "b", Source: SourcePatternProposed},
		{Name: "c"},
	}
	got := Eligible(entries)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Name)
	assert.Equal(t, "c", got[1].Name)

	assert.NotNil(t, Eligible(nil))
}

func TestCronSchedule(t *testing.T) {
	t.Run("standard schedule", func(t *testing.T) {
		trigger := &Trigger{Type: "cron", Schedule: "30 6 * * *"}
		schedule, err := trigger.CronSchedule()
		require.NoError(t, err)

		from := time.Date(2026, 3, 1, 7, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2026, 3, 2, 6, 30, 0, 0, time.UTC), schedule.Next(from))
	})

	t.Run("descriptor", func(t *testing.T) {
		_, err := (&Trigger{Type: "cron", Schedule: "@daily"}).CronSchedule()
		assert.NoError(t, err)
	})

	t.Run("nil trigger", func(t *testing.T) {
		var trigger *Trigger
		_, err := trigger.CronSchedule()
		assert.ErrorIs(t, err, ErrNotCronTrigger)
	})

	t.Run("other trigger type", func(t *testing.T) {
		_, err := (&Trigger{Type: "on_commit"}).CronSchedule()
		assert.ErrorIs(t, err, ErrNotCronTrigger)
	})

	t.Run("non-string schedule", func(t *testing.T) {
		_, err := (&Trigger{Type: "cron", Schedule: map[string]any{"every": "1h"}}).CronSchedule()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "non-empty string")
	})

	t.Run("invalid expression", func(t *testing.T) {
		_, err := (&Trigger{Type: "cron", Schedule: "every day"}).CronSchedule()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid cron schedule")
	})
}
