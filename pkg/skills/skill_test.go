package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("evaluator")
	require.NoError(t, err)
	assert.Equal(t, KindEvaluator, kind)

	kind, err = ParseKind("task")
	require.NoError(t, err)
	assert.Equal(t, KindTask, kind)

	_, err = ParseKind("Task")
	assert.Error(t, err)
}

func TestKindUnmarshalYAML(t *testing.T) {
	var v struct {
		Kind Kind `yaml:"kind"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("kind: evaluator"), &v))
	assert.Equal(t, KindEvaluator, v.Kind)

	v.Kind = ""
	require.NoError(t, yaml.Unmarshal([]byte(`kind: ""`), &v))
	assert.Equal(t, Kind(""), v.Kind)

	assert.Error(t, yaml.Unmarshal([]byte("kind: planner"), &v))
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "bundled", SourceBundled.String())
	assert.Equal(t, "managed", SourceManaged.String())
	assert.Equal(t, "workspace", SourceWorkspace.String())
	assert.Equal(t, "user", SourceUserGlobal.String())
	assert.Equal(t, "proposed", SourcePatternProposed.String())
	assert.Equal(t, "unknown", Source(42).String())
}

func TestIsApproved(t *testing.T) {
	assert.True(t, Entry{Source: SourceBundled}.IsApproved())
	assert.True(t, Entry{Source: SourceUserGlobal}.IsApproved())
	assert.False(t, Entry{Source: SourcePatternProposed}.IsApproved())
	assert.True(t, Entry{Source: SourcePatternProposed, Approved: true}.IsApproved())
}

func TestBundledNames(t *testing.T) {
	names := BundledNames()
	assert.Len(t, names, 7)
	assert.Equal(t, "general", names[0])
	assert.Contains(t, names, "self-iterate")

	_, ok := bundledContent("code-review")
	assert.True(t, ok)
	_, ok = bundledContent("missing")
	assert.False(t, ok)
}

func TestBodyNotFoundError(t *testing.T) {
	err := &BodyNotFoundError{Name: "x"}
	assert.Equal(t, "skill body not found for 'x'", err.Error())
	assert.ErrorIs(t, err, ErrBodyNotFound)
}
