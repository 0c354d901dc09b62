// Package skills provides the skill registry: an ordered index of skill
// metadata discovered from SKILL.md documents on disk and from a bundled
// fallback set compiled into the binary, plus lazy, cached retrieval of each
// skill's markdown body.
//
// A SKILL.md file is a markdown document with a YAML frontmatter header:
//
//	---
//	name: code-review
//	kind: evaluator
//	description: Reviews code for quality
//	metadata:
//	  categories: [coding]
//	---
//	# Code Review
//	...
package skills

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Kind classifies a skill
type Kind string

const (
	// KindTask is a skill that guides the execution of a task
	KindTask Kind = "task"
	// KindEvaluator is a skill that scores the output of a task
	KindEvaluator Kind = "evaluator"
)

// Kinds lists every valid kind in display order
var Kinds = []Kind{KindTask, KindEvaluator}

// ParseKind converts a string into a Kind
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindTask:
		return KindTask, nil
	case KindEvaluator:
		return KindEvaluator, nil
	default:
		return "", errors.Errorf("unknown skill kind '%s'", s)
	}
}

// UnmarshalYAML rejects kinds outside the closed set
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	kind, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

func (k Kind) String() string { return string(k) }

// Source records where a skill was discovered
type Source int

const (
	SourceBundled Source = iota
	SourceManaged
	SourceWorkspace
	SourceUserGlobal
	SourcePatternProposed
)

func (s Source) String() string {
	switch s {
	case SourceBundled:
		return "bundled"
	case SourceManaged:
		return "managed"
	case SourceWorkspace:
		return "workspace"
	case SourceUserGlobal:
		return "user"
	case SourcePatternProposed:
		return "proposed"
	default:
		return "unknown"
	}
}

// Entry is the metadata of a single skill, without its body
type Entry struct {
	Name        string // Unique name, used as lookup and cache key
	Kind        Kind
	Description string
	Source      Source
	Path        string // Path to the SKILL.md file; empty for bundled-only skills
	Metadata    Metadata
	Approved    bool
}

// IsApproved reports whether the skill may be used. Only pattern-proposed
// skills require explicit approval.
func (e Entry) IsApproved() bool {
	return e.Approved || e.Source != SourcePatternProposed
}

// Metadata is the structured content of the frontmatter metadata block
type Metadata struct {
	Categories    []string
	Dimensions    []Dimension
	OS            []string
	RequiresBins  []string
	RequiresEnv   []string
	Trigger       *Trigger
	SchemaVersion int
}

// Dimension is a weighted scoring axis of an evaluator skill
type Dimension struct {
	Name        string  `yaml:"name"`
	Weight      float64 `yaml:"weight"`
	Description string  `yaml:"description"`
}

// Trigger describes when a scheduled or event-based skill fires
type Trigger struct {
	Type     string `yaml:"type"`
	Schedule any    `yaml:"schedule"`
}
