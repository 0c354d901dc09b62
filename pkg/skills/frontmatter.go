package skills

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

const (
	skillFileName   = "SKILL.md"
	headerDelimiter = "---"
)

// Frontmatter is the raw YAML header of a SKILL.md document
type Frontmatter struct {
	Name        string       `yaml:"name"`
	Kind        Kind         `yaml:"kind"`
	Description string       `yaml:"description"`
	Metadata    *rawMetadata `yaml:"metadata"`
}

type rawMetadata struct {
	Categories    []string    `yaml:"categories"`
	Dimensions    []Dimension `yaml:"dimensions"`
	OS            []string    `yaml:"os"`
	RequiresBins  []string    `yaml:"requires_bins"`
	RequiresEnv   []string    `yaml:"requires_env"`
	Trigger       *Trigger    `yaml:"trigger"`
	SchemaVersion *int        `yaml:"schema_version"`
}

// ParseSkillMD splits a SKILL.md document into its decoded frontmatter and
// its body. The body is whitespace-trimmed.
func ParseSkillMD(content string) (*Frontmatter, string, error) {
	if !strings.HasPrefix(content, headerDelimiter) {
		return nil, "", errors.Wrap(ErrInvalidHeader, "SKILL.md must start with ---")
	}

	afterOpen := content[len(headerDelimiter):]
	end := strings.Index(afterOpen, "\n"+headerDelimiter)
	if end < 0 {
		return nil, "", errors.Wrap(ErrInvalidHeader, "missing closing --- for frontmatter")
	}

	header := afterOpen[:end]
	bodyStart := len(headerDelimiter) + end + len(headerDelimiter) + 1

	body := ""
	if bodyStart < len(content) {
		body = strings.TrimSpace(content[bodyStart:])
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return nil, "", errors.Wrapf(ErrInvalidHeader, "failed to decode frontmatter: %v", err)
	}

	return &fm, body, nil
}

// ToMetadata converts the raw metadata block, filling defaults
func (fm *Frontmatter) ToMetadata() Metadata {
	m := Metadata{
		Categories:    []string{},
		Dimensions:    []Dimension{},
		SchemaVersion: 1,
	}

	raw := fm.Metadata
	if raw == nil {
		return m
	}

	if raw.Categories != nil {
		m.Categories = raw.Categories
	}
	if raw.Dimensions != nil {
		m.Dimensions = raw.Dimensions
	}
	m.OS = raw.OS
	m.RequiresBins = raw.RequiresBins
	m.RequiresEnv = raw.RequiresEnv
	m.Trigger = raw.Trigger
	if raw.SchemaVersion != nil {
		m.SchemaVersion = *raw.SchemaVersion
	}

	return m
}

// Title returns the text of the first level 1 or 2 heading in a markdown
// body, or an empty string when there is none.
func Title(body string) string {
	source := []byte(body)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	title := ""
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level > 2 {
			return ast.WalkContinue, nil
		}
		title = headingText(heading, source)
		return ast.WalkStop, nil
	})

	return title
}

func headingText(heading *ast.Heading, source []byte) string {
	var sb strings.Builder
	for c := heading.FirstChild(); c != nil; c = c.NextSibling() {
		_ = ast.Walk(c, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if t, ok := n.(*ast.Text); entering && ok {
				sb.Write(t.Segment.Value(source))
			}
			return ast.WalkContinue, nil
		})
	}
	return strings.TrimSpace(sb.String())
}
