package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/pkg/errors"
	"github.com/rogpeppe/go-internal/lockedfile"
	"github.com/spf13/cobra"

	"github.com/skillreg/skillreg/pkg/paths"
	"github.com/skillreg/skillreg/pkg/presenter"
	"github.com/skillreg/skillreg/pkg/skills"
)

type SkillNewConfig struct {
	Kind        string
	Description string
	Global      bool
}

func NewSkillNewConfig() *SkillNewConfig {
	return &SkillNewConfig{
		Kind:        string(skills.KindTask),
		Description: "",
		Global:      false,
	}
}

var newCmd = &cobra.Command{
	Use:   "new <skill-name>",
	Short: "Scaffold a new SKILL.md",
	Long: `Create <dir>/<skill-name>/SKILL.md with a frontmatter header and an empty body.
Task skills go to ./.agents/skills and evaluators to ./.agents/evaluators; with
--global the skill is written to the user skills directory under the skillreg home.

Examples:
  skillreg new release-notes
  skillreg new go-style --kind evaluator -d "Checks Go code against the style guide"
  skillreg new daily-digest -g`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getSkillNewConfigFromFlags(cmd)

		kind, err := skills.ParseKind(config.Kind)
		if err != nil {
			presenter.Error(err, "Invalid kind")
			os.Exit(1)
		}

		dir, err := skillTargetDir(kind, config.Global)
		if err != nil {
			presenter.Error(err, "Failed to determine skills directory")
			os.Exit(1)
		}

		path, err := scaffoldSkill(dir, args[0], kind, config.Description)
		if err != nil {
			presenter.Error(err, fmt.Sprintf("Failed to create skill '%s'", args[0]))
			os.Exit(1)
		}

		presenter.Success(fmt.Sprintf("Created skill '%s' at %s", args[0], path))
	},
}

func init() {
	defaults := NewSkillNewConfig()
	newCmd.Flags().StringP("kind", "k", defaults.Kind, "Skill kind (task, evaluator)")
	newCmd.Flags().StringP("description", "d", defaults.Description, "One-line description of the skill")
	newCmd.Flags().BoolP("global", "g", defaults.Global, "Write to the user skills directory instead of the workspace")
}

func getSkillNewConfigFromFlags(cmd *cobra.Command) *SkillNewConfig {
	config := NewSkillNewConfig()
	if kind, err := cmd.Flags().GetString("kind"); err == nil {
		config.Kind = kind
	}
	if description, err := cmd.Flags().GetString("description"); err == nil {
		config.Description = description
	}
	if global, err := cmd.Flags().GetBool("global"); err == nil {
		config.Global = global
	}
	return config
}

func skillTargetDir(kind skills.Kind, global bool) (string, error) {
	if global {
		home, err := paths.Home()
		if err != nil {
			return "", err
		}
		return paths.UserSkillsDir(home), nil
	}
	if kind == skills.KindEvaluator {
		return paths.WorkspaceEvaluatorsDir(), nil
	}
	return paths.WorkspaceSkillsDir(), nil
}

var skillTemplate = template.Must(template.New("skill").Parse(`---
name: {{ printf "%q" .Name }}
kind: {{ .Kind }}
description: {{ printf "%q" .Description }}
metadata:
  categories: []
  schema_version: 1
---
# {{ .Name }}

Describe when to use this skill and the steps to follow.
`))

// scaffoldSkill writes a new SKILL.md under dir/name and returns its path.
// It refuses to overwrite an existing skill.
func scaffoldSkill(dir, name string, kind skills.Kind, description string) (string, error) {
	if name == "" || filepath.Base(name) != name || name == "." || name == ".." {
		return "", errors.Errorf("invalid skill name '%s'", name)
	}
	if description == "" {
		description = fmt.Sprintf("%s %s", name, kind)
	}

	skillDir := filepath.Join(dir, name)
	skillPath := filepath.Join(skillDir, "SKILL.md")
	if _, err := os.Stat(skillPath); err == nil {
		return "", errors.Errorf("skill already exists at %s", skillPath)
	}

	var buf bytes.Buffer
	if err := skillTemplate.Execute(&buf, map[string]string{
		"Name":        name,
		"Kind":        string(kind),
		"Description": description,
	}); err != nil {
		return "", errors.Wrap(err, "failed to render skill template")
	}

	// the scaffold must round-trip through the parser
	fm, _, err := skills.ParseSkillMD(buf.String())
	if err != nil {
		return "", err
	}
	if fm.Name != name {
		return "", errors.Errorf("skill name '%s' does not survive the frontmatter round-trip", name)
	}

	if err := os.MkdirAll(skillDir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create skill directory")
	}
	if err := lockedfile.Write(skillPath, &buf, 0o644); err != nil {
		return "", errors.Wrap(err, "failed to write SKILL.md")
	}

	return skillPath, nil
}
