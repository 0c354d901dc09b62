package skills

import (
	_ "embed"
)

// Embedded bundled skill documents
var (
	//go:embed bundled/evaluators/general/SKILL.md
	generalEvaluator string

	//go:embed bundled/evaluators/code-review/SKILL.md
	codeReviewEvaluator string

	//go:embed bundled/evaluators/prose-quality/SKILL.md
	proseQualityEvaluator string

	//go:embed bundled/evaluators/sql-safety/SKILL.md
	sqlSafetyEvaluator string

	//go:embed bundled/evaluators/api-design/SKILL.md
	apiDesignEvaluator string

	//go:embed bundled/evaluators/test-quality/SKILL.md
	testQualityEvaluator string

	//go:embed bundled/tasks/self-iterate/SKILL.md
	selfIterateTask string
)

// bundledSkill is a raw SKILL.md document compiled into the binary
type bundledSkill struct {
	name    string
	kind    Kind
	content string
}

// bundledSkills is scanned linearly; it only holds a handful of entries.
var bundledSkills = []bundledSkill{
	{name: "general", kind: KindEvaluator, content: generalEvaluator},
	{name: "code-review", kind: KindEvaluator, content: codeReviewEvaluator},
	{name: "prose-quality", kind: KindEvaluator, content: proseQualityEvaluator},
	{name: "sql-safety", kind: KindEvaluator, content: sqlSafetyEvaluator},
	{name: "api-design", kind: KindEvaluator, content: apiDesignEvaluator},
	{name: "test-quality", kind: KindEvaluator, content: testQualityEvaluator},
	{name: "self-iterate", kind: KindTask, content: selfIterateTask},
}

// bundledContent returns the raw document of a bundled skill
func bundledContent(name string) (string, bool) {
	for _, b := range bundledSkills {
		if b.name == name {
			return b.content, true
		}
	}
	return "", false
}

// BundledNames returns the names of all bundled skills in table order
func BundledNames() []string {
	names := make([]string, 0, len(bundledSkills))
	for _, b := range bundledSkills {
		names = append(names, b.name)
	}
	return names
}
