package skills

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/skillreg/skillreg/pkg/logger"
	"github.com/skillreg/skillreg/pkg/paths"
	"github.com/skillreg/skillreg/pkg/telemetry"
)

// Loader produces the ordered sequence of skill entries from every
// configured source
type Loader interface {
	Load(ctx context.Context) ([]Entry, error)
}

// LoaderFunc adapts a function to the Loader interface
type LoaderFunc func(ctx context.Context) ([]Entry, error)

// Load calls f(ctx)
func (f LoaderFunc) Load(ctx context.Context) ([]Entry, error) { return f(ctx) }

// SkillDir is a directory of skills, one subdirectory with a SKILL.md per skill
type SkillDir struct {
	Path   string
	Source Source
}

// Discovery loads bundled skills and skills from configured directories
type Discovery struct {
	skillDirs []SkillDir
	bundled   bool
	allowlist []string
	strict    bool
}

var _ Loader = (*Discovery)(nil)

// DiscoveryOption is a function that configures a Discovery
type DiscoveryOption func(*Discovery) error

// WithSkillDirs sets custom skill directories
func WithSkillDirs(dirs ...SkillDir) DiscoveryOption {
	return func(d *Discovery) error {
		d.skillDirs = dirs
		return nil
	}
}

// WithAdditionalSkillDirs appends directories after the ones already configured
func WithAdditionalSkillDirs(dirs ...SkillDir) DiscoveryOption {
	return func(d *Discovery) error {
		d.skillDirs = append(d.skillDirs, dirs...)
		return nil
	}
}

// WithDefaultDirs initializes with the default skill directories, lowest
// precedence first
func WithDefaultDirs() DiscoveryOption {
	return func(d *Discovery) error {
		home, err := paths.Home()
		if err != nil {
			return errors.Wrap(err, "failed to resolve skillreg home")
		}
		d.skillDirs = []SkillDir{
			{Path: paths.ManagedSkillsDir(home), Source: SourceManaged},
			{Path: paths.WorkspaceSkillsDir(), Source: SourceWorkspace},
			{Path: paths.WorkspaceEvaluatorsDir(), Source: SourceWorkspace},
			{Path: paths.UserSkillsDir(home), Source: SourceUserGlobal},
			{Path: paths.ProposedSkillsDir(home), Source: SourcePatternProposed},
		}
		return nil
	}
}

// WithoutBundled skips the skills compiled into the binary
func WithoutBundled() DiscoveryOption {
	return func(d *Discovery) error {
		d.bundled = false
		return nil
	}
}

// WithAllowlist keeps only skills whose name matches one of the glob patterns.
// An empty allowlist keeps every skill.
func WithAllowlist(patterns ...string) DiscoveryOption {
	return func(d *Discovery) error {
		for _, p := range patterns {
			if !doublestar.ValidatePattern(p) {
				return errors.Errorf("invalid allowlist pattern '%s'", p)
			}
		}
		d.allowlist = patterns
		return nil
	}
}

// WithStrict makes Load fail on unreadable or malformed SKILL.md files
// instead of logging and skipping them
func WithStrict(strict bool) DiscoveryOption {
	return func(d *Discovery) error {
		d.strict = strict
		return nil
	}
}

// NewDiscovery creates a new skill discovery instance. Without options it
// uses the default directories.
func NewDiscovery(opts ...DiscoveryOption) (*Discovery, error) {
	d := &Discovery{bundled: true}

	if len(opts) == 0 {
		if err := WithDefaultDirs()(d); err != nil {
			return nil, err
		}
		return d, nil
	}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Load returns bundled evaluators, bundled tasks, then the skills of each
// configured directory in order. Missing directories are skipped.
func (d *Discovery) Load(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	err := telemetry.WithSpan(ctx, "skills.discover", func(ctx context.Context) error {
		var err error
		entries, err = d.load(ctx)
		return err
	}, attribute.Int("skills.dirs", len(d.skillDirs)))
	return entries, err
}

func (d *Discovery) load(ctx context.Context) ([]Entry, error) {
	var (
		entries []Entry
		result  *multierror.Error
	)

	if d.bundled {
		entries = append(entries, d.loadBundled(ctx, KindEvaluator)...)
		entries = append(entries, d.loadBundled(ctx, KindTask)...)
	}

	for _, dir := range d.skillDirs {
		found, err := d.loadFromDir(ctx, dir)
		if err != nil {
			result = multierror.Append(result, err)
		}
		entries = append(entries, found...)
	}

	if d.strict {
		if err := result.ErrorOrNil(); err != nil {
			return nil, err
		}
	}

	return d.filter(entries), nil
}

func (d *Discovery) loadBundled(ctx context.Context, kind Kind) []Entry {
	var entries []Entry

	for _, b := range bundledSkills {
		if b.kind != kind {
			continue
		}

		fm, _, err := ParseSkillMD(b.content)
		if err != nil {
			logger.G(ctx).WithError(err).WithField("skill", b.name).Warn("failed to parse bundled skill")
			continue
		}

		description := fm.Description
		if description == "" {
			description = b.name + " " + string(kind)
		}

		entries = append(entries, Entry{
			Name:        b.name,
			Kind:        kind,
			Description: description,
			Source:      SourceBundled,
			Metadata:    fm.ToMetadata(),
			Approved:    true,
		})
	}

	return entries
}

// loadFromDir loads one skill per subdirectory containing a SKILL.md file.
// Per-file failures are logged and collected; the returned error is non-nil
// only when at least one file failed.
func (d *Discovery) loadFromDir(ctx context.Context, dir SkillDir) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		logger.G(ctx).WithError(err).WithField("dir", dir.Path).Warn("failed to read skill directory")
		return nil, errors.Wrapf(err, "failed to read skill directory '%s'", dir.Path)
	}

	var (
		entries []Entry
		result  *multierror.Error
	)

	for _, de := range dirEntries {
		entryPath := filepath.Join(dir.Path, de.Name())

		info, err := os.Stat(entryPath)
		if err != nil || !info.IsDir() {
			continue
		}

		skillPath := filepath.Join(entryPath, skillFileName)
		if _, err := os.Stat(skillPath); err != nil {
			continue
		}

		entry, err := loadSkillFile(skillPath, de.Name(), dir.Source)
		if err != nil {
			logger.G(ctx).WithError(err).WithField("path", skillPath).Warn("failed to load skill")
			result = multierror.Append(result, err)
			continue
		}

		entries = append(entries, entry)
	}

	return entries, result.ErrorOrNil()
}

// loadSkillFile reads a SKILL.md and builds its entry. The name falls back to
// the directory name and the kind to task.
func loadSkillFile(path, dirName string, source Source) (Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, errors.Wrapf(err, "failed to read skill file '%s'", path)
	}

	fm, _, err := ParseSkillMD(string(content))
	if err != nil {
		return Entry{}, errors.Wrapf(err, "failed to parse skill file '%s'", path)
	}

	name := fm.Name
	if name == "" {
		name = dirName
	}
	kind := fm.Kind
	if kind == "" {
		kind = KindTask
	}

	return Entry{
		Name:        name,
		Kind:        kind,
		Description: fm.Description,
		Source:      source,
		Path:        path,
		Metadata:    fm.ToMetadata(),
		Approved:    source != SourcePatternProposed,
	}, nil
}

func (d *Discovery) filter(entries []Entry) []Entry {
	if len(d.allowlist) == 0 {
		return entries
	}

	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if matchesAny(d.allowlist, e.Name) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func matchesAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}
