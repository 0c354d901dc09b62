package skills

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/rogpeppe/go-internal/lockedfile"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"

	"github.com/skillreg/skillreg/pkg/logger"
	"github.com/skillreg/skillreg/pkg/telemetry"
)

// Registry is the central index of loaded skills. It owns the ordered entry
// collection and a body cache that is filled lazily, at most once per name
// and source path, and never invalidated.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	bodies  map[string]string

	loads           singleflight.Group
	cacheFileBodies bool
}

// Option configures a Registry
type Option func(*Registry)

// WithFileBodyCache controls whether bodies read from skill files are cached.
// When disabled, file-backed skills are re-read and re-parsed on every
// LoadBody call until some other path populates the cache. Bundled bodies
// are always cached. Enabled by default.
func WithFileBodyCache(enabled bool) Option {
	return func(r *Registry) {
		r.cacheFileBodies = enabled
	}
}

func newRegistry(entries []Entry, opts ...Option) *Registry {
	r := &Registry{
		entries:         entries,
		bodies:          make(map[string]string),
		cacheFileBodies: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// New creates a registry populated by the given loader. A nil loader uses
// the default Discovery. Loader failures are returned and no registry is built.
func New(ctx context.Context, loader Loader, opts ...Option) (*Registry, error) {
	if loader == nil {
		discovery, err := NewDiscovery()
		if err != nil {
			return nil, errors.Wrap(err, "failed to create skill discovery")
		}
		loader = discovery
	}

	entries, err := loader.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load skills")
	}

	logger.G(ctx).WithField("count", len(entries)).Debug("skill registry loaded")

	return newRegistry(entries, opts...), nil
}

// Empty creates a registry with no entries, without touching any source
func Empty(opts ...Option) *Registry {
	return newRegistry(nil, opts...)
}

// GetByKind returns every entry of the given kind in discovery order
func (r *Registry) GetByKind(kind Kind) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Entry, 0)
	for _, e := range r.entries {
		if e.Kind == kind {
			result = append(result, e)
		}
	}
	return result
}

// GetByName returns the first entry with the given name
func (r *Registry) GetByName(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// All returns a copy of every entry in discovery order
func (r *Registry) All() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Entry, len(r.entries))
	copy(result, r.entries)
	return result
}

// Count returns the number of entries of the given kind
func (r *Registry) Count(kind Kind) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, e := range r.entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Add appends an entry. Name uniqueness is the caller's responsibility;
// lookups return the first match.
func (r *Registry) Add(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
}

// LoadBody returns the markdown body of a skill. It resolves, in order:
// the body cache, the skill file at entry.Path, and the bundled set. A read
// or parse failure of the skill file is returned as is and never falls
// through to the bundled set. When nothing resolves, the error is a
// *BodyNotFoundError.
func (r *Registry) LoadBody(ctx context.Context, entry Entry) (string, error) {
	var body string
	err := telemetry.WithSpan(ctx, "skills.load_body", func(ctx context.Context) error {
		var err error
		body, err = r.loadBody(ctx, entry)
		return err
	}, attribute.String("skill.name", entry.Name), attribute.String("skill.path", entry.Path))
	return body, err
}

func (r *Registry) loadBody(ctx context.Context, entry Entry) (string, error) {
	log := logger.G(ctx).WithField("skill", entry.Name)
	key := cacheKey(entry)

	if body, ok := r.cached(key); ok {
		telemetry.AddEvent(ctx, "skills.cache_hit")
		log.WithField("source", "cache").Debug("resolved skill body")
		return body, nil
	}

	// concurrent loads of the same skill share one read; the shared call
	// takes no context so joiners never log into the first caller's span
	v, err, _ := r.loads.Do(key, func() (any, error) {
		if body, ok := r.cached(key); ok {
			return resolved{body: body, source: "cache"}, nil
		}
		return r.resolveBody(entry)
	})
	if err != nil {
		return "", err
	}

	res := v.(resolved)
	log.WithField("source", res.source).Debug("resolved skill body")
	return res.body, nil
}

type resolved struct {
	body   string
	source string
}

func (r *Registry) resolveBody(entry Entry) (resolved, error) {
	key := cacheKey(entry)

	if entry.Path != "" {
		content, err := lockedfile.Read(entry.Path)
		if err != nil {
			return resolved{}, errors.Wrapf(err, "failed to read skill file '%s'", entry.Path)
		}
		_, body, err := ParseSkillMD(string(content))
		if err != nil {
			return resolved{}, errors.Wrapf(err, "failed to parse skill file '%s'", entry.Path)
		}
		if r.cacheFileBodies {
			body = r.store(key, body)
		}
		return resolved{body: body, source: "file"}, nil
	}

	if content, ok := bundledContent(entry.Name); ok {
		_, body, err := ParseSkillMD(content)
		if err != nil {
			return resolved{}, errors.Wrapf(err, "failed to parse bundled skill '%s'", entry.Name)
		}
		return resolved{body: r.store(key, body), source: "bundled"}, nil
	}

	return resolved{}, &BodyNotFoundError{Name: entry.Name}
}

// cacheKey scopes cached bodies to the record's source file, so a file-backed
// skill never receives the bundled body of the same name
func cacheKey(entry Entry) string {
	return entry.Name + "\x00" + entry.Path
}

func (r *Registry) cached(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	body, ok := r.bodies[key]
	return body, ok
}

// store inserts a body unless one is already cached and returns the cached
// value; the first value wins
func (r *Registry) store(key, body string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.bodies[key]; ok {
		return existing
	}
	r.bodies[key] = body
	return body
}
