package skills

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrBodyNotFound is returned by LoadBody when neither the cache, the
	// skill file, nor the bundled set can supply a body
	ErrBodyNotFound = errors.New("skill body not found")
	// ErrInvalidHeader is returned when a SKILL.md document has a missing,
	// unterminated or undecodable frontmatter header
	ErrInvalidHeader = errors.New("invalid SKILL.md frontmatter")
	// ErrNotCronTrigger is returned when asking a non-cron trigger for its schedule
	ErrNotCronTrigger = errors.New("trigger is not a cron trigger")
)

// BodyNotFoundError carries the name of the skill whose body could not be resolved.
// Use errors.Is(err, ErrBodyNotFound) or errors.As to inspect it.
type BodyNotFoundError struct {
	Name string
}

func (e *BodyNotFoundError) Error() string {
	return fmt.Sprintf("skill body not found for '%s'", e.Name)
}

// Unwrap returns ErrBodyNotFound
func (e *BodyNotFoundError) Unwrap() error { return ErrBodyNotFound }

var _ error = (*BodyNotFoundError)(nil)
