package component

import (
	"fmt"
	"sort"
	"strings"
)

// Contributor priorities used by the theme bootstrap. Lower runs first, so a
// higher priority contributor overrides keys of a lower one.
const (
	PriorityFramework = 10
	PriorityTheme     = 20
)

// Contributor supplies one batch of entries to a Builder.
type Contributor struct {
	Name     string
	Priority int
	Entries  func() Batch
}

// Builder assembles a Registry from contributors in priority order.
type Builder struct {
	contributors []Contributor
}

// NewBuilder returns a builder seeded with contributors.
func NewBuilder(contributors ...Contributor) *Builder {
	b := &Builder{}
	return b.Add(contributors...)
}

// Add appends contributors. Contributors sharing a priority run in the order
// they were added.
func (b *Builder) Add(contributors ...Contributor) *Builder {
	b.contributors = append(b.contributors, contributors...)
	return b
}

// Build invokes every contributor and merges its batch into a new registry.
func (b *Builder) Build() (*Registry, error) {
	ordered := make([]Contributor, len(b.contributors))
	copy(ordered, b.contributors)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})

	registry := New()
	for _, contributor := range ordered {
		name := strings.TrimSpace(contributor.Name)
		if name == "" {
			name = "unnamed"
		}
		if contributor.Entries == nil {
			return nil, fmt.Errorf("contributor %q: entries function is required", name)
		}
		batch := contributor.Entries()
		if err := validateBatch(batch); err != nil {
			return nil, fmt.Errorf("contributor %q: %w", name, err)
		}
		registry.RegisterMany(batch)
	}
	return registry, nil
}

func validateBatch(batch Batch) error {
	for idx, entry := range batch {
		if strings.TrimSpace(entry.Key) == "" {
			return fmt.Errorf("entry %d: key is required", idx)
		}
		if strings.TrimSpace(entry.Key) != entry.Key {
			return fmt.Errorf("entry %q: key has surrounding whitespace", entry.Key)
		}
		if entry.Renderer == nil {
			return fmt.Errorf("entry %q: renderer is required", entry.Key)
		}
	}
	return nil
}
