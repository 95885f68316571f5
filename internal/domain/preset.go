package domain

import (
	"fmt"
	"time"
)

// RangePreset is a named, persisted time selection ("release-week",
// "last-30d") reusable across interval queries.
type RangePreset struct {
	ID        string
	Name      string
	Selection TimeSelection
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks preset fields before persistence.
func (p *RangePreset) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("preset name is required")
	}
	if err := p.Selection.Validate(); err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	return nil
}
