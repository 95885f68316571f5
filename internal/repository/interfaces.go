package repository

import (
	"context"
	"errors"

	"github.com/nadialowe/chartwell/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type PresetRepo interface {
	Create(ctx context.Context, p *domain.RangePreset) error
	GetByName(ctx context.Context, name string) (*domain.RangePreset, error)
	List(ctx context.Context) ([]*domain.RangePreset, error)
	Delete(ctx context.Context, name string) error
}
