package output

import (
	"context"

	"schooladmin/internal/domain/entities"
)

// CatalogSource provides the school records. Returned slices must not be
// modified by callers.
type CatalogSource interface {
	Tracks(ctx context.Context) ([]entities.Track, error)
	Lessons(ctx context.Context) ([]entities.Lesson, error)
	Exercises(ctx context.Context) ([]entities.Exercise, error)
	Staff(ctx context.Context) ([]entities.StaffMember, error)
}
