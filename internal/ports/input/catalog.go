package input

import (
	"context"

	"schooladmin/internal/domain/localize"
	"schooladmin/internal/domain/views"
)

type CatalogUseCase interface {
	ListTracks(ctx context.Context, lang localize.Language, query string) ([]views.Track, error)
	SearchLessons(ctx context.Context, lang localize.Language, query string) ([]views.Lesson, error)
	SearchExercises(ctx context.Context, lang localize.Language, query string) ([]views.Exercise, error)
	SearchStaff(ctx context.Context, lang localize.Language, query string) ([]views.Staff, error)
	Lesson(ctx context.Context, lang localize.Language, id string) (*views.Lesson, error)
	Exercise(ctx context.Context, lang localize.Language, id string) (*views.Exercise, error)
}
