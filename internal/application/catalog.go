package application

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/entities"
	"schooladmin/internal/domain/locale"
	"schooladmin/internal/domain/localize"
	"schooladmin/internal/domain/views"
	"schooladmin/internal/ports/input"
	"schooladmin/internal/ports/output"
)

var _ input.CatalogUseCase = (*CatalogService)(nil)

const (
	// maxTypos is the edit distance tolerated between a query and a word of
	// the displayed title.
	maxTypos = 2
	// minFuzzyQuery keeps short queries from matching almost every word.
	minFuzzyQuery = 4

	keyUntitled = "common.untitled"
)

type CatalogService struct {
	source     output.CatalogSource
	renderer   *TextRenderer
	translator output.T
	logger     *zap.Logger
}

func NewCatalogService(
	source output.CatalogSource,
	renderer *TextRenderer,
	translator output.T,
	logger *zap.Logger,
) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{
		source:     source,
		renderer:   renderer,
		translator: translator,
		logger:     logger,
	}
}

// candidate pairs an item with the strings used to match and sort it.
type candidate[T any] struct {
	item     T
	display  string
	variants []string
}

// filterSorted keeps candidates matching query and orders them by their
// display string using the collation rules of lang.
func filterSorted[T any](lang localize.Language, query string, in []candidate[T]) []T {
	q := fold(strings.TrimSpace(query))
	kept := make([]candidate[T], 0, len(in))
	for _, c := range in {
		if matches(q, c.display, c.variants) {
			kept = append(kept, c)
		}
	}

	col := collate.New(locale.Tag(lang), collate.IgnoreCase)
	slices.SortStableFunc(kept, func(a, b candidate[T]) int {
		return col.CompareString(a.display, b.display)
	})

	out := make([]T, len(kept))
	for i := range kept {
		out[i] = kept[i].item
	}
	return out
}

func matches(foldedQuery, display string, variants []string) bool {
	if foldedQuery == "" {
		return true
	}
	for _, v := range variants {
		if strings.Contains(fold(v), foldedQuery) {
			return true
		}
	}
	if utf8.RuneCountInString(foldedQuery) < minFuzzyQuery {
		return false
	}
	for _, word := range strings.Fields(fold(display)) {
		if levenshtein.ComputeDistance(word, foldedQuery) <= maxTypos {
			return true
		}
	}
	return false
}

func fold(s string) string {
	return cases.Fold().String(s)
}

func (s *CatalogService) untitled(lang localize.Language) string {
	return s.translator.T(string(lang), keyUntitled, nil)
}

func (s *CatalogService) render(text string) string {
	if s.renderer == nil {
		return text
	}
	return s.renderer.Render(text)
}

func (s *CatalogService) ListTracks(ctx context.Context, lang localize.Language, query string) ([]views.Track, error) {
	tracks, err := s.source.Tracks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tracks: %w", err)
	}
	fallback := s.untitled(lang)
	in := make([]candidate[views.Track], 0, len(tracks))
	for _, t := range tracks {
		rec := t.Fields()
		name := localize.Name(rec, lang, fallback)
		in = append(in, candidate[views.Track]{
			item:     views.Track{ID: t.ID, Name: name, LengthKM: t.LengthKM},
			display:  name,
			variants: append(localize.Variants(rec, "name"), t.ID),
		})
	}
	return filterSorted(lang, query, in), nil
}

func (s *CatalogService) SearchLessons(ctx context.Context, lang localize.Language, query string) ([]views.Lesson, error) {
	lessons, err := s.source.Lessons(ctx)
	if err != nil {
		return nil, fmt.Errorf("search lessons: %w", err)
	}
	trackNames, err := s.trackNames(ctx, lang)
	if err != nil {
		return nil, err
	}
	in := make([]candidate[views.Lesson], 0, len(lessons))
	for _, l := range lessons {
		v := s.lessonView(l, lang, trackNames)
		in = append(in, candidate[views.Lesson]{
			item:     v,
			display:  v.Title,
			variants: append(localize.Variants(l.Fields(), "title"), l.ID),
		})
	}
	return filterSorted(lang, query, in), nil
}

func (s *CatalogService) SearchExercises(ctx context.Context, lang localize.Language, query string) ([]views.Exercise, error) {
	exercises, err := s.source.Exercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("search exercises: %w", err)
	}
	lessonTitles, err := s.lessonTitles(ctx, lang)
	if err != nil {
		return nil, err
	}
	in := make([]candidate[views.Exercise], 0, len(exercises))
	for _, e := range exercises {
		v := s.exerciseView(e, lang, lessonTitles)
		in = append(in, candidate[views.Exercise]{
			item:     v,
			display:  v.Title,
			variants: append(localize.Variants(e.Fields(), "title"), e.ID),
		})
	}
	return filterSorted(lang, query, in), nil
}

func (s *CatalogService) SearchStaff(ctx context.Context, lang localize.Language, query string) ([]views.Staff, error) {
	staff, err := s.source.Staff(ctx)
	if err != nil {
		return nil, fmt.Errorf("search staff: %w", err)
	}
	fallback := s.untitled(lang)
	in := make([]candidate[views.Staff], 0, len(staff))
	for _, m := range staff {
		rec := m.Fields()
		v := views.Staff{
			ID:       m.ID,
			Name:     localize.Name(rec, lang, fallback),
			Position: s.positionLabel(lang, m.Position),
			Phone:    m.Phone,
		}
		in = append(in, candidate[views.Staff]{
			item:     v,
			display:  v.Name,
			variants: append(localize.Variants(rec, "name"), v.Position),
		})
	}
	return filterSorted(lang, query, in), nil
}

// Lesson returns one lesson with its exercises.
func (s *CatalogService) Lesson(ctx context.Context, lang localize.Language, id string) (*views.Lesson, error) {
	lessons, err := s.source.Lessons(ctx)
	if err != nil {
		return nil, fmt.Errorf("get lesson: %w", err)
	}
	idx := slices.IndexFunc(lessons, func(l entities.Lesson) bool { return l.ID == id })
	if idx < 0 {
		s.logger.Debug("lesson not found", zap.String("id", id))
		return nil, fmt.Errorf("lesson %q: %w", id, domain.ErrRecordNotFound)
	}
	trackNames, err := s.trackNames(ctx, lang)
	if err != nil {
		return nil, err
	}
	v := s.lessonView(lessons[idx], lang, trackNames)

	exercises, err := s.source.Exercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("get lesson exercises: %w", err)
	}
	titles := map[string]string{v.ID: v.Title}
	for _, e := range exercises {
		if e.LessonID == id {
			v.Exercises = append(v.Exercises, s.exerciseView(e, lang, titles))
		}
	}
	return &v, nil
}

// Exercise returns one exercise with its statement rendered.
func (s *CatalogService) Exercise(ctx context.Context, lang localize.Language, id string) (*views.Exercise, error) {
	exercises, err := s.source.Exercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	idx := slices.IndexFunc(exercises, func(e entities.Exercise) bool { return e.ID == id })
	if idx < 0 {
		s.logger.Debug("exercise not found", zap.String("id", id))
		return nil, fmt.Errorf("exercise %q: %w", id, domain.ErrRecordNotFound)
	}
	lessonTitles, err := s.lessonTitles(ctx, lang)
	if err != nil {
		return nil, err
	}
	v := s.exerciseView(exercises[idx], lang, lessonTitles)
	return &v, nil
}

func (s *CatalogService) lessonView(l entities.Lesson, lang localize.Language, trackNames map[string]string) views.Lesson {
	rec := l.Fields()
	return views.Lesson{
		ID:              l.ID,
		Title:           localize.Title(rec, lang, s.untitled(lang)),
		Description:     s.render(localize.Field(rec, "description", lang, "")),
		Track:           trackNames[l.TrackID],
		DurationMinutes: l.DurationMinutes,
	}
}

func (s *CatalogService) exerciseView(e entities.Exercise, lang localize.Language, lessonTitles map[string]string) views.Exercise {
	rec := e.Fields()
	return views.Exercise{
		ID:        e.ID,
		LessonID:  e.LessonID,
		Title:     localize.Title(rec, lang, s.untitled(lang)),
		Lesson:    lessonTitles[e.LessonID],
		Statement: s.render(localize.Field(rec, "statement", lang, "")),
		Points:    e.Points,
	}
}

func (s *CatalogService) trackNames(ctx context.Context, lang localize.Language) (map[string]string, error) {
	tracks, err := s.source.Tracks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tracks: %w", err)
	}
	fallback := s.untitled(lang)
	out := make(map[string]string, len(tracks))
	for _, t := range tracks {
		out[t.ID] = localize.Name(t.Fields(), lang, fallback)
	}
	return out, nil
}

func (s *CatalogService) lessonTitles(ctx context.Context, lang localize.Language) (map[string]string, error) {
	lessons, err := s.source.Lessons(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	fallback := s.untitled(lang)
	out := make(map[string]string, len(lessons))
	for _, l := range lessons {
		out[l.ID] = localize.Title(l.Fields(), lang, fallback)
	}
	return out, nil
}

// positionLabel falls back to the raw code when no label is translated.
func (s *CatalogService) positionLabel(lang localize.Language, position string) string {
	if position == "" {
		return ""
	}
	key := "staff.position." + position
	label := s.translator.T(string(lang), key, nil)
	if label == key {
		return position
	}
	return label
}
