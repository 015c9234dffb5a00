// Package catalog loads the school records (tracks, lessons, exercises,
// staff) from a TOML document.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/entities"
	"schooladmin/internal/ports/output"
)

//go:embed catalog.toml
var embedded []byte

var _ output.CatalogSource = (*Catalog)(nil)

type document struct {
	Tracks    []entities.Track       `toml:"tracks"`
	Lessons   []entities.Lesson      `toml:"lessons"`
	Exercises []entities.Exercise    `toml:"exercises"`
	Staff     []entities.StaffMember `toml:"staff"`
}

// Catalog is an immutable in-memory CatalogSource.
type Catalog struct {
	doc document
}

// Load decodes and validates a catalog. Unknown keys are rejected so typos in
// localized field names ("title_arab") do not go unnoticed.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", domain.ErrInvalidCatalog, err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &Catalog{doc: doc}, nil
}

// LoadFile loads the catalog stored at path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Embedded returns the catalog shipped with the binary.
func Embedded() (*Catalog, error) {
	return Load(bytes.NewReader(embedded))
}

func (d *document) validate() error {
	tracks, err := uniqueIDs("track", len(d.Tracks), func(i int) string { return d.Tracks[i].ID })
	if err != nil {
		return err
	}
	lessons, err := uniqueIDs("lesson", len(d.Lessons), func(i int) string { return d.Lessons[i].ID })
	if err != nil {
		return err
	}
	if _, err := uniqueIDs("exercise", len(d.Exercises), func(i int) string { return d.Exercises[i].ID }); err != nil {
		return err
	}
	if _, err := uniqueIDs("staff", len(d.Staff), func(i int) string { return d.Staff[i].ID }); err != nil {
		return err
	}

	for _, l := range d.Lessons {
		if _, ok := tracks[l.TrackID]; !ok {
			return fmt.Errorf("%w: lesson %q references unknown track %q", domain.ErrInvalidCatalog, l.ID, l.TrackID)
		}
	}
	for _, e := range d.Exercises {
		if _, ok := lessons[e.LessonID]; !ok {
			return fmt.Errorf("%w: exercise %q references unknown lesson %q", domain.ErrInvalidCatalog, e.ID, e.LessonID)
		}
	}
	return nil
}

func uniqueIDs(kind string, n int, id func(int) string) (map[string]struct{}, error) {
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		v := id(i)
		if v == "" {
			return nil, fmt.Errorf("%w: %s #%d has no id", domain.ErrInvalidCatalog, kind, i+1)
		}
		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("%w: duplicate %s id %q", domain.ErrInvalidCatalog, kind, v)
		}
		seen[v] = struct{}{}
	}
	return seen, nil
}

// Counts returns the number of tracks, lessons, exercises and staff members.
func (c *Catalog) Counts() (tracks, lessons, exercises, staff int) {
	return len(c.doc.Tracks), len(c.doc.Lessons), len(c.doc.Exercises), len(c.doc.Staff)
}

func (c *Catalog) Tracks(ctx context.Context) ([]entities.Track, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.doc.Tracks, nil
}

func (c *Catalog) Lessons(ctx context.Context) ([]entities.Lesson, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.doc.Lessons, nil
}

func (c *Catalog) Exercises(ctx context.Context) ([]entities.Exercise, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.doc.Exercises, nil
}

func (c *Catalog) Staff(ctx context.Context) ([]entities.StaffMember, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.doc.Staff, nil
}
