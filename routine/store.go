// Package routine maintains the single source of truth for the
// current user's workout routines. Every mutation goes through the
// persistence gateway and is followed by a full reload; the cache is
// never merged optimistically.
package routine

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/rep/gateway"
	"github.com/ayoisaiah/rep/internal/apperr"
	"github.com/ayoisaiah/rep/internal/models"
)

var (
	// ErrNameRequired rejects saving a routine with a blank name
	// before any network call is made.
	ErrNameRequired = &apperr.Error{
		Message: "routine name cannot be blank",
	}

	// ErrNotFound reports a routine id or name with no match.
	ErrNotFound = &apperr.Error{
		Message: "no routine matches %q",
	}
)

// Store caches all routines for the current user. Mutations are
// serialized: each one holds the store for its write-and-reload round
// trip so the cache always reflects the latest completed mutation.
type Store struct {
	gw       gateway.Gateway
	routines []models.Routine
	mu       sync.Mutex
	loading  bool
}

// NewStore returns a store over the given gateway. Call Load before
// reading.
func NewStore(gw gateway.Gateway) *Store {
	return &Store{gw: gw}
}

// Load fetches all routines with their exercises. On failure the
// previous cache (possibly empty) stays in place and the error is
// logged; there is no retry.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.reload(ctx)
}

// reload must be called with the store lock held.
func (s *Store) reload(ctx context.Context) error {
	s.loading = true
	defer func() { s.loading = false }()

	routines, err := s.fetchAll(ctx)
	if err != nil {
		slog.Error("loading routines failed", slog.Any("error", err))
		return err
	}

	s.routines = routines

	return nil
}

func (s *Store) fetchAll(ctx context.Context) ([]models.Routine, error) {
	var routineRows []routineRow

	err := s.gw.Select(ctx, gateway.TableRoutines, gateway.Query{
		OrderBy: "created_at",
	}, &routineRows)
	if err != nil {
		return nil, err
	}

	var exerciseRows []exerciseRow

	err = s.gw.Select(ctx, gateway.TableExercises, gateway.Query{
		OrderBy: "order_index",
	}, &exerciseRows)
	if err != nil {
		return nil, err
	}

	// Regroup per routine. Rows arrive ordered by order_index, but the
	// sort is repeated per group so the guarantee holds regardless of
	// what the backend returned.
	grouped := make(map[string][]exerciseRow)

	for _, row := range exerciseRows {
		grouped[row.RoutineID] = append(grouped[row.RoutineID], row)
	}

	routines := make([]models.Routine, 0, len(routineRows))

	for _, row := range routineRows {
		rows := grouped[row.ID]

		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].OrderIndex < rows[j].OrderIndex
		})

		exercises := make([]models.Exercise, 0, len(rows))

		for _, er := range rows {
			ex, err := exerciseFromRow(er)
			if err != nil {
				return nil, err
			}

			exercises = append(exercises, ex)
		}

		routines = append(routines, routineFromRow(row, exercises))
	}

	return routines, nil
}

// List returns the last successfully fetched routines.
func (s *Store) List() []models.Routine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Routine, len(s.routines))
	copy(out, s.routines)

	return out
}

// Loading reports whether a fetch is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading
}

// Find resolves a routine by id or (case-insensitive) name.
func (s *Store) Find(q string) (models.Routine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.routines {
		r := s.routines[i]

		if r.ID == q || strings.EqualFold(r.Name, q) {
			return r, nil
		}
	}

	return models.Routine{}, ErrNotFound.Fmt(q)
}

// prepare fills in ids and derived fields before a write.
func prepare(r *models.Routine) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	if r.Icon == "" {
		r.Icon = models.IconDumbbell
	}

	r.Details = r.DetailsSummary()

	for i := range r.Exercises {
		if r.Exercises[i].ID == "" {
			r.Exercises[i].ID = uuid.NewString()
		}
	}
}

// Add inserts the routine row, then its exercises tagged with 0-based
// order indexes. A failure after the routine insert can leave an
// orphaned routine row server-side; there is no compensating rollback
// and the cache is left untouched.
func (s *Store) Add(ctx context.Context, r models.Routine) error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prepare(&r)

	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	err := s.gw.Insert(ctx, gateway.TableRoutines, rowFromRoutine(&r), nil)
	if err != nil {
		return err
	}

	if len(r.Exercises) > 0 {
		rows := make([]exerciseRow, 0, len(r.Exercises))

		for i := range r.Exercises {
			rows = append(rows, rowFromExercise(&r.Exercises[i], r.ID, i))
		}

		err = s.gw.Insert(ctx, gateway.TableExercises, rows, nil)
		if err != nil {
			return err
		}
	}

	return s.reload(ctx)
}

// Update patches the routine row, deletes remote exercises missing
// from the incoming set, and upserts the rest with fresh order
// indexes.
func (s *Store) Update(ctx context.Context, r models.Routine) error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prepare(&r)

	err := s.gw.Update(ctx, gateway.TableRoutines, map[string]any{
		"name":     r.Name,
		"details":  r.Details,
		"icon":     string(r.Icon),
		"color":    r.Color,
		"bg_color": r.BgColor,
	}, gateway.Eq("id", r.ID))
	if err != nil {
		return err
	}

	var remote []exerciseRow

	err = s.gw.Select(ctx, gateway.TableExercises, gateway.Query{
		Filters: []gateway.Filter{gateway.Eq("routine_id", r.ID)},
	}, &remote)
	if err != nil {
		return err
	}

	incoming := make(map[string]bool, len(r.Exercises))
	for i := range r.Exercises {
		incoming[r.Exercises[i].ID] = true
	}

	for _, row := range remote {
		if !incoming[row.ID] {
			err = s.gw.Delete(
				ctx,
				gateway.TableExercises,
				gateway.Eq("id", row.ID),
			)
			if err != nil {
				return err
			}
		}
	}

	if len(r.Exercises) > 0 {
		rows := make([]exerciseRow, 0, len(r.Exercises))

		for i := range r.Exercises {
			rows = append(rows, rowFromExercise(&r.Exercises[i], r.ID, i))
		}

		err = s.gw.Upsert(ctx, gateway.TableExercises, rows)
		if err != nil {
			return err
		}
	}

	return s.reload(ctx)
}

// Delete removes the routine row. The backing store cascades the
// delete to its exercises and their logs.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.gw.Delete(ctx, gateway.TableRoutines, gateway.Eq("id", id))
	if err != nil {
		return err
	}

	return s.reload(ctx)
}
