// Package gateway connects to the row store that holds routines,
// exercises, and workout logs. The same narrow interface is satisfied
// by a remote PostgREST-style backend and a local BoltDB database.
package gateway

import (
	"context"
)

// Table names in the backing store.
const (
	TableRoutines    = "routines"
	TableExercises   = "exercises"
	TableWorkoutLogs = "workout_logs"
)

// Filter is an equality constraint on a column.
type Filter struct {
	Value  any
	Column string
}

// Eq constrains a column to the given value.
func Eq(column string, value any) Filter {
	return Filter{Column: column, Value: value}
}

// Query bundles the filter and ordering primitives the client needs.
type Query struct {
	OrderBy    string
	Filters    []Filter
	Descending bool
}

// Gateway is the persistence contract consumed by the routine store,
// the workout engine, and the history commands. dest arguments are
// pointers to row-struct slices; decoding failures surface as
// *DecodeError wrapped in *PersistenceError.
type Gateway interface {
	// Select reads rows matching the query into dest.
	Select(ctx context.Context, table string, q Query, dest any) error
	// Insert stores one or more rows. When dest is non-nil, the
	// inserted rows (with store-assigned defaults) are decoded into it.
	Insert(ctx context.Context, table string, rows, dest any) error
	// Update applies a partial row to every row matching the filters.
	Update(
		ctx context.Context,
		table string,
		patch map[string]any,
		filters ...Filter,
	) error
	// Upsert inserts or replaces rows keyed by primary id.
	Upsert(ctx context.Context, table string, rows any) error
	// Delete removes every row matching the filters. The store
	// cascades: deleting a routine removes its exercises and logs.
	Delete(ctx context.Context, table string, filters ...Filter) error
	// Close releases the underlying connection.
	Close() error
}
