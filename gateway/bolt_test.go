package gateway

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type testRow struct {
	ID        string  `json:"id"`
	RoutineID string  `json:"routine_id,omitempty"`
	Name      string  `json:"name,omitempty"`
	Rank      float64 `json:"rank,omitempty"`
}

func newTestClient(t *testing.T) *BoltClient {
	t.Helper()

	c, err := NewBolt(filepath.Join(t.TempDir(), "rep_test.db"))
	if err != nil {
		t.Fatalf("unexpected error opening store: %v", err)
	}

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func mustInsert(t *testing.T, c *BoltClient, table string, rows any) {
	t.Helper()

	if err := c.Insert(context.Background(), table, rows, nil); err != nil {
		t.Fatalf("unexpected error inserting into %s: %v", table, err)
	}
}

func TestInsertAssignsIDs(t *testing.T) {
	c := newTestClient(t)

	var inserted []testRow

	err := c.Insert(
		context.Background(),
		TableRoutines,
		testRow{Name: "Push Day"},
		&inserted,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(inserted) != 1 {
		t.Fatalf("expected 1 inserted row, got: %d", len(inserted))
	}

	if inserted[0].ID == "" {
		t.Fatal("expected an id to be assigned")
	}
}

func TestSelectFilterAndOrder(t *testing.T) {
	c := newTestClient(t)

	mustInsert(t, c, TableExercises, []testRow{
		{ID: "b", RoutineID: "r1", Rank: 2},
		{ID: "a", RoutineID: "r1", Rank: 1},
		{ID: "c", RoutineID: "r2", Rank: 0},
	})

	var got []testRow

	err := c.Select(context.Background(), TableExercises, Query{
		Filters: []Filter{Eq("routine_id", "r1")},
		OrderBy: "rank",
	}, &got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []testRow{
		{ID: "a", RoutineID: "r1", Rank: 1},
		{ID: "b", RoutineID: "r1", Rank: 2},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}

	got = nil

	err = c.Select(context.Background(), TableExercises, Query{
		Filters:    []Filter{Eq("routine_id", "r1")},
		OrderBy:    "rank",
		Descending: true,
	}, &got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got[0].ID != "b" {
		t.Fatalf("expected descending order, got: %v", got)
	}
}

func TestSelectEmptyResult(t *testing.T) {
	c := newTestClient(t)

	var got []testRow

	err := c.Select(context.Background(), TableRoutines, Query{
		Filters: []Filter{Eq("id", "missing")},
	}, &got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 0 {
		t.Fatalf("expected no rows, got: %v", got)
	}
}

func TestUpdatePatchesMatchingRows(t *testing.T) {
	c := newTestClient(t)

	mustInsert(t, c, TableRoutines, []testRow{
		{ID: "r1", Name: "Push Day"},
		{ID: "r2", Name: "Pull Day"},
	})

	err := c.Update(context.Background(), TableRoutines, map[string]any{
		"name": "Leg Day",
	}, Eq("id", "r2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []testRow

	err = c.Select(
		context.Background(),
		TableRoutines,
		Query{OrderBy: "id"},
		&got,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got[0].Name != "Push Day" || got[1].Name != "Leg Day" {
		t.Fatalf("expected only r2 to change, got: %v", got)
	}
}

func TestUpsertReplacesByID(t *testing.T) {
	c := newTestClient(t)

	mustInsert(t, c, TableExercises, testRow{ID: "e1", Name: "Squat"})

	err := c.Upsert(context.Background(), TableExercises, []testRow{
		{ID: "e1", Name: "Front Squat"},
		{ID: "e2", Name: "Lunge"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []testRow

	err = c.Select(
		context.Background(),
		TableExercises,
		Query{OrderBy: "id"},
		&got,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got: %d", len(got))
	}

	if got[0].Name != "Front Squat" {
		t.Fatalf("expected e1 to be replaced, got: %v", got[0])
	}
}

func TestDeleteCascades(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	mustInsert(t, c, TableRoutines, testRow{ID: "r1", Name: "Push Day"})
	mustInsert(t, c, TableExercises, []testRow{
		{ID: "e1", RoutineID: "r1"},
		{ID: "e2", RoutineID: "r1"},
	})
	mustInsert(t, c, TableWorkoutLogs, []map[string]any{
		{"id": "l1", "routine_id": "r1", "exercise_id": "e1"},
		{"id": "l2", "routine_id": "r1", "exercise_id": "e2"},
	})

	err := c.Delete(ctx, TableRoutines, Eq("id", "r1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, table := range []string{
		TableRoutines,
		TableExercises,
		TableWorkoutLogs,
	} {
		var got []map[string]any

		err = c.Select(ctx, table, Query{}, &got)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(got) != 0 {
			t.Fatalf("expected %s to be empty, got: %v", table, got)
		}
	}
}

func TestDeleteExerciseCascadesLogsOnly(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	mustInsert(t, c, TableRoutines, testRow{ID: "r1"})
	mustInsert(t, c, TableExercises, []testRow{
		{ID: "e1", RoutineID: "r1"},
		{ID: "e2", RoutineID: "r1"},
	})
	mustInsert(t, c, TableWorkoutLogs, []map[string]any{
		{"id": "l1", "routine_id": "r1", "exercise_id": "e1"},
		{"id": "l2", "routine_id": "r1", "exercise_id": "e2"},
	})

	err := c.Delete(ctx, TableExercises, Eq("id", "e1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var logs []map[string]any

	err = c.Select(ctx, TableWorkoutLogs, Query{}, &logs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(logs) != 1 {
		t.Fatalf("expected 1 surviving log, got: %d", len(logs))
	}

	if logs[0]["id"] != "l2" {
		t.Fatalf("expected l2 to survive, got: %v", logs[0])
	}

	var routines []map[string]any

	err = c.Select(ctx, TableRoutines, Query{}, &routines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(routines) != 1 {
		t.Fatal("expected the routine to survive an exercise delete")
	}
}
