package routine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/rep/gateway"
	"github.com/ayoisaiah/rep/internal/models"
)

func newTestGateway(t *testing.T) gateway.Gateway {
	t.Helper()

	gw, err := gateway.NewBolt(filepath.Join(t.TempDir(), "rep_test.db"))
	if err != nil {
		t.Fatalf("unexpected error opening store: %v", err)
	}

	t.Cleanup(func() {
		_ = gw.Close()
	})

	return gw
}

func sampleRoutine() models.Routine {
	return models.Routine{
		Name: "Pull Day",
		Exercises: []models.Exercise{
			{Name: "Deadlift", Sets: "3", Reps: []string{"5", "5", "5"}},
			{Name: "Barbell Row", Sets: "3", Reps: []string{"8"}},
		},
	}
}

func mustAdd(t *testing.T, s *Store, r models.Routine) models.Routine {
	t.Helper()

	err := s.Add(context.Background(), r)
	if err != nil {
		t.Fatalf("unexpected error adding routine: %v", err)
	}

	added, err := s.Find(r.Name)
	if err != nil {
		t.Fatalf("unexpected error finding added routine: %v", err)
	}

	return added
}

func TestAddAndList(t *testing.T) {
	s := NewStore(newTestGateway(t))

	added := mustAdd(t, s, sampleRoutine())

	if added.ID == "" {
		t.Fatal("expected an id to be assigned")
	}

	if added.Icon != models.IconDumbbell {
		t.Fatalf("expected the default icon, got: %q", added.Icon)
	}

	routines := s.List()
	if len(routines) != 1 {
		t.Fatalf("expected 1 routine, got: %d", len(routines))
	}

	exercises := routines[0].Exercises
	if len(exercises) != 2 {
		t.Fatalf("expected 2 exercises, got: %d", len(exercises))
	}

	if exercises[0].Name != "Deadlift" || exercises[1].Name != "Barbell Row" {
		t.Fatalf("expected exercises in defined order, got: %v", exercises)
	}

	want := []string{"5", "5", "5"}
	if diff := cmp.Diff(want, exercises[0].Reps); diff != "" {
		t.Errorf("reps mismatch (-want +got):\n%s", diff)
	}
}

func TestAddBlankName(t *testing.T) {
	s := NewStore(newTestGateway(t))

	err := s.Add(context.Background(), models.Routine{Name: "  "})
	if !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got: %v", err)
	}

	if len(s.List()) != 0 {
		t.Fatal("expected the cache to remain empty")
	}
}

func TestFind(t *testing.T) {
	s := NewStore(newTestGateway(t))

	added := mustAdd(t, s, sampleRoutine())

	byName, err := s.Find("pull day")
	if err != nil {
		t.Fatalf("expected a case-insensitive name match, got: %v", err)
	}

	if byName.ID != added.ID {
		t.Fatalf("expected id %q, got: %q", added.ID, byName.ID)
	}

	if _, err = s.Find(added.ID); err != nil {
		t.Fatalf("expected an id match, got: %v", err)
	}

	_, err = s.Find("leg day")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestUpdateReplacesExercises(t *testing.T) {
	s := NewStore(newTestGateway(t))

	added := mustAdd(t, s, sampleRoutine())

	// drop the row, reorder the deadlift behind a new exercise
	updated := added
	updated.Exercises = []models.Exercise{
		{Name: "Pull Up", Sets: "3", Reps: []string{"10"}},
		added.Exercises[0],
	}

	err := s.Update(context.Background(), updated)
	if err != nil {
		t.Fatalf("unexpected error updating routine: %v", err)
	}

	got, err := s.Find(added.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got.Exercises) != 2 {
		t.Fatalf("expected 2 exercises, got: %d", len(got.Exercises))
	}

	if got.Exercises[0].Name != "Pull Up" ||
		got.Exercises[1].Name != "Deadlift" {
		t.Fatalf("expected the new exercise order, got: %v", got.Exercises)
	}

	// the surviving exercise keeps its identity
	if got.Exercises[1].ID != added.Exercises[0].ID {
		t.Fatal("expected the kept exercise to retain its id")
	}
}

func TestDeleteCascades(t *testing.T) {
	gw := newTestGateway(t)
	s := NewStore(gw)

	added := mustAdd(t, s, sampleRoutine())

	log := models.WorkoutLog{
		ID:         "log-1",
		RoutineID:  added.ID,
		ExerciseID: added.Exercises[0].ID,
		Weight:     100,
		Reps:       5,
		SetNumber:  1,
	}

	err := gw.Insert(context.Background(), gateway.TableWorkoutLogs, log, nil)
	if err != nil {
		t.Fatalf("unexpected error inserting log: %v", err)
	}

	err = s.Delete(context.Background(), added.ID)
	if err != nil {
		t.Fatalf("unexpected error deleting routine: %v", err)
	}

	if len(s.List()) != 0 {
		t.Fatal("expected no routines after delete")
	}

	var logs []models.WorkoutLog

	err = gw.Select(
		context.Background(),
		gateway.TableWorkoutLogs,
		gateway.Query{},
		&logs,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(logs) != 0 {
		t.Fatalf("expected logs to be cascade-deleted, got: %d", len(logs))
	}
}

type failingGateway struct {
	gateway.Gateway
	failTable string
	failAll   bool
}

var errGatewayDown = errors.New("row store unavailable")

func (f *failingGateway) Insert(
	ctx context.Context,
	table string,
	rows, dest any,
) error {
	if f.failAll || table == f.failTable {
		return errGatewayDown
	}

	return f.Gateway.Insert(ctx, table, rows, dest)
}

func (f *failingGateway) Select(
	ctx context.Context,
	table string,
	q gateway.Query,
	dest any,
) error {
	if f.failAll {
		return errGatewayDown
	}

	return f.Gateway.Select(ctx, table, q, dest)
}

func TestAddFailureLeavesCache(t *testing.T) {
	gw := &failingGateway{
		Gateway:   newTestGateway(t),
		failTable: gateway.TableExercises,
	}

	s := NewStore(gw)

	err := s.Add(context.Background(), sampleRoutine())
	if !errors.Is(err, errGatewayDown) {
		t.Fatalf("expected the gateway error, got: %v", err)
	}

	if len(s.List()) != 0 {
		t.Fatal("expected the cache to remain empty after a failed add")
	}
}

func TestLoadFailureKeepsPreviousCache(t *testing.T) {
	gw := &failingGateway{Gateway: newTestGateway(t)}
	s := NewStore(gw)

	mustAdd(t, s, sampleRoutine())

	gw.failAll = true

	err := s.Load(context.Background())
	if !errors.Is(err, errGatewayDown) {
		t.Fatalf("expected the gateway error, got: %v", err)
	}

	if len(s.List()) != 1 {
		t.Fatal("expected the previous cache to survive a failed load")
	}
}
