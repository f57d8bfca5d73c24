package history

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ayoisaiah/rep/gateway"
	"github.com/ayoisaiah/rep/internal/config"
	"github.com/ayoisaiah/rep/internal/models"
)

func testHistory(t *testing.T) (*History, gateway.Gateway) {
	t.Helper()

	gw, err := gateway.NewBolt(filepath.Join(t.TempDir(), "rep_test.db"))
	if err != nil {
		t.Fatalf("unexpected error opening store: %v", err)
	}

	t.Cleanup(func() {
		_ = gw.Close()
	})

	r := models.Routine{ID: "r1", Name: "Push Day"}
	ex := models.Exercise{ID: "e1", Name: "Bench Press", Sets: "3"}

	return New(gw, r, ex, nil), gw
}

func seedLogs(t *testing.T, gw gateway.Gateway) {
	t.Helper()

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	logs := []models.WorkoutLog{
		{
			ID:         "l1",
			RoutineID:  "r1",
			ExerciseID: "e1",
			Weight:     60,
			Reps:       10,
			SetNumber:  1,
			CreatedAt:  base,
		},
		{
			ID:         "l2",
			RoutineID:  "r1",
			ExerciseID: "e1",
			Weight:     80,
			Reps:       6,
			SetNumber:  2,
			CreatedAt:  base.Add(48 * time.Hour),
		},
		{
			ID:         "l3",
			RoutineID:  "r1",
			ExerciseID: "other",
			Weight:     200,
			Reps:       1,
			SetNumber:  1,
			CreatedAt:  base.Add(time.Hour),
		},
	}

	err := gw.Insert(
		context.Background(),
		gateway.TableWorkoutLogs,
		logs,
		nil,
	)
	if err != nil {
		t.Fatalf("unexpected error seeding logs: %v", err)
	}
}

func TestFetchLogsNewestFirst(t *testing.T) {
	h, gw := testHistory(t)
	seedLogs(t, gw)

	logs, err := h.fetchLogs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// only this exercise's logs, newest first
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs, got: %d", len(logs))
	}

	if logs[0].ID != "l2" || logs[1].ID != "l1" {
		t.Fatalf("expected newest-first order, got: %v", logs)
	}
}

func TestFetchLogsHonorsDateFilter(t *testing.T) {
	h, gw := testHistory(t)
	seedLogs(t, gw)

	h.Opts = &config.FilterConfig{
		StartTime: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	}

	logs, err := h.fetchLogs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(logs) != 1 || logs[0].ID != "l2" {
		t.Fatalf("expected only the recent log, got: %v", logs)
	}
}

func TestListEmpty(t *testing.T) {
	h, _ := testHistory(t)

	var buf bytes.Buffer

	err := h.List(context.Background(), &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(buf.String(), "No sets have been logged") {
		t.Errorf("expected the empty-state message, got: %q", buf.String())
	}
}

func TestListClockFormat(t *testing.T) {
	h, gw := testHistory(t)
	seedLogs(t, gw)

	var buf bytes.Buffer

	err := h.List(context.Background(), &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(buf.String(), "09:00 AM") {
		t.Errorf("expected 12-hour timestamps by default, got: %q", buf.String())
	}

	h.TwentyFourHour = true

	buf.Reset()

	err = h.List(context.Background(), &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()

	if strings.Contains(out, "AM") || strings.Contains(out, "PM") {
		t.Errorf("expected 24-hour timestamps, got: %q", out)
	}

	if !strings.Contains(out, "09:00") {
		t.Errorf("expected the set time, got: %q", out)
	}
}

func TestRecords(t *testing.T) {
	h, gw := testHistory(t)
	seedLogs(t, gw)

	var buf bytes.Buffer

	err := h.Records(context.Background(), &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()

	if !strings.Contains(out, "Bench Press") {
		t.Errorf("expected the exercise name, got: %q", out)
	}

	// heaviest set is 80kg, best volume is 60x10
	if !strings.Contains(out, "80.0") {
		t.Errorf("expected the heaviest weight, got: %q", out)
	}

	if !strings.Contains(out, "600.0") {
		t.Errorf("expected the best set volume, got: %q", out)
	}
}

func TestDeleteSelectedLog(t *testing.T) {
	h, gw := testHistory(t)
	seedLogs(t, gw)

	oldStdin, oldStdout := config.Stdin, config.Stdout

	t.Cleanup(func() {
		config.Stdin = oldStdin
		config.Stdout = oldStdout
	})

	// entry 1 is the newest log, l2
	config.Stdin = strings.NewReader("1\n")
	config.Stdout = &bytes.Buffer{}

	err := h.Delete(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logs, err := h.fetchLogs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(logs) != 1 || logs[0].ID != "l1" {
		t.Fatalf("expected only l1 to remain, got: %v", logs)
	}
}
