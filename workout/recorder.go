package workout

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/rep/gateway"
	"github.com/ayoisaiah/rep/internal/models"
)

// Recorder persists one completed set.
type Recorder interface {
	RecordSet(
		ctx context.Context,
		log models.WorkoutLog,
	) (models.WorkoutLog, error)
}

type gatewayRecorder struct {
	gw gateway.Gateway
}

// NewRecorder returns a Recorder writing to the workout_logs table.
func NewRecorder(gw gateway.Gateway) Recorder {
	return &gatewayRecorder{gw: gw}
}

func (r *gatewayRecorder) RecordSet(
	ctx context.Context,
	log models.WorkoutLog,
) (models.WorkoutLog, error) {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}

	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}

	var inserted []models.WorkoutLog

	err := r.gw.Insert(ctx, gateway.TableWorkoutLogs, log, &inserted)
	if err != nil {
		return models.WorkoutLog{}, err
	}

	if len(inserted) > 0 {
		return inserted[0], nil
	}

	return log, nil
}
