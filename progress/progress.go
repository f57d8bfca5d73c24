// Package progress aggregates workout logs into per-day training
// volume and renders exercise progress reports.
package progress

import (
	"sort"

	"github.com/ayoisaiah/rep/internal/models"
	"github.com/ayoisaiah/rep/internal/timeutil"
)

// VolumePoint is the total training volume logged on a single day.
type VolumePoint struct {
	Date   string
	Volume float64
}

// GroupVolumeByDate sums the volume of each set per local calendar
// day and returns the days in chronological order.
func GroupVolumeByDate(logs []models.WorkoutLog) []VolumePoint {
	totals := make(map[string]float64)

	for i := range logs {
		l := &logs[i]

		totals[timeutil.DayKey(l.CreatedAt)] += l.Volume()
	}

	points := make([]VolumePoint, 0, len(totals))
	for date, volume := range totals {
		points = append(points, VolumePoint{Date: date, Volume: volume})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})

	return points
}

// LatestPercentChange compares the two most recent days of volume.
// It reports zero when fewer than two days exist or the earlier day
// has no volume.
func LatestPercentChange(points []VolumePoint) float64 {
	if len(points) < 2 {
		return 0
	}

	latest := points[len(points)-1].Volume
	previous := points[len(points)-2].Volume

	if previous == 0 {
		return 0
	}

	return (latest - previous) / previous * 100
}

// MaxVolume is the highest single-day volume, zero when no days
// exist.
func MaxVolume(points []VolumePoint) float64 {
	var maxVol float64

	for _, p := range points {
		if p.Volume > maxVol {
			maxVol = p.Volume
		}
	}

	return maxVol
}
