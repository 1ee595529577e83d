package tui

import (
	"slices"

	"github.com/akyairhashvil/tankview/internal/models"
	"github.com/akyairhashvil/tankview/internal/sim"
	"github.com/akyairhashvil/tankview/internal/util"
)

const kpaPerPSI = 6.894757

// KPaToPSI converts a simulator pressure for display, rounded to 0.01.
func KPaToPSI(kpa float64) float64 {
	return util.RoundTo(kpa/kpaPerPSI, 2)
}

// TimeLabel is the X label of a sample.
const TimeLabel = "15:04:05"

// History keeps the last limit pressure readings of every valve.
type History struct {
	limit  int
	series [sim.ValveCount][]models.SeriesPoint
}

func NewHistory(limit int) *History {
	if limit < 1 {
		limit = 1
	}
	return &History{limit: limit}
}

// Push appends one snapshot, dropping the oldest points past the limit.
func (h *History) Push(snap sim.Snapshot) {
	at := snap.At.Format(TimeLabel)
	for i, kpa := range snap.Pressures {
		s := append(h.series[i], models.Point(at, models.DefaultDataKey, models.Number(KPaToPSI(kpa))))
		if over := len(s) - h.limit; over > 0 {
			s = slices.Delete(s, 0, over)
		}
		h.series[i] = s
	}
}

// Series returns a copy of valve i's window, oldest first.
func (h *History) Series(i int) []models.SeriesPoint {
	if i < 0 || i >= len(h.series) {
		return nil
	}
	return slices.Clone(h.series[i])
}

func (h *History) Len() int { return len(h.series[0]) }
