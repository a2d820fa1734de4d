// ABOUTME: Window aggregation of consumption events into a stats snapshot.
// ABOUTME: Trailing 7/30-day windows, active-day averages, dense daily series.
package stats

import (
	"math"
	"time"

	"github.com/jdufour/taper/internal/models"
)

// RecentDays is the length of the dense daily series used for charting.
const RecentDays = 7

const dateLayout = "2006-01-02"

// DayStat is one entry of the dense daily series.
type DayStat struct {
	Date   string
	Count  map[models.Category]float64
	Weight map[models.Category]float64
	Cost   map[models.Category]float64
}

// Snapshot is a full statistics view over one user's event history.
// All category maps are fully populated: every category is present,
// with zero values where nothing was consumed.
type Snapshot struct {
	WeekCount  map[models.Category]float64
	MonthCount map[models.Category]float64

	WeekWeight  map[models.Category]float64
	MonthWeight map[models.Category]float64

	WeekCost  map[models.Category]float64
	MonthCost map[models.Category]float64

	// Daily averages over the month window, normalized by ActiveDays.
	DailyAvgCount  map[models.Category]float64
	DailyAvgWeight map[models.Category]float64
	DailyAvgCost   map[models.Category]float64

	// ActiveDays is the number of distinct calendar dates with at least
	// one event in the month window, floored at 1.
	ActiveDays int

	// TotalCost is the lifetime cost across all events.
	TotalCost float64

	// Recent holds RecentDays entries, oldest to newest, ending today.
	Recent []DayStat
}

// Compute aggregates the full event set into a Snapshot.
//
// Window membership is boundary-inclusive: an event timestamped exactly
// seven days before now belongs to the week window. Calendar-day
// bucketing uses the local date of each timestamp. The function is pure
// and defined for the empty event set.
func Compute(events []*models.ConsumptionEvent, prices models.PriceDefaults, now time.Time) *Snapshot {
	snap := &Snapshot{
		WeekCount:      zeroSums(),
		MonthCount:     zeroSums(),
		WeekWeight:     zeroSums(),
		MonthWeight:    zeroSums(),
		WeekCost:       zeroSums(),
		MonthCost:      zeroSums(),
		DailyAvgCount:  zeroSums(),
		DailyAvgWeight: zeroSums(),
		DailyAvgCost:   zeroSums(),
	}

	weekCutoff := now.AddDate(0, 0, -7)
	monthCutoff := now.AddDate(0, 0, -30)

	// Dense daily series skeleton, oldest first, anchored at today.
	snap.Recent = make([]DayStat, RecentDays)
	dayIndex := make(map[string]int, RecentDays)
	for i := 0; i < RecentDays; i++ {
		date := now.AddDate(0, 0, i-(RecentDays-1)).Format(dateLayout)
		snap.Recent[i] = DayStat{
			Date:   date,
			Count:  zeroSums(),
			Weight: zeroSums(),
			Cost:   zeroSums(),
		}
		dayIndex[date] = i
	}

	activeDates := make(map[string]struct{})

	for _, e := range events {
		b := Classify(e, prices)
		snap.TotalCost += b.Cost

		inMonth := !e.ConsumedAt.Before(monthCutoff) && !e.ConsumedAt.After(now)
		if inMonth {
			snap.MonthCount[e.Category] += b.Count
			snap.MonthWeight[e.Category] += b.Weight
			snap.MonthCost[e.Category] += b.Cost
			activeDates[e.ConsumedAt.Format(dateLayout)] = struct{}{}
		}
		if inMonth && !e.ConsumedAt.Before(weekCutoff) {
			snap.WeekCount[e.Category] += b.Count
			snap.WeekWeight[e.Category] += b.Weight
			snap.WeekCost[e.Category] += b.Cost
		}

		if i, ok := dayIndex[e.ConsumedAt.Format(dateLayout)]; ok {
			day := snap.Recent[i]
			day.Count[e.Category] += b.Count
			day.Weight[e.Category] += b.Weight
			day.Cost[e.Category] += b.Cost
		}
	}

	snap.ActiveDays = len(activeDates)
	if snap.ActiveDays < 1 {
		snap.ActiveDays = 1
	}

	div := float64(snap.ActiveDays)
	for _, c := range models.AllCategories {
		snap.DailyAvgCount[c] = round2(snap.MonthCount[c] / div)
		snap.DailyAvgWeight[c] = round2(snap.MonthWeight[c] / div)
		snap.DailyAvgCost[c] = round2(snap.MonthCost[c] / div)
	}

	return snap
}

// zeroSums returns a category map populated with zeros for all categories.
func zeroSums() map[models.Category]float64 {
	m := make(map[models.Category]float64, len(models.AllCategories))
	for _, c := range models.AllCategories {
		m[c] = 0
	}
	return m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
