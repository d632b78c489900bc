package tracker

import (
	"fmt"
	"sort"
	"time"

	"github.com/balkashynov/logbook/internal/dates"
	"github.com/balkashynov/logbook/internal/models"
)

// otherKey buckets items with neither a preset nor a custom name
const otherKey = "other"

// ItemsForDay returns the items logged on date's calendar day, most recent first
func (s *Store) ItemsForDay(date time.Time) []models.TrackedItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.TrackedItem
	for _, item := range s.items {
		if dates.InDay(item.Timestamp, date, s.loc) {
			out = append(out, item)
		}
	}
	return sortedByTimestamp(out)
}

// DailyTotal sums the amounts logged on date's calendar day
func (s *Store) DailyTotal(date time.Time) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.dailyTotal(date)
}

func (s *Store) dailyTotal(date time.Time) float64 {
	var total float64
	for _, item := range s.items {
		if dates.InDay(item.Timestamp, date, s.loc) {
			total += item.Amount
		}
	}
	return total
}

// ReportWindow returns the inclusive [start, end] covered by a report of
// period ending on endDate's calendar day
func ReportWindow(period models.Period, endDate time.Time, loc *time.Location) (time.Time, time.Time, error) {
	end := dates.EndOfDay(endDate, loc)
	switch period {
	case models.PeriodDaily:
		return dates.StartOfDay(endDate, loc), end, nil
	case models.PeriodWeekly:
		return dates.DaysBefore(endDate, 7, loc), end, nil
	case models.PeriodMonthly:
		return dates.DaysBefore(endDate, 30, loc), end, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, period)
	}
}

// GenerateReport aggregates the items of the window ending on endDate.
// The peak day is the earliest day holding the highest total; with nothing
// logged it is the window start with amount 0.
func (s *Store) GenerateReport(period models.Period, endDate time.Time) (models.Report, error) {
	start, end, err := ReportWindow(period, endDate, s.loc)
	if err != nil {
		return models.Report{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	report := models.Report{
		Period:        period,
		StartDate:     start,
		EndDate:       end,
		PeakDate:      start,
		ItemsByPreset: map[string]float64{},
	}

	byDay := map[string]float64{}
	dayStart := map[string]time.Time{}
	for _, item := range s.items {
		if !dates.InRange(item.Timestamp, start, end) {
			continue
		}
		report.TotalAmount += item.Amount
		report.ItemsByPreset[presetKey(item)] += item.Amount

		key := dates.DayKey(item.Timestamp, s.loc)
		byDay[key] += item.Amount
		if _, ok := dayStart[key]; !ok {
			dayStart[key] = dates.StartOfDay(item.Timestamp, s.loc)
		}
	}

	report.AveragePerDay = report.TotalAmount / float64(dates.SpanDays(start, end))

	days := make([]string, 0, len(byDay))
	for key := range byDay {
		days = append(days, key)
	}
	sort.Strings(days)
	for _, key := range days {
		if byDay[key] > report.PeakAmount {
			report.PeakAmount = byDay[key]
			report.PeakDate = dayStart[key]
		}
	}

	return report, nil
}

func presetKey(item models.TrackedItem) string {
	switch {
	case item.PresetID != "":
		return item.PresetID
	case item.CustomName != "":
		return item.CustomName
	default:
		return otherKey
	}
}
