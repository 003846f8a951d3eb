package utils

import (
	"fmt"
	"sort"
	"time"

	"github.com/CSCE331-Fall2025-900-911/project3-gang-63-abra/models"
)

// DateLayout is the wire format for all date parameters.
const DateLayout = "2006-01-02"

// ParseDate validates a YYYY-MM-DD date parameter.
func ParseDate(value string) (string, error) {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return parsed.Format(DateLayout), nil
}

// ParseDateRange validates a start/end pair. Both must be present and the
// start must not follow the end.
func ParseDateRange(start, end string) (string, string, error) {
	if start == "" || end == "" {
		return "", "", fmt.Errorf("start_date and end_date are required")
	}
	startDate, err := ParseDate(start)
	if err != nil {
		return "", "", err
	}
	endDate, err := ParseDate(end)
	if err != nil {
		return "", "", err
	}
	if startDate > endDate {
		return "", "", fmt.Errorf("start_date must not be after end_date")
	}
	return startDate, endDate, nil
}

// ISOWeekLabel formats a date's ISO week as "2006-W01".
func ISOWeekLabel(date time.Time) string {
	year, week := date.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// RollupISOWeeks groups per-day sales totals into ISO weeks, oldest week
// first. Days that fail to parse are skipped.
func RollupISOWeeks(days []models.DailySales) []models.WeeklySales {
	totals := map[string]float64{}
	for _, day := range days {
		parsed, err := time.Parse(DateLayout, day.Date)
		if err != nil {
			continue
		}
		totals[ISOWeekLabel(parsed)] += day.TotalSales
	}

	weeks := make([]models.WeeklySales, 0, len(totals))
	for label, total := range totals {
		weeks = append(weeks, models.WeeklySales{Week: label, TotalSales: total})
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Week < weeks[j].Week })
	return weeks
}
