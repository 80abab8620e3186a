package report

import (
	"sort"
	"time"

	"github.com/zabbix-tools/problem-report/internal/types"
)

// SeveritySlice is one pie slice of the problems-by-severity chart.
type SeveritySlice struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

// SeriesPoint is one x/y pair of the frequency charts.
type SeriesPoint struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// SeverityBreakdown counts problems per severity label, slices ordered by
// ascending severity code. Rows with an empty label (unmapped codes) are
// left out of the chart, the table still shows them.
func SeverityBreakdown(problems []types.ResolvedProblem) []SeveritySlice {
	counts := map[string]int{}
	for _, problem := range problems {
		counts[problem.Severity]++
	}
	slices := make([]SeveritySlice, 0, len(counts))
	for _, label := range types.SeverityLabels() {
		if counts[label] == 0 {
			continue
		}
		slices = append(slices, SeveritySlice{
			Label: label,
			Count: counts[label],
			Color: types.SeverityColor(label),
		})
	}
	return slices
}

// TimeOfDayFrequency counts problems per HH:MM of onset, keys ascending.
func TimeOfDayFrequency(problems []types.ResolvedProblem) []SeriesPoint {
	counts := map[string]int{}
	for _, problem := range problems {
		t, err := time.Parse(types.ClockLayout, problem.Clock)
		if err != nil {
			continue
		}
		counts[t.Format("15:04")]++
	}
	return sortedSeries(counts)
}

// ProblemsPerDay counts problems per calendar day of onset, days ascending.
func ProblemsPerDay(problems []types.ResolvedProblem) []SeriesPoint {
	counts := map[time.Time]int{}
	for _, problem := range problems {
		t, err := time.Parse(types.ClockLayout, problem.Clock)
		if err != nil {
			continue
		}
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		counts[day]++
	}
	days := make([]time.Time, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	series := make([]SeriesPoint, 0, len(days))
	for _, day := range days {
		series = append(series, SeriesPoint{
			Key:   day.Format("01/02/2006"),
			Count: counts[day],
		})
	}
	return series
}

func sortedSeries(counts map[string]int) []SeriesPoint {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	series := make([]SeriesPoint, 0, len(keys))
	for _, key := range keys {
		series = append(series, SeriesPoint{
			Key:   key,
			Count: counts[key],
		})
	}
	return series
}
