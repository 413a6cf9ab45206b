// Package progress aggregates study history into the daily goal, the weekly
// trend and the per-subject breakdown.
package progress

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
)

// Day is one point of the weekly trend.
type Day struct {
	Date  time.Time
	Label string  // two-letter weekday
	Hours float64 // rounded to a tenth
}

// Slice is one subject's share of all recorded study time.
type Slice struct {
	ID      string
	Title   string
	Seconds int
	Share   float64
}

// Summary is everything the progress view shows.
type Summary struct {
	TodaySeconds int
	GoalSeconds  int
	Goal         float64
	Week         []Day
	Breakdown    []Slice
}

// Summarize computes the full progress summary at now.
func Summarize(subjects []models.StudySubject, now time.Time, goalSeconds int) Summary {
	today := TodaySeconds(subjects, now)
	return Summary{
		TodaySeconds: today,
		GoalSeconds:  goalSeconds,
		Goal:         GoalProgress(today, goalSeconds),
		Week:         Weekly(subjects, now),
		Breakdown:    Breakdown(subjects),
	}
}

// TodaySeconds sums the sessions recorded on now's calendar day, in now's
// location.
func TodaySeconds(subjects []models.StudySubject, now time.Time) int {
	return secondsOn(subjects, now)
}

func secondsOn(subjects []models.StudySubject, day time.Time) int {
	y, m, d := day.Date()
	loc := day.Location()
	total := 0
	for _, s := range subjects {
		for _, h := range s.History {
			hy, hm, hd := h.Date.In(loc).Date()
			if hy == y && hm == m && hd == d {
				total += h.Seconds
			}
		}
	}
	return total
}

// Weekly returns the last TrendDays days ending today, oldest first.
func Weekly(subjects []models.StudySubject, now time.Time) []Day {
	days := make([]Day, 0, constants.TrendDays)
	for i := constants.TrendDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		secs := secondsOn(subjects, day)
		days = append(days, Day{
			Date:  day,
			Label: day.Weekday().String()[:2],
			Hours: math.Round(float64(secs)/360) / 10,
		})
	}
	return days
}

// GoalProgress is today's fraction of the goal, capped at 1.
func GoalProgress(todaySeconds, goalSeconds int) float64 {
	if goalSeconds <= 0 {
		return 0
	}
	return math.Min(float64(todaySeconds)/float64(goalSeconds), 1)
}

// Breakdown lists subjects with recorded time, largest first. Shares sum
// to 1 unless nothing has been recorded.
func Breakdown(subjects []models.StudySubject) []Slice {
	total := 0
	var slices []Slice
	for _, s := range subjects {
		if s.TotalTime <= 0 {
			continue
		}
		total += s.TotalTime
		slices = append(slices, Slice{ID: s.ID, Title: s.Title, Seconds: s.TotalTime})
	}
	for i := range slices {
		slices[i].Share = float64(slices[i].Seconds) / float64(total)
	}
	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Seconds > slices[j].Seconds
	})
	return slices
}

// Bar draws fraction (clamped to [0, 1]) as a width-cell text bar.
func Bar(fraction float64, width int) (filled, empty string) {
	if width <= 0 {
		return "", ""
	}
	fraction = math.Max(0, math.Min(fraction, 1))
	n := int(math.Round(fraction * float64(width)))
	return strings.Repeat("█", n), strings.Repeat("░", width-n)
}
