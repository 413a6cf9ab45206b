package progress

import (
	"math"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/julianstephens/studylit/internal/models"
)

var now = time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC) // a Wednesday

func subject(id string, sessions ...models.Session) models.StudySubject {
	s := models.StudySubject{ID: id, Title: "Subject " + id, Status: models.SubjectPaused, History: sessions}
	s.TotalTime = s.HistorySeconds()
	return s
}

func session(at time.Time, seconds int) models.Session {
	return models.Session{Date: at, Seconds: seconds}
}

func TestTodaySeconds(t *testing.T) {
	subjects := []models.StudySubject{
		subject("a", session(now.Add(-time.Hour), 1800), session(now.AddDate(0, 0, -1), 600)),
		subject("b", session(now.Add(-14*time.Hour), 60)), // 01:00 today
		subject("c", session(now.Add(-16*time.Hour), 60)), // 23:00 yesterday
	}

	if got := TodaySeconds(subjects, now); got != 1860 {
		t.Errorf("TodaySeconds() = %d, want 1860", got)
	}
}

func TestTodaySecondsUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	// 20:00 UTC on Apr 30 is 06:00 May 1 at UTC+10.
	subjects := []models.StudySubject{
		subject("a", session(time.Date(2024, 4, 30, 20, 0, 0, 0, time.UTC), 900)),
	}

	if got := TodaySeconds(subjects, now.In(loc)); got != 900 {
		t.Errorf("TodaySeconds() at UTC+10 = %d, want 900", got)
	}
	if got := TodaySeconds(subjects, now); got != 0 {
		t.Errorf("TodaySeconds() at UTC = %d, want 0", got)
	}
}

func TestWeekly(t *testing.T) {
	subjects := []models.StudySubject{
		subject("a",
			session(now, 5400),                   // 1.5h today
			session(now.AddDate(0, 0, -6), 1000), // 0.28h six days ago
			session(now.AddDate(0, 0, -7), 9999), // outside the window
		),
	}

	week := Weekly(subjects, now)
	if len(week) != 7 {
		t.Fatalf("Weekly() len = %d, want 7", len(week))
	}

	wantLabels := []string{"Th", "Fr", "Sa", "Su", "Mo", "Tu", "We"}
	for i, d := range week {
		if d.Label != wantLabels[i] {
			t.Errorf("week[%d].Label = %q, want %q", i, d.Label, wantLabels[i])
		}
	}
	if week[6].Hours != 1.5 {
		t.Errorf("today hours = %v, want 1.5", week[6].Hours)
	}
	if week[0].Hours != 0.3 {
		t.Errorf("oldest hours = %v, want 0.3", week[0].Hours)
	}
	for i := 1; i < 6; i++ {
		if week[i].Hours != 0 {
			t.Errorf("week[%d].Hours = %v, want 0", i, week[i].Hours)
		}
	}
}

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		today, goal int
		want        float64
	}{
		{0, 14400, 0},
		{3600, 14400, 0.25},
		{14400, 14400, 1},
		{20000, 14400, 1},
		{100, 0, 0},
		{100, -5, 0},
	}
	for _, tt := range tests {
		if got := GoalProgress(tt.today, tt.goal); got != tt.want {
			t.Errorf("GoalProgress(%d, %d) = %v, want %v", tt.today, tt.goal, got, tt.want)
		}
	}
}

func TestBreakdown(t *testing.T) {
	subjects := []models.StudySubject{
		subject("empty"),
		subject("small", session(now, 1000)),
		subject("big", session(now, 3000)),
	}

	slices := Breakdown(subjects)
	if len(slices) != 2 {
		t.Fatalf("Breakdown() len = %d, want 2", len(slices))
	}
	if slices[0].ID != "big" || slices[1].ID != "small" {
		t.Errorf("order = %s, %s; want big, small", slices[0].ID, slices[1].ID)
	}
	if math.Abs(slices[0].Share-0.75) > 1e-9 || math.Abs(slices[1].Share-0.25) > 1e-9 {
		t.Errorf("shares = %v, %v", slices[0].Share, slices[1].Share)
	}

	if got := Breakdown([]models.StudySubject{subject("empty")}); len(got) != 0 {
		t.Errorf("Breakdown() with no time = %v, want empty", got)
	}
}

func TestSummarize(t *testing.T) {
	subjects := []models.StudySubject{subject("a", session(now, 7200))}

	sum := Summarize(subjects, now, 4*3600)
	if sum.TodaySeconds != 7200 || sum.Goal != 0.5 || sum.GoalSeconds != 14400 {
		t.Errorf("Summarize() = %+v", sum)
	}
	if len(sum.Week) != 7 || len(sum.Breakdown) != 1 {
		t.Errorf("Summarize() week=%d breakdown=%d", len(sum.Week), len(sum.Breakdown))
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		fraction float64
		width    int
		filled   int
	}{
		{0, 10, 0},
		{0.5, 10, 5},
		{1, 10, 10},
		{1.7, 10, 10},
		{-1, 10, 0},
		{0.5, 0, 0},
	}

	for _, tt := range tests {
		filled, empty := Bar(tt.fraction, tt.width)
		if got := utf8.RuneCountInString(filled); got != tt.filled {
			t.Errorf("Bar(%v, %d) filled = %d, want %d", tt.fraction, tt.width, got, tt.filled)
		}
		if got := utf8.RuneCountInString(filled + empty); got != tt.width {
			t.Errorf("Bar(%v, %d) width = %d", tt.fraction, tt.width, got)
		}
	}
}
