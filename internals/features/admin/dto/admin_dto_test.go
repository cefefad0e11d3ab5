package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestParseResultFilters(t *testing.T) {
	userID := uuid.New()
	gradeID := uuid.New()

	t.Run("all filters", func(t *testing.T) {
		f, err := ParseResultFilters(map[string]string{
			"user_id":    userID.String(),
			"grade_id":   gradeID.String(),
			"min_score":  "60",
			"max_score":  "90",
			"start_date": "2026-03-01",
			"end_date":   "2026-03-31",
		})
		if err != nil {
			t.Fatalf("ParseResultFilters: %v", err)
		}
		if f.UserID == nil || *f.UserID != userID {
			t.Errorf("UserID = %v, want %s", f.UserID, userID)
		}
		if f.GradeID == nil || *f.GradeID != gradeID {
			t.Errorf("GradeID = %v, want %s", f.GradeID, gradeID)
		}
		if f.LessonID != nil {
			t.Errorf("LessonID = %v, want nil", f.LessonID)
		}
		if f.MinScore == nil || *f.MinScore != 60 {
			t.Errorf("MinScore = %v, want 60", f.MinScore)
		}
		if f.MaxScore == nil || *f.MaxScore != 90 {
			t.Errorf("MaxScore = %v, want 90", f.MaxScore)
		}
		wantStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		if f.StartDate == nil || !f.StartDate.Equal(wantStart) {
			t.Errorf("StartDate = %v, want %v", f.StartDate, wantStart)
		}
		// a date-only end runs through the end of that day
		if f.EndDate == nil || !f.EndDate.After(time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)) {
			t.Errorf("EndDate = %v, want end of March 31", f.EndDate)
		}
		if f.EndDate != nil && !f.EndDate.Before(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("EndDate = %v, crossed into April", f.EndDate)
		}
	})

	t.Run("empty query", func(t *testing.T) {
		f, err := ParseResultFilters(map[string]string{})
		if err != nil {
			t.Fatalf("ParseResultFilters: %v", err)
		}
		if f.UserID != nil || f.GradeID != nil || f.LessonID != nil ||
			f.MinScore != nil || f.MaxScore != nil || f.StartDate != nil || f.EndDate != nil {
			t.Fatalf("empty query produced filters: %+v", f)
		}
	})

	t.Run("rfc3339 dates", func(t *testing.T) {
		f, err := ParseResultFilters(map[string]string{
			"end_date": "2026-03-15T10:30:00Z",
		})
		if err != nil {
			t.Fatalf("ParseResultFilters: %v", err)
		}
		want := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
		if f.EndDate == nil || !f.EndDate.Equal(want) {
			t.Errorf("EndDate = %v, want %v", f.EndDate, want)
		}
	})

	rejected := []struct {
		name  string
		query map[string]string
	}{
		{"bad user id", map[string]string{"user_id": "not-a-uuid"}},
		{"bad grade id", map[string]string{"grade_id": "123"}},
		{"score out of range", map[string]string{"min_score": "101"}},
		{"negative score", map[string]string{"max_score": "-1"}},
		{"score not a number", map[string]string{"min_score": "high"}},
		{"inverted scores", map[string]string{"min_score": "80", "max_score": "20"}},
		{"bad date", map[string]string{"start_date": "March 1st"}},
		{"inverted dates", map[string]string{"start_date": "2026-04-01", "end_date": "2026-03-01"}},
	}
	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseResultFilters(tc.query); err == nil {
				t.Fatal("invalid query accepted")
			}
		})
	}
}
