package dto

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	resultModel "englishku_backend/internals/features/tests/results/model"
)

/* =========================================================
   DASHBOARD
========================================================= */

type DashboardCounts struct {
	Users        int64 `json:"users"`
	Grades       int64 `json:"grades"`
	Lessons      int64 `json:"lessons"`
	Tests        int64 `json:"tests"`
	Vocabularies int64 `json:"vocabularies"`
	TopicTests   int64 `json:"topic_tests"`
}

type DashboardActivity struct {
	TestResults      int64   `json:"test_results"`
	MockTestResults  int64   `json:"mock_test_results"`
	TopicTestResults int64   `json:"topic_test_results"`
	AverageScore     float64 `json:"average_score"`
	ResultsLast7Days int64   `json:"results_last_7_days"`
}

// TopStudent is one leaderboard row, ranked by average score.
type TopStudent struct {
	UserID        uuid.UUID `json:"user_id"`
	UserFirstname string    `json:"user_firstname"`
	UserLastname  string    `json:"user_lastname"`
	UserEmail     string    `json:"user_email"`
	AverageScore  float64   `json:"average_score"`
	TotalTests    int64     `json:"total_tests"`
}

// GradeActivity is the attempt volume and average score of one grade.
type GradeActivity struct {
	GradeID      uuid.UUID `json:"grade_id"`
	GradeName    string    `json:"grade_name"`
	TotalTests   int64     `json:"total_tests"`
	AverageScore float64   `json:"average_score"`
}

type DashboardResponse struct {
	Counts        DashboardCounts               `json:"counts"`
	Activity      DashboardActivity             `json:"activity"`
	TopStudents   []TopStudent                  `json:"top_students"`
	GradeStats    []GradeActivity               `json:"grade_stats"`
	RecentResults []resultModel.TestResultModel `json:"recent_results"`
}

/* =========================================================
   RESULT LISTING FILTERS
========================================================= */

// ResultFilters narrows the admin result listing. Nil fields are not
// applied.
type ResultFilters struct {
	UserID    *uuid.UUID
	GradeID   *uuid.UUID
	LessonID  *uuid.UUID
	MinScore  *int
	MaxScore  *int
	StartDate *time.Time
	EndDate   *time.Time
}

// ParseResultFilters reads the listing filters from raw query values.
// Dates accept RFC3339 or YYYY-MM-DD; a date-only end runs through the
// end of that day.
func ParseResultFilters(query map[string]string) (ResultFilters, error) {
	var f ResultFilters

	parseID := func(key string) (*uuid.UUID, error) {
		raw := strings.TrimSpace(query[key])
		if raw == "" {
			return nil, nil
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("invalid " + key)
		}
		return &id, nil
	}
	parseScore := func(key string) (*int, error) {
		raw := strings.TrimSpace(query[key])
		if raw == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > 100 {
			return nil, errors.New("invalid " + key)
		}
		return &n, nil
	}
	parseDate := func(key string) (*time.Time, bool, error) {
		raw := strings.TrimSpace(query[key])
		if raw == "" {
			return nil, false, nil
		}
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			return &ts, false, nil
		}
		if ts, err := time.Parse("2006-01-02", raw); err == nil {
			return &ts, true, nil
		}
		return nil, false, errors.New("invalid " + key)
	}

	var err error
	if f.UserID, err = parseID("user_id"); err != nil {
		return f, err
	}
	if f.GradeID, err = parseID("grade_id"); err != nil {
		return f, err
	}
	if f.LessonID, err = parseID("lesson_id"); err != nil {
		return f, err
	}
	if f.MinScore, err = parseScore("min_score"); err != nil {
		return f, err
	}
	if f.MaxScore, err = parseScore("max_score"); err != nil {
		return f, err
	}
	if f.MinScore != nil && f.MaxScore != nil && *f.MinScore > *f.MaxScore {
		return f, errors.New("min_score is greater than max_score")
	}

	start, _, err := parseDate("start_date")
	if err != nil {
		return f, err
	}
	f.StartDate = start

	end, dateOnly, err := parseDate("end_date")
	if err != nil {
		return f, err
	}
	if end != nil && dateOnly {
		inclusive := end.AddDate(0, 0, 1).Add(-time.Nanosecond)
		end = &inclusive
	}
	f.EndDate = end

	if f.StartDate != nil && f.EndDate != nil && f.StartDate.After(*f.EndDate) {
		return f, errors.New("start_date is after end_date")
	}
	return f, nil
}
