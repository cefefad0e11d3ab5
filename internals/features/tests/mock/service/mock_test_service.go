package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	lessonModel "englishku_backend/internals/features/curriculum/lessons/model"
	mockModel "englishku_backend/internals/features/tests/mock/model"
	testModel "englishku_backend/internals/features/tests/tests/model"
)

const (
	// MockTestLessonCount is how many lessons a mock exam draws from.
	MockTestLessonCount = 20

	// MockTestCooldown is the wait between two mock attempts of one user.
	MockTestCooldown = 24 * time.Hour
)

var (
	ErrNotEnoughLessons     = errors.New("grade does not have enough lessons for a mock test")
	ErrNotEnoughQuestions   = errors.New("could not assemble enough questions for a mock test")
	ErrDuplicateLessonOrder = errors.New("grade has lessons sharing an order number")
)

// MockQuestion is one assembled exam entry, carrying enough context for
// the client to render and grade it without extra round trips.
type MockQuestion struct {
	LessonID          uuid.UUID `json:"lesson_id"`
	LessonTitle       string    `json:"lesson_title"`
	LessonOrderNumber int       `json:"lesson_order_number"`
	TestID            uuid.UUID `json:"test_id"`
	TestTitle         string    `json:"test_title"`
	TestType          string    `json:"test_type"`
	QuestionID        uuid.UUID `json:"question_id"`
	QuestionCondition string    `json:"question_condition"`
	QuestionText      string    `json:"question_text"`
}

// BuildMockTest assembles a mock exam from pre-fetched content.
//
// The first MockTestLessonCount lessons by order number are used, one
// question each: a random test of the lesson, that test's first question.
// Lessons without tests or questions are skipped, which fails the whole
// assembly since every one of the 20 slots must be filled.
func BuildMockTest(
	lessons []lessonModel.LessonModel,
	testsByLesson map[uuid.UUID][]testModel.TestModel,
	detailsByTest map[uuid.UUID][]testModel.TestDetailModel,
	rng *rand.Rand,
) ([]MockQuestion, error) {
	sorted := make([]lessonModel.LessonModel, len(lessons))
	copy(sorted, lessons)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LessonOrderNumber < sorted[j].LessonOrderNumber
	})

	if len(sorted) < MockTestLessonCount {
		return nil, ErrNotEnoughLessons
	}
	sorted = sorted[:MockTestLessonCount]

	// order numbers are unique per grade; a collision inside the exam
	// window means corrupted content, not a thin grade
	seen := make(map[int]bool, MockTestLessonCount)
	for _, lesson := range sorted {
		if seen[lesson.LessonOrderNumber] {
			return nil, ErrDuplicateLessonOrder
		}
		seen[lesson.LessonOrderNumber] = true
	}

	questions := make([]MockQuestion, 0, MockTestLessonCount)
	for _, lesson := range sorted {
		tests := testsByLesson[lesson.LessonID]
		if len(tests) == 0 {
			continue
		}
		test := tests[rng.Intn(len(tests))]

		details := detailsByTest[test.TestID]
		if len(details) == 0 {
			continue
		}
		q := details[0]

		questions = append(questions, MockQuestion{
			LessonID:          lesson.LessonID,
			LessonTitle:       lesson.LessonTitle,
			LessonOrderNumber: lesson.LessonOrderNumber,
			TestID:            test.TestID,
			TestTitle:         test.TestTitle,
			TestType:          test.TestType.String(),
			QuestionID:        q.TestDetailID,
			QuestionCondition: q.TestDetailCondition,
			QuestionText:      q.TestDetailText,
		})
	}

	if len(questions) < MockTestLessonCount {
		return nil, ErrNotEnoughQuestions
	}
	return questions, nil
}

// Eligibility is the outcome of a cooldown/content check.
type Eligibility struct {
	Eligible        bool       `json:"eligible"`
	Reason          string     `json:"reason,omitempty"`
	LessonCount     int        `json:"lesson_count"`
	LastAttemptAt   *time.Time `json:"last_attempt_at,omitempty"`
	HoursRemaining  int        `json:"hours_remaining,omitempty"`
	NextAvailableAt *time.Time `json:"next_available_at,omitempty"`
}

// LatestCompletionForGrade picks the newest completion time among the
// user's attempts in one grade. Attempts in other grades never count
// against this grade's cooldown.
func LatestCompletionForGrade(attempts []mockModel.MockTestResultModel, gradeID uuid.UUID) *time.Time {
	var latest *time.Time
	for i := range attempts {
		if attempts[i].MockTestResultGradeID != gradeID {
			continue
		}
		t := attempts[i].MockTestResultCompletedAt
		if latest == nil || t.After(*latest) {
			latest = &t
		}
	}
	return latest
}

// CheckEligibility decides whether a user may start a mock test now.
// lastCompletedAt is nil when the user never finished one in this grade.
func CheckEligibility(lessonCount int, lastCompletedAt *time.Time, now time.Time) Eligibility {
	if lessonCount < MockTestLessonCount {
		return Eligibility{
			Eligible:      false,
			Reason:        fmt.Sprintf("Only %d lessons are available. A mock test needs %d.", lessonCount, MockTestLessonCount),
			LessonCount:   lessonCount,
			LastAttemptAt: lastCompletedAt,
		}
	}
	if lastCompletedAt == nil {
		return Eligibility{Eligible: true, LessonCount: lessonCount}
	}

	elapsed := now.Sub(*lastCompletedAt)
	if elapsed >= MockTestCooldown {
		return Eligibility{
			Eligible:      true,
			LessonCount:   lessonCount,
			LastAttemptAt: lastCompletedAt,
		}
	}

	remaining := MockTestCooldown - elapsed
	hours := int(remaining.Hours())
	if remaining > time.Duration(hours)*time.Hour {
		hours++
	}
	next := lastCompletedAt.Add(MockTestCooldown)
	return Eligibility{
		Eligible:        false,
		Reason:          "You can take one mock test every 24 hours.",
		LessonCount:     lessonCount,
		LastAttemptAt:   lastCompletedAt,
		HoursRemaining:  hours,
		NextAvailableAt: &next,
	}
}
