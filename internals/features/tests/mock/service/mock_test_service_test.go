package service

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"

	lessonModel "englishku_backend/internals/features/curriculum/lessons/model"
	mockModel "englishku_backend/internals/features/tests/mock/model"
	testModel "englishku_backend/internals/features/tests/tests/model"
)

func buildContent(lessonCount, testsPerLesson, detailsPerTest int) (
	[]lessonModel.LessonModel,
	map[uuid.UUID][]testModel.TestModel,
	map[uuid.UUID][]testModel.TestDetailModel,
) {
	lessons := make([]lessonModel.LessonModel, 0, lessonCount)
	testsByLesson := make(map[uuid.UUID][]testModel.TestModel)
	detailsByTest := make(map[uuid.UUID][]testModel.TestDetailModel)

	for i := 0; i < lessonCount; i++ {
		lesson := lessonModel.LessonModel{
			LessonID:          uuid.New(),
			LessonTitle:       "Lesson",
			LessonOrderNumber: i + 1,
		}
		lessons = append(lessons, lesson)

		for j := 0; j < testsPerLesson; j++ {
			test := testModel.TestModel{
				TestID:       uuid.New(),
				TestLessonID: lesson.LessonID,
				TestTitle:    "Test",
				TestType:     testModel.TestTypeSpeech,
			}
			testsByLesson[lesson.LessonID] = append(testsByLesson[lesson.LessonID], test)

			for k := 0; k < detailsPerTest; k++ {
				detailsByTest[test.TestID] = append(detailsByTest[test.TestID], testModel.TestDetailModel{
					TestDetailID:     uuid.New(),
					TestDetailTestID: test.TestID,
					TestDetailText:   "question",
				})
			}
		}
	}
	return lessons, testsByLesson, detailsByTest
}

func TestBuildMockTest(t *testing.T) {
	lessons, tests, details := buildContent(25, 3, 4)
	rng := rand.New(rand.NewSource(42))

	questions, err := BuildMockTest(lessons, tests, details, rng)
	if err != nil {
		t.Fatalf("BuildMockTest: %v", err)
	}
	if len(questions) != MockTestLessonCount {
		t.Fatalf("got %d questions, want %d", len(questions), MockTestLessonCount)
	}

	// one question per lesson, in order, drawn from the first 20 lessons
	for i, q := range questions {
		if q.LessonOrderNumber != i+1 {
			t.Errorf("question %d comes from lesson order %d, want %d", i, q.LessonOrderNumber, i+1)
		}
		// first question of the chosen test
		firstDetail := details[q.TestID][0]
		if q.QuestionID != firstDetail.TestDetailID {
			t.Errorf("question %d is not the first question of its test", i)
		}
	}
}

func TestBuildMockTestDeterministicWithSeed(t *testing.T) {
	lessons, tests, details := buildContent(20, 4, 2)

	a, err := BuildMockTest(lessons, tests, details, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	b, err := BuildMockTest(lessons, tests, details, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("second build: %v", err)
	}

	for i := range a {
		if a[i].TestID != b[i].TestID {
			t.Fatalf("question %d differs between identically seeded builds", i)
		}
	}
}

func TestBuildMockTestInsufficientContent(t *testing.T) {
	t.Run("too few lessons", func(t *testing.T) {
		lessons, tests, details := buildContent(19, 1, 1)
		if _, err := BuildMockTest(lessons, tests, details, rand.New(rand.NewSource(1))); !errors.Is(err, ErrNotEnoughLessons) {
			t.Fatalf("got %v, want ErrNotEnoughLessons", err)
		}
	})

	t.Run("lesson without tests", func(t *testing.T) {
		lessons, tests, details := buildContent(20, 1, 1)
		delete(tests, lessons[4].LessonID)
		if _, err := BuildMockTest(lessons, tests, details, rand.New(rand.NewSource(1))); !errors.Is(err, ErrNotEnoughQuestions) {
			t.Fatalf("got %v, want ErrNotEnoughQuestions", err)
		}
	})

	t.Run("test without questions", func(t *testing.T) {
		lessons, tests, details := buildContent(20, 1, 1)
		onlyTest := tests[lessons[9].LessonID][0]
		delete(details, onlyTest.TestID)
		if _, err := BuildMockTest(lessons, tests, details, rand.New(rand.NewSource(1))); !errors.Is(err, ErrNotEnoughQuestions) {
			t.Fatalf("got %v, want ErrNotEnoughQuestions", err)
		}
	})
}

func TestBuildMockTestDuplicateOrderNumbers(t *testing.T) {
	lessons, tests, details := buildContent(20, 1, 1)

	// two lessons inside the exam window share order number 5
	lessons[7].LessonOrderNumber = 5

	if _, err := BuildMockTest(lessons, tests, details, rand.New(rand.NewSource(1))); !errors.Is(err, ErrDuplicateLessonOrder) {
		t.Fatalf("got %v, want ErrDuplicateLessonOrder", err)
	}

	// a duplicate past the 20-lesson window is invisible to the exam
	lessons, tests, details = buildContent(25, 1, 1)
	lessons[22].LessonOrderNumber = lessons[21].LessonOrderNumber
	if _, err := BuildMockTest(lessons, tests, details, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("duplicate outside window rejected the build: %v", err)
	}
}

func TestLatestCompletionForGrade(t *testing.T) {
	gradeA := uuid.New()
	gradeB := uuid.New()
	base := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)

	attempts := []mockModel.MockTestResultModel{
		{MockTestResultGradeID: gradeA, MockTestResultCompletedAt: base},
		{MockTestResultGradeID: gradeA, MockTestResultCompletedAt: base.Add(2 * time.Hour)},
		{MockTestResultGradeID: gradeB, MockTestResultCompletedAt: base.Add(10 * time.Hour)},
	}

	got := LatestCompletionForGrade(attempts, gradeA)
	if got == nil || !got.Equal(base.Add(2*time.Hour)) {
		t.Fatalf("grade A latest = %v, want %v", got, base.Add(2*time.Hour))
	}

	// a fresh attempt in grade B never counts against grade A
	if got := LatestCompletionForGrade(attempts[2:], gradeA); got != nil {
		t.Fatalf("grade A latest = %v from grade B attempts, want nil", got)
	}

	if got := LatestCompletionForGrade(nil, gradeA); got != nil {
		t.Fatalf("latest over no attempts = %v, want nil", got)
	}
}

func TestCheckEligibility(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	hoursAgo := func(h float64) *time.Time {
		ts := now.Add(-time.Duration(h * float64(time.Hour)))
		return &ts
	}

	tests := []struct {
		name           string
		lessonCount    int
		last           *time.Time
		wantEligible   bool
		wantHoursLeft  int
		wantNextSet    bool
	}{
		{"not enough lessons", 19, nil, false, 0, false},
		{"never attempted", 20, nil, true, 0, false},
		{"attempted 25 hours ago", 20, hoursAgo(25), true, 0, false},
		{"attempted exactly 24 hours ago", 20, hoursAgo(24), true, 0, false},
		{"attempted 23 hours ago", 20, hoursAgo(23), false, 1, true},
		{"attempted 30 minutes ago", 20, hoursAgo(0.5), false, 24, true},
		{"attempted 12.5 hours ago", 20, hoursAgo(12.5), false, 12, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CheckEligibility(tc.lessonCount, tc.last, now)
			if got.Eligible != tc.wantEligible {
				t.Fatalf("Eligible = %v, want %v", got.Eligible, tc.wantEligible)
			}
			if got.LessonCount != tc.lessonCount {
				t.Errorf("LessonCount = %d, want %d", got.LessonCount, tc.lessonCount)
			}
			if tc.last != nil {
				if got.LastAttemptAt == nil || !got.LastAttemptAt.Equal(*tc.last) {
					t.Errorf("LastAttemptAt = %v, want %v", got.LastAttemptAt, tc.last)
				}
			} else if got.LastAttemptAt != nil {
				t.Errorf("LastAttemptAt = %v, want nil", got.LastAttemptAt)
			}
			if got.HoursRemaining != tc.wantHoursLeft {
				t.Errorf("HoursRemaining = %d, want %d", got.HoursRemaining, tc.wantHoursLeft)
			}
			if tc.wantNextSet {
				if got.NextAvailableAt == nil {
					t.Fatal("NextAvailableAt is nil")
				}
				want := tc.last.Add(MockTestCooldown)
				if !got.NextAvailableAt.Equal(want) {
					t.Errorf("NextAvailableAt = %v, want %v", got.NextAvailableAt, want)
				}
			} else if got.NextAvailableAt != nil {
				t.Errorf("NextAvailableAt = %v, want nil", got.NextAvailableAt)
			}
		})
	}
}
