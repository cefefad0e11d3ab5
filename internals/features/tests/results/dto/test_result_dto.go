package dto

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "englishku_backend/internals/features/tests/results/model"
)

/* =========================================================
   SUBMIT
========================================================= */

type SubmitAnswerInput struct {
	QuestionID    uuid.UUID `json:"question_id" validate:"required"`
	UserAnswer    string    `json:"user_answer"`
	CorrectAnswer string    `json:"correct_answer"`
	IsCorrect     bool      `json:"is_correct"`
	Score         int       `json:"score" validate:"gte=0,lte=100"`
}

type SubmitTestResultRequest struct {
	TestID    uuid.UUID           `json:"test_id" validate:"required"`
	LessonID  uuid.UUID           `json:"lesson_id" validate:"required"`
	GradeID   uuid.UUID           `json:"grade_id" validate:"required"`
	Score     float64             `json:"score" validate:"gte=0"`
	TimeTaken int                 `json:"time_taken" validate:"gte=0"`
	Answers   []SubmitAnswerInput `json:"answers" validate:"required,min=1,dive"`
	Feedback  string              `json:"feedback"`
}

func (r *SubmitTestResultRequest) Normalize() {
	r.Feedback = strings.TrimSpace(r.Feedback)
}

// ToModel builds the attempt record. The attempt number is filled by the
// controller from the user's prior attempt count.
func (r SubmitTestResultRequest) ToModel(userID uuid.UUID) m.TestResultModel {
	answers := make([]m.TestResultAnswer, 0, len(r.Answers))
	correct := 0
	for _, a := range r.Answers {
		if a.IsCorrect {
			correct++
		}
		answers = append(answers, m.TestResultAnswer{
			QuestionID:    a.QuestionID,
			UserAnswer:    a.UserAnswer,
			CorrectAnswer: a.CorrectAnswer,
			IsCorrect:     a.IsCorrect,
			Score:         a.Score,
		})
	}

	return m.TestResultModel{
		TestResultUserID:         userID,
		TestResultTestID:         r.TestID,
		TestResultLessonID:       r.LessonID,
		TestResultGradeID:        r.GradeID,
		TestResultScore:          m.ClampScore(r.Score),
		TestResultTotalQuestions: len(r.Answers),
		TestResultCorrectAnswers: correct,
		TestResultTimeTaken:      r.TimeTaken,
		TestResultAnswers:        datatypes.JSONSlice[m.TestResultAnswer](answers),
		TestResultFeedback:       r.Feedback,
	}
}

/* =========================================================
   STATISTICS
========================================================= */

type TestStatistics struct {
	TotalAttempts       int64   `json:"total_attempts"`
	AverageScore        float64 `json:"average_score"`
	BestScore           int     `json:"best_score"`
	TotalTimeTaken      int64   `json:"total_time_taken"`
	TotalQuestions      int64   `json:"total_questions"`
	TotalCorrectAnswers int64   `json:"total_correct_answers"`
	TestsCompleted      int     `json:"tests_completed"`
}

// GradeStatistics is one per-grade row of the statistics breakdown.
type GradeStatistics struct {
	GradeID      uuid.UUID `json:"grade_id"`
	GradeName    string    `json:"grade_name"`
	TestsCount   int64     `json:"tests_count"`
	AverageScore float64   `json:"average_score"`
	BestScore    int       `json:"best_score"`
}
