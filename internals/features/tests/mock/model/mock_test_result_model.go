package model

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =============================================================================
   MODEL: mock_test_results
   - one completed 20-question mock exam
   - derived columns are computed from the answers in BeforeCreate
============================================================================= */

// MockTestAnswer is one graded question inside a mock attempt.
type MockTestAnswer struct {
	TestID     uuid.UUID `json:"test_id"`
	LessonID   uuid.UUID `json:"lesson_id"`
	QuestionID uuid.UUID `json:"question_id"`
	UserAnswer string    `json:"user_answer"`
	IsCorrect  bool      `json:"is_correct"`
	Score      int       `json:"score"`
	TimeTaken  int       `json:"time_taken"` // seconds
}

type MockTestResultModel struct {
	MockTestResultID      uuid.UUID `gorm:"column:mock_test_result_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"mock_test_result_id"`
	MockTestResultUserID  uuid.UUID `gorm:"column:mock_test_result_user_id;type:uuid;not null;index:idx_mock_test_results_user" json:"mock_test_result_user_id"`
	MockTestResultGradeID uuid.UUID `gorm:"column:mock_test_result_grade_id;type:uuid;not null;index:idx_mock_test_results_grade" json:"mock_test_result_grade_id"`

	MockTestResultAnswers datatypes.JSONSlice[MockTestAnswer] `gorm:"column:mock_test_result_answers;type:jsonb" json:"mock_test_result_answers"`

	// caller-supplied aggregates
	MockTestResultOverallScore   int `gorm:"column:mock_test_result_overall_score;not null" json:"mock_test_result_overall_score"`
	MockTestResultTotalTimeTaken int `gorm:"column:mock_test_result_total_time_taken;not null;default:0" json:"mock_test_result_total_time_taken"` // seconds

	// derived in BeforeCreate
	MockTestResultTotalQuestions  int  `gorm:"column:mock_test_result_total_questions;not null" json:"mock_test_result_total_questions"`
	MockTestResultCorrectAnswers  int  `gorm:"column:mock_test_result_correct_answers;not null" json:"mock_test_result_correct_answers"`
	MockTestResultWrongAnswers    int  `gorm:"column:mock_test_result_wrong_answers;not null" json:"mock_test_result_wrong_answers"`
	MockTestResultPassedQuestions int  `gorm:"column:mock_test_result_passed_questions;not null" json:"mock_test_result_passed_questions"`
	MockTestResultTotalScore      int  `gorm:"column:mock_test_result_total_score;not null" json:"mock_test_result_total_score"`
	MockTestResultPassed          bool `gorm:"column:mock_test_result_passed;not null" json:"mock_test_result_passed"`
	MockTestResultIsPassed        bool `gorm:"column:mock_test_result_is_passed;not null" json:"mock_test_result_is_passed"`

	MockTestResultCompletedAt time.Time `gorm:"column:mock_test_result_completed_at;not null" json:"mock_test_result_completed_at"`
	MockTestResultCreatedAt   time.Time `gorm:"column:mock_test_result_created_at;not null;autoCreateTime;index:idx_mock_test_results_created_desc,sort:desc" json:"mock_test_result_created_at"`
}

// TableName overrides the table name used by GORM.
func (MockTestResultModel) TableName() string {
	return "mock_test_results"
}

// PassedQuestionCount counts answers scored 70 or above.
func PassedQuestionCount(answers []MockTestAnswer) int {
	n := 0
	for _, a := range answers {
		if a.Score >= 70 {
			n++
		}
	}
	return n
}

// MeanScore returns the rounded arithmetic mean of the answer scores.
// Empty answer sets yield 0.
func MeanScore(answers []MockTestAnswer) int {
	if len(answers) == 0 {
		return 0
	}
	sum := 0
	for _, a := range answers {
		sum += a.Score
	}
	return int(math.Round(float64(sum) / float64(len(answers))))
}

// BeforeCreate fills every derived column from the answer list.
// mock_test_result_is_passed follows the overall score (>= 80),
// mock_test_result_passed follows the per-question mean (>= 60).
func (m *MockTestResultModel) BeforeCreate(_ *gorm.DB) error {
	answers := []MockTestAnswer(m.MockTestResultAnswers)

	m.MockTestResultTotalQuestions = len(answers)
	correct := 0
	for _, a := range answers {
		if a.IsCorrect {
			correct++
		}
	}
	m.MockTestResultCorrectAnswers = correct
	m.MockTestResultWrongAnswers = len(answers) - correct
	m.MockTestResultPassedQuestions = PassedQuestionCount(answers)
	m.MockTestResultTotalScore = MeanScore(answers)
	m.MockTestResultPassed = m.MockTestResultTotalScore >= 60
	m.MockTestResultIsPassed = m.MockTestResultOverallScore >= 80

	if m.MockTestResultCompletedAt.IsZero() {
		m.MockTestResultCompletedAt = time.Now()
	}
	return nil
}
