package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "englishku_backend/internals/features/tests/mock/model"
)

/* =========================================================
   GENERATE
========================================================= */

type GenerateMockTestRequest struct {
	GradeID uuid.UUID `json:"grade_id" validate:"required"`
}

/* =========================================================
   SUBMIT
========================================================= */

type MockAnswerInput struct {
	TestID     uuid.UUID `json:"test_id" validate:"required"`
	LessonID   uuid.UUID `json:"lesson_id" validate:"required"`
	QuestionID uuid.UUID `json:"question_id" validate:"required"`
	UserAnswer string    `json:"user_answer"`
	IsCorrect  bool      `json:"is_correct"`
	Score      int       `json:"score" validate:"gte=0,lte=100"`
	TimeTaken  int       `json:"time_taken" validate:"gte=0"`
}

type SubmitMockTestRequest struct {
	GradeID        uuid.UUID         `json:"grade_id" validate:"required"`
	Answers        []MockAnswerInput `json:"answers" validate:"required,min=1,dive"`
	OverallScore   int               `json:"overall_score" validate:"gte=0,lte=100"`
	TotalTimeTaken int               `json:"total_time_taken" validate:"gte=0"`
}

func (r SubmitMockTestRequest) ToModel(userID uuid.UUID) m.MockTestResultModel {
	answers := make([]m.MockTestAnswer, 0, len(r.Answers))
	for _, a := range r.Answers {
		answers = append(answers, m.MockTestAnswer{
			TestID:     a.TestID,
			LessonID:   a.LessonID,
			QuestionID: a.QuestionID,
			UserAnswer: a.UserAnswer,
			IsCorrect:  a.IsCorrect,
			Score:      a.Score,
			TimeTaken:  a.TimeTaken,
		})
	}
	return m.MockTestResultModel{
		MockTestResultUserID:         userID,
		MockTestResultGradeID:        r.GradeID,
		MockTestResultAnswers:        datatypes.JSONSlice[m.MockTestAnswer](answers),
		MockTestResultOverallScore:   r.OverallScore,
		MockTestResultTotalTimeTaken: r.TotalTimeTaken,
	}
}
