package dto

import (
	"testing"

	"github.com/google/uuid"
)

func TestSubmitRequestToModel(t *testing.T) {
	userID := uuid.New()
	req := SubmitTestResultRequest{
		TestID:    uuid.New(),
		LessonID:  uuid.New(),
		GradeID:   uuid.New(),
		Score:     87.6,
		TimeTaken: 145,
		Answers: []SubmitAnswerInput{
			{QuestionID: uuid.New(), IsCorrect: true, Score: 100},
			{QuestionID: uuid.New(), IsCorrect: true, Score: 90},
			{QuestionID: uuid.New(), IsCorrect: false, Score: 40},
		},
	}

	m := req.ToModel(userID)

	if m.TestResultUserID != userID {
		t.Error("user id not carried over")
	}
	if m.TestResultScore != 88 { // 87.6 rounds to 88
		t.Errorf("score = %d, want 88", m.TestResultScore)
	}
	if m.TestResultTotalQuestions != 3 {
		t.Errorf("total questions = %d, want 3", m.TestResultTotalQuestions)
	}
	if m.TestResultCorrectAnswers != 2 {
		t.Errorf("correct answers = %d, want 2", m.TestResultCorrectAnswers)
	}
	if len(m.TestResultAnswers) != 3 {
		t.Errorf("answers = %d entries, want 3", len(m.TestResultAnswers))
	}
}

func TestSubmitRequestToModelClampsScore(t *testing.T) {
	req := SubmitTestResultRequest{
		Score:   240,
		Answers: []SubmitAnswerInput{{QuestionID: uuid.New(), Score: 100}},
	}
	if m := req.ToModel(uuid.New()); m.TestResultScore != 100 {
		t.Fatalf("score = %d, want clamped 100", m.TestResultScore)
	}
}
