package model

import (
	"testing"

	"gorm.io/datatypes"
)

func answersWithScores(scores ...int) []MockTestAnswer {
	answers := make([]MockTestAnswer, 0, len(scores))
	for _, s := range scores {
		answers = append(answers, MockTestAnswer{Score: s, IsCorrect: s >= 70})
	}
	return answers
}

func TestPassedQuestionCount(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   int
	}{
		{"empty", nil, 0},
		{"all passing", []int{70, 85, 100}, 3},
		{"boundary at 70", []int{69, 70, 71}, 2},
		{"none passing", []int{0, 30, 69}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PassedQuestionCount(answersWithScores(tc.scores...)); got != tc.want {
				t.Fatalf("PassedQuestionCount = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestMeanScore(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   int
	}{
		{"empty", nil, 0},
		{"single", []int{80}, 80},
		{"rounds up", []int{70, 71}, 71},   // 70.5 -> 71
		{"rounds down", []int{70, 70, 71}, 70}, // 70.33 -> 70
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MeanScore(answersWithScores(tc.scores...)); got != tc.want {
				t.Fatalf("MeanScore = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestBeforeCreateDerivedFields(t *testing.T) {
	answers := []MockTestAnswer{
		{Score: 90, IsCorrect: true},
		{Score: 75, IsCorrect: true},
		{Score: 40, IsCorrect: false},
		{Score: 65, IsCorrect: false},
	}

	m := MockTestResultModel{
		MockTestResultAnswers:      datatypes.JSONSlice[MockTestAnswer](answers),
		MockTestResultOverallScore: 81,
	}
	if err := m.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate: %v", err)
	}

	if m.MockTestResultTotalQuestions != 4 {
		t.Errorf("TotalQuestions = %d, want 4", m.MockTestResultTotalQuestions)
	}
	if m.MockTestResultCorrectAnswers != 2 {
		t.Errorf("CorrectAnswers = %d, want 2", m.MockTestResultCorrectAnswers)
	}
	if m.MockTestResultWrongAnswers != 2 {
		t.Errorf("WrongAnswers = %d, want 2", m.MockTestResultWrongAnswers)
	}
	if m.MockTestResultPassedQuestions != 2 {
		t.Errorf("PassedQuestions = %d, want 2", m.MockTestResultPassedQuestions)
	}
	// mean of 90,75,40,65 = 67.5 -> 68
	if m.MockTestResultTotalScore != 68 {
		t.Errorf("TotalScore = %d, want 68", m.MockTestResultTotalScore)
	}
	if !m.MockTestResultPassed {
		t.Error("Passed = false, want true (total score 68 >= 60)")
	}
	if !m.MockTestResultIsPassed {
		t.Error("IsPassed = false, want true (overall 81 >= 80)")
	}
	if m.MockTestResultCompletedAt.IsZero() {
		t.Error("CompletedAt not set")
	}
}

func TestBeforeCreatePassBoundaries(t *testing.T) {
	tests := []struct {
		name         string
		overall      int
		scores       []int
		wantIsPassed bool
		wantPassed   bool
	}{
		{"overall 79 fails", 79, []int{80, 80}, false, true},
		{"overall 80 passes", 80, []int{80, 80}, true, true},
		{"total score 59 fails", 85, []int{59, 59}, true, false},
		{"total score 60 passes", 85, []int{60, 60}, true, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := MockTestResultModel{
				MockTestResultAnswers:      datatypes.JSONSlice[MockTestAnswer](answersWithScores(tc.scores...)),
				MockTestResultOverallScore: tc.overall,
			}
			if err := m.BeforeCreate(nil); err != nil {
				t.Fatalf("BeforeCreate: %v", err)
			}
			if m.MockTestResultIsPassed != tc.wantIsPassed {
				t.Errorf("IsPassed = %v, want %v", m.MockTestResultIsPassed, tc.wantIsPassed)
			}
			if m.MockTestResultPassed != tc.wantPassed {
				t.Errorf("Passed = %v, want %v", m.MockTestResultPassed, tc.wantPassed)
			}
		})
	}
}
