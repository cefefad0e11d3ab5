package service

import (
	"strings"
	"testing"

	"englishku_backend/internals/features/tests/topic/model"
)

func TestWeightedOverall(t *testing.T) {
	tests := []struct {
		name     string
		eval     model.AIEvaluation
		criteria model.EvaluationCriteria
		want     int
	}{
		{
			name:     "equal weights",
			eval:     model.AIEvaluation{RelevanceScore: 80, GrammarScore: 60, FluencyScore: 70, VocabularyScore: 90},
			criteria: model.EvaluationCriteria{Relevance: 25, Grammar: 25, Fluency: 25, Vocabulary: 25},
			want:     75,
		},
		{
			name:     "relevance heavy",
			eval:     model.AIEvaluation{RelevanceScore: 100, GrammarScore: 0, FluencyScore: 0, VocabularyScore: 0},
			criteria: model.EvaluationCriteria{Relevance: 70, Grammar: 10, Fluency: 10, Vocabulary: 10},
			want:     70,
		},
		{
			name:     "rounds to nearest",
			eval:     model.AIEvaluation{RelevanceScore: 71, GrammarScore: 70, FluencyScore: 70, VocabularyScore: 70},
			criteria: model.EvaluationCriteria{Relevance: 25, Grammar: 25, Fluency: 25, Vocabulary: 25},
			want:     70, // 70.25 -> 70
		},
		{
			name:     "all perfect",
			eval:     model.AIEvaluation{RelevanceScore: 100, GrammarScore: 100, FluencyScore: 100, VocabularyScore: 100},
			criteria: model.EvaluationCriteria{Relevance: 40, Grammar: 30, Fluency: 20, Vocabulary: 10},
			want:     100,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := WeightedOverall(tc.eval, tc.criteria); got != tc.want {
				t.Fatalf("WeightedOverall = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestFallbackEvaluation(t *testing.T) {
	criteria := model.EvaluationCriteria{Relevance: 30, Grammar: 30, Fluency: 20, Vocabulary: 20}
	eval := FallbackEvaluation(criteria)

	for name, score := range map[string]int{
		"relevance":  eval.RelevanceScore,
		"grammar":    eval.GrammarScore,
		"fluency":    eval.FluencyScore,
		"vocabulary": eval.VocabularyScore,
	} {
		if score != 70 {
			t.Errorf("%s score = %d, want 70", name, score)
		}
	}
	// all-70 scores weight to 70 for any valid criteria
	if eval.OverallScore != 70 {
		t.Errorf("OverallScore = %d, want 70", eval.OverallScore)
	}
	if eval.Feedback == "" {
		t.Error("fallback carries no feedback text")
	}
	if eval.Corrections == nil || eval.Strengths == nil || eval.Improvements == nil {
		t.Error("fallback slices must be non-nil for stable JSON output")
	}
}

func TestFeedbackMessageBands(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{95, "Outstanding"},
		{90, "Outstanding"},
		{89, "Great job"},
		{80, "Great job"},
		{79, "Good effort"},
		{70, "Good effort"},
		{69, "Review the feedback"},
		{60, "Review the feedback"},
		{59, "practice makes perfect"},
		{0, "practice makes perfect"},
	}

	for _, tc := range tests {
		msg := FeedbackMessage("Daily Routines", tc.score)
		if !strings.Contains(msg, tc.want) {
			t.Errorf("FeedbackMessage(%d) = %q, want it to contain %q", tc.score, msg, tc.want)
		}
		if !strings.Contains(msg, "Daily Routines") {
			t.Errorf("FeedbackMessage(%d) does not mention the topic", tc.score)
		}
	}
}
