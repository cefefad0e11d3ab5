package model

import "testing"

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"only spaces", "   ", 0},
		{"single word", "hello", 1},
		{"simple sentence", "I like reading books", 4},
		{"extra whitespace", "  I   like\treading\nbooks  ", 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CountWords(tc.text); got != tc.want {
				t.Fatalf("CountWords(%q) = %d, want %d", tc.text, got, tc.want)
			}
		})
	}
}

func TestBeforeCreateSetsWordCount(t *testing.T) {
	m := TopicTestResultModel{TopicTestResultSpokenText: "my hobby is playing football"}
	if err := m.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate: %v", err)
	}
	if m.TopicTestResultWordCount != 5 {
		t.Fatalf("word count = %d, want 5", m.TopicTestResultWordCount)
	}
}

func TestEvaluationCriteriaWeightSum(t *testing.T) {
	tests := []struct {
		name     string
		criteria EvaluationCriteria
		want     int
	}{
		{"balanced", EvaluationCriteria{Relevance: 25, Grammar: 25, Fluency: 25, Vocabulary: 25}, 100},
		{"skewed", EvaluationCriteria{Relevance: 70, Grammar: 10, Fluency: 10, Vocabulary: 10}, 100},
		{"off by one", EvaluationCriteria{Relevance: 25, Grammar: 25, Fluency: 25, Vocabulary: 24}, 99},
		{"zero", EvaluationCriteria{}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.criteria.WeightSum(); got != tc.want {
				t.Fatalf("WeightSum = %d, want %d", got, tc.want)
			}
		})
	}
}
