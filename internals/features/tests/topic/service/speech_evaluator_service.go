package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	openai "github.com/sashabaranov/go-openai"

	"englishku_backend/internals/configs"
	"englishku_backend/internals/features/tests/topic/model"
)

/* =============================================================================
   SERVICE: speech evaluation
   - asks the model for a strict-JSON rubric evaluation
   - any failure (network, bad JSON) falls back to a fixed neutral result
============================================================================= */

const evaluationTimeout = 30 * time.Second

const systemPrompt = `You are an English speaking examiner. Evaluate the student's spoken answer against the given topic. Respond with JSON only, using exactly these keys: relevance_score, grammar_score, fluency_score, vocabulary_score (integers 0-100), feedback (string), corrections (array of {original, corrected, explanation}), strengths (array of strings), improvements (array of strings).`

// Evaluator grades spoken answers.
type Evaluator struct {
	client *openai.Client
	model  string
}

func NewEvaluator() *Evaluator {
	if configs.OpenAIAPIKey == "" {
		log.Println("[WARN] ⚠️ OPENAI_API_KEY is empty, speech evaluation will use the fallback result")
		return &Evaluator{}
	}
	return &Evaluator{
		client: openai.NewClient(configs.OpenAIAPIKey),
		model:  configs.OpenAIModel,
	}
}

// Evaluate grades spokenText against the topic test's prompt. It never
// returns an error: when the upstream call fails the fallback result is
// used so a student always gets feedback.
func (e *Evaluator) Evaluate(ctx context.Context, test *model.TopicTestModel, spokenText string) model.AIEvaluation {
	if e.client == nil {
		return FallbackEvaluation(test.TopicTestCriteria)
	}

	ctx, cancel := context.WithTimeout(ctx, evaluationTimeout)
	defer cancel()

	userPrompt := fmt.Sprintf("Topic: %s\nPrompt: %s\n\nStudent's answer:\n%s",
		test.TopicTestTopic, test.TopicTestPrompt, spokenText)

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       e.model,
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		log.Printf("[ERROR] speech evaluation call failed: %v", err)
		return FallbackEvaluation(test.TopicTestCriteria)
	}
	if len(resp.Choices) == 0 {
		log.Println("[ERROR] speech evaluation returned no choices")
		return FallbackEvaluation(test.TopicTestCriteria)
	}

	var eval model.AIEvaluation
	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	if err := sonic.Unmarshal([]byte(raw), &eval); err != nil {
		log.Printf("[ERROR] speech evaluation returned invalid JSON: %v", err)
		return FallbackEvaluation(test.TopicTestCriteria)
	}

	eval.RelevanceScore = clampScore(eval.RelevanceScore)
	eval.GrammarScore = clampScore(eval.GrammarScore)
	eval.FluencyScore = clampScore(eval.FluencyScore)
	eval.VocabularyScore = clampScore(eval.VocabularyScore)
	eval.OverallScore = WeightedOverall(eval, test.TopicTestCriteria)
	return eval
}

// WeightedOverall computes the rounded weighted mean of the four rubric
// scores. Weights are percentages summing to 100.
func WeightedOverall(eval model.AIEvaluation, c model.EvaluationCriteria) int {
	sum := eval.RelevanceScore*c.Relevance +
		eval.GrammarScore*c.Grammar +
		eval.FluencyScore*c.Fluency +
		eval.VocabularyScore*c.Vocabulary
	return int(math.Round(float64(sum) / 100.0))
}

// FallbackEvaluation is the fixed neutral result used when the upstream
// evaluator is unreachable.
func FallbackEvaluation(c model.EvaluationCriteria) model.AIEvaluation {
	eval := model.AIEvaluation{
		RelevanceScore:  70,
		GrammarScore:    70,
		FluencyScore:    70,
		VocabularyScore: 70,
		Feedback:        "Automatic evaluation was unavailable, so a provisional score was assigned. Keep practicing and try again later.",
		Corrections:     []model.Correction{},
		Strengths:       []string{"You completed the speaking task."},
		Improvements:    []string{"Try the topic again once evaluation is back online."},
	}
	eval.OverallScore = WeightedOverall(eval, c)
	return eval
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// FeedbackMessage maps an overall score onto the notification text band.
func FeedbackMessage(topic string, overall int) string {
	switch {
	case overall >= 90:
		return fmt.Sprintf("Outstanding! You scored %d on \"%s\". Your English is excellent!", overall, topic)
	case overall >= 80:
		return fmt.Sprintf("Great job! You scored %d on \"%s\". Keep up the good work!", overall, topic)
	case overall >= 70:
		return fmt.Sprintf("Good effort! You scored %d on \"%s\". A little more practice will go a long way.", overall, topic)
	case overall >= 60:
		return fmt.Sprintf("You scored %d on \"%s\". Review the feedback and try again.", overall, topic)
	default:
		return fmt.Sprintf("You scored %d on \"%s\". Don't give up, practice makes perfect!", overall, topic)
	}
}
