package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	m "englishku_backend/internals/features/curriculum/vocabularies/model"
)

/* =========================================================
   CREATE / UPDATE
========================================================= */

type CreateVocabularyRequest struct {
	LessonID      uuid.UUID `json:"vocabulary_lesson_id" validate:"required"`
	GradeID       uuid.UUID `json:"vocabulary_grade_id" validate:"required"`
	Word          string    `json:"vocabulary_word" validate:"required,min=1,max=120"`
	Definition    string    `json:"vocabulary_definition" validate:"required,min=1"`
	PartOfSpeech  string    `json:"vocabulary_part_of_speech" validate:"required,oneof=noun verb adjective adverb pronoun preposition conjunction interjection"`
	Example       string    `json:"vocabulary_example" validate:"required,min=1"`
	Pronunciation string    `json:"vocabulary_pronunciation" validate:"max=160"`
	AudioURL      string    `json:"vocabulary_audio_url" validate:"omitempty,url,max=500"`
	ImageURL      string    `json:"vocabulary_image_url" validate:"omitempty,url,max=500"`
	Synonyms      []string  `json:"vocabulary_synonyms" validate:"dive,min=1,max=120"`
	Antonyms      []string  `json:"vocabulary_antonyms" validate:"dive,min=1,max=120"`
	Difficulty    string    `json:"vocabulary_difficulty" validate:"omitempty,oneof=easy medium hard"`
	Order         int       `json:"vocabulary_order" validate:"gte=0"`
	IsActive      *bool     `json:"vocabulary_is_active"`
}

func (r *CreateVocabularyRequest) Normalize() {
	r.Word = strings.TrimSpace(r.Word)
	r.Definition = strings.TrimSpace(r.Definition)
	r.Example = strings.TrimSpace(r.Example)
	r.Pronunciation = strings.TrimSpace(r.Pronunciation)
	r.Synonyms = trimAll(r.Synonyms)
	r.Antonyms = trimAll(r.Antonyms)
}

func (r CreateVocabularyRequest) ToModel() m.VocabularyModel {
	difficulty := m.VocabularyDifficulty(r.Difficulty)
	if !difficulty.Valid() {
		difficulty = m.DifficultyMedium
	}
	vocab := m.VocabularyModel{
		VocabularyLessonID:      r.LessonID,
		VocabularyGradeID:       r.GradeID,
		VocabularyWord:          r.Word,
		VocabularyDefinition:    r.Definition,
		VocabularyPartOfSpeech:  m.PartOfSpeech(r.PartOfSpeech),
		VocabularyExample:       r.Example,
		VocabularyPronunciation: r.Pronunciation,
		VocabularyAudioURL:      r.AudioURL,
		VocabularyImageURL:      r.ImageURL,
		VocabularySynonyms:      pq.StringArray(r.Synonyms),
		VocabularyAntonyms:      pq.StringArray(r.Antonyms),
		VocabularyDifficulty:    difficulty,
		VocabularyOrder:         r.Order,
		VocabularyIsActive:      true,
	}
	if r.IsActive != nil {
		vocab.VocabularyIsActive = *r.IsActive
	}
	return vocab
}

type UpdateVocabularyRequest struct {
	Word          *string   `json:"vocabulary_word" validate:"omitempty,min=1,max=120"`
	Definition    *string   `json:"vocabulary_definition" validate:"omitempty,min=1"`
	PartOfSpeech  *string   `json:"vocabulary_part_of_speech" validate:"omitempty,oneof=noun verb adjective adverb pronoun preposition conjunction interjection"`
	Example       *string   `json:"vocabulary_example" validate:"omitempty,min=1"`
	Pronunciation *string   `json:"vocabulary_pronunciation" validate:"omitempty,max=160"`
	AudioURL      *string   `json:"vocabulary_audio_url" validate:"omitempty,url,max=500"`
	ImageURL      *string   `json:"vocabulary_image_url" validate:"omitempty,url,max=500"`
	Synonyms      *[]string `json:"vocabulary_synonyms" validate:"omitempty,dive,min=1,max=120"`
	Antonyms      *[]string `json:"vocabulary_antonyms" validate:"omitempty,dive,min=1,max=120"`
	Difficulty    *string   `json:"vocabulary_difficulty" validate:"omitempty,oneof=easy medium hard"`
	Order         *int      `json:"vocabulary_order" validate:"omitempty,gte=0"`
	IsActive      *bool     `json:"vocabulary_is_active"`
}

func (r UpdateVocabularyRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Word != nil {
		updates["vocabulary_word"] = strings.TrimSpace(*r.Word)
	}
	if r.Definition != nil {
		updates["vocabulary_definition"] = strings.TrimSpace(*r.Definition)
	}
	if r.PartOfSpeech != nil {
		updates["vocabulary_part_of_speech"] = *r.PartOfSpeech
	}
	if r.Example != nil {
		updates["vocabulary_example"] = strings.TrimSpace(*r.Example)
	}
	if r.Pronunciation != nil {
		updates["vocabulary_pronunciation"] = strings.TrimSpace(*r.Pronunciation)
	}
	if r.AudioURL != nil {
		updates["vocabulary_audio_url"] = *r.AudioURL
	}
	if r.ImageURL != nil {
		updates["vocabulary_image_url"] = *r.ImageURL
	}
	if r.Synonyms != nil {
		updates["vocabulary_synonyms"] = pq.StringArray(trimAll(*r.Synonyms))
	}
	if r.Antonyms != nil {
		updates["vocabulary_antonyms"] = pq.StringArray(trimAll(*r.Antonyms))
	}
	if r.Difficulty != nil {
		updates["vocabulary_difficulty"] = *r.Difficulty
	}
	if r.Order != nil {
		updates["vocabulary_order"] = *r.Order
	}
	if r.IsActive != nil {
		updates["vocabulary_is_active"] = *r.IsActive
	}
	return updates
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
