package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

/* =============================================================================
   ENUM-like: part of speech
============================================================================= */
type PartOfSpeech string

const (
	PartNoun         PartOfSpeech = "noun"
	PartVerb         PartOfSpeech = "verb"
	PartAdjective    PartOfSpeech = "adjective"
	PartAdverb       PartOfSpeech = "adverb"
	PartPronoun      PartOfSpeech = "pronoun"
	PartPreposition  PartOfSpeech = "preposition"
	PartConjunction  PartOfSpeech = "conjunction"
	PartInterjection PartOfSpeech = "interjection"
)

func (p PartOfSpeech) String() string { return string(p) }
func (p PartOfSpeech) Valid() bool {
	switch p {
	case PartNoun, PartVerb, PartAdjective, PartAdverb, PartPronoun, PartPreposition, PartConjunction, PartInterjection:
		return true
	default:
		return false
	}
}

func (p *PartOfSpeech) Scan(value any) error {
	if value == nil {
		*p = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*p = PartOfSpeech(v)
	case []byte:
		*p = PartOfSpeech(string(v))
	default:
		return fmt.Errorf("unsupported type for PartOfSpeech: %T", value)
	}
	if !p.Valid() {
		return fmt.Errorf("invalid PartOfSpeech: %q", *p)
	}
	return nil
}

func (p PartOfSpeech) Value() (driver.Value, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid PartOfSpeech: %q", p)
	}
	return string(p), nil
}

/* =============================================================================
   ENUM-like: difficulty
============================================================================= */
type VocabularyDifficulty string

const (
	DifficultyEasy   VocabularyDifficulty = "easy"
	DifficultyMedium VocabularyDifficulty = "medium"
	DifficultyHard   VocabularyDifficulty = "hard"
)

func (d VocabularyDifficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

/* =============================================================================
   MODEL: vocabularies
============================================================================= */
type VocabularyModel struct {
	VocabularyID       uuid.UUID `gorm:"column:vocabulary_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"vocabulary_id"`
	VocabularyLessonID uuid.UUID `gorm:"column:vocabulary_lesson_id;type:uuid;not null;index:idx_vocabularies_lesson" json:"vocabulary_lesson_id"`
	VocabularyGradeID  uuid.UUID `gorm:"column:vocabulary_grade_id;type:uuid;not null;index:idx_vocabularies_grade_lesson,priority:1" json:"vocabulary_grade_id"`

	VocabularyWord          string       `gorm:"column:vocabulary_word;type:varchar(120);not null;index:idx_vocabularies_word" json:"vocabulary_word"`
	VocabularyDefinition    string       `gorm:"column:vocabulary_definition;type:text;not null" json:"vocabulary_definition"`
	VocabularyPartOfSpeech  PartOfSpeech `gorm:"column:vocabulary_part_of_speech;type:varchar(16);not null" json:"vocabulary_part_of_speech"`
	VocabularyExample       string       `gorm:"column:vocabulary_example;type:text;not null" json:"vocabulary_example"`
	VocabularyPronunciation string       `gorm:"column:vocabulary_pronunciation;type:varchar(160);not null;default:''" json:"vocabulary_pronunciation"`
	VocabularyAudioURL      string       `gorm:"column:vocabulary_audio_url;type:varchar(500);not null;default:''" json:"vocabulary_audio_url"`
	VocabularyImageURL      string       `gorm:"column:vocabulary_image_url;type:varchar(500);not null;default:''" json:"vocabulary_image_url"`

	VocabularySynonyms pq.StringArray `gorm:"column:vocabulary_synonyms;type:text[]" json:"vocabulary_synonyms"`
	VocabularyAntonyms pq.StringArray `gorm:"column:vocabulary_antonyms;type:text[]" json:"vocabulary_antonyms"`

	VocabularyDifficulty VocabularyDifficulty `gorm:"column:vocabulary_difficulty;type:varchar(8);not null;default:'medium'" json:"vocabulary_difficulty"`
	VocabularyOrder      int                  `gorm:"column:vocabulary_order;not null;default:0" json:"vocabulary_order"`
	VocabularyIsActive   bool                 `gorm:"column:vocabulary_is_active;not null;default:true" json:"vocabulary_is_active"`

	VocabularyCreatedAt time.Time `gorm:"column:vocabulary_created_at;not null;autoCreateTime" json:"vocabulary_created_at"`
	VocabularyUpdatedAt time.Time `gorm:"column:vocabulary_updated_at;not null;autoUpdateTime" json:"vocabulary_updated_at"`
}

// TableName overrides the table name used by GORM.
func (VocabularyModel) TableName() string {
	return "vocabularies"
}
