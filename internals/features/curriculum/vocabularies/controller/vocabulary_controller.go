package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	lessonModel "englishku_backend/internals/features/curriculum/lessons/model"
	vocabDTO "englishku_backend/internals/features/curriculum/vocabularies/dto"
	vocabModel "englishku_backend/internals/features/curriculum/vocabularies/model"
	helper "englishku_backend/internals/helpers"
)

type VocabularyController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewVocabularyController(db *gorm.DB) *VocabularyController {
	return &VocabularyController{DB: db, Validator: validator.New()}
}

// GET /api/vocabularies?lesson_id=&grade_id=&difficulty=&search=&page=&limit=
func (ctrl *VocabularyController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Model(&vocabModel.VocabularyModel{})
	if lessonStr := strings.TrimSpace(c.Query("lesson_id")); lessonStr != "" {
		lessonID, err := uuid.Parse(lessonStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid lesson ID")
		}
		q = q.Where("vocabulary_lesson_id = ?", lessonID)
	}
	if gradeStr := strings.TrimSpace(c.Query("grade_id")); gradeStr != "" {
		gradeID, err := uuid.Parse(gradeStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid grade ID")
		}
		q = q.Where("vocabulary_grade_id = ?", gradeID)
	}
	if difficulty := strings.TrimSpace(c.Query("difficulty")); difficulty != "" {
		if !vocabModel.VocabularyDifficulty(difficulty).Valid() {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid difficulty")
		}
		q = q.Where("vocabulary_difficulty = ?", difficulty)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("vocabulary_word ILIKE ?", "%"+search+"%")
	}
	if !strings.EqualFold(c.Query("include_inactive"), "true") {
		q = q.Where("vocabulary_is_active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count vocabulary")
	}

	var vocabularies []vocabModel.VocabularyModel
	if err := q.Order("vocabulary_order ASC, vocabulary_word ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&vocabularies).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch vocabulary")
	}

	return helper.SuccessData(c, fiber.Map{
		"vocabularies": vocabularies,
		"pagination":   helper.BuildPagination(total, paging.Page, paging.Limit),
	})
}

// GET /api/vocabularies/:id
func (ctrl *VocabularyController) GetByID(c *fiber.Ctx) error {
	vocab, err := ctrl.findVocabulary(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessData(c, vocab)
}

// POST /api/vocabularies (admin)
func (ctrl *VocabularyController) Create(c *fiber.Ctx) error {
	var req vocabDTO.CreateVocabularyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	req.Normalize()
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var lesson lessonModel.LessonModel
	if err := ctrl.DB.Select("lesson_id", "lesson_grade_id").
		First(&lesson, "lesson_id = ?", req.LessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Lesson not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check lesson")
	}
	if lesson.LessonGradeID != req.GradeID {
		return helper.Error(c, fiber.StatusBadRequest, "Lesson does not belong to the given grade")
	}

	vocab := req.ToModel()
	if err := ctrl.DB.Create(&vocab).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create vocabulary entry")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Vocabulary created", vocab)
}

// PUT /api/vocabularies/:id (admin)
func (ctrl *VocabularyController) Update(c *fiber.Ctx) error {
	vocab, err := ctrl.findVocabulary(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req vocabDTO.UpdateVocabularyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return helper.Success(c, "No changes", vocab)
	}

	if err := ctrl.DB.Model(vocab).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update vocabulary entry")
	}

	return helper.Success(c, "Vocabulary updated", vocab)
}

// DELETE /api/vocabularies/:id (admin)
func (ctrl *VocabularyController) Delete(c *fiber.Ctx) error {
	vocab, err := ctrl.findVocabulary(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctrl.DB.Delete(vocab).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete vocabulary entry")
	}

	return helper.Success(c, "Vocabulary deleted", fiber.Map{"deleted_id": vocab.VocabularyID})
}

func (ctrl *VocabularyController) findVocabulary(c *fiber.Ctx) (*vocabModel.VocabularyModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid vocabulary ID")
	}

	var vocab vocabModel.VocabularyModel
	if err := ctrl.DB.First(&vocab, "vocabulary_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Vocabulary entry not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch vocabulary entry")
	}
	return &vocab, nil
}
