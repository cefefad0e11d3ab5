package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	gradeModel "englishku_backend/internals/features/curriculum/grades/model"
	lessonDTO "englishku_backend/internals/features/curriculum/lessons/dto"
	lessonModel "englishku_backend/internals/features/curriculum/lessons/model"
	helper "englishku_backend/internals/helpers"
)

type LessonController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLessonController(db *gorm.DB) *LessonController {
	return &LessonController{DB: db, Validator: validator.New()}
}

// GET /api/lessons?grade_id=&page=&limit=
func (ctrl *LessonController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&lessonModel.LessonModel{})
	if gradeStr := strings.TrimSpace(c.Query("grade_id")); gradeStr != "" {
		gradeID, err := uuid.Parse(gradeStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid grade ID")
		}
		q = q.Where("lesson_grade_id = ?", gradeID)
	}
	if !strings.EqualFold(c.Query("include_inactive"), "true") {
		q = q.Where("lesson_is_active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count lessons")
	}

	var lessons []lessonModel.LessonModel
	if err := q.Order("lesson_order_number ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&lessons).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch lessons")
	}

	return helper.SuccessData(c, fiber.Map{
		"lessons":    lessonDTO.FromLessonModels(lessons),
		"pagination": helper.BuildPagination(total, paging.Page, paging.Limit),
	})
}

// GET /api/lessons/:id
func (ctrl *LessonController) GetByID(c *fiber.Ctx) error {
	lesson, err := ctrl.findLesson(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessData(c, lessonDTO.FromLessonModel(*lesson))
}

// POST /api/lessons (admin)
func (ctrl *LessonController) Create(c *fiber.Ctx) error {
	var req lessonDTO.CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	req.Normalize()
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var grade gradeModel.GradeModel
	if err := ctrl.DB.Select("grade_id").First(&grade, "grade_id = ?", req.GradeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Grade not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check grade")
	}

	lesson := req.ToModel()
	if err := ctrl.DB.Create(&lesson).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Order number is already taken in this grade")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create lesson")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Lesson created", lessonDTO.FromLessonModel(lesson))
}

// PUT /api/lessons/:id (admin)
func (ctrl *LessonController) Update(c *fiber.Ctx) error {
	lesson, err := ctrl.findLesson(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req lessonDTO.UpdateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return helper.Success(c, "No changes", lessonDTO.FromLessonModel(*lesson))
	}

	if err := ctrl.DB.Model(lesson).Updates(updates).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Order number is already taken in this grade")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update lesson")
	}

	return helper.Success(c, "Lesson updated", lessonDTO.FromLessonModel(*lesson))
}

// DELETE /api/lessons/:id (admin)
func (ctrl *LessonController) Delete(c *fiber.Ctx) error {
	lesson, err := ctrl.findLesson(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctrl.DB.Delete(lesson).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete lesson")
	}

	return helper.Success(c, "Lesson deleted", fiber.Map{"deleted_id": lesson.LessonID})
}

func (ctrl *LessonController) findLesson(c *fiber.Ctx) (*lessonModel.LessonModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid lesson ID")
	}

	var lesson lessonModel.LessonModel
	if err := ctrl.DB.First(&lesson, "lesson_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Lesson not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch lesson")
	}
	return &lesson, nil
}

func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
