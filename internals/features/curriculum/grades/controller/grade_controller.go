package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	gradeDTO "englishku_backend/internals/features/curriculum/grades/dto"
	gradeModel "englishku_backend/internals/features/curriculum/grades/model"
	lessonModel "englishku_backend/internals/features/curriculum/lessons/model"
	helper "englishku_backend/internals/helpers"
)

type GradeController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewGradeController(db *gorm.DB) *GradeController {
	return &GradeController{DB: db, Validator: validator.New()}
}

// GET /api/grades
func (ctrl *GradeController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&gradeModel.GradeModel{})
	if !strings.EqualFold(c.Query("include_inactive"), "true") {
		q = q.Where("grade_is_active = ?", true)
	}

	var grades []gradeModel.GradeModel
	if err := q.Order("grade_created_at ASC").Find(&grades).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch grades")
	}

	return helper.SuccessData(c, gradeDTO.FromGradeModels(grades))
}

// GET /api/grades/:id
func (ctrl *GradeController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid grade ID")
	}

	var grade gradeModel.GradeModel
	if err := ctrl.DB.First(&grade, "grade_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Grade not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch grade")
	}

	resp := gradeDTO.FromGradeModel(grade)
	ctrl.DB.Model(&lessonModel.LessonModel{}).
		Where("lesson_grade_id = ?", grade.GradeID).
		Count(&resp.LessonCount)

	return helper.SuccessData(c, resp)
}

// POST /api/grades (admin)
func (ctrl *GradeController) Create(c *fiber.Ctx) error {
	var req gradeDTO.CreateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	req.Normalize()
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	grade := req.ToModel()
	if err := ctrl.DB.Create(&grade).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "A grade with this name already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create grade")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Grade created", gradeDTO.FromGradeModel(grade))
}

// PUT /api/grades/:id (admin)
func (ctrl *GradeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid grade ID")
	}

	var grade gradeModel.GradeModel
	if err := ctrl.DB.First(&grade, "grade_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Grade not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch grade")
	}

	var req gradeDTO.UpdateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return helper.Success(c, "No changes", gradeDTO.FromGradeModel(grade))
	}

	if err := ctrl.DB.Model(&grade).Updates(updates).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "A grade with this name already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update grade")
	}

	return helper.Success(c, "Grade updated", gradeDTO.FromGradeModel(grade))
}

// DELETE /api/grades/:id (admin)
func (ctrl *GradeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid grade ID")
	}

	var grade gradeModel.GradeModel
	if err := ctrl.DB.First(&grade, "grade_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Grade not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch grade")
	}

	var lessonCount int64
	if err := ctrl.DB.Model(&lessonModel.LessonModel{}).
		Where("lesson_grade_id = ?", grade.GradeID).
		Count(&lessonCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check grade lessons")
	}
	if lessonCount > 0 {
		return helper.Error(c, fiber.StatusConflict, "Grade still has lessons and cannot be deleted")
	}

	if err := ctrl.DB.Delete(&grade).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete grade")
	}

	return helper.Success(c, "Grade deleted", fiber.Map{"deleted_id": grade.GradeID})
}

func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
