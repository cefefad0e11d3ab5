package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	lessonModel "englishku_backend/internals/features/curriculum/lessons/model"
	testDTO "englishku_backend/internals/features/tests/tests/dto"
	testModel "englishku_backend/internals/features/tests/tests/model"
	helper "englishku_backend/internals/helpers"
)

type TestController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTestController(db *gorm.DB) *TestController {
	return &TestController{DB: db, Validator: validator.New()}
}

// GET /api/tests?lesson_id=&grade_id=&type=
func (ctrl *TestController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&testModel.TestModel{})
	if lessonStr := strings.TrimSpace(c.Query("lesson_id")); lessonStr != "" {
		lessonID, err := uuid.Parse(lessonStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid lesson ID")
		}
		q = q.Where("test_lesson_id = ?", lessonID)
	}
	if gradeStr := strings.TrimSpace(c.Query("grade_id")); gradeStr != "" {
		gradeID, err := uuid.Parse(gradeStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid grade ID")
		}
		q = q.Where("test_grade_id = ?", gradeID)
	}
	if testType := strings.TrimSpace(c.Query("type")); testType != "" {
		if !testModel.TestType(testType).Valid() {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid test type")
		}
		q = q.Where("test_type = ?", testType)
	}
	if !strings.EqualFold(c.Query("include_inactive"), "true") {
		q = q.Where("test_is_active = ?", true)
	}

	var tests []testModel.TestModel
	if err := q.Order("test_created_at ASC").Find(&tests).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch tests")
	}

	return helper.SuccessData(c, tests)
}

// GET /api/tests/:id (with its questions)
func (ctrl *TestController) GetByID(c *fiber.Ctx) error {
	test, err := ctrl.findTest(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var details []testModel.TestDetailModel
	if err := ctrl.DB.Where("test_detail_test_id = ?", test.TestID).
		Order("test_detail_created_at ASC").
		Find(&details).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch test questions")
	}

	return helper.SuccessData(c, testDTO.TestWithDetailsResponse{Test: *test, Details: details})
}

// POST /api/tests (admin)
func (ctrl *TestController) Create(c *fiber.Ctx) error {
	var req testDTO.CreateTestRequest
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

	test := req.ToModel()
	if err := ctrl.DB.Create(&test).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create test")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Test created", test)
}

// PUT /api/tests/:id (admin)
func (ctrl *TestController) Update(c *fiber.Ctx) error {
	test, err := ctrl.findTest(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req testDTO.UpdateTestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return helper.Success(c, "No changes", test)
	}

	if err := ctrl.DB.Model(test).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update test")
	}

	return helper.Success(c, "Test updated", test)
}

// DELETE /api/tests/:id (admin, cascades to questions)
func (ctrl *TestController) Delete(c *fiber.Ctx) error {
	test, err := ctrl.findTest(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("test_detail_test_id = ?", test.TestID).
			Delete(&testModel.TestDetailModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(test).Error
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete test")
	}

	return helper.Success(c, "Test deleted", fiber.Map{"deleted_id": test.TestID})
}

func (ctrl *TestController) findTest(c *fiber.Ctx) (*testModel.TestModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid test ID")
	}

	var test testModel.TestModel
	if err := ctrl.DB.First(&test, "test_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Test not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch test")
	}
	return &test, nil
}
