package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	testDTO "englishku_backend/internals/features/tests/tests/dto"
	testModel "englishku_backend/internals/features/tests/tests/model"
	helper "englishku_backend/internals/helpers"
)

type TestDetailController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTestDetailController(db *gorm.DB) *TestDetailController {
	return &TestDetailController{DB: db, Validator: validator.New()}
}

// GET /api/test-details?test_id=
func (ctrl *TestDetailController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&testModel.TestDetailModel{})
	if testStr := strings.TrimSpace(c.Query("test_id")); testStr != "" {
		testID, err := uuid.Parse(testStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid test ID")
		}
		q = q.Where("test_detail_test_id = ?", testID)
	}

	var details []testModel.TestDetailModel
	if err := q.Order("test_detail_created_at ASC").Find(&details).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch test questions")
	}

	return helper.SuccessData(c, details)
}

// POST /api/test-details (admin)
func (ctrl *TestDetailController) Create(c *fiber.Ctx) error {
	var req testDTO.CreateTestDetailRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	req.Normalize()
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var test testModel.TestModel
	if err := ctrl.DB.Select("test_id").First(&test, "test_id = ?", req.TestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Test not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check test")
	}

	detail := req.ToModel()
	if err := ctrl.DB.Create(&detail).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create test question")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Test question created", detail)
}

// PUT /api/test-details/:id (admin)
func (ctrl *TestDetailController) Update(c *fiber.Ctx) error {
	detail, err := ctrl.findDetail(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req testDTO.UpdateTestDetailRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return helper.Success(c, "No changes", detail)
	}

	if err := ctrl.DB.Model(detail).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update test question")
	}

	return helper.Success(c, "Test question updated", detail)
}

// DELETE /api/test-details/:id (admin)
func (ctrl *TestDetailController) Delete(c *fiber.Ctx) error {
	detail, err := ctrl.findDetail(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctrl.DB.Delete(detail).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete test question")
	}

	return helper.Success(c, "Test question deleted", fiber.Map{"deleted_id": detail.TestDetailID})
}

func (ctrl *TestDetailController) findDetail(c *fiber.Ctx) (*testModel.TestDetailModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid test question ID")
	}

	var detail testModel.TestDetailModel
	if err := ctrl.DB.First(&detail, "test_detail_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Test question not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch test question")
	}
	return &detail, nil
}
