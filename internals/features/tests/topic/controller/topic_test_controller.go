package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	topicDTO "englishku_backend/internals/features/tests/topic/dto"
	topicModel "englishku_backend/internals/features/tests/topic/model"
	topicService "englishku_backend/internals/features/tests/topic/service"
	helper "englishku_backend/internals/helpers"
)

type TopicTestController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Evaluator *topicService.Evaluator
}

func NewTopicTestController(db *gorm.DB) *TopicTestController {
	return &TopicTestController{
		DB:        db,
		Validator: validator.New(),
		Evaluator: topicService.NewEvaluator(),
	}
}

// GET /api/topic-tests?grade_id=
func (ctrl *TopicTestController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&topicModel.TopicTestModel{})
	if gradeStr := strings.TrimSpace(c.Query("grade_id")); gradeStr != "" {
		gradeID, err := uuid.Parse(gradeStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid grade ID")
		}
		q = q.Where("topic_test_grade_id = ?", gradeID)
	}
	if !strings.EqualFold(c.Query("include_inactive"), "true") {
		q = q.Where("topic_test_is_active = ?", true)
	}

	var tests []topicModel.TopicTestModel
	if err := q.Order("topic_test_after_lesson ASC").Find(&tests).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch topic tests")
	}

	return helper.SuccessData(c, tests)
}

// GET /api/topic-tests/:id
func (ctrl *TopicTestController) GetByID(c *fiber.Ctx) error {
	test, err := ctrl.findTopicTest(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessData(c, test)
}

// POST /api/topic-tests (admin)
func (ctrl *TopicTestController) Create(c *fiber.Ctx) error {
	var req topicDTO.CreateTopicTestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	req.Normalize()
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if sum := req.Criteria.ToModel().WeightSum(); sum != 100 {
		return helper.Error(c, fiber.StatusBadRequest, "Criteria weights must sum to exactly 100")
	}

	test := req.ToModel()
	if err := ctrl.DB.Create(&test).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.Error(c, fiber.StatusConflict, "A topic test for this grade and lesson number already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create topic test")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Topic test created", test)
}

// PUT /api/topic-tests/:id (admin)
func (ctrl *TopicTestController) Update(c *fiber.Ctx) error {
	test, err := ctrl.findTopicTest(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req topicDTO.UpdateTopicTestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Criteria != nil {
		if sum := req.Criteria.ToModel().WeightSum(); sum != 100 {
			return helper.Error(c, fiber.StatusBadRequest, "Criteria weights must sum to exactly 100")
		}
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return helper.Success(c, "No changes", test)
	}

	if err := ctrl.DB.Model(test).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update topic test")
	}

	return helper.Success(c, "Topic test updated", test)
}

// DELETE /api/topic-tests/:id (admin)
func (ctrl *TopicTestController) Delete(c *fiber.Ctx) error {
	test, err := ctrl.findTopicTest(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctrl.DB.Delete(test).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete topic test")
	}

	return helper.Success(c, "Topic test deleted", fiber.Map{"deleted_id": test.TopicTestID})
}

func (ctrl *TopicTestController) findTopicTest(c *fiber.Ctx) (*topicModel.TopicTestModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid topic test ID")
	}

	var test topicModel.TopicTestModel
	if err := ctrl.DB.First(&test, "topic_test_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Topic test not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch topic test")
	}
	return &test, nil
}
