package controller

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	lessonModel "englishku_backend/internals/features/curriculum/lessons/model"
	mockDTO "englishku_backend/internals/features/tests/mock/dto"
	mockModel "englishku_backend/internals/features/tests/mock/model"
	mockService "englishku_backend/internals/features/tests/mock/service"
	testModel "englishku_backend/internals/features/tests/tests/model"
	helper "englishku_backend/internals/helpers"
)

type MockTestController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMockTestController(db *gorm.DB) *MockTestController {
	return &MockTestController{DB: db, Validator: validator.New()}
}

// POST /api/mock-tests/generate
func (ctrl *MockTestController) Generate(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req mockDTO.GenerateMockTestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	gradeID := req.GradeID

	var lessons []lessonModel.LessonModel
	if err := ctrl.DB.
		Where("lesson_grade_id = ? AND lesson_is_active = ?", gradeID, true).
		Order("lesson_order_number ASC").
		Limit(mockService.MockTestLessonCount).
		Find(&lessons).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch lessons")
	}

	lessonIDs := make([]uuid.UUID, 0, len(lessons))
	for _, lesson := range lessons {
		lessonIDs = append(lessonIDs, lesson.LessonID)
	}

	var tests []testModel.TestModel
	if len(lessonIDs) > 0 {
		if err := ctrl.DB.
			Where("test_lesson_id IN ? AND test_is_active = ?", lessonIDs, true).
			Find(&tests).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch tests")
		}
	}
	testsByLesson := make(map[uuid.UUID][]testModel.TestModel, len(lessonIDs))
	testIDs := make([]uuid.UUID, 0, len(tests))
	for _, t := range tests {
		testsByLesson[t.TestLessonID] = append(testsByLesson[t.TestLessonID], t)
		testIDs = append(testIDs, t.TestID)
	}

	var details []testModel.TestDetailModel
	if len(testIDs) > 0 {
		if err := ctrl.DB.
			Where("test_detail_test_id IN ?", testIDs).
			Order("test_detail_created_at ASC").
			Find(&details).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch test questions")
		}
	}
	detailsByTest := make(map[uuid.UUID][]testModel.TestDetailModel, len(testIDs))
	for _, d := range details {
		detailsByTest[d.TestDetailTestID] = append(detailsByTest[d.TestDetailTestID], d)
	}

	// per-request source, rand.Rand is not safe for concurrent use
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	questions, err := mockService.BuildMockTest(lessons, testsByLesson, detailsByTest, rng)
	if err != nil {
		if errors.Is(err, mockService.ErrNotEnoughLessons) || errors.Is(err, mockService.ErrNotEnoughQuestions) {
			return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		if errors.Is(err, mockService.ErrDuplicateLessonOrder) {
			return helper.Error(c, fiber.StatusInternalServerError, "Lesson ordering for this grade is inconsistent")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to generate mock test")
	}

	return helper.SuccessData(c, fiber.Map{
		"grade_id":  gradeID,
		"questions": questions,
	})
}

// POST /api/mock-tests/submit
func (ctrl *MockTestController) Submit(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req mockDTO.SubmitMockTestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	result := req.ToModel(userID)
	if err := ctrl.DB.Create(&result).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save mock test result")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Mock test submitted", result)
}

// GET /api/mock-tests/check-eligibility?grade_id=
func (ctrl *MockTestController) CheckEligibility(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	gradeID, err := uuid.Parse(strings.TrimSpace(c.Query("grade_id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid grade ID")
	}

	var lessonCount int64
	if err := ctrl.DB.Model(&lessonModel.LessonModel{}).
		Where("lesson_grade_id = ? AND lesson_is_active = ?", gradeID, true).
		Count(&lessonCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count lessons")
	}

	// cooldown is per (user, grade): attempts elsewhere must not block this grade
	var attempts []mockModel.MockTestResultModel
	if err := ctrl.DB.
		Select("mock_test_result_grade_id", "mock_test_result_completed_at").
		Where("mock_test_result_user_id = ?", userID).
		Find(&attempts).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check previous attempts")
	}
	lastCompletedAt := mockService.LatestCompletionForGrade(attempts, gradeID)

	eligibility := mockService.CheckEligibility(int(lessonCount), lastCompletedAt, time.Now())
	return helper.SuccessData(c, eligibility)
}

// GET /api/mock-tests/history?page=&limit=
func (ctrl *MockTestController) History(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&mockModel.MockTestResultModel{}).
		Where("mock_test_result_user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count mock test results")
	}

	var results []mockModel.MockTestResultModel
	if err := q.Order("mock_test_result_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&results).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch mock test results")
	}

	return helper.SuccessData(c, fiber.Map{
		"results":    results,
		"pagination": helper.BuildPagination(total, paging.Page, paging.Limit),
	})
}

// GET /api/mock-tests/:id
func (ctrl *MockTestController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid mock test result ID")
	}

	var result mockModel.MockTestResultModel
	if err := ctrl.DB.First(&result, "mock_test_result_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Mock test result not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch mock test result")
	}
	if result.MockTestResultUserID != userID {
		return helper.Error(c, fiber.StatusForbidden, "You may only view your own results")
	}

	return helper.SuccessData(c, result)
}
