package controller

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	adminDTO "englishku_backend/internals/features/admin/dto"
	gradeModel "englishku_backend/internals/features/curriculum/grades/model"
	lessonModel "englishku_backend/internals/features/curriculum/lessons/model"
	vocabModel "englishku_backend/internals/features/curriculum/vocabularies/model"
	mockModel "englishku_backend/internals/features/tests/mock/model"
	resultModel "englishku_backend/internals/features/tests/results/model"
	testModel "englishku_backend/internals/features/tests/tests/model"
	topicModel "englishku_backend/internals/features/tests/topic/model"
	authDTO "englishku_backend/internals/features/users/auth/dto"
	userModel "englishku_backend/internals/features/users/user/model"
	helper "englishku_backend/internals/helpers"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GET /api/admin/dashboard
func (ctrl *AdminController) Dashboard(c *fiber.Ctx) error {
	var resp adminDTO.DashboardResponse

	counts := []struct {
		model interface{}
		dst   *int64
	}{
		{&userModel.UserModel{}, &resp.Counts.Users},
		{&gradeModel.GradeModel{}, &resp.Counts.Grades},
		{&lessonModel.LessonModel{}, &resp.Counts.Lessons},
		{&testModel.TestModel{}, &resp.Counts.Tests},
		{&vocabModel.VocabularyModel{}, &resp.Counts.Vocabularies},
		{&topicModel.TopicTestModel{}, &resp.Counts.TopicTests},
		{&resultModel.TestResultModel{}, &resp.Activity.TestResults},
		{&mockModel.MockTestResultModel{}, &resp.Activity.MockTestResults},
		{&topicModel.TopicTestResultModel{}, &resp.Activity.TopicTestResults},
	}
	for _, cnt := range counts {
		if err := ctrl.DB.Model(cnt.model).Count(cnt.dst).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute dashboard counts")
		}
	}

	row := ctrl.DB.Model(&resultModel.TestResultModel{}).
		Select("COALESCE(AVG(test_result_score), 0)").Row()
	if err := row.Scan(&resp.Activity.AverageScore); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute average score")
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	if err := ctrl.DB.Model(&resultModel.TestResultModel{}).
		Where("test_result_created_at >= ?", weekAgo).
		Count(&resp.Activity.ResultsLast7Days).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute recent activity")
	}

	resp.TopStudents = make([]adminDTO.TopStudent, 0, 5)
	if err := ctrl.DB.Model(&resultModel.TestResultModel{}).
		Select("test_result_user_id AS user_id, COALESCE(MAX(users.user_firstname), '') AS user_firstname, COALESCE(MAX(users.user_lastname), '') AS user_lastname, COALESCE(MAX(users.user_email), '') AS user_email, COALESCE(AVG(test_result_score), 0) AS average_score, COUNT(*) AS total_tests").
		Joins("LEFT JOIN users ON users.user_id = test_results.test_result_user_id").
		Group("test_result_user_id").
		Order("average_score DESC").
		Limit(5).
		Scan(&resp.TopStudents).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute top students")
	}

	resp.GradeStats = make([]adminDTO.GradeActivity, 0)
	if err := ctrl.DB.Model(&resultModel.TestResultModel{}).
		Select("test_result_grade_id AS grade_id, COALESCE(MAX(grades.grade_name), '') AS grade_name, COUNT(*) AS total_tests, COALESCE(AVG(test_result_score), 0) AS average_score").
		Joins("LEFT JOIN grades ON grades.grade_id = test_results.test_result_grade_id").
		Group("test_result_grade_id").
		Scan(&resp.GradeStats).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute grade activity")
	}

	resp.RecentResults = make([]resultModel.TestResultModel, 0, 10)
	if err := ctrl.DB.Order("test_result_created_at DESC").
		Limit(10).
		Find(&resp.RecentResults).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch recent results")
	}

	return helper.SuccessData(c, resp)
}

// GET /api/admin/results?user_id=&grade_id=&lesson_id=&min_score=&max_score=&start_date=&end_date=&page=&limit=
func (ctrl *AdminController) Results(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	filters, err := adminDTO.ParseResultFilters(map[string]string{
		"user_id":    c.Query("user_id"),
		"grade_id":   c.Query("grade_id"),
		"lesson_id":  c.Query("lesson_id"),
		"min_score":  c.Query("min_score"),
		"max_score":  c.Query("max_score"),
		"start_date": c.Query("start_date"),
		"end_date":   c.Query("end_date"),
	})
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctrl.DB.Model(&resultModel.TestResultModel{})
	if filters.UserID != nil {
		q = q.Where("test_result_user_id = ?", *filters.UserID)
	}
	if filters.GradeID != nil {
		q = q.Where("test_result_grade_id = ?", *filters.GradeID)
	}
	if filters.LessonID != nil {
		q = q.Where("test_result_lesson_id = ?", *filters.LessonID)
	}
	if filters.MinScore != nil {
		q = q.Where("test_result_score >= ?", *filters.MinScore)
	}
	if filters.MaxScore != nil {
		q = q.Where("test_result_score <= ?", *filters.MaxScore)
	}
	if filters.StartDate != nil {
		q = q.Where("test_result_created_at >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		q = q.Where("test_result_created_at <= ?", *filters.EndDate)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count results")
	}

	var results []resultModel.TestResultModel
	if err := q.Order("test_result_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&results).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch results")
	}

	return helper.SuccessData(c, fiber.Map{
		"results":    results,
		"pagination": helper.BuildPagination(total, paging.Page, paging.Limit),
	})
}

// GET /api/admin/users?search=&page=&limit=
func (ctrl *AdminController) Users(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&userModel.UserModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("user_email ILIKE ? OR user_firstname ILIKE ? OR user_lastname ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []userModel.UserModel
	if err := q.Order("user_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&users).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	out := make([]authDTO.UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, authDTO.FromUserModel(user))
	}

	return helper.SuccessData(c, fiber.Map{
		"users":      out,
		"pagination": helper.BuildPagination(total, paging.Page, paging.Limit),
	})
}

// GET /api/admin/users/:id/results
func (ctrl *AdminController) UserResults(c *fiber.Ctx) error {
	userID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	var testResults []resultModel.TestResultModel
	if err := ctrl.DB.Where("test_result_user_id = ?", userID).
		Order("test_result_created_at DESC").
		Find(&testResults).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch test results")
	}

	var mockResults []mockModel.MockTestResultModel
	if err := ctrl.DB.Where("mock_test_result_user_id = ?", userID).
		Order("mock_test_result_created_at DESC").
		Find(&mockResults).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch mock test results")
	}

	var topicResults []topicModel.TopicTestResultModel
	if err := ctrl.DB.Where("topic_test_result_user_id = ?", userID).
		Order("topic_test_result_created_at DESC").
		Find(&topicResults).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch topic test results")
	}

	return helper.SuccessData(c, fiber.Map{
		"user":               authDTO.FromUserModel(user),
		"test_results":       testResults,
		"mock_test_results":  mockResults,
		"topic_test_results": topicResults,
	})
}

// GET /api/admin/results/export (CSV download of all regular test attempts)
func (ctrl *AdminController) ExportResults(c *fiber.Ctx) error {
	var results []resultModel.TestResultModel
	if err := ctrl.DB.Order("test_result_created_at DESC").Find(&results).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch results")
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	_ = w.Write([]string{
		"result_id", "user_id", "test_id", "lesson_id", "grade_id",
		"score", "total_questions", "correct_answers", "time_taken",
		"attempt_number", "created_at",
	})
	for _, r := range results {
		_ = w.Write([]string{
			r.TestResultID.String(),
			r.TestResultUserID.String(),
			r.TestResultTestID.String(),
			r.TestResultLessonID.String(),
			r.TestResultGradeID.String(),
			fmt.Sprintf("%d", r.TestResultScore),
			fmt.Sprintf("%d", r.TestResultTotalQuestions),
			fmt.Sprintf("%d", r.TestResultCorrectAnswers),
			fmt.Sprintf("%d", r.TestResultTimeTaken),
			fmt.Sprintf("%d", r.TestResultAttemptNumber),
			r.TestResultCreatedAt.UTC().Format(time.RFC3339),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build export")
	}

	filename := "test-results-" + time.Now().Format("20060102-150405") + ".csv"
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.SendString(sb.String())
}
