package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/htloc/toeic-practice-api/internal/controller"
	"github.com/htloc/toeic-practice-api/internal/dto"
	"github.com/htloc/toeic-practice-api/internal/service"
)

type ExamResultController struct {
	resultService service.ExamResultService
}

func NewExamResultController(resultService service.ExamResultService) *ExamResultController {
	return &ExamResultController{resultService: resultService}
}

// GetAllExamResults godoc
// @Summary (Admin) List all exam results
// @Tags Admin - Exam Results
// @Produce json
// @Success 200 {array} dto.ExamResultResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/exam-results [get]
func (c *ExamResultController) GetAllExamResults(ctx *gin.Context) {
	results, err := c.resultService.GetAllExamResults()
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// GetExamResult godoc
// @Summary (Admin) Get an exam result with its per-question details
// @Tags Admin - Exam Results
// @Produce json
// @Param id path int true "Exam result ID"
// @Success 200 {object} dto.ExamResultResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/exam-results/{id} [get]
func (c *ExamResultController) GetExamResult(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	result, err := c.resultService.GetExamResultWithDetails(id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetExamResultsByUser godoc
// @Summary (Admin) List a user's exam results
// @Tags Admin - Exam Results
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} dto.ExamResultResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/users/{user_id}/exam-results [get]
func (c *ExamResultController) GetExamResultsByUser(ctx *gin.Context) {
	userID, ok := pathID(ctx, "user_id")
	if !ok {
		return
	}
	results, err := c.resultService.GetExamResultsByUser(userID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// CreateExamResult godoc
// @Summary (Admin) Create an exam result record
// @Tags Admin - Exam Results
// @Accept json
// @Produce json
// @Param result body dto.CreateExamResultRequest true "Result fields"
// @Success 201 {object} dto.ExamResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/exam-results [post]
func (c *ExamResultController) CreateExamResult(ctx *gin.Context) {
	var req dto.CreateExamResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.resultService.CreateExamResult(req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// UpdateExamResult godoc
// @Summary (Admin) Update an exam result record
// @Tags Admin - Exam Results
// @Accept json
// @Produce json
// @Param id path int true "Exam result ID"
// @Param result body dto.CreateExamResultRequest true "Result fields"
// @Success 200 {object} dto.ExamResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/exam-results/{id} [put]
func (c *ExamResultController) UpdateExamResult(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req dto.CreateExamResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.resultService.UpdateExamResult(id, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// DeleteExamResult godoc
// @Summary (Admin) Delete an exam result and its details
// @Tags Admin - Exam Results
// @Produce json
// @Param id path int true "Exam result ID"
// @Success 204 "deleted"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/exam-results/{id} [delete]
func (c *ExamResultController) DeleteExamResult(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.resultService.DeleteExamResult(id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
