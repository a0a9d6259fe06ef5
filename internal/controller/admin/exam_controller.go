package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/htloc/toeic-practice-api/internal/controller"
	"github.com/htloc/toeic-practice-api/internal/dto"
	"github.com/htloc/toeic-practice-api/internal/service"
	"github.com/rs/zerolog/log"
)

type ExamController struct {
	examService service.ExamService
}

func NewExamController(examService service.ExamService) *ExamController {
	return &ExamController{examService: examService}
}

// CreateExam godoc
// @Summary (Admin) Create an exam
// @Tags Admin - Exams
// @Accept json
// @Produce json
// @Param exam body dto.CreateExamRequest true "Exam definition"
// @Success 201 {object} dto.ExamResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.CreateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	exam, err := c.examService.CreateExam(req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	log.Info().Uint("examID", exam.ID).Msg("Exam created")
	ctx.JSON(http.StatusCreated, exam)
}

// UpdateExam godoc
// @Summary (Admin) Update an exam
// @Tags Admin - Exams
// @Accept json
// @Produce json
// @Param id path int true "Exam ID"
// @Param exam body dto.CreateExamRequest true "Exam definition"
// @Success 200 {object} dto.ExamResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/exams/{id} [put]
func (c *ExamController) UpdateExam(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req dto.CreateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	exam, err := c.examService.UpdateExam(id, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// DeleteExam godoc
// @Summary (Admin) Delete an exam
// @Tags Admin - Exams
// @Produce json
// @Param id path int true "Exam ID"
// @Success 204 "deleted"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/exams/{id} [delete]
func (c *ExamController) DeleteExam(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.examService.DeleteExam(id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func pathID(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}
