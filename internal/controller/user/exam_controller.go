package user

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
	examService     service.ExamService
	assemblyService service.ExamAssemblyService
}

func NewExamController(examService service.ExamService, assemblyService service.ExamAssemblyService) *ExamController {
	return &ExamController{examService: examService, assemblyService: assemblyService}
}

// GetAllExams godoc
// @Summary List all available exams
// @Tags User - Exams
// @Produce json
// @Success 200 {array} dto.ExamResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /exams [get]
func (c *ExamController) GetAllExams(ctx *gin.Context) {
	exams, err := c.examService.GetAllExams()
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// GetExam godoc
// @Summary Get exam metadata
// @Tags User - Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.ExamResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{exam_id} [get]
func (c *ExamController) GetExam(ctx *gin.Context) {
	examID, ok := pathID(ctx, "exam_id")
	if !ok {
		return
	}
	exam, err := c.examService.GetExam(examID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// GetExamQuestions godoc
// @Summary Get the assembled questions of an exam
// @Description Returns the exam's parts with capped, ordered questions. With
// @Description expired=true the questions are reshuffled and the new order is
// @Description persisted for subsequent calls.
// @Tags User - Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param expired query bool false "Timer has lapsed; reshuffle and persist order"
// @Success 200 {object} dto.ExamPayload
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /exams/{exam_id}/questions [get]
func (c *ExamController) GetExamQuestions(ctx *gin.Context) {
	examID, ok := pathID(ctx, "exam_id")
	if !ok {
		return
	}
	timeExpired := ctx.Query("expired") == "true"

	log.Info().Uint("examID", examID).Bool("expired", timeExpired).Msg("Assembling exam")

	payload, err := c.assemblyService.AssembleExam(examID, timeExpired)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, payload)
}

// GetExamQuestionsPaged godoc
// @Summary Get one part of an exam by page number
// @Description Page N returns the part whose part_number is N. total_pages is
// @Description the exam's part count.
// @Tags User - Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param page query int false "Part number to fetch (default 1)"
// @Success 200 {object} dto.ExamPartPayload
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /exams/{exam_id}/questions/paged [get]
func (c *ExamController) GetExamQuestionsPaged(ctx *gin.Context) {
	examID, ok := pathID(ctx, "exam_id")
	if !ok {
		return
	}

	page := 1
	if pageStr := ctx.Query("page"); pageStr != "" {
		val, err := strconv.Atoi(pageStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid page format"})
			return
		}
		page = val
	}

	payload, err := c.assemblyService.AssembleExamPart(examID, page)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, payload)
}

func pathID(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}
