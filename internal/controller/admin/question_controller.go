package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/htloc/toeic-practice-api/internal/controller"
	"github.com/htloc/toeic-practice-api/internal/dto"
	"github.com/htloc/toeic-practice-api/internal/service"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// CreateQuestion godoc
// @Summary (Admin) Create a question
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question definition"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.questionService.CreateQuestion(req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// GetAllQuestions godoc
// @Summary (Admin) List questions, optionally by part
// @Tags Admin - Questions
// @Produce json
// @Param part_id query int false "Filter by exam part"
// @Success 200 {array} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/questions [get]
func (c *QuestionController) GetAllQuestions(ctx *gin.Context) {
	var partID *uint
	if partIDStr := ctx.Query("part_id"); partIDStr != "" {
		val, err := strconv.ParseUint(partIDStr, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid part_id format"})
			return
		}
		id := uint(val)
		partID = &id
	}

	questions, err := c.questionService.GetAllQuestions(partID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// CountQuestions godoc
// @Summary (Admin) Count all questions
// @Tags Admin - Questions
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /admin/questions/count [get]
func (c *QuestionController) CountQuestions(ctx *gin.Context) {
	count, err := c.questionService.CountQuestions()
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"count": count})
}

// GetQuestion godoc
// @Summary (Admin) Get a question
// @Tags Admin - Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/questions/{id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	question, err := c.questionService.GetQuestion(id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// UpdateQuestion godoc
// @Summary (Admin) Update a question
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body dto.CreateQuestionRequest true "Question definition"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/questions/{id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.questionService.UpdateQuestion(id, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// UpdateQuestionImage godoc
// @Summary (Admin) Set the image reference of a question
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param image body dto.UpdateQuestionImageRequest true "Image reference"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/questions/{id}/image [put]
func (c *QuestionController) UpdateQuestionImage(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateQuestionImageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.questionService.UpdateQuestionImage(id, req.ImageFilename)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question
// @Tags Admin - Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 204 "deleted"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.questionService.DeleteQuestion(id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
