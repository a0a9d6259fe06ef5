package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/htloc/toeic-practice-api/internal/controller"
	"github.com/htloc/toeic-practice-api/internal/dto"
	"github.com/htloc/toeic-practice-api/internal/service"
)

type ExamPartController struct {
	partService service.ExamPartService
}

func NewExamPartController(partService service.ExamPartService) *ExamPartController {
	return &ExamPartController{partService: partService}
}

// CreatePart godoc
// @Summary (Admin) Create an exam part
// @Description part_number must be 1-7 and unique within the exam.
// @Tags Admin - Exam Parts
// @Accept json
// @Produce json
// @Param part body dto.CreateExamPartRequest true "Part definition"
// @Success 201 {object} dto.ExamPartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/exam-parts [post]
func (c *ExamPartController) CreatePart(ctx *gin.Context) {
	var req dto.CreateExamPartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	part, err := c.partService.CreatePart(req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, part)
}

// GetAllParts godoc
// @Summary (Admin) List exam parts
// @Tags Admin - Exam Parts
// @Produce json
// @Success 200 {array} dto.ExamPartResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/exam-parts [get]
func (c *ExamPartController) GetAllParts(ctx *gin.Context) {
	parts, err := c.partService.GetAllParts()
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, parts)
}

// GetPart godoc
// @Summary (Admin) Get an exam part
// @Tags Admin - Exam Parts
// @Produce json
// @Param id path int true "Part ID"
// @Success 200 {object} dto.ExamPartResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/exam-parts/{id} [get]
func (c *ExamPartController) GetPart(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	part, err := c.partService.GetPart(id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, part)
}

// UpdatePart godoc
// @Summary (Admin) Update an exam part
// @Tags Admin - Exam Parts
// @Accept json
// @Produce json
// @Param id path int true "Part ID"
// @Param part body dto.CreateExamPartRequest true "Part definition"
// @Success 200 {object} dto.ExamPartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/exam-parts/{id} [put]
func (c *ExamPartController) UpdatePart(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req dto.CreateExamPartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	part, err := c.partService.UpdatePart(id, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, part)
}

// DeletePart godoc
// @Summary (Admin) Delete an exam part
// @Tags Admin - Exam Parts
// @Produce json
// @Param id path int true "Part ID"
// @Success 204 "deleted"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/exam-parts/{id} [delete]
func (c *ExamPartController) DeletePart(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.partService.DeletePart(id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
