package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/htloc/toeic-practice-api/internal/controller"
	"github.com/htloc/toeic-practice-api/internal/dto"
	"github.com/htloc/toeic-practice-api/internal/middleware"
	"github.com/htloc/toeic-practice-api/internal/service"
	"github.com/rs/zerolog/log"
)

type ExamResultController struct {
	submissionService service.SubmissionService
	resultService     service.ExamResultService
	statisticsService service.StatisticsService
}

func NewExamResultController(
	submissionService service.SubmissionService,
	resultService service.ExamResultService,
	statisticsService service.StatisticsService,
) *ExamResultController {
	return &ExamResultController{
		submissionService: submissionService,
		resultService:     resultService,
		statisticsService: statisticsService,
	}
}

// SubmitExamAnswers godoc
// @Summary Submit answers for an exam and get the graded summary
// @Description Grades every answer against the stored keys, records one
// @Description attempt with its per-question details and returns the
// @Description aggregate counts. The user comes from the bearer token.
// @Tags User - Exam Results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param submission body dto.SubmitExamRequest true "Exam ID, answers and completion time"
// @Success 200 {object} dto.SubmissionSummary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /exam-results/submit [post]
func (c *ExamResultController) SubmitExamAnswers(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "authentication required"})
		return
	}

	var req dto.SubmitExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitExamAnswers: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	log.Info().Uint("userID", userID).Uint("examID", req.ExamID).Int("answerCount", len(req.Answers)).Msg("Received exam submission")

	summary, err := c.submissionService.SubmitAnswers(userID, req.ExamID, req.Answers, req.CompletedTime)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

// GetMyExamResults godoc
// @Summary List the authenticated user's attempts
// @Tags User - Exam Results
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ExamResultResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /exam-results/me [get]
func (c *ExamResultController) GetMyExamResults(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "authentication required"})
		return
	}

	results, err := c.resultService.GetExamResultsByUser(userID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// GetDailyExamAttempts godoc
// @Summary Daily attempt counts for the current month
// @Description COMPLETED attempts grouped by completion date.
// @Tags User - Statistics
// @Produce json
// @Success 200 {array} dto.DailyAttemptCount
// @Failure 500 {object} dto.ErrorResponse
// @Router /statistics/daily-attempts [get]
func (c *ExamResultController) GetDailyExamAttempts(ctx *gin.Context) {
	counts, err := c.statisticsService.DailyAttemptsThisMonth()
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, counts)
}

// GetAverageScoreLast7Days godoc
// @Summary Average score over the last seven days
// @Description Mean score of COMPLETED attempts with a recorded score.
// @Tags User - Statistics
// @Produce json
// @Success 200 {object} dto.AverageScoreResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /statistics/average-score [get]
func (c *ExamResultController) GetAverageScoreLast7Days(ctx *gin.Context) {
	avg, err := c.statisticsService.AverageScoreLast7Days()
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, avg)
}
