package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/htloc/toeic-practice-api/internal/apperror"
	"github.com/htloc/toeic-practice-api/internal/dto"
	"github.com/rs/zerolog/log"
)

// RespondError maps the service error taxonomy onto HTTP responses. Internal
// errors are logged with their cause and surfaced generically.
func RespondError(ctx *gin.Context, err error) {
	switch {
	case apperror.IsInvalid(err):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: apperror.PublicMessage(err)})
	case apperror.IsNotFound(err):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: apperror.PublicMessage(err)})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Request failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: apperror.PublicMessage(err)})
	}
}
