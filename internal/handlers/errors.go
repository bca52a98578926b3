package handlers

import (
	"errors"
	"net/http"

	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// writeError maps the store error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is a storage failure: logged with its cause,
// reported opaquely.
func writeError(ctx *gin.Context, err error) {
	var validation *apperrors.ValidationError

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Operation not allowed"})
	case errors.Is(err, apperrors.ErrEmailTaken):
		ctx.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
	case errors.As(err, &validation):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": validation.Error()})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("storage failure")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
