package common

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

var errorMappings = []errorMapping{
	{domain.ErrInvalidInput, http.StatusBadRequest, "datos no válidos"},
	{domain.ErrUserNotFound, http.StatusNotFound, "usuario no encontrado"},
	{domain.ErrChartNotFound, http.StatusNotFound, "carta natal no encontrada"},
	{domain.ErrBirthDataNotSet, http.StatusNotFound, "faltan los datos de nacimiento"},
	{domain.ErrLocationNotFound, http.StatusNotFound, "lugar no encontrado"},
	{domain.ErrEmailTaken, http.StatusConflict, "el email ya está registrado"},
	{domain.ErrPremiumRequired, http.StatusPaymentRequired, "función disponible solo para usuarios premium"},
	{domain.ErrComparisonLimit, http.StatusTooManyRequests, "has alcanzado el límite de comparaciones gratuitas"},
	{domain.ErrStorageDisabled, http.StatusServiceUnavailable, "la exportación no está disponible"},
}

// StatusFor HTTP статус и текст для клиента по ошибке UseCase
func StatusFor(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "error interno del servidor"
}

// WriteError отвечает ошибкой. Бизнес-ошибки уже залогированы в UseCase.
func WriteError(ctx *gin.Context, log *slog.Logger, err error) {
	status, message := StatusFor(err)
	if !domain.IsBusinessError(err) {
		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				"method", ctx.Request.Method,
				"path", ctx.FullPath(),
				"error", err,
			)
		} else {
			log.Debug("request rejected", "path", ctx.FullPath(), "error", err)
		}
	}

	body := gin.H{"error": message}
	if status == http.StatusBadRequest {
		body["details"] = err.Error()
	}
	ctx.AbortWithStatusJSON(status, body)
}
