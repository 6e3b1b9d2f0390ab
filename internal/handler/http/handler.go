package http

import (
	"net/http"

	"github.com/avdeyev/authgate/internal/logger"
	"github.com/avdeyev/authgate/internal/service"
	"github.com/avdeyev/authgate/internal/utils"
	"github.com/avdeyev/authgate/models"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// writeError sends the uniform error envelope with the given status code.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
