package create_session

import (
	"net/http"

	"github.com/m04kA/SMC-BookingWizard/internal/api/handlers"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	snapshot := h.service.Create()

	h.logger.Info("POST /sessions - Session created: session_id=%s", snapshot.SessionID)
	handlers.RespondJSON(w, http.StatusCreated, snapshot)
}
