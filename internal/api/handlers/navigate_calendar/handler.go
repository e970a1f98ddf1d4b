package navigate_calendar

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingWizard/internal/api/handlers"
	"github.com/m04kA/SMC-BookingWizard/internal/service/sessions"
	"github.com/m04kA/SMC-BookingWizard/internal/wizard"
)

const (
	DirectionPrevious = "previous"
	DirectionNext     = "next"
)

const (
	msgSessionNotFound  = "сессия не найдена"
	msgInvalidDirection = "некорректное направление, ожидается previous или next"
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

// Handle POST /api/v1/sessions/{sessionId}/calendar/{direction}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]
	direction := vars["direction"]

	var (
		snapshot wizard.Snapshot
		err      error
	)
	switch direction {
	case DirectionPrevious:
		snapshot, err = h.service.PreviousMonth(sessionID)
	case DirectionNext:
		snapshot, err = h.service.NextMonth(sessionID)
	default:
		h.logger.Warn("POST /sessions/{id}/calendar - Invalid direction: %q", direction)
		handlers.RespondBadRequest(w, msgInvalidDirection)
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/calendar - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("POST /sessions/{id}/calendar - Failed to navigate: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, snapshot)
}
