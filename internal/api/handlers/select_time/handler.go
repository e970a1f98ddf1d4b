package select_time

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingWizard/internal/api/handlers"
	"github.com/m04kA/SMC-BookingWizard/internal/service/sessions"
	"github.com/m04kA/SMC-BookingWizard/internal/wizard"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionNotFound    = "сессия не найдена"
	msgWrongStep          = "время можно выбрать только на первом шаге"
	msgSlotNotFound       = "временной слот не найден"
	msgSlotUnavailable    = "в выбранном слоте нет свободных мест"
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

// Handle PUT /api/v1/sessions/{sessionId}/time
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/time - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snapshot, err := h.service.SelectTime(sessionID, req.Label)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/time - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrInvalidTransition):
			h.logger.Warn("PUT /sessions/{id}/time - Wrong step: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgWrongStep)

		case errors.Is(err, wizard.ErrSlotNotFound):
			h.logger.Warn("PUT /sessions/{id}/time - Slot not found: session_id=%s, label=%q", sessionID, req.Label)
			handlers.RespondUnprocessable(w, msgSlotNotFound)

		case errors.Is(err, wizard.ErrSlotUnavailable):
			h.logger.Warn("PUT /sessions/{id}/time - Slot full: session_id=%s, label=%q", sessionID, req.Label)
			handlers.RespondUnprocessable(w, msgSlotUnavailable)

		default:
			h.logger.Error("PUT /sessions/{id}/time - Failed to select time: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /sessions/{id}/time - Time selected: session_id=%s, label=%q", sessionID, snapshot.FormData.Time)
	handlers.RespondJSON(w, http.StatusOK, snapshot)
}
