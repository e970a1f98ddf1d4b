package select_date

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
	msgInvalidDay         = "некорректная дата"
	msgSessionNotFound    = "сессия не найдена"
	msgWrongStep          = "дату можно выбрать только на первом шаге"
	msgDateUnavailable    = "выбранная дата недоступна"
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

// Handle PUT /api/v1/sessions/{sessionId}/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	day, err := req.ToCalendarDay()
	if err != nil {
		h.logger.Warn("PUT /sessions/{id}/date - %v", err)
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	snapshot, err := h.service.SelectDate(sessionID, day)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/date - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrInvalidTransition):
			h.logger.Warn("PUT /sessions/{id}/date - Wrong step: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgWrongStep)

		case errors.Is(err, wizard.ErrDateUnavailable):
			h.logger.Warn("PUT /sessions/{id}/date - Date unavailable: session_id=%s, date=%s", sessionID, day.ISODate())
			handlers.RespondUnprocessable(w, msgDateUnavailable)

		default:
			h.logger.Error("PUT /sessions/{id}/date - Failed to select date: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /sessions/{id}/date - Date selected: session_id=%s, date=%s", sessionID, snapshot.FormData.Date)
	handlers.RespondJSON(w, http.StatusOK, snapshot)
}
