package update_field

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
	msgUnknownField       = "неизвестное поле формы"
	msgInvalidValue       = "некорректный тип значения поля"
	msgSessionNotFound    = "сессия не найдена"
	msgBookingCompleted   = "бронирование уже отправлено"
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

// Handle PATCH /api/v1/sessions/{sessionId}/fields
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req UpdateFieldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /sessions/{id}/fields - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	update, err := req.ToFieldUpdate()
	if err != nil {
		h.logger.Warn("PATCH /sessions/{id}/fields - %v", err)
		if errors.Is(err, errUnknownField) {
			handlers.RespondBadRequest(w, msgUnknownField)
		} else {
			handlers.RespondBadRequest(w, msgInvalidValue)
		}
		return
	}

	snapshot, err := h.service.Update(sessionID, update)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PATCH /sessions/{id}/fields - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrInvalidTransition):
			h.logger.Warn("PATCH /sessions/{id}/fields - Booking completed: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgBookingCompleted)

		default:
			h.logger.Error("PATCH /sessions/{id}/fields - Failed to update field: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, snapshot)
}
