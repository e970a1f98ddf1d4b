package change_step

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingWizard/internal/api/handlers"
	"github.com/m04kA/SMC-BookingWizard/internal/service/sessions"
	"github.com/m04kA/SMC-BookingWizard/internal/wizard"
)

const (
	ActionNext   = "next"
	ActionBack   = "back"
	ActionSubmit = "submit"
	ActionReset  = "reset"
)

const (
	msgInvalidAction   = "некорректное действие, ожидается next, back, submit или reset"
	msgSessionNotFound = "сессия не найдена"
	msgWrongStep       = "действие недоступно на текущем шаге"
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

// Handle POST /api/v1/sessions/{sessionId}/steps/{action}
// Ошибки валидации не являются ошибкой запроса: они возвращаются в снимке со статусом 200.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]
	action := vars["action"]

	var (
		snapshot wizard.Snapshot
		err      error
	)
	switch action {
	case ActionNext:
		snapshot, err = h.service.Next(sessionID)
	case ActionBack:
		snapshot, err = h.service.Back(sessionID)
	case ActionSubmit:
		snapshot, err = h.service.Submit(r.Context(), sessionID)
	case ActionReset:
		snapshot, err = h.service.Reset(sessionID)
	default:
		h.logger.Warn("POST /sessions/{id}/steps - Invalid action: %q", action)
		handlers.RespondBadRequest(w, msgInvalidAction)
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/steps/%s - Session not found: session_id=%s", action, sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrInvalidTransition):
			h.logger.Warn("POST /sessions/{id}/steps/%s - Wrong step: session_id=%s", action, sessionID)
			handlers.RespondConflict(w, msgWrongStep)

		case errors.Is(err, wizard.ErrSubmissionFailed):
			h.logger.Error("POST /sessions/{id}/steps/%s - Gateway failed: session_id=%s, error=%v", action, sessionID, err)
			handlers.RespondJSON(w, http.StatusBadGateway, snapshot)

		default:
			h.logger.Error("POST /sessions/{id}/steps/%s - Failed: session_id=%s, error=%v", action, sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/steps/%s - session_id=%s, step=%s, errors=%d",
		action, sessionID, snapshot.Step, len(snapshot.Errors))
	handlers.RespondJSON(w, http.StatusOK, snapshot)
}
