// Package api HTTP-транспорт мастера бронирования
package api

import (
	"fmt"
	"net/http"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingWizard/internal/api/handlers/change_step"
	"github.com/m04kA/SMC-BookingWizard/internal/api/handlers/create_session"
	"github.com/m04kA/SMC-BookingWizard/internal/api/handlers/delete_session"
	"github.com/m04kA/SMC-BookingWizard/internal/api/handlers/get_session"
	"github.com/m04kA/SMC-BookingWizard/internal/api/handlers/navigate_calendar"
	"github.com/m04kA/SMC-BookingWizard/internal/api/handlers/select_date"
	"github.com/m04kA/SMC-BookingWizard/internal/api/handlers/select_time"
	"github.com/m04kA/SMC-BookingWizard/internal/api/handlers/update_field"
	"github.com/m04kA/SMC-BookingWizard/internal/api/middleware"
)

const APIPrefix = "/api/v1"

// SessionService все операции сессий, которые обслуживает API
type SessionService interface {
	create_session.SessionService
	get_session.SessionService
	delete_session.SessionService
	navigate_calendar.SessionService
	select_date.SessionService
	select_time.SessionService
	update_field.SessionService
	change_step.SessionService
}

// Metrics сборщик метрик с HTTP-обработчиком для экспорта
type Metrics interface {
	middleware.HTTPMetrics
	Handler() http.Handler
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config параметры роутера
type Config struct {
	MetricsPath     string
	AllowedOrigins  []string
	SubmitPerSecond float64
	SubmitBurst     int
}

type recoveryLogger struct{ log Logger }

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error("panic recovered: %s", fmt.Sprint(v...))
}

// NewRouter собирает маршруты API. metrics может быть nil, если метрики выключены.
func NewRouter(service SessionService, metrics Metrics, cfg Config, log Logger) http.Handler {
	createSession := create_session.NewHandler(service, log)
	getSession := get_session.NewHandler(service, log)
	deleteSession := delete_session.NewHandler(service, log)
	navigateCalendar := navigate_calendar.NewHandler(service, log)
	selectDate := select_date.NewHandler(service, log)
	selectTime := select_time.NewHandler(service, log)
	updateField := update_field.NewHandler(service, log)
	changeStep := change_step.NewHandler(service, log)

	r := mux.NewRouter()

	if metrics != nil {
		r.Use(middleware.MetricsMiddleware(metrics))
		r.Handle(cfg.MetricsPath, metrics.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.MetricsPath)
	}

	api := r.PathPrefix(APIPrefix).Subrouter()

	// --- Сессии ---
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}", deleteSession.Handle).Methods(http.MethodDelete)

	// --- Шаг 1: календарь и слоты ---
	api.HandleFunc("/sessions/{sessionId}/calendar/{direction}", navigateCalendar.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/date", selectDate.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/time", selectTime.Handle).Methods(http.MethodPut)

	// --- Шаг 2: данные клиента ---
	api.HandleFunc("/sessions/{sessionId}/fields", updateField.Handle).Methods(http.MethodPatch)

	// --- Переходы ---
	// Отправка ограничена по частоте: каждая попытка обращается к внешнему шлюзу
	limiter := middleware.NewRateLimiter(cfg.SubmitPerSecond, cfg.SubmitBurst)
	api.Handle("/sessions/{sessionId}/steps/{action:submit}",
		limiter.Middleware(log)(http.HandlerFunc(changeStep.Handle))).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/steps/{action}", changeStep.Handle).Methods(http.MethodPost)

	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(cfg.AllowedOrigins),
		gorillahandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type"}),
	)
	recovery := gorillahandlers.RecoveryHandler(
		gorillahandlers.RecoveryLogger(recoveryLogger{log: log}),
		gorillahandlers.PrintRecoveryStack(true),
	)

	return cors(recovery(r))
}
