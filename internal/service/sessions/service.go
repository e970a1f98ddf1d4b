package sessions

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
	"github.com/m04kA/SMC-BookingWizard/internal/wizard"
)

// Исходы операций для метрик
const (
	outcomeOK       = "ok"
	outcomeAdvanced = "advanced"
	outcomeInvalid  = "invalid"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
	outcomeAccepted = "accepted"
)

type session struct {
	mu       sync.Mutex
	wizard   *wizard.Wizard
	lastSeen time.Time
	removed  bool
}

// Service хранит мастера бронирования для каждой сессии.
// Операции одной сессии выполняются строго по очереди.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*session

	deps          Dependencies
	ttl           time.Duration
	submitTimeout time.Duration
	newID         func() string
}

// NewService создает сервис сессий.
// ttl - время простоя, после которого сессия удаляется; submitTimeout - ограничение на одну отправку в шлюз.
func NewService(deps Dependencies, ttl, submitTimeout time.Duration) *Service {
	if deps.TimeProvider == nil {
		deps.TimeProvider = &wizard.RealTimeProvider{}
	}
	if deps.Metrics == nil {
		deps.Metrics = nopMetrics{}
	}

	return &Service{
		sessions:      make(map[string]*session),
		deps:          deps,
		ttl:           ttl,
		submitTimeout: submitTimeout,
		newID:         uuid.NewString,
	}
}

// Create открывает новую сессию на первом шаге
func (s *Service) Create() wizard.Snapshot {
	id := s.newID()
	w := wizard.NewWizard(id, s.deps.Catalog, s.deps.Gateway, s.deps.TimeProvider, s.deps.Logger)

	s.mu.Lock()
	s.sessions[id] = &session{wizard: w, lastSeen: s.deps.TimeProvider.Now()}
	count := len(s.sessions)
	s.mu.Unlock()

	s.deps.Metrics.SetActiveSessions(count)
	s.deps.Metrics.ObserveOperation("create", outcomeOK)
	s.deps.Logger.Info("Create: session=%s opened, active=%d", id, count)
	return w.Snapshot()
}

// Get возвращает текущее представление сессии
func (s *Service) Get(id string) (wizard.Snapshot, error) {
	return s.do(id, func(*wizard.Wizard) error { return nil })
}

// Update изменяет одно поле формы
func (s *Service) Update(id string, update wizard.FieldUpdate) (wizard.Snapshot, error) {
	return s.do(id, func(w *wizard.Wizard) error {
		err := w.Update(update)
		s.observe("update", err, outcomeOK)
		return err
	})
}

// SelectDate выбирает день в календаре
func (s *Service) SelectDate(id string, day domain.CalendarDay) (wizard.Snapshot, error) {
	return s.do(id, func(w *wizard.Wizard) error {
		err := w.SelectDate(day)
		s.observe("select_date", err, outcomeOK)
		return err
	})
}

// SelectTime выбирает временной слот
func (s *Service) SelectTime(id, label string) (wizard.Snapshot, error) {
	return s.do(id, func(w *wizard.Wizard) error {
		err := w.SelectTime(label)
		s.observe("select_time", err, outcomeOK)
		return err
	})
}

// PreviousMonth листает календарь назад
func (s *Service) PreviousMonth(id string) (wizard.Snapshot, error) {
	return s.do(id, func(w *wizard.Wizard) error {
		w.PreviousMonth()
		return nil
	})
}

// NextMonth листает календарь вперед
func (s *Service) NextMonth(id string) (wizard.Snapshot, error) {
	return s.do(id, func(w *wizard.Wizard) error {
		w.NextMonth()
		return nil
	})
}

// Next переходит ко второму шагу; ошибки валидации отражаются в снимке
func (s *Service) Next(id string) (wizard.Snapshot, error) {
	return s.do(id, func(w *wizard.Wizard) error {
		advanced, err := w.Next()
		s.observe("next", err, advancedOutcome(advanced))
		return err
	})
}

// Back возвращает на первый шаг
func (s *Service) Back(id string) (wizard.Snapshot, error) {
	return s.do(id, func(w *wizard.Wizard) error {
		err := w.Back()
		s.observe("back", err, outcomeOK)
		return err
	})
}

// Submit отправляет бронирование в шлюз с ограничением по времени
func (s *Service) Submit(ctx context.Context, id string) (wizard.Snapshot, error) {
	return s.do(id, func(w *wizard.Wizard) error {
		if s.submitTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.submitTimeout)
			defer cancel()
		}

		advanced, err := w.Submit(ctx)
		s.observe("submit", err, advancedOutcome(advanced))

		switch {
		case advanced:
			s.deps.Metrics.ObserveSubmission(outcomeAccepted)
		case errors.Is(err, wizard.ErrSubmissionFailed):
			s.deps.Metrics.ObserveSubmission(outcomeFailed)
		}
		return err
	})
}

// Reset начинает новое бронирование после успешной отправки
func (s *Service) Reset(id string) (wizard.Snapshot, error) {
	return s.do(id, func(w *wizard.Wizard) error {
		err := w.Reset()
		s.observe("reset", err, outcomeOK)
		return err
	})
}

// Delete закрывает сессию
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	count := len(s.sessions)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	sess.mu.Lock()
	sess.removed = true
	sess.mu.Unlock()

	s.deps.Metrics.SetActiveSessions(count)
	s.deps.Logger.Info("Delete: session=%s closed, active=%d", id, count)
	return nil
}

// EvictExpired удаляет сессии, простаивающие дольше ttl. Сессии с операцией в процессе не трогает.
// Возвращает число удаленных сессий.
func (s *Service) EvictExpired() int {
	deadline := s.deps.TimeProvider.Now().Add(-s.ttl)

	s.mu.Lock()
	evicted := 0
	for id, sess := range s.sessions {
		if !sess.mu.TryLock() {
			continue
		}
		if sess.lastSeen.Before(deadline) {
			sess.removed = true
			delete(s.sessions, id)
			evicted++
		}
		sess.mu.Unlock()
	}
	count := len(s.sessions)
	s.mu.Unlock()

	s.deps.Metrics.SetActiveSessions(count)
	if evicted > 0 {
		s.deps.Logger.Info("EvictExpired: removed %d idle sessions, active=%d", evicted, count)
	}
	return evicted
}

// Count возвращает число активных сессий
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// do выполняет операцию над мастером сессии под ее мьютексом и возвращает снимок после операции.
// Снимок возвращается и вместе с ошибкой мастера, чтобы клиент мог отобразить состояние.
func (s *Service) do(id string, op func(w *wizard.Wizard) error) (wizard.Snapshot, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return wizard.Snapshot{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.removed {
		return wizard.Snapshot{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	err := op(sess.wizard)
	sess.lastSeen = s.deps.TimeProvider.Now()
	return sess.wizard.Snapshot(), err
}

func (s *Service) observe(operation string, err error, success string) {
	outcome := success
	switch {
	case errors.Is(err, wizard.ErrSubmissionFailed):
		outcome = outcomeFailed
	case err != nil:
		outcome = outcomeRejected
	}
	s.deps.Metrics.ObserveOperation(operation, outcome)
}

func advancedOutcome(advanced bool) string {
	if advanced {
		return outcomeAdvanced
	}
	return outcomeInvalid
}
