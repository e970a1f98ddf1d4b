package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BookingWizard/internal/calendar"
	"github.com/m04kA/SMC-BookingWizard/internal/catalog"
	"github.com/m04kA/SMC-BookingWizard/internal/domain"
	"github.com/m04kA/SMC-BookingWizard/internal/validation"
)

// Wizard конечный автомат пошагового бронирования: Step1 -> Step2 -> Success.
// Экземпляр принадлежит одной сессии и не синхронизирован: вызывающий код
// обязан не пересекать операции во времени.
type Wizard struct {
	sessionID    string
	state        State
	catalog      SlotCatalog
	gateway      SubmissionGateway
	timeProvider TimeProvider
	logger       Logger
}

// NewWizard создает мастер на первом шаге с пустой формой и текущим месяцем в календаре
func NewWizard(
	sessionID string,
	slots SlotCatalog,
	gateway SubmissionGateway,
	timeProvider TimeProvider,
	logger Logger,
) *Wizard {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}

	w := &Wizard{
		sessionID:    sessionID,
		catalog:      slots,
		gateway:      gateway,
		timeProvider: timeProvider,
		logger:       logger,
	}
	w.state = w.initialState()
	return w
}

func (w *Wizard) initialState() State {
	return State{
		Step:         domain.Step1,
		FormData:     domain.EmptyFormData(),
		Errors:       domain.ErrorMap{},
		VisibleMonth: domain.MonthOf(w.timeProvider.Now()),
	}
}

// Step возвращает текущий шаг
func (w *Wizard) Step() domain.Step {
	return w.state.Step
}

// State возвращает копию внутреннего состояния
func (w *Wizard) State() State {
	s := w.state
	s.Errors = w.state.Errors.Clone()
	return s
}

// Snapshot собирает представление для слоя отображения: сетку видимого месяца, слоты, форму и ошибки
func (w *Wizard) Snapshot() Snapshot {
	now := w.timeProvider.Now()
	return Snapshot{
		SessionID:       w.sessionID,
		Step:            w.state.Step,
		FormData:        w.state.FormData,
		Errors:          w.state.Errors.Clone(),
		SubmissionError: w.state.SubmissionError,
		VisibleMonth:    w.state.VisibleMonth,
		MonthTitle:      calendar.Title(w.state.VisibleMonth),
		Calendar:        calendar.Annotate(calendar.Grid(w.state.VisibleMonth), now, w.state.FormData.Date),
		Slots:           w.catalog.SlotsFor(w.state.FormData.Date),
	}
}

// Update изменяет одно поле формы и снимает ошибку только с этого поля
func (w *Wizard) Update(update FieldUpdate) error {
	if w.state.Step == domain.StepSuccess {
		w.logger.Warn("Update: session=%s field=%s rejected in step=%s", w.sessionID, update.Field(), w.state.Step)
		return fmt.Errorf("%w: update in step %s", ErrInvalidTransition, w.state.Step)
	}

	update.apply(&w.state.FormData)
	delete(w.state.Errors, update.Field())
	return nil
}

// SelectDate записывает выбранный день в формате YYYY-MM-DD. Переход на следующий шаг не выполняется.
func (w *Wizard) SelectDate(day domain.CalendarDay) error {
	if w.state.Step != domain.Step1 {
		return fmt.Errorf("%w: select date in step %s", ErrInvalidTransition, w.state.Step)
	}

	// Принадлежность странице определяется по видимому месяцу
	visible := w.state.VisibleMonth
	day.IsCurrentMonth = day.Year == visible.Year && day.Month == visible.Month

	if !calendar.IsSelectable(day, w.timeProvider.Now()) {
		w.logger.Warn("SelectDate: session=%s day=%s is not selectable", w.sessionID, day.ISODate())
		return fmt.Errorf("%w: %s", ErrDateUnavailable, day.ISODate())
	}

	w.state.FormData.Date = day.ISODate()
	delete(w.state.Errors, domain.FieldDate)
	return nil
}

// SelectTime записывает метку слота. Слот без свободных мест выбрать нельзя.
func (w *Wizard) SelectTime(label string) error {
	if w.state.Step != domain.Step1 {
		return fmt.Errorf("%w: select time in step %s", ErrInvalidTransition, w.state.Step)
	}

	slot, err := w.catalog.Find(label)
	if err != nil {
		if errors.Is(err, catalog.ErrSlotNotFound) {
			w.logger.Warn("SelectTime: session=%s slot=%q not found", w.sessionID, label)
			return fmt.Errorf("%w: %q", ErrSlotNotFound, label)
		}
		return err
	}

	if slot.IsFull() {
		w.logger.Warn("SelectTime: session=%s slot=%q has no spots left", w.sessionID, label)
		return fmt.Errorf("%w: %q", ErrSlotUnavailable, label)
	}

	w.state.FormData.Time = slot.Label
	delete(w.state.Errors, domain.FieldTime)
	return nil
}

// PreviousMonth листает календарь на месяц назад; форма не меняется
func (w *Wizard) PreviousMonth() {
	w.state.VisibleMonth = w.state.VisibleMonth.Previous()
}

// NextMonth листает календарь на месяц вперед; форма не меняется
func (w *Wizard) NextMonth() {
	w.state.VisibleMonth = w.state.VisibleMonth.Next()
}

// Next проверяет первый шаг и при отсутствии ошибок переходит ко второму.
// Возвращает true, если переход выполнен; ошибки валидации сохраняются в состоянии.
func (w *Wizard) Next() (bool, error) {
	if w.state.Step != domain.Step1 {
		return false, fmt.Errorf("%w: next in step %s", ErrInvalidTransition, w.state.Step)
	}

	w.dropPastDate()

	errs := validation.Validate(domain.Step1, w.state.FormData)
	if len(errs) > 0 {
		w.state.Errors = errs
		w.logger.Info("Next: session=%s stays in step=%s, %d invalid fields", w.sessionID, w.state.Step, len(errs))
		return false, nil
	}

	w.state.Step = domain.Step2
	w.state.Errors = domain.ErrorMap{}
	w.logger.Info("Next: session=%s moved to step=%s (date=%s, time=%s)",
		w.sessionID, w.state.Step, w.state.FormData.Date, w.state.FormData.Time)
	return true, nil
}

// Back возвращает на первый шаг без повторной проверки, введенные данные сохраняются
func (w *Wizard) Back() error {
	if w.state.Step != domain.Step2 {
		return fmt.Errorf("%w: back in step %s", ErrInvalidTransition, w.state.Step)
	}

	w.state.Step = domain.Step1
	w.state.Errors = domain.ErrorMap{}
	w.state.SubmissionError = ""
	w.logger.Info("Back: session=%s moved to step=%s", w.sessionID, w.state.Step)
	return nil
}

// Submit проверяет второй шаг и передает бронирование в шлюз.
// В Success мастер переходит только после подтверждения шлюза; при отказе остается на Step2
// и возвращает ErrSubmissionFailed. Повторная отправка выполняется только по действию пользователя.
func (w *Wizard) Submit(ctx context.Context) (bool, error) {
	if w.state.Step != domain.Step2 {
		return false, fmt.Errorf("%w: submit in step %s", ErrInvalidTransition, w.state.Step)
	}

	w.state.SubmissionError = ""

	// 1. Дата могла стать прошедшей, пока открыт второй шаг: выбрать ее заново можно только на первом
	if w.dropPastDate() {
		w.state.Step = domain.Step1
		w.state.Errors = domain.ErrorMap{domain.FieldDate: validation.MsgDateRequired}
		w.logger.Info("Submit: session=%s returned to step=%s, selected date has passed", w.sessionID, w.state.Step)
		return false, nil
	}

	// 2. Валидация данных клиента
	errs := validation.Validate(domain.Step2, w.state.FormData)
	if len(errs) > 0 {
		w.state.Errors = errs
		w.logger.Info("Submit: session=%s stays in step=%s, %d invalid fields", w.sessionID, w.state.Step, len(errs))
		return false, nil
	}
	w.state.Errors = domain.ErrorMap{}

	// 3. Отправка в шлюз
	record := domain.BookingRecord{
		SessionID:   w.sessionID,
		Form:        w.state.FormData,
		SubmittedAt: w.timeProvider.Now(),
	}
	if err := w.gateway.Submit(ctx, record); err != nil {
		w.state.SubmissionError = MsgSubmissionFailed
		w.logger.Error("Submit: session=%s gateway rejected booking: %v", w.sessionID, err)
		return false, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	// 4. Подтверждение
	w.state.Step = domain.StepSuccess
	w.logger.Info("Submit: session=%s booking for %s %s accepted", w.sessionID, w.state.FormData.Date, w.state.FormData.Time)
	return true, nil
}

// Reset из Success возвращает мастер на первый шаг с пустой формой
func (w *Wizard) Reset() error {
	if w.state.Step != domain.StepSuccess {
		return fmt.Errorf("%w: reset in step %s", ErrInvalidTransition, w.state.Step)
	}

	w.state.Step = domain.Step1
	w.state.FormData = domain.EmptyFormData()
	w.state.Errors = domain.ErrorMap{}
	w.state.SubmissionError = ""
	w.logger.Info("Reset: session=%s started a new booking", w.sessionID)
	return nil
}

// dropPastDate снимает выбор даты, которая стала прошедшей после выбора (сессия пережила полночь).
// Возвращает true, если дата была снята.
func (w *Wizard) dropPastDate() bool {
	day, err := calendar.ParseDay(w.state.FormData.Date)
	if err != nil || !calendar.IsPastDate(day, w.timeProvider.Now()) {
		return false
	}

	w.logger.Warn("session=%s selected date %s is in the past now, clearing it", w.sessionID, w.state.FormData.Date)
	w.state.FormData.Date = ""
	return true
}
