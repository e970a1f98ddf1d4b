package sessions

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// StartSweeper запускает периодическую очистку простаивающих сессий по cron-расписанию.
// Остановка через Stop() возвращенного планировщика.
func (s *Service) StartSweeper(schedule string) (*cron.Cron, error) {
	c := cron.New()

	if _, err := c.AddFunc(schedule, func() { s.EvictExpired() }); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSchedule, schedule, err)
	}

	c.Start()
	s.deps.Logger.Info("StartSweeper: idle sessions are evicted on %q, ttl=%s", schedule, s.ttl)
	return c, nil
}
