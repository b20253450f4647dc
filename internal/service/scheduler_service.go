package service

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// SchedulerService wraps cron-based jobs, used to run the reminder summary
// on an interval or at a fixed time of day.
type SchedulerService struct {
	cron *cron.Cron
}

func NewSchedulerService(loc *time.Location) *SchedulerService {
	return &SchedulerService{
		cron: cron.New(cron.WithLocation(loc), cron.WithSeconds()),
	}
}

// ScheduleDaily registers a daily job at the given HH:MM time.
func (s *SchedulerService) ScheduleDaily(timeStr string, job func()) (cron.EntryID, error) {
	spec, err := buildDailySpec(timeStr)
	if err != nil {
		return 0, err
	}
	return s.cron.AddFunc(spec, job)
}

// ScheduleInterval registers a periodic job every given duration.
func (s *SchedulerService) ScheduleInterval(interval time.Duration, job func()) (cron.EntryID, error) {
	if interval <= 0 {
		return 0, fmt.Errorf("interval must be positive")
	}
	seconds := int(interval.Seconds())
	if seconds < 1 {
		seconds = 1
	}
	return s.cron.AddFunc(fmt.Sprintf("@every %ds", seconds), job)
}

func (s *SchedulerService) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for a running job to finish.
func (s *SchedulerService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func buildDailySpec(timeStr string) (string, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(timeStr, "%d:%d", &hour, &minute); err != nil {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", timeStr)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("time %q out of range", timeStr)
	}
	// cron format: second minute hour dom month dow
	return fmt.Sprintf("0 %d %d * * *", minute, hour), nil
}
