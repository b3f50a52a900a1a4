package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"backend/models"
)

// NotificationScheduler fires meal reminders at their scheduled times of
// day. The job list lives on the scheduler instance, owned by whoever
// constructed it; there is no process-wide registry.
type NotificationScheduler struct {
	notifier *TelegramService

	mu   sync.Mutex
	jobs []reminderJob
}

type reminderJob struct {
	ID   uuid.UUID
	At   models.Clock
	Meal models.ScheduledMeal
}

func NewNotificationScheduler(notifier *TelegramService) *NotificationScheduler {
	return &NotificationScheduler{notifier: notifier}
}

// ScheduleMeals replaces any pending reminders with one job per meal in the
// schedule. Returns the number of jobs registered.
func (s *NotificationScheduler) ScheduleMeals(schedule *models.DaySchedule) int {
	jobs := make([]reminderJob, 0, len(schedule.Meals))
	for _, meal := range schedule.Meals {
		jobs = append(jobs, reminderJob{
			ID:   uuid.New(),
			At:   meal.Time,
			Meal: meal,
		})
	}

	s.mu.Lock()
	s.jobs = jobs
	s.mu.Unlock()
	return len(jobs)
}

// Clear drops all pending reminders.
func (s *NotificationScheduler) Clear() {
	s.mu.Lock()
	s.jobs = nil
	s.mu.Unlock()
}

// Pending returns the number of registered reminders.
func (s *NotificationScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Run checks once a minute whether a reminder is due and fires it. Jobs
// repeat daily until cleared or rescheduled. Blocks until ctx is canceled.
func (s *NotificationScheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.fireDue(now)
		}
	}
}

// fireDue sends every reminder matching the current wall-clock minute.
func (s *NotificationScheduler) fireDue(now time.Time) {
	current := models.Clock{Hour: now.Hour(), Minute: now.Minute()}

	s.mu.Lock()
	due := make([]reminderJob, 0, 1)
	for _, job := range s.jobs {
		if job.At == current {
			due = append(due, job)
		}
	}
	s.mu.Unlock()

	for _, job := range due {
		if err := s.notifier.SendMealReminder(job.Meal); err != nil {
			log.Printf("failed to send reminder for meal %d: %v", job.Meal.Number, err)
			continue
		}
		log.Printf("sent reminder %s for meal %d", job.ID, job.Meal.Number)
	}
}
