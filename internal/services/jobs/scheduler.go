package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/jobs"
	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/service"
)

// defaultRetries задержки повторов после первой неудачи: now + 1m + 10m + 30m
var defaultRetries = []time.Duration{
	1 * time.Minute,
	10 * time.Minute,
	30 * time.Minute,
}

// Scheduler управляет запуском периодических джоб
type Scheduler struct {
	jobs           []jobs.Job
	alerterService service.IAlerterService
	log            *slog.Logger

	retries []time.Duration
	now     func() time.Time
	after   func(d time.Duration) <-chan time.Time
}

// NewScheduler создаёт новый планировщик джоб, alerterService может быть nil
func NewScheduler(log *slog.Logger, alerterService service.IAlerterService) *Scheduler {
	return &Scheduler{
		jobs:           make([]jobs.Job, 0),
		alerterService: alerterService,
		log:            log,
		retries:        defaultRetries,
		now:            time.Now,
		after:          time.After,
	}
}

// Register регистрирует джобу в планировщике
func (s *Scheduler) Register(job jobs.Job) {
	s.jobs = append(s.jobs, job)
	s.log.Debug("job registered", "job_name", job.Name(), "total_jobs", len(s.jobs))
}

// JobNames имена зарегистрированных джоб в порядке регистрации
func (s *Scheduler) JobNames() []string {
	names := make([]string, 0, len(s.jobs))
	for _, job := range s.jobs {
		names = append(names, job.Name())
	}
	return names
}

// Start запускает все джобы и блокируется до отмены контекста
func (s *Scheduler) Start(ctx context.Context) error {
	if len(s.jobs) == 0 {
		s.log.Warn("no jobs registered, scheduler not started")
		return nil
	}

	s.log.Info("starting job scheduler", "jobs_count", len(s.jobs))

	var wg sync.WaitGroup
	for _, job := range s.jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.runJob(ctx, job)
		}()
	}
	wg.Wait()

	return nil
}

// runJob запускает отдельную джобу в цикле
func (s *Scheduler) runJob(ctx context.Context, job jobs.Job) {
	jobName := job.Name()
	for {
		now := s.now()
		nextRun := job.NextRun(now)
		s.log.Debug("job scheduled", "job_name", jobName, "next_run", nextRun)

		select {
		case <-ctx.Done():
			s.log.Info("job stopped by context", "job_name", jobName)
			return
		case <-s.after(nextRun.Sub(now)):
			attemptErrors, err := s.executeJobWithRetry(ctx, job)
			if err != nil {
				s.log.Error("job failed after all retries",
					"job_name", jobName,
					"error", err,
					"attempts", errors.Join(attemptErrorList(attemptErrors)...),
				)
				s.sendAlert(ctx, jobName, attemptErrors)
				continue
			}
			s.log.Info("job executed successfully", "job_name", jobName)
		}
	}
}

// jobAttemptError представляет ошибку конкретной попытки выполнения джобы
type jobAttemptError struct {
	attempt int
	err     error
}

func attemptErrorList(attempts []jobAttemptError) []error {
	list := make([]error, 0, len(attempts))
	for _, a := range attempts {
		list = append(list, fmt.Errorf("attempt %d: %w", a.attempt, a.err))
	}
	return list
}

// executeJobWithRetry выполняет джобу с повторами.
// Возвращает ошибки всех попыток и финальную ошибку.
func (s *Scheduler) executeJobWithRetry(ctx context.Context, job jobs.Job) ([]jobAttemptError, error) {
	jobName := job.Name()
	var attemptErrors []jobAttemptError

	for attempt := 1; ; attempt++ {
		err := job.Run(ctx)
		if err == nil {
			return nil, nil
		}
		attemptErrors = append(attemptErrors, jobAttemptError{attempt: attempt, err: err})

		remaining := len(s.retries) - attempt + 1
		if remaining <= 0 {
			break
		}
		s.log.Warn("job execution failed, will retry",
			"job_name", jobName,
			"attempt", attempt,
			"retries_remaining", remaining,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return attemptErrors, ctx.Err()
		case <-s.after(s.retries[attempt-1]):
		}
	}

	return attemptErrors, fmt.Errorf("all retry attempts failed (total attempts: %d)", len(attemptErrors))
}

// sendAlert алертит на финальную ошибку после ретраев
func (s *Scheduler) sendAlert(ctx context.Context, jobName string, attemptErrors []jobAttemptError) {
	if s.alerterService == nil || ctx.Err() != nil {
		return
	}

	var message strings.Builder
	message.WriteString("⚠️ Финальная ошибка планировщика, ретраи исчерпаны\n\n")
	fmt.Fprintf(&message, "Джоба: %s\n\n", jobName)
	message.WriteString("Ошибки попыток:\n")
	for _, attemptErr := range attemptErrors {
		fmt.Fprintf(&message, "Попытка %d: %s\n", attemptErr.attempt, attemptErr.err)
	}

	if alertErr := s.alerterService.SendAlert(ctx, strings.TrimSuffix(message.String(), "\n")); alertErr != nil {
		s.log.Warn("failed to send job failure alert",
			"job_name", jobName,
			"error", alertErr,
		)
	}
}
