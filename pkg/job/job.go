package job

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/clinicemr/clinic/pkg/logger"
)

type Func func(ctx context.Context) error

type job struct {
	name     string
	interval time.Duration
	fn       Func
}

// Service runs registered jobs on fixed intervals, first run right after Start.
type Service struct {
	jobs []job
	wg   *sync.WaitGroup
}

func NewService() *Service {
	return &Service{
		wg: &sync.WaitGroup{},
	}
}

func (s *Service) RegisterJob(name string, interval time.Duration, fn Func) *Service {
	return s.TryRegisterJob(true, name, interval, fn)
}

func (s *Service) TryRegisterJob(isEnabled bool, name string, interval time.Duration, fn Func) *Service {
	if !isEnabled {
		slog.Info("job disabled", "job", name)
		return s
	}

	s.jobs = append(s.jobs, job{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return s
}

func (s *Service) Start(ctx context.Context) {
	s.wg.Add(len(s.jobs))

	for _, v := range s.jobs {
		go s.loop(ctx, v)
	}
}

// Stop waits for the running jobs to observe context cancellation.
func (s *Service) Stop() {
	s.wg.Wait()
}

func (s *Service) loop(ctx context.Context, j job) {
	defer s.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		s.run(ctx, j)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Service) run(ctx context.Context, j job) {
	ctx = logger.WithRequestID(ctx, uuid.Must(uuid.NewV4()).String())
	l := slog.Default().With("job", j.name)
	start := time.Now()

	err := runSafe(ctx, j.fn)
	if err != nil {
		l.ErrorContext(ctx, "job failed", "error", err, "took", time.Since(start))
		return
	}

	l.DebugContext(ctx, "job done", "took", time.Since(start))
}

func runSafe(ctx context.Context, fn Func) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
		}
	}()

	return fn(ctx)
}
