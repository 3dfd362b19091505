package job_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clinicemr/clinic/pkg/job"
)

func TestService_RunsJobsUntilCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	var runs, failing, panicking, disabled atomic.Int32

	s := job.NewService().
		RegisterJob("count", 10*time.Millisecond, func(context.Context) error {
			runs.Add(1)
			return nil
		}).
		RegisterJob("fail", 10*time.Millisecond, func(context.Context) error {
			failing.Add(1)
			return errors.New("boom")
		}).
		RegisterJob("panic", 10*time.Millisecond, func(context.Context) error {
			panicking.Add(1)
			panic("boom")
		}).
		TryRegisterJob(false, "disabled", 10*time.Millisecond, func(context.Context) error {
			disabled.Add(1)
			return nil
		})

	s.Start(ctx)

	require.Eventually(t, func() bool {
		return runs.Load() >= 2 && failing.Load() >= 2 && panicking.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	s.Stop()

	require.Zero(t, disabled.Load())
}
