package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/xxxsen/quizdesk/internal/model"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(ctx context.Context) error {
	_, ok := ctx.Deadline()
	if !ok {
		return errors.New("missing deadline")
	}
	return f.err
}

type statusRecorder struct {
	last model.BackendStatus
}

func (s *statusRecorder) SetStatus(status model.BackendStatus) {
	s.last = status
}

func TestBackendProbeJobReachable(t *testing.T) {
	sink := &statusRecorder{}
	job := NewBackendProbeJob(fakePinger{}, sink, time.Second)
	job.now = func() time.Time { return time.Unix(100, 0) }

	require.NoError(t, job.Run(context.Background()))
	require.Equal(t, model.BackendStatus{Checked: true, Reachable: true, CheckedAt: 100}, sink.last)
}

func TestBackendProbeJobUnreachable(t *testing.T) {
	sink := &statusRecorder{}
	job := NewBackendProbeJob(fakePinger{err: errors.New("connection refused")}, sink, 0)

	require.NoError(t, job.Run(context.Background()))
	require.True(t, sink.last.Checked)
	require.False(t, sink.last.Reachable)
	require.Equal(t, "connection refused", sink.last.Error)
	require.Equal(t, "backend_probe", job.Name())
}
