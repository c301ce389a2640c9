package job

import (
	"context"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/quizdesk/internal/model"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type StatusSink interface {
	SetStatus(status model.BackendStatus)
}

// BackendProbeJob records whether the backend answers HTTP.
type BackendProbeJob struct {
	pinger  Pinger
	sink    StatusSink
	timeout time.Duration
	now     func() time.Time
}

func NewBackendProbeJob(pinger Pinger, sink StatusSink, timeout time.Duration) *BackendProbeJob {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &BackendProbeJob{pinger: pinger, sink: sink, timeout: timeout, now: time.Now}
}

func (j *BackendProbeJob) Name() string {
	return "backend_probe"
}

func (j *BackendProbeJob) Run(ctx context.Context) error {
	if j.pinger == nil || j.sink == nil {
		return nil
	}
	pingCtx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()
	err := j.pinger.Ping(pingCtx)
	status := model.BackendStatus{
		Checked:   true,
		Reachable: err == nil,
		CheckedAt: j.now().Unix(),
	}
	if err != nil {
		status.Error = err.Error()
		logutil.GetLogger(ctx).Warn("backend unreachable", zap.Error(err))
	}
	j.sink.SetStatus(status)
	return nil
}
