package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"inspection/config"
	deliverycontext "inspection/internal/delivery/context"
	"inspection/internal/domain/entity"
	"inspection/internal/domain/repository"
	"inspection/internal/infra/metrics"
	"inspection/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// SessionRecorderParams holds dependencies for the session recorder, injected by Fx.
type SessionRecorderParams struct {
	fx.In

	Lc       fx.Lifecycle
	Accounts repository.AccountRepository
	Config   *config.Config
	Logger   *slog.Logger
	Metrics  *metrics.Metrics `optional:"true"`
}

// SessionRecorder performs last-session writes off the request path.
type SessionRecorder struct {
	accounts  repository.AccountRepository
	timeout   time.Duration
	logger    *slog.Logger
	onFailure func()
	wg        sync.WaitGroup
}

var _ usecase.SessionRecorder = (*SessionRecorder)(nil)

// NewSessionRecorder builds the recorder and drains in-flight writes on shutdown.
func NewSessionRecorder(params SessionRecorderParams) *SessionRecorder {
	recorder := newSessionRecorder(params.Accounts, params.Config.Auth.SessionTouchTimeout, params.Logger, nil)
	if params.Metrics != nil {
		recorder.onFailure = params.Metrics.SessionTouchFailed
	}

	params.Lc.Append(fx.Hook{
		OnStop: recorder.Wait,
	})

	return recorder
}

func newSessionRecorder(
	accounts repository.AccountRepository,
	timeout time.Duration,
	logger *slog.Logger,
	onFailure func(),
) *SessionRecorder {
	return &SessionRecorder{
		accounts:  accounts,
		timeout:   timeout,
		logger:    logger,
		onFailure: onFailure,
	}
}

// Record starts the write and returns immediately. The write outlives the
// request context but is bounded by its own timeout.
func (r *SessionRecorder) Record(ctx context.Context, id uuid.UUID, meta entity.SessionMeta) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)
	detached := context.WithoutCancel(ctx)

	r.wg.Go(func() {
		writeCtx, cancel := context.WithTimeout(detached, r.timeout)
		defer cancel()

		if err := r.accounts.RecordSession(writeCtx, id, meta); err != nil {
			logger.Warn("Failed to record last session",
				slog.Any("account_id", id),
				slog.Any("error", err),
			)
			if r.onFailure != nil {
				r.onFailure()
			}
		}
	})
}

// Wait blocks until every started write has finished or ctx is done.
func (r *SessionRecorder) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
