package postgres

import (
	"context"
	"log/slog"
	"time"

	"grocery/internal/core/domain/model/kernel"

	"github.com/lib/pq"
)

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

// ChangeListener receives NOTIFY messages on NotifyChannel and forwards the
// order ids. After a reconnect, notifications sent meanwhile are lost, so
// the resync callback is called instead.
type ChangeListener struct {
	listener *pq.Listener
	logger   *slog.Logger
}

// NewChangeListener opens a dedicated connection and subscribes to NotifyChannel.
func NewChangeListener(dsn string, logger *slog.Logger) (*ChangeListener, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "order_change_listener")

	listener := pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval,
		func(event pq.ListenerEventType, err error) {
			if err != nil {
				logger.Error("Listener connection event", "event", event, "error", err)
			}
		})

	if err := listener.Listen(NotifyChannel); err != nil {
		_ = listener.Close()
		return nil, err
	}

	return &ChangeListener{listener: listener, logger: logger}, nil
}

// Run forwards notifications until ctx is done.
func (l *ChangeListener) Run(ctx context.Context, onChange func(kernel.ID), resync func(context.Context)) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case n := <-l.listener.Notify:
			if n == nil {
				l.logger.InfoContext(ctx, "Listener reconnected, resynchronizing subscriptions")
				resync(ctx)
				continue
			}
			id, err := kernel.IDFromString(n.Extra)
			if err != nil {
				l.logger.WarnContext(ctx, "Ignoring malformed notification", "payload", n.Extra)
				continue
			}
			onChange(id)

		case <-ticker.C:
			if err := l.listener.Ping(); err != nil {
				l.logger.WarnContext(ctx, "Listener ping failed", "error", err)
			}
		}
	}
}

func (l *ChangeListener) Close() error {
	return l.listener.Close()
}
