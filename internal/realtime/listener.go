package realtime

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Channel is the Postgres NOTIFY channel the migration triggers publish on.
const Channel = "cinelog_changes"

// Listener holds one dedicated connection in LISTEN mode and feeds every
// notification into its Hub. There is no reconnect: when the connection
// drops, the feed stops and open subscriptions go quiet.
type Listener struct {
	*Hub
	conn *pgx.Conn
	log  *zap.Logger
}

func NewListener(ctx context.Context, connString string, log *zap.Logger) (*Listener, error) {
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connect change-feed listener: %w", err)
	}

	if _, err := conn.Exec(ctx, "LISTEN "+Channel); err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("listen on %s: %w", Channel, err)
	}

	return &Listener{
		Hub:  NewHub(log),
		conn: conn,
		log:  log.With(zap.String("component", "realtime_listener")),
	}, nil
}

// Run blocks receiving notifications until ctx is cancelled or the
// connection dies. Call it on its own goroutine.
func (l *Listener) Run(ctx context.Context) {
	l.log.Info("Change-feed listener started", zap.String("channel", Channel))

	for {
		notification, err := l.conn.WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				l.log.Info("Change-feed listener stopped")
				return
			}
			l.log.Error("Change-feed connection lost", zap.Error(err))
			return
		}

		l.Dispatch([]byte(notification.Payload))
	}
}

func (l *Listener) Close(ctx context.Context) error {
	return l.conn.Close(ctx)
}
