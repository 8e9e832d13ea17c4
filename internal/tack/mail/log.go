package mail

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/tack/pkg/slogx"
)

// LogMailer prints messages instead of sending them. It is the default when
// no SMTP host is configured, so codes are visible during development.
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, m Message) error {
	slogx.FromContext(ctx).Info("outbound email",
		slog.String("kind", m.Kind),
		slog.String("to", m.To),
		slog.String("subject", m.Subject),
		slog.String("body", m.Text),
	)
	return nil
}
