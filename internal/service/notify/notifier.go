// Package notify surfaces journey outcomes to a human operator. Notices are
// fire-and-forget: the engine never consumes a reply, and a failed delivery
// must not fail the operation that produced it.
package notify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/agrilync/farmtrack/internal/domain/models"
	client "github.com/agrilync/farmtrack/pkg/clients/whatsapp"
)

// Notifier delivers a single success/failure notice.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification)
}

// LogNotifier writes notices to the structured log. It is the fallback when
// no messaging channel is configured.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier builds a log-backed notifier.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

// Notify records the notice in the log.
func (n *LogNotifier) Notify(_ context.Context, notice models.Notification) {
	fields := []zap.Field{
		zap.String("to", notice.To),
		zap.String("title", notice.Title),
		zap.String("message", notice.Message),
	}
	if notice.Success {
		n.logger.Info("journey notice", fields...)
	} else {
		n.logger.Warn("journey notice", fields...)
	}
}

// WhatsAppNotifier pushes notices to the farm owner as outbound WhatsApp
// texts. Delivery failures are logged and swallowed.
type WhatsAppNotifier struct {
	client client.Client
	logger *zap.Logger
}

// NewWhatsAppNotifier wires a WhatsApp-backed notifier.
func NewWhatsAppNotifier(client client.Client, logger *zap.Logger) *WhatsAppNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WhatsAppNotifier{client: client, logger: logger}
}

// Notify sends the notice, dropping it when no recipient is known.
func (n *WhatsAppNotifier) Notify(ctx context.Context, notice models.Notification) {
	if notice.To == "" {
		n.logger.Debug("notice without recipient dropped", zap.String("title", notice.Title))
		return
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	body := notice.Message
	if notice.Title != "" {
		body = fmt.Sprintf("%s\n%s", notice.Title, notice.Message)
	}

	if err := n.client.SendText(ctxWithTimeout, notice.To, body); err != nil {
		n.logger.Error("failed to deliver notice",
			zap.String("to", notice.To),
			zap.String("title", notice.Title),
			zap.Error(err))
	}
}
