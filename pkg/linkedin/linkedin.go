// Package linkedin is a placeholder for a future LinkedIn messaging
// integration. Sends are logged and reported as successful so the rest of
// the pipeline can be exercised end to end.
package linkedin

import (
	"context"
	"errors"
	"log/slog"
	"os"
)

var ErrEmptyRecipient = errors.New("linkedin recipient url is required")

type MsgSvc struct {
	logger *slog.Logger
}

func NewMsgSvc() *MsgSvc {
	handler := slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "linkedin")})
	return &MsgSvc{logger: slog.New(handler)}
}

// Send simulates a LinkedIn message. A real integration would go through
// LinkedIn's API within their terms of service and rate limits.
func (svc *MsgSvc) Send(ctx context.Context, recipientURL, content string) error {
	if recipientURL == "" {
		return ErrEmptyRecipient
	}
	svc.logger.Info("linkedin message (stub)", slog.String("to", recipientURL), slog.Int("length", len(content)))
	return nil
}
