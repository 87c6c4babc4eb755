package codes

import (
	"context"

	"github.com/shazhupan/activity-portal/internal/logging"
)

// Sender delivers an issued code to its phone number out of band.
// Production deployments plug a real SMS gateway in here.
type Sender interface {
	Send(ctx context.Context, phone, code string) error
}

// LogSender writes codes to the log instead of delivering them. It is the
// development stand-in for an SMS gateway.
type LogSender struct {
	logger logging.Logger
}

func NewLogSender(l logging.Logger) *LogSender {
	return &LogSender{logger: l.With("module", "sms")}
}

func (s *LogSender) Send(ctx context.Context, phone, code string) error {
	s.logger.Info(ctx, "verification code issued", "phone", phone, "code", code)
	return nil
}
