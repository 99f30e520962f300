// Package mailer sends transactional email: the Sender abstraction with an
// Amazon SES v2 implementation and a logging stand-in for development, plus
// the Liquid templates the messages are rendered from.
package mailer

import (
	"context"

	"github.com/google/uuid"
	"github.com/gyulist/gyulist/internal/logging"
)

type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Result describes a delivery attempt. HTTPStatus is the provider's response
// status, zero when the request never got a response.
type Result struct {
	HTTPStatus int
	MessageID  string
}

type Sender interface {
	Send(ctx context.Context, msg Message) (Result, error)
}

// LogSender only logs messages. Used when SES is not configured.
type LogSender struct {
	logger logging.Logger
}

func NewLogSender(logger logging.Logger) *LogSender {
	return &LogSender{logger: logger.With("module", "mailer")}
}

func (s *LogSender) Send(ctx context.Context, msg Message) (Result, error) {
	id := "log-" + uuid.NewString()
	s.logger.Info(ctx, "email not sent, delivery disabled", "to", msg.To, "subject", msg.Subject, "message_id", id)
	return Result{HTTPStatus: 200, MessageID: id}, nil
}
