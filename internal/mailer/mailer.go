package mailer

import (
	"context"

	"gopkg.in/gomail.v2"

	"github.com/avdeev-dev/portfolio-api/internal/logger"
)

// Mailer sends plain-text mail over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// New creates a Mailer for the given SMTP server.
func New(host string, port int, username, password, from string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send delivers one message. The dial-and-send is synchronous; callers
// decide whether a failure is fatal.
func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	err := m.dialer.DialAndSend(msg)

	logger.Log.Debugw("mail send attempted",
		"to", to,
		"subject", subject,
		"error", err,
	)

	return err
}
