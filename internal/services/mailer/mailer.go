package mailer

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Message is a plain-text notification mail.
type Message struct {
	ToName  string
	ToEmail string
	Subject string
	Body    string
}

// Mailer delivers notification mails. Delivery failures must never fail the
// request that triggered them.
type Mailer interface {
	Send(msg Message) error
}

type consoleMailer struct{}

// NewConsoleMailer returns a Mailer that only logs, for development and
// tests.
func NewConsoleMailer() Mailer {
	return consoleMailer{}
}

func (consoleMailer) Send(msg Message) error {
	log.Info().
		Str("to", msg.ToEmail).
		Str("subject", msg.Subject).
		Msg("mail (console): " + msg.Body)
	return nil
}

type sendgridMailer struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

var _ Mailer = (*sendgridMailer)(nil)

func NewSendgridMailer(apiKey, fromName, fromEmail string) Mailer {
	return &sendgridMailer{
		client:    sendgrid.NewSendClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (m *sendgridMailer) Send(msg Message) error {
	from := sgmail.NewEmail(m.fromName, m.fromEmail)
	to := sgmail.NewEmail(msg.ToName, msg.ToEmail)
	mail := sgmail.NewSingleEmail(from, msg.Subject, to, msg.Body, "")

	resp, err := m.client.Send(mail)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}
