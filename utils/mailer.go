package utils

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"
)

// ContactMailer sends contact-form notifications to the admin address. It is
// disabled when MAILERSEND_API_KEY or MAIL_FROM_EMAIL is missing.
type ContactMailer struct {
	client  *mailersend.Mailersend
	from    mailersend.From
	Enabled bool
}

var Mailer *ContactMailer

func InitMailer() {
	apiKey := os.Getenv("MAILERSEND_API_KEY")
	fromEmail := os.Getenv("MAIL_FROM_EMAIL")
	fromName := os.Getenv("MAIL_FROM_NAME")
	if fromName == "" {
		fromName = "PGFinder"
	}

	Mailer = &ContactMailer{
		Enabled: apiKey != "" && fromEmail != "",
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}
	if Mailer.Enabled {
		Mailer.client = mailersend.NewMailersend(apiKey)
	}
}

func (m *ContactMailer) Send(toEmail, subject, text string) error {
	if !m.Enabled {
		return errors.New("mailer disabled (missing MAILERSEND_API_KEY or MAIL_FROM_EMAIL)")
	}
	if strings.TrimSpace(toEmail) == "" {
		return errors.New("empty recipient email")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Email: toEmail}})
	msg.SetSubject(subject)
	msg.SetText(text)

	_, err := m.client.Email.Send(ctx, msg)
	return err
}
