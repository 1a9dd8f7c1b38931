package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
	"volunteerhub/internal/config"
)

const emailSubject = "New Request From Volunteer Hub!"

const emailBody = `Hello,

You recieved a new activity request from Volunteer Hub! We are excited to have you on board.

Best regards,
The Volunteer Team
`

// Mailer sends the contact notification, one message per request, no retries
type Mailer interface {
	Send(recipientEmail string) error
}

type SMTPMailer struct {
	cfg config.SMTP
}

func NewSMTPMailer(cfg config.SMTP) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(recipientEmail string) error {
	if recipientEmail == "" {
		return fmt.Errorf("не указан адрес получателя")
	}

	msg := strings.Join([]string{
		"From: " + m.cfg.From,
		"To: " + recipientEmail,
		"Subject: " + emailSubject,
		"",
		emailBody,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	err := smtp.SendMail(addr, auth, m.cfg.From, []string{recipientEmail}, []byte(msg))
	if err != nil {
		return fmt.Errorf("ошибка отправки письма на %s: %w", recipientEmail, err)
	}

	return nil
}
