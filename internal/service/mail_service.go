package service

import (
	"fmt"
	"volunteerhub/internal/mailer"
)

type MailService interface {
	SendContact(recipientEmail string) error
}

type mailService struct {
	mailer mailer.Mailer
}

func NewMailService(mailer mailer.Mailer) MailService {
	return &mailService{mailer: mailer}
}

func (m *mailService) SendContact(recipientEmail string) error {
	if recipientEmail == "" {
		return fmt.Errorf("не указан адрес получателя")
	}

	return m.mailer.Send(recipientEmail)
}
