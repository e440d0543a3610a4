// Package email sends transactional notifications over SMTP.
// Notification failures never fail the triggering request.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"residconnect/internal/shared/config"
	"residconnect/internal/shared/logger"
)

// Service notifies participants about ticket events.
type Service interface {
	SendTicketAssigned(to, professionalName, ticketTitle, category, unit string) error
}

type SMTPEmailService struct {
	dialer *gomail.Dialer
	from   string
	logger logger.Interface
}

func NewSMTPEmailService(cfg *config.EmailConfig, log logger.Interface) *SMTPEmailService {
	return &SMTPEmailService{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromAddress),
		logger: log,
	}
}

var _ Service = (*SMTPEmailService)(nil)

func (s *SMTPEmailService) SendTicketAssigned(to, professionalName, ticketTitle, category, unit string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Nouveau ticket assigné : %s", ticketTitle))
	m.SetBody("text/plain", fmt.Sprintf(
		"Bonjour %s,\n\nUn nouveau ticket vous a été assigné.\n\nTitre : %s\nCatégorie : %s\nAppartement : %s\n\nConnectez-vous au portail pour le consulter.",
		professionalName, ticketTitle, category, unit,
	))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send assignment email: %w", err)
	}
	return nil
}

// NoopEmailService satisfies Service when email is disabled.
type NoopEmailService struct{}

func (NoopEmailService) SendTicketAssigned(string, string, string, string, string) error {
	return nil
}
