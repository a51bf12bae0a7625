package services

import (
	"fmt"
	"net/smtp"

	"github.com/vracar/tripfolio/internal/config"
)

type EmailService struct {
	cfg config.SMTPConfig
}

func NewEmailService(cfg config.SMTPConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

func (s *EmailService) IsConfigured() bool {
	return s.cfg.Host != "" && s.cfg.Username != "" && s.cfg.Password != "" && s.cfg.From != ""
}

func (s *EmailService) Send(to, subject, body string) error {
	if !s.IsConfigured() {
		return nil
	}

	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		s.cfg.From, to, subject, body)

	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg))
}

func (s *EmailService) SendTripInvite(to, tripTitle, inviterName, claimURL string) error {
	subject := fmt.Sprintf("You've been added to the trip %s", tripTitle)
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Trip Invitation</h2>
			<p>Hi,</p>
			<p><strong>%s</strong> has added you to the trip <strong>%s</strong>.</p>
			<p><a href="%s">Open the trip</a></p>
		</body>
		</html>
	`, inviterName, tripTitle, claimURL)

	return s.Send(to, subject, body)
}
