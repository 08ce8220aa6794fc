package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"jewelcms/internal/models"
)

type EmailService interface {
	SendLeadAlert(to string, lead *models.Lead) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendLeadAlert(to string, lead *models.Lead) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("New %s lead: %s (score %d)", lead.Category, lead.Name, lead.Score))

	phone := "-"
	if lead.Phone != nil {
		phone = *lead.Phone
	}
	message := ""
	if lead.Message != nil {
		message = *lead.Message
	}
	body := fmt.Sprintf(`
		<h2>New lead captured</h2>
		<p><strong>%s</strong> — %s lead, score %d/100</p>
		<ul>
			<li>Email: %s</li>
			<li>Phone: %s</li>
			<li>Source: %s</li>
		</ul>
		<p>%s</p>
	`, lead.Name, lead.Category, lead.Score, lead.Email, phone, lead.Source, message)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send lead alert: %w", err)
	}

	return nil
}
