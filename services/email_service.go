package services

import (
	"fmt"
	"strconv"

	"store-admin/config"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailService builds the transactional mailer. Missing SMTP configuration
// is an error; callers treat it as "mailer disabled".
func NewEmailService() (*EmailService, error) {
	cfg := config.AppConfig
	if cfg == nil || cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 587
	}

	return &EmailService{
		dialer: gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}, nil
}

func (s *EmailService) SendWelcomeEmail(toEmail string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Welcome to Store Admin")

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Welcome!</h2>
    <p>Hello %s,</p>
    <p>Your account has been created. You can now sign in and start shopping.</p>
    <p style="color: #666; font-size: 12px;">This is an automated email. Please do not reply.</p>
</body>
</html>
	`, toEmail)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *EmailService) SendOrderStatusEmail(toEmail string, orderID int, status string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order #%d update - Store Admin", orderID))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Order Update</h2>
    <p>Your order <strong>#%d</strong> is now <strong>%s</strong>.</p>
    <p style="color: #666; font-size: 12px;">This is an automated email. Please do not reply.</p>
</body>
</html>
	`, orderID, status)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
