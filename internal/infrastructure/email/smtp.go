package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"backoffice/internal/shared/logger"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	NotifyTo    string
}

// SMTPNotifier sends back-office notification mail over SMTP.
type SMTPNotifier struct {
	config SMTPConfig
	dialer *gomail.Dialer
	logger logger.Interface
}

func NewSMTPNotifier(config SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		logger: logger.NewLogger().With("component", "email.smtp"),
	}
}

// NotifyTicketCreated mails the configured recipient about a new ticket.
func (s *SMTPNotifier) NotifyTicketCreated(ticketID uint, title, descriptionHTML string) error {
	if s.config.NotifyTo == "" {
		return nil
	}

	subject := fmt.Sprintf("New ticket #%d: %s", ticketID, title)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New support ticket</h2>
			<p>Ticket <strong>#%d</strong> was opened: %s</p>
			%s
		</body>
		</html>
	`, ticketID, title, descriptionHTML)
	plainBody := fmt.Sprintf("New support ticket #%d: %s", ticketID, title)

	return s.send(s.config.NotifyTo, subject, htmlBody, plainBody)
}

func (s *SMTPNotifier) send(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Errorw("failed to send email", "to", to, "subject", subject, "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infow("email sent", "to", to, "subject", subject)
	return nil
}
