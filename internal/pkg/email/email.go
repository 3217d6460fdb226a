package email

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/vitalfit/vitalfit-backend-go/internal/config"
)

const maxRetries = 3

const tempPasswordTemplate = `<html>
<body style="font-family: sans-serif;">
  <p>{{.Name}}님, 안녕하세요.</p>
  <p>요청하신 임시 비밀번호가 발급되었습니다:</p>
  <p style="font-size: 1.2em;"><strong>{{.TempPassword}}</strong></p>
  <p>로그인 후 반드시 비밀번호를 변경해 주세요.</p>
</body>
</html>`

// EmailService defines the interface for sending emails
type EmailService interface {
	SendTempPassword(to, name, tempPassword string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.New("temp_password").Parse(tempPasswordTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse email template: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type tempPasswordEmailData struct {
	Name         string
	TempPassword string
}

// SendTempPassword sends a temporary password to a staff account that
// requested a password reset.
func (s *emailServiceImpl) SendTempPassword(to, name, tempPassword string) error {
	var body bytes.Buffer
	data := tempPasswordEmailData{Name: name, TempPassword: tempPassword}
	if err := s.templates.ExecuteTemplate(&body, "temp_password", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "[VitalFit] 임시 비밀번호 안내", body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s\r\n", from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Exponential backoff: 1s, 2s, 4s
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
