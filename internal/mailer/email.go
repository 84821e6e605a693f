package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ses"
	"go.uber.org/zap"

	"pourhouse/config"
	"pourhouse/internal/domain"
)

// EmailMailer отправляет письма через AWS SES, при отсутствии настроек
// SES откатывается на обычный SMTP.
type EmailMailer struct {
	cfg       config.MailConfig
	sesClient *ses.SES
	useSES    bool
	logger    *zap.Logger
}

func NewEmailMailer(cfg config.MailConfig, logger *zap.Logger) (*EmailMailer, error) {
	m := &EmailMailer{
		cfg:    cfg,
		logger: logger,
	}

	if cfg.FromEmail == "" {
		return nil, errors.New("не задан адрес отправителя")
	}

	if cfg.SESRegion != "" && cfg.SESAccessKeyID != "" && cfg.SESSecretAccessKey != "" {
		sess, err := session.NewSession(&aws.Config{
			Region:      aws.String(cfg.SESRegion),
			Credentials: credentials.NewStaticCredentials(cfg.SESAccessKeyID, cfg.SESSecretAccessKey, ""),
		})
		if err != nil {
			return nil, fmt.Errorf("ошибка создания сессии AWS: %w", err)
		}

		m.sesClient = ses.New(sess)
		m.useSES = true
		return m, nil
	}

	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPassword == "" {
		return nil, errors.New("не настроен ни SES, ни SMTP")
	}

	return m, nil
}

func (m *EmailMailer) SendContactNotification(ctx context.Context, to string, submission domain.ContactSubmission) error {
	subject := m.cfg.SubjectPrefix + "New contact form message: " + submission.DisplaySubject()

	body, err := renderTemplate(notificationTemplate, submission)
	if err != nil {
		return fmt.Errorf("ошибка рендеринга шаблона уведомления: %w", err)
	}

	return m.sendEmail(ctx, []string{to}, subject, body)
}

func (m *EmailMailer) SendContactAutoReply(ctx context.Context, submission domain.ContactSubmission) error {
	subject := m.cfg.SubjectPrefix + "We received your message"

	body, err := renderTemplate(autoReplyTemplate, submission)
	if err != nil {
		return fmt.Errorf("ошибка рендеринга шаблона автоответа: %w", err)
	}

	return m.sendEmail(ctx, []string{submission.Email}, subject, body)
}

func (m *EmailMailer) sendEmail(ctx context.Context, to []string, subject, body string) error {
	if m.useSES {
		return m.sendWithSES(ctx, to, subject, body)
	}
	return m.sendWithSMTP(to, subject, body)
}

func (m *EmailMailer) sendWithSES(ctx context.Context, to []string, subject, body string) error {
	toAddresses := make([]*string, 0, len(to))
	for _, addr := range to {
		toAddresses = append(toAddresses, aws.String(addr))
	}

	input := &ses.SendEmailInput{
		Destination: &ses.Destination{
			ToAddresses: toAddresses,
		},
		Message: &ses.Message{
			Body: &ses.Body{
				Html: &ses.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(body),
				},
			},
			Subject: &ses.Content{
				Charset: aws.String("UTF-8"),
				Data:    aws.String(subject),
			},
		},
		Source: aws.String(m.cfg.FromEmail),
	}

	_, err := m.sesClient.SendEmailWithContext(ctx, input)
	if err != nil {
		return fmt.Errorf("ошибка отправки письма через SES: %w", err)
	}

	return nil
}

func (m *EmailMailer) sendWithSMTP(to []string, subject, body string) error {
	message := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		m.cfg.FromEmail, to[0], subject, body)

	auth := smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPassword, m.cfg.SMTPHost)

	err := smtp.SendMail(m.cfg.SMTPHost+":"+m.cfg.SMTPPort, auth, m.cfg.FromEmail, to, []byte(message))
	if err != nil {
		return fmt.Errorf("ошибка отправки письма через SMTP: %w", err)
	}

	return nil
}

func renderTemplate(tmpl *template.Template, submission domain.ContactSubmission) (string, error) {
	data := struct {
		domain.ContactSubmission
		Subject string
	}{
		ContactSubmission: submission,
		Subject:           submission.DisplaySubject(),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

var notificationTemplate = template.Must(template.New("contact_notification").Parse(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>New contact form message</h2>
    <p><strong>From:</strong> {{.Name}} &lt;{{.Email}}&gt;</p>
    <p><strong>Subject:</strong> {{.Subject}}</p>
    <p><strong>Message:</strong></p>
    <blockquote style="border-left: 3px solid #ccc; padding-left: 12px; color: #555;">{{.Message}}</blockquote>
    <p style="font-size: 12px; color: #888;">Submission #{{.ID}}, received {{.CreatedAt.Format "Jan 2, 2006 3:04 PM"}}.</p>
</body>
</html>
`))

var autoReplyTemplate = template.Must(template.New("contact_auto_reply").Parse(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Thanks for reaching out, {{.Name}}!</h2>
    <p>We received your message and will get back to you within one business day.</p>
    <p><strong>Your message:</strong></p>
    <blockquote style="border-left: 3px solid #ccc; padding-left: 12px; color: #555;">{{.Message}}</blockquote>
    <p style="font-size: 12px; color: #888;">This is an automatic reply, please do not respond to it.</p>
</body>
</html>
`))
