// Package notify mails finished reports to the configured recipient.
// Delivery is best effort; a failed send is logged, never fatal.
package notify

import (
	"fmt"
	"log"
	"time"

	gomail "gopkg.in/mail.v2"
)

type EmailConfig struct {
	SMTPHost string
	SMTPPort int
	Username string
	Password string
	From     string
	To       string
	Enabled  bool
}

type Mailer struct {
	cfg EmailConfig
}

func NewMailer(cfg EmailConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// ReportGenerated sends the report body as plain text. Markdown reads fine
// in a text/plain mail; recipients open the .md from disk for anything more.
func (m *Mailer) ReportGenerated(subject, path, body string) {
	if !m.cfg.Enabled {
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.cfg.To)
	msg.SetHeader("Subject", fmt.Sprintf("Recruitment rapport: %s", subject))
	msg.SetBody("text/plain", fmt.Sprintf("Rapport: %s\nBestand: %s\n\n%s", subject, path, body))

	dialer := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.Username, m.cfg.Password)
	dialer.Timeout = 10 * time.Second

	if err := dialer.DialAndSend(msg); err != nil {
		log.Printf("level=error msg=\"email send failed\" to=%s subject=%q err=%v", m.cfg.To, subject, err)
		return
	}
	log.Printf("level=info msg=\"report emailed\" to=%s subject=%q", m.cfg.To, subject)
}
