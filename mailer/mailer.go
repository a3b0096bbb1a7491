package mailer

import (
	"errors"
	"io"

	"privacyguard/config"
	"privacyguard/log"

	"github.com/sirupsen/logrus"
	gomail "gopkg.in/gomail.v2"
)

// Attachment - an in-memory file to attach
type Attachment struct {
	Filename string
	Content  []byte
	MIME     string
}

// Mailer - sends transactional mail through the configured SMTP relay
type Mailer struct {
	Logger *logrus.Logger
}

// NewMailer -
func NewMailer() *Mailer {
	return &Mailer{Logger: log.GetLogger()}
}

// Send - delivers a plain text email with optional HTML alternative and
// attachments. Fails before dialing when SMTP credentials are missing.
func (m *Mailer) Send(to, subject, body, htmlBody string, attachments []Attachment) error {

	var (
		cg   = config.GetConfig()
		user = cg.GetString("smtp.user")
		pass = cg.GetString("smtp.app_password")
	)

	if user == "" || pass == "" {
		return errors.New("missing smtp.user or smtp.app_password config")
	}

	msg := gomail.NewMessage()

	msg.SetHeader("From", msg.FormatAddress(user, cg.GetString("smtp.sender")))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if htmlBody != "" {
		msg.AddAlternative("text/html", htmlBody)
	}

	for _, att := range attachments {

		att := att

		msg.Attach(att.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(att.Content)
			return err
		}))
	}

	dialer := gomail.NewDialer(cg.GetString("smtp.host"), cg.GetInt("smtp.port"), user, pass)

	if err := dialer.DialAndSend(msg); err != nil {
		m.Logger.Errorf("cannot send email to %s. %v", to, err)
		return err
	}

	return nil
}
