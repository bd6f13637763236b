// Package mailer relays a submission summary to the business inbox over an
// authenticated SMTP connection.
package mailer

import (
	"strings"

	"github.com/nimblelabs/inquiry-api/internal/models"
	"github.com/nimblelabs/inquiry-api/internal/utils"
	"gopkg.in/gomail.v2"
)

type Notifier interface {
	Send(s *models.Submission) error
}

type SMTPConfig struct {
	Host   string
	Port   int
	Secure bool
	User   string
	Pass   string
	From   string
	To     string
}

type smtpNotifier struct {
	cfg SMTPConfig
}

func NewSMTPNotifier(cfg SMTPConfig) Notifier {
	return &smtpNotifier{cfg: cfg}
}

func (n *smtpNotifier) Send(s *models.Submission) error {
	const op = "SMTPNotifier.Send"

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", n.cfg.To)
	m.SetHeader("Reply-To", s.Email)
	m.SetHeader("Subject", "New Inquiry - "+s.FullName)
	m.SetBody("text/plain", renderBody(s))

	for _, a := range s.Attachments {
		m.Attach(a.Path, gomail.Rename(a.OriginalName))
	}

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.User, n.cfg.Pass)
	d.SSL = n.cfg.Secure

	if err := d.DialAndSend(m); err != nil {
		return utils.E(utils.CodeUnavailable, op, "failed to send mail", err)
	}
	return nil
}

// renderBody produces the fixed-format plain-text summary: one "Label: value"
// line per field in a fixed order, "-" for blanks, multi-values joined with
// ", ", then a Message block.
func renderBody(s *models.Submission) string {
	var b strings.Builder

	line := func(label, value string) {
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(orDash(value))
		b.WriteByte('\n')
	}

	line("Full Name", s.FullName)
	line("Email", s.Email)
	line("Phone", s.Phone)
	line("Company", s.Company)
	line("Build Type", s.BuildType)
	line("Project Type", s.ProjectType)
	line("Industry", s.Industry)
	line("Timeline", s.Timeline)
	line("Startup Stage", s.StartupStage)
	line("Budget", s.Budget)
	line("Platform Required", strings.Join(s.PlatformRequired, ", "))
	line("MVP Purpose", strings.Join(s.MVPPurpose, ", "))
	line("MVP Validation", s.MVPValidation)
	line("Discussion Mode", strings.Join(s.DiscussionMode, ", "))
	line("Referral Source", s.ReferralSource)

	b.WriteString("\nMessage:\n")
	b.WriteString(orDash(s.Message))
	b.WriteByte('\n')

	return b.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// disabledNotifier stands in when any mail credential is missing. Send
// reports the typed not-configured outcome so the caller can skip relaying.
type disabledNotifier struct{}

func NewDisabledNotifier() Notifier { return disabledNotifier{} }

func (disabledNotifier) Send(s *models.Submission) error {
	return utils.ErrNotConfigured
}
