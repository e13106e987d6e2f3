package notifications

import (
	"context"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/you/jobsvc/domain"
	"github.com/you/jobsvc/internal/logging"
)

// SMTPConfig holds the SMTP relay settings
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer implements domain.Mailer over SMTP
type SMTPMailer struct {
	cfg SMTPConfig
	log logging.Logger
}

// NewSMTPMailer creates a mailer. Without a host, mail is only logged.
func NewSMTPMailer(cfg SMTPConfig, log logging.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, log: log.With("component", "mail")}
}

// Send implements domain.Mailer
func (m *SMTPMailer) Send(ctx context.Context, msg domain.Mail) error {
	if m.cfg.Host == "" {
		m.log.Info(ctx, "mail delivery disabled, message dropped", "to", maskEmail(msg.To), "subject", msg.Subject)
		return nil
	}

	out, err := buildMessage(m.cfg.From, msg)
	if err != nil {
		return err
	}

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNotificationFailed, err)
	}
	return nil
}

func buildMessage(from string, msg domain.Mail) (*mail.Msg, error) {
	out := mail.NewMsg()
	if err := out.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := out.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	out.Subject(msg.Subject)
	out.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		out.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}
	return out, nil
}

// maskEmail keeps the first letter of the local part and the domain.
func maskEmail(addr string) string {
	at := strings.LastIndexByte(addr, '@')
	if at <= 0 {
		return "***"
	}
	return addr[:1] + "***" + addr[at:]
}

var _ domain.Mailer = (*SMTPMailer)(nil)
