package email

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	mail "github.com/go-mail/mail"

	"github.com/Balogunolalere/campainProj/internal/domain"
)

// SMTPConfig holds configuration for the SMTP provider.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SESConfig holds configuration for AWS SES.
type SESConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// MailerConfig holds configuration for creating a mailer.
type MailerConfig struct {
	Provider    string
	FromAddress string
	FromName    string
	SMTP        SMTPConfig
	SES         SESConfig
}

// NewMailer creates a mailer from config. Provider "smtp" uses an SMTP relay;
// "ses" uses AWS SES; "noop" or unknown uses a no-op mailer.
func NewMailer(config MailerConfig) (domain.Mailer, error) {
	switch config.Provider {
	case "smtp":
		if config.SMTP.Host == "" {
			return nil, fmt.Errorf("SMTP host is required for the smtp provider")
		}
		return &smtpMailer{
			host:        config.SMTP.Host,
			port:        config.SMTP.Port,
			username:    config.SMTP.Username,
			password:    config.SMTP.Password,
			fromAddress: config.FromAddress,
			fromName:    config.FromName,
		}, nil
	case "ses":
		awsCfg := aws.Config{
			Region: config.SES.Region,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(
					config.SES.AccessKeyID,
					config.SES.SecretAccessKey,
					"",
				),
			),
		}
		client := ses.NewFromConfig(awsCfg)
		return &sesMailer{
			client:      client,
			fromAddress: config.FromAddress,
			fromName:    config.FromName,
		}, nil
	case "noop":
		return &noopMailer{}, nil
	default:
		log.Printf("[MAILER] Unknown email provider %q, using noop", config.Provider)
		return &noopMailer{}, nil
	}
}

// smtpMailer sends through an SMTP relay. Each Send opens a fresh connection
// and authenticates, so one failed message never poisons the next.
type smtpMailer struct {
	host        string
	port        int
	username    string
	password    string
	fromAddress string
	fromName    string
}

func (s *smtpMailer) Send(to, subject, html, text string) error {
	m := mail.NewMessage()
	from := s.fromAddress
	if from == "" {
		from = s.username
	}
	if s.fromName != "" {
		m.SetHeader("From", m.FormatAddress(from, s.fromName))
	} else {
		m.SetHeader("From", from)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)

	if text != "" {
		m.SetBody("text/plain", text)
	}
	if html != "" {
		if text == "" {
			m.SetBody("text/html", html)
		} else {
			m.AddAlternative("text/html", html)
		}
	}

	d := mail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

type sesMailer struct {
	client      *ses.Client
	fromAddress string
	fromName    string
}

func (s *sesMailer) Send(to, subject, html, text string) error {
	source := s.fromAddress
	if s.fromName != "" {
		source = fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)
	}
	input := &ses.SendEmailInput{
		Source: aws.String(source),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{},
		},
	}
	if html != "" {
		input.Message.Body.Html = &types.Content{
			Data:    aws.String(html),
			Charset: aws.String("UTF-8"),
		}
	}
	if text != "" {
		input.Message.Body.Text = &types.Content{
			Data:    aws.String(text),
			Charset: aws.String("UTF-8"),
		}
	}
	result, err := s.client.SendEmail(context.Background(), input)
	if err != nil {
		return fmt.Errorf("failed to send email via SES: %w", err)
	}
	log.Printf("[MAILER] Email sent via SES. MessageID: %s", aws.ToString(result.MessageId))
	return nil
}

type noopMailer struct{}

func (n *noopMailer) Send(to, subject, html, text string) error {
	log.Println("[MAILER] Email would be sent (noop)", "to", to, "subject", subject)
	return nil
}
