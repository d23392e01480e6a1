package email

import (
	"context"
	"log"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// sendTimeout bounds every outbound send so a stalled relay fails the
// notification, never the request that triggered it.
const sendTimeout = 5 * time.Second

type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer is a best-effort notification channel. A non-nil error means the
// notification is pending; callers must have committed their write already
// and must not roll it back.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer delivers through an SMTP relay with STARTTLS.
type SMTPMailer struct {
	client *gomail.Client
	from   string
}

func NewSMTPMailer(host string, port int, user, pass string) (*SMTPMailer, error) {
	client, err := gomail.NewClient(host,
		gomail.WithPort(port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(user),
		gomail.WithPassword(pass),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(sendTimeout),
	)
	if err != nil {
		return nil, err
	}
	return &SMTPMailer{client: client, from: user}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	mail := gomail.NewMsg()
	if err := mail.From(m.from); err != nil {
		return err
	}
	if err := mail.To(msg.To); err != nil {
		return err
	}
	mail.Subject(msg.Subject)
	mail.SetBodyString(gomail.TypeTextHTML, msg.HTML)

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	return m.client.DialAndSendWithContext(ctx, mail)
}

// LogMailer stands in when no SMTP credentials are configured. It prints
// the message so the flow stays visible during development.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, msg Message) error {
	log.Println("====================================================")
	log.Printf("--- OUTBOUND EMAIL (LOG ONLY) ---")
	log.Printf("To: %s", msg.To)
	log.Printf("Subject: %s", msg.Subject)
	log.Println("--- Body ---")
	log.Println(msg.HTML)
	log.Println("====================================================")
	return nil
}

// New picks the SMTP mailer when credentials exist, otherwise the log
// fallback. Emails are never required for any request to succeed.
func New(host string, port int, user, pass string) Mailer {
	if user == "" || pass == "" {
		log.Println("WARNING: SMTP credentials not set. Emails will be logged only.")
		return LogMailer{}
	}
	m, err := NewSMTPMailer(host, port, user, pass)
	if err != nil {
		log.Printf("WARNING: SMTP mailer unavailable (%v). Emails will be logged only.", err)
		return LogMailer{}
	}
	log.Println("Email service is ready")
	return m
}
