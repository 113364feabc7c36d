package mailer

import (
	"fmt"

	"github.com/alexkharrod/webapps/blog/internal/errs"
	"github.com/alexkharrod/webapps/blog/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type Config struct {
	Host      string `yaml:"host" envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	Port      int    `yaml:"port" envconfig:"SMTP_PORT" default:"587"`
	Username  string `yaml:"username" envconfig:"SMTP_USERNAME"`
	Password  string `yaml:"password" envconfig:"SMTP_PASSWORD" json:"-"`
	From      string `yaml:"from" envconfig:"SMTP_FROM"`
	Recipient string `yaml:"recipient" envconfig:"CONTACT_RECIPIENT"`
}

// Mailer relays contact-form submissions to the one configured recipient
// over authenticated STARTTLS SMTP. Credentials are process configuration,
// not request state.
type Mailer struct {
	cfg  Config
	send func(m ...*gomail.Message) error
	log  *zap.Logger
}

func New(cfg Config, log *zap.Logger) *Mailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &Mailer{
		cfg:  cfg,
		send: dialer.DialAndSend,
		log:  log.Named("mailer"),
	}
}

// SendContact builds the fixed-template notification and sends it. Any
// transport or auth failure surfaces as ErrDelivery; it is never swallowed.
func (m *Mailer) SendContact(req model.ContactRequest) error {
	if err := m.send(Message(m.cfg, req)); err != nil {
		m.log.Error("SendContact", zap.Error(err))
		return errors.Wrap(errs.ErrDelivery, err.Error())
	}
	return nil
}

// Message builds the notification mail: the subject names the sender, the
// body enumerates the submitted fields.
func Message(cfg Config, req model.ContactRequest) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", cfg.From)
	msg.SetHeader("To", cfg.Recipient)
	msg.SetHeader("Subject", fmt.Sprintf("Contact Request from %s", req.Name))
	msg.SetBody("text/plain", fmt.Sprintf(
		"Name: %s\nPhone: %s\nEmail: %s\nMessage: %s\n",
		req.Name, req.Phone, req.Email, req.Message,
	))
	return msg
}
