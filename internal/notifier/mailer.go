package notifier

import (
	"crypto/tls"
	"fmt"
	"regexp"

	"gopkg.in/gomail.v2"

	"github.com/clinicemr/clinic/pkg/config"
)

var htmlTag = regexp.MustCompile("<[^>]+>")

type Client struct {
	cfg    config.Mailer
	dialer *gomail.Dialer
}

func NewClient(cfg config.Mailer) *Client {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password)

	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return &Client{
		cfg:    cfg,
		dialer: dialer,
	}
}

func (c *Client) Send(subject, body string, recipients []string, contentType string) error {
	err := c.dialer.DialAndSend(c.message(subject, body, recipients, contentType))
	if err != nil {
		return fmt.Errorf("dial and send: %w", err)
	}

	return nil
}

func (c *Client) message(subject, body string, recipients []string, contentType string) *gomail.Message {
	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	msg.SetAddressHeader("From", c.cfg.From, c.cfg.FromName)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody(bodyType(contentType, body), body)

	return msg
}

// bodyType falls back to sniffing the body when the event carries no content type.
func bodyType(contentType, body string) string {
	switch contentType {
	case "text/html", "text/plain":
		return contentType
	}

	if htmlTag.MatchString(body) {
		return "text/html"
	}

	return "text/plain"
}
