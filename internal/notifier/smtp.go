package notifier

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPNotifier sends alerts as plain-text email through an authenticated
// relay. Delivery is attempted once per alert; a failed send is dropped.
type SMTPNotifier struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

// NewSMTPNotifier creates a notifier for the given relay and credentials.
func NewSMTPNotifier(host string, port int, sender, password string) *SMTPNotifier {
	return &SMTPNotifier{
		Host:     host,
		Port:     port,
		Sender:   sender,
		Password: password,
	}
}

// Deliver sends one email. The dialer negotiates STARTTLS on port 587.
func (n *SMTPNotifier) Deliver(subject, body, recipient string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.Sender)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(n.Host, n.Port, n.Sender, n.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail to %s: %w", recipient, err)
	}
	return nil
}
