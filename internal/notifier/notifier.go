package notifier

// Notifier delivers a formatted alert to a recipient.
type Notifier interface {
	Deliver(subject, body, recipient string) error
}
