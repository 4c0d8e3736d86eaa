// Package mailer is the outbound notification boundary. Delivery itself is
// out of scope; callers invoke the hook explicitly after the triggering
// write has committed.
package mailer

import "log"

type Mailer interface {
	SendWelcome(email string) error
}

// LogMailer writes the notification to the process log.
type LogMailer struct{}

func (LogMailer) SendWelcome(email string) error {
	log.Printf("welcome mail queued for %s", email)
	return nil
}
