package domain

// Mailer defines the contract for sending a single transactional email
// (infrastructure port). Implementations open a fresh session per call so a
// failure for one message never affects the next.
type Mailer interface {
	Send(to, subject, htmlBody, textBody string) error
}
