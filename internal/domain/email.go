package domain

// Email outbound HTML message handed to an email provider.
type Email struct {
	From    string
	To      []string
	Subject string
	HTML    string
}
