package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Subject/Text may be given directly, or a Template name plus Data.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	Template string         `json:"template,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}
