package mailer

import (
	"fmt"
	"strings"
	"text/template"
)

// Template names understood by the email worker.
const (
	TemplateWelcome        = "welcome"
	TemplateAccountDeleted = "account_deleted"
)

type mailTemplate struct {
	subject string
	body    *template.Template
}

var mailTemplates = map[string]mailTemplate{
	TemplateWelcome: {
		subject: "Welcome to Flixme",
		body: template.Must(template.New(TemplateWelcome).Parse(
			"Hi {{.Username}},\n\n" +
				"Your Flixme account is ready. Browse the catalog and start building your favorites list.\n\n" +
				"The Flixme team\n")),
	},
	TemplateAccountDeleted: {
		subject: "Your Flixme account was deleted",
		body: template.Must(template.New(TemplateAccountDeleted).Parse(
			"Hi {{.Username}},\n\n" +
				"Your Flixme account and your favorites list have been removed. Sorry to see you go.\n\n" +
				"The Flixme team\n")),
	},
}

// Render produces subject and text body for a named template.
func Render(name string, data map[string]any) (string, string, error) {
	t, ok := mailTemplates[name]
	if !ok {
		return "", "", fmt.Errorf("unknown email template %q", name)
	}
	var sb strings.Builder
	if err := t.body.Execute(&sb, data); err != nil {
		return "", "", err
	}
	return t.subject, sb.String(), nil
}
