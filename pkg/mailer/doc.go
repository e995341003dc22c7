// Package mailer renders markdown email templates and sends them through a
// pluggable Sender.
//
// Templates are markdown with YAML frontmatter. Subject lines are Go
// templates too:
//
//	---
//	subject: Order {{.ID}} confirmed
//	preheader: Thank you for shopping with us
//	---
//
//	Hello {{.FirstName}},
//
//	| Item | Qty | Price |
//	|---|---|---|
//	{{range .Items}}| {{.Name}} | {{.Quantity}} | {{.Total}} |
//	{{end}}
//
// A Renderer looks for "<lang>/<name>" before "<name>", so each locale can
// ship its own copy. The rendered markdown goes into the HTML layout as
// {{.Content}}.
//
// The resend subpackage delivers through the Resend API. LogSender only
// logs and is used in development.
package mailer
