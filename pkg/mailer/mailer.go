package mailer

import (
	"context"
	"errors"
	"log/slog"
)

// Message describes a templated email.
type Message struct {
	Data        any
	Tags        Tags
	To          string
	Lang        string
	Template    string
	// ReplyTo overrides Config.ReplyTo for this message.
	ReplyTo     string
	Attachments []Attachment
}

// Mailer renders templates and hands the result to a Sender.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	config   Config
}

// New creates a Mailer.
func New(sender Sender, renderer *Renderer, cfg Config) *Mailer {
	return &Mailer{sender: sender, renderer: renderer, config: cfg}
}

// Send renders msg.Template in msg.Lang and sends it to msg.To.
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}

	out, err := m.renderer.Render(msg.Lang, msg.Template, msg.Data)
	if err != nil {
		return err
	}

	replyTo := m.config.ReplyTo
	if msg.ReplyTo != "" {
		replyTo = msg.ReplyTo
	}

	return m.SendRaw(ctx, &Email{
		From:        Address(m.config.FromName, m.config.FromEmail),
		ReplyTo:     replyTo,
		To:          []string{msg.To},
		Subject:     out.Subject,
		HTML:        out.HTML,
		Text:        out.Text,
		Tags:        msg.Tags,
		Attachments: msg.Attachments,
	})
}

// SendRaw validates and sends a prepared email.
func (m *Mailer) SendRaw(ctx context.Context, email *Email) error {
	switch {
	case len(email.To) == 0:
		return ErrNoRecipient
	case email.Subject == "":
		return ErrNoSubject
	case email.HTML == "":
		return ErrNoContent
	}

	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}

// LogSender writes emails to the log instead of delivering them.
// Used when no provider key is configured.
func LogSender(log *slog.Logger) Sender {
	return SenderFunc(func(ctx context.Context, email *Email) error {
		names := make([]string, 0, len(email.Attachments))
		for _, a := range email.Attachments {
			names = append(names, a.Filename)
		}
		log.InfoContext(ctx, "email not delivered, no provider configured",
			slog.Any("to", email.To),
			slog.String("subject", email.Subject),
			slog.Any("attachments", names),
		)
		return nil
	})
}
