package resend

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/storefront/pkg/mailer"
)

// ErrMissingFrom is returned when an email has no sender address.
var ErrMissingFrom = errors.New("resend: email has no from address")

// Sender implements mailer.Sender with the Resend API.
type Sender struct {
	client *resend.Client
}

// New creates a Resend sender.
func New(cfg Config) *Sender {
	return &Sender{client: resend.NewClient(cfg.APIKey)}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if email.From == "" {
		return ErrMissingFrom
	}

	req := &resend.SendEmailRequest{
		From:        email.From,
		To:          email.To,
		Subject:     email.Subject,
		Html:        email.HTML,
		Text:        email.Text,
		ReplyTo:     email.ReplyTo,
		Cc:          email.CC,
		Bcc:         email.BCC,
		Headers:     email.Headers,
		Attachments: attachments(email.Attachments),
		Tags:        tags(email.Tags),
	}

	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("resend: send %q: %w", email.Subject, err)
	}
	return nil
}

func attachments(in []mailer.Attachment) []*resend.Attachment {
	if len(in) == 0 {
		return nil
	}
	out := make([]*resend.Attachment, len(in))
	for i, a := range in {
		out[i] = &resend.Attachment{
			Filename:    a.Filename,
			Content:     a.Content,
			ContentType: a.ContentType,
			ContentId:   a.ContentID,
		}
	}
	return out
}

// tags converts mailer tags sorted by name. Presence-only tags become "true".
func tags(in mailer.Tags) []resend.Tag {
	if len(in) == 0 {
		return nil
	}
	out := make([]resend.Tag, 0, len(in))
	for name, v := range in {
		value := "true"
		switch val := v.(type) {
		case nil, struct{}:
		case string:
			value = val
		default:
			value = fmt.Sprint(val)
		}
		out = append(out, resend.Tag{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
