package contact

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"time"

	"github.com/dmitrymomot/storefront/locale"
	"github.com/dmitrymomot/storefront/pkg/kv"
	"github.com/dmitrymomot/storefront/pkg/mailer"
	"github.com/dmitrymomot/storefront/pkg/sanitizer"
)

// SubscriptionKey is the visitor bucket key holding the newsletter
// subscription.
const SubscriptionKey = "newsletter"

const (
	messageTemplate = "contact_message.md"
	welcomeTemplate = "newsletter_welcome.md"
)

//go:embed emails
var emails embed.FS

// Emails returns the embedded email templates, rooted at the template dir.
func Emails() fs.FS {
	sub, err := fs.Sub(emails, "emails")
	if err != nil {
		panic(err)
	}
	return sub
}

// Service forwards contact messages and records newsletter sign-ups.
type Service struct {
	mailer *mailer.Mailer
	log    *slog.Logger
	now    func() time.Time
	inbox  string
}

// Option configures a Service.
type Option func(*Service)

// WithInbox sets the address receiving contact messages.
func WithInbox(addr string) Option {
	return func(s *Service) {
		s.inbox = addr
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a Service. The mailer must render templates from
// Emails.
func NewService(m *mailer.Mailer, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		mailer: m,
		log:    log.With(slog.String("component", "contact")),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type messageData struct {
	Name  string
	Email string
	Text  string
	Lang  string
}

// Send validates msg and emails it to the inbox. Validation failures are
// returned as validator.ValidationErrors.
func (s *Service) Send(ctx context.Context, msg Message, lang locale.Lang) (Message, error) {
	msg = msg.Sanitize()
	if err := msg.Validate(); err != nil {
		return msg, err
	}
	if s.inbox == "" {
		return msg, ErrNoInbox
	}

	err := s.mailer.Send(ctx, mailer.Message{
		To:       s.inbox,
		Lang:     string(locale.Default),
		Template: messageTemplate,
		ReplyTo:  msg.Email,
		Data:     messageData{Name: msg.Name, Email: msg.Email, Text: msg.Text, Lang: string(lang)},
		Tags:     mailer.Tags{"kind": "contact", "lang": string(lang)},
	})
	if err != nil {
		return msg, err
	}
	s.log.InfoContext(ctx, "contact message sent", slog.String("lang", string(lang)))
	return msg, nil
}

// Subscribed returns the visitor's subscription, if any.
func (s *Service) Subscribed(ctx context.Context, b *kv.Bucket) (Subscription, bool, error) {
	sub, err := kv.Load[Subscription](ctx, b, SubscriptionKey)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		return Subscription{}, false, nil
	case errors.Is(err, kv.ErrCorrupt):
		s.log.WarnContext(ctx, "discarding unreadable subscription", slog.String("error", err.Error()))
		return Subscription{}, false, nil
	case err != nil:
		return Subscription{}, false, err
	}
	return sub, true, nil
}

// Subscribe records email for the visitor and sends the welcome email.
// Subscribing the same address again is a no-op. A failed welcome email
// is logged and does not undo the subscription.
func (s *Service) Subscribe(ctx context.Context, b *kv.Bucket, email string, lang locale.Lang) (Subscription, error) {
	email = sanitizer.Email(email)
	if err := validateEmail(email); err != nil {
		return Subscription{Email: email}, err
	}

	sub, ok, err := s.Subscribed(ctx, b)
	if err != nil {
		return Subscription{}, err
	}
	if ok && sub.Email == email {
		return sub, nil
	}

	sub = Subscription{Email: email, At: s.now()}
	if err := kv.Save(ctx, b, SubscriptionKey, sub); err != nil {
		return Subscription{}, err
	}
	s.log.InfoContext(ctx, "newsletter subscription", slog.String("lang", string(lang)))

	err = s.mailer.Send(ctx, mailer.Message{
		To:       email,
		Lang:     string(lang),
		Template: welcomeTemplate,
		Tags:     mailer.Tags{"kind": "newsletter_welcome", "lang": string(lang)},
	})
	if err != nil {
		s.log.ErrorContext(ctx, "failed to send newsletter welcome", slog.String("error", err.Error()))
	}
	return sub, nil
}
