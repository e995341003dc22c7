package contact

import (
	"time"

	"github.com/dmitrymomot/storefront/pkg/sanitizer"
	"github.com/dmitrymomot/storefront/pkg/validator"
)

const (
	maxNameLength    = 80
	minMessageLength = 10
	maxMessageLength = 2000
)

// Message is the contact form.
type Message struct {
	Name  string `form:"name"`
	Email string `form:"email"`
	Text  string `form:"message"`
}

// Sanitize strips markup and normalizes every field.
func (m Message) Sanitize() Message {
	m.Name = sanitizer.Truncate(sanitizer.Text(m.Name), maxNameLength)
	m.Email = sanitizer.Email(m.Email)
	m.Text = sanitizer.Multiline(m.Text, maxMessageLength)
	return m
}

// Validate returns nil or validator.ValidationErrors.
func (m Message) Validate() error {
	return validator.Apply(
		validator.RequiredString("name", m.Name),
		validator.RequiredString("email", m.Email),
		validator.Email("email", m.Email),
		validator.RequiredString("message", m.Text),
		validator.MinLenString("message", m.Text, minMessageLength),
	)
}

// Subscription is the newsletter sign-up of a visitor.
type Subscription struct {
	At    time.Time `json:"at"`
	Email string    `json:"email"`
}

// validateEmail checks a newsletter address.
func validateEmail(email string) error {
	return validator.Apply(
		validator.RequiredString("email", email),
		validator.Email("email", email),
	)
}
