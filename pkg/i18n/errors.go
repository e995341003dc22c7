package i18n

import "errors"

// Option errors, returned by New.
var (
	// ErrEmptyLanguage rejects a blank language code in any option.
	ErrEmptyLanguage = errors.New("i18n: language cannot be empty")
	// ErrEmptyNamespace rejects translations registered without a namespace.
	ErrEmptyNamespace = errors.New("i18n: namespace cannot be empty")
	// ErrNilPluralRule rejects WithPluralRule(lang, nil).
	ErrNilPluralRule = errors.New("i18n: plural rule cannot be nil")
)
