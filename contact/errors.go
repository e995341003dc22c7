package contact

import "errors"

var ErrNoInbox = errors.New("contact: no inbox configured")
