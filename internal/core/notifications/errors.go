package notifications

import "errors"

// ErrInvalidKind indicates an unknown notification kind
var ErrInvalidKind = errors.New("invalid notification kind: must be 'like' or 'follow'")
