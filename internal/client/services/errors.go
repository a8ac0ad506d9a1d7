package services

import "errors"

// ErrMissingID is returned when an operation needs a server-assigned user id
// and the record has none.
var ErrMissingID = errors.New("user has no id")
