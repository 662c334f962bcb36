package services

import "errors"

// ErrValidation is the root of every input-validation failure. Concrete
// failures wrap it with a field-level message, so handlers can match
// errors.Is(err, ErrValidation) and surface err.Error() to the client.
var ErrValidation = errors.New("validation failed")
