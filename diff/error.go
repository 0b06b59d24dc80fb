package diff

import "github.com/pkg/errors"

// ErrInvalidEncoding is returned when raw text isn't valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid encoding")
