package validation

import "errors"

// ErrInvalidInput marks user-input errors: negative ratios, payments that do
// not cover interest and out-of-range rates. Callers wrap it with context and
// test for it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")
