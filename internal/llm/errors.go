package llm

import (
	"errors"
	"fmt"
)

// Transient failures (rate limits, timeouts, 5xx) are wrapped in
// ErrTransient so the retry decorator can tell them apart from permanent
// ones like a bad API key.
var ErrTransient = errors.New("transient provider error")

func transientf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrTransient}, args...)...)
}

// IsTransient reports whether err is worth retrying.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}
