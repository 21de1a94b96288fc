package llm

import "errors"

var (
	// ErrModelDisabled indicates no model is configured; callers go straight
	// to their fallback.
	ErrModelDisabled = errors.New("llm disabled")

	// ErrModelUnavailable indicates the model server is unreachable.
	ErrModelUnavailable = errors.New("llm server unavailable")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrBadStatus indicates the model server answered with a non-2xx status.
	ErrBadStatus = errors.New("llm returned non-success status")

	// ErrEmptyResponse indicates the model answered without any text.
	ErrEmptyResponse = errors.New("llm returned empty response")
)

// IsModelError reports whether err is one of the transport-level failures a
// caller should treat as "model unavailable".
func IsModelError(err error) bool {
	return errors.Is(err, ErrModelDisabled) ||
		errors.Is(err, ErrModelUnavailable) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrBadStatus) ||
		errors.Is(err, ErrEmptyResponse)
}
