package llm

import "errors"

// Failure taxonomy for the generation backend. Handlers map these onto
// HTTP statuses; only ErrNetwork is safe to retry immediately.
var (
	ErrAuthConfig    = errors.New("genai: invalid or missing api key")
	ErrQuotaExceeded = errors.New("genai: quota exceeded")
	ErrNetwork       = errors.New("genai: network failure")
	ErrGeneration    = errors.New("genai: generation failed")
)
