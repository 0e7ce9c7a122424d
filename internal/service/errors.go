package service

import "fmt"

type AuthErrorKind int

const (
	AuthErrorMissingCode AuthErrorKind = iota
	AuthErrorTokenExchange
	AuthErrorProfileFetch
	AuthErrorTimeout
)

// AuthError classifies a failed authentication flow. Status and Body carry
// the provider's verbatim response when one was received.
type AuthError struct {
	Kind   AuthErrorKind
	Status int
	Body   string
	cause  error
}

func (e *AuthError) Error() string {
	switch e.Kind {
	case AuthErrorMissingCode:
		return "no authorization code received"
	case AuthErrorTokenExchange:
		if e.Body != "" {
			return fmt.Sprintf("token exchange failed with status %d: %s", e.Status, e.Body)
		}
		return fmt.Sprintf("token exchange failed: %v", e.cause)
	case AuthErrorProfileFetch:
		if e.Body != "" {
			return fmt.Sprintf("profile fetch failed with status %d: %s", e.Status, e.Body)
		}
		return fmt.Sprintf("profile fetch failed: %v", e.cause)
	case AuthErrorTimeout:
		return fmt.Sprintf("request to the 42 API timed out: %v", e.cause)
	default:
		return fmt.Sprintf("authentication failed: %v", e.cause)
	}
}

func (e *AuthError) Unwrap() error {
	return e.cause
}

// RenderError wraps a failure during PDF assembly. The renderer never hands
// back a partially written stream, a RenderError means no document at all.
type RenderError struct {
	cause error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to assemble document: %v", e.cause)
}

func (e *RenderError) Unwrap() error {
	return e.cause
}
