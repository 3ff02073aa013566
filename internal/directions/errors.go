package directions

import "fmt"

// Kind classifies a gateway failure. The orchestrator uses it to decide
// between silent fallback data and a surfaced error state.
type Kind string

const (
	// KindConfiguration means provider credentials or environment are missing.
	KindConfiguration Kind = "configuration"

	// KindNetwork means the provider could not be reached (connection,
	// timeout, DNS) or answered with a server-side failure.
	KindNetwork Kind = "network"

	// KindProvider means the provider was reachable but returned a semantic
	// failure, e.g. no route found or an invalid request.
	KindProvider Kind = "provider"

	// KindMalformedResponse means a response arrived but could not be parsed.
	KindMalformedResponse Kind = "malformed_response"
)

// Error is the normalized gateway error. Every transport, HTTP and payload
// failure crossing the gateway boundary is wrapped into one.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("directions %s error: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("directions %s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Recoverable reports whether the failure should degrade to fallback data
// instead of surfacing to the caller.
func (e *Error) Recoverable() bool {
	return e.Kind == KindConfiguration || e.Kind == KindNetwork
}

func newConfigurationError(message string) *Error {
	return &Error{Kind: KindConfiguration, Message: message}
}

func newNetworkError(message string, err error) *Error {
	return &Error{Kind: KindNetwork, Message: message, Err: err}
}

func newProviderError(message string) *Error {
	return &Error{Kind: KindProvider, Message: message}
}

func newMalformedResponseError(message string, err error) *Error {
	return &Error{Kind: KindMalformedResponse, Message: message, Err: err}
}
