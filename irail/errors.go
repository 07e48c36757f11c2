package irail

import "fmt"

// Kind classifies client failures.
type Kind int

const (
	KindInvalidArgument Kind = iota
	KindTimeout
	KindRateLimited
	KindNotFound
	KindUpstreamStatus
	KindMalformedResponse
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid-argument"
	case KindTimeout:
		return "upstream-timeout"
	case KindRateLimited:
		return "rate-limited"
	case KindNotFound:
		return "not-found"
	case KindUpstreamStatus:
		return "upstream-http-error"
	case KindMalformedResponse:
		return "upstream-malformed-response"
	case KindNetwork:
		return "network-error"
	default:
		return "unknown"
	}
}

// Error is the error type returned by all Client methods.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
