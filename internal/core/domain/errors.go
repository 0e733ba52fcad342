package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAccountID indicates that a candidate string is not a syntactically valid NEAR account ID.
	ErrInvalidAccountID = errors.New("invalid near account id")

	// ErrInvalidAmount indicates that a balance could not be parsed as a non-negative base-10 integer.
	ErrInvalidAmount = errors.New("invalid yocto amount")

	// ErrUnknownNetwork indicates that a network selector is neither mainnet nor testnet.
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrRPCTransport is matched by RPCError values of the transport kind.
	ErrRPCTransport = errors.New("rpc transport failure")

	// ErrRPCApplication is matched by RPCError values of the application kind.
	ErrRPCApplication = errors.New("rpc application failure")

	// ErrActivityUnavailable is matched by every ActivityFetchError.
	ErrActivityUnavailable = errors.New("recent activity unavailable")
)

// FormatError reports a balance value that the remote service returned in an unparseable form.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidAmount, e.Input)
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidAmount
}

// RPCErrorKind separates failures of the HTTP exchange from errors reported by the node itself.
type RPCErrorKind int

const (
	// RPCErrorTransport covers network failures and non-2xx responses.
	RPCErrorTransport RPCErrorKind = iota
	// RPCErrorApplication covers undecodable bodies, error fields and missing results.
	RPCErrorApplication
)

func (k RPCErrorKind) String() string {
	switch k {
	case RPCErrorTransport:
		return "transport"
	case RPCErrorApplication:
		return "application"
	default:
		return fmt.Sprintf("RPCErrorKind(%d)", int(k))
	}
}

// RPCError is returned by the account state client when view_account fails.
type RPCError struct {
	Kind       RPCErrorKind
	Method     string
	StatusCode int
	Code       int
	Message    string
	Err        error
}

func (e *RPCError) Error() string {
	msg := fmt.Sprintf("rpc %s error calling %s", e.Kind, e.Method)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Code != 0 {
		msg = fmt.Sprintf("%s (code %d)", msg, e.Code)
	}
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *RPCError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match an RPCError against ErrRPCTransport or ErrRPCApplication.
func (e *RPCError) Is(target error) bool {
	switch target {
	case ErrRPCTransport:
		return e.Kind == RPCErrorTransport
	case ErrRPCApplication:
		return e.Kind == RPCErrorApplication
	}
	return false
}

// ActivityFetchError is returned by the activity client. Callers absorb it into an empty activity list.
type ActivityFetchError struct {
	StatusCode int
	Err        error
}

func (e *ActivityFetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d)", ErrActivityUnavailable, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", ErrActivityUnavailable, e.Err)
	}
	return ErrActivityUnavailable.Error()
}

func (e *ActivityFetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrActivityUnavailable}
	}
	return []error{ErrActivityUnavailable, e.Err}
}
