// Package api performs the admin client's HTTP calls and folds every
// failure mode into a small error taxonomy before any store sees it.
package api

// ValidationError reports input rejected client-side before any network
// call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AuthRequiredError reports an operation attempted without a valid session
// token. The caller is expected to send the user back through login.
type AuthRequiredError struct {
	Message string
}

func (e *AuthRequiredError) Error() string { return e.Message }

// NetworkError reports a transport failure: no connectivity, DNS or TLS
// failure, connection refused.
type NetworkError struct {
	Message string
	Err     error
}

func (e *NetworkError) Error() string { return e.Message }
func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError reports a non-2xx HTTP response. Message is extracted from
// the response body when it parses as JSON, otherwise from the status line.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string { return e.Message }

// ProtocolError reports a 2xx response whose body matches none of the
// shapes the client tolerates.
type ProtocolError struct {
	Message string
}

func (e *ProtocolError) Error() string { return e.Message }
