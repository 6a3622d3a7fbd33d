package httpparse

// Errno is a sticky error code reported by a Parser. It is returned
// alongside the consumed byte count from Execute rather than wrapped in a Go
// error value, so that a failed parse never allocates: the hot path runs
// once per byte and a Parser can process many megabytes of headers without
// a single heap allocation attributable to error handling.
type Errno uint8

// Error taxonomy. Ok is the zero value so a freshly constructed Parser
// reports no error.
const (
	Ok Errno = iota
	Unknown
	HeaderOverflow
	ClosedConnection
	InvalidVersion
	InvalidStatus
	InvalidMethod
	InvalidURL
	InvalidHost
	InvalidPort
	InvalidPath
	InvalidQueryString
	InvalidFragment
	LFExpected
	InvalidHeaderToken
	InvalidContentLength
	InvalidChunkSize
	InvalidConstant
	InvalidInternalState
	Strict
	Paused
	CBMessageBegin
	CBURL
	CBHeaderField
	CBHeaderValue
	CBHeadersComplete
	CBBody
	CBMessageComplete
	CBStatus
	InvalidEOFState
)

var errnoNames = [...]string{
	Ok:                    "ok",
	Unknown:               "unknown error",
	HeaderOverflow:        "header overflow",
	ClosedConnection:      "data received after connection closed",
	InvalidVersion:        "invalid HTTP version",
	InvalidStatus:         "invalid HTTP status code",
	InvalidMethod:         "invalid HTTP method",
	InvalidURL:            "invalid URL",
	InvalidHost:           "invalid host",
	InvalidPort:           "invalid port",
	InvalidPath:           "invalid path",
	InvalidQueryString:    "invalid query string",
	InvalidFragment:       "invalid fragment",
	LFExpected:            "LF character expected",
	InvalidHeaderToken:    "invalid character in header",
	InvalidContentLength:  "invalid character in Content-Length header",
	InvalidChunkSize:      "invalid character in chunk size header",
	InvalidConstant:       "invalid constant string",
	InvalidInternalState:  "parser is in an invalid internal state",
	Strict:                "strict mode assertion failed",
	Paused:                "parser is paused",
	CBMessageBegin:        "the on_message_begin callback failed",
	CBURL:                 "the on_url callback failed",
	CBHeaderField:         "the on_header_field callback failed",
	CBHeaderValue:         "the on_header_value callback failed",
	CBHeadersComplete:     "the on_headers_complete callback failed",
	CBBody:                "the on_body callback failed",
	CBMessageComplete:     "the on_message_complete callback failed",
	CBStatus:              "the on_status callback failed",
	InvalidEOFState:       "stream ended at an unexpected point",
}

// String returns a short human-readable description of the error.
func (e Errno) String() string {
	if int(e) < len(errnoNames) {
		return errnoNames[e]
	}
	return "unknown error"
}

// Error implements the error interface, so an Errno can be returned anywhere
// a plain error is expected by an embedder.
func (e Errno) Error() string {
	return e.String()
}

// Recoverable reports whether e leaves the Parser in a state where feeding
// it more bytes (after fixing whatever caused a callback-reported error, or
// simply because the condition is not a hard parse failure) is meaningful.
// Ok and Paused are the only recoverable values known to this package: every
// wire-grammar or callback error is sticky and final for the message.
func (e Errno) Recoverable() bool {
	return e == Ok || e == Paused
}

// IsCallbackError reports whether e originated from a Sink method returning
// an error, as opposed to a wire-grammar violation. An embedder can use this
// to distinguish its own callback failures (the fault is in the Sink) from a
// malformed peer (the fault is on the wire) when deciding how to log or react.
func (e Errno) IsCallbackError() bool {
	return e >= CBMessageBegin && e <= CBStatus
}
