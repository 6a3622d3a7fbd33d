package httpparse

import "math"

// Mode selects which grammar a Parser expects: a fixed request or response
// grammar, or auto-detection from the first non-CRLF byte of the stream
// (ModeEither).
type Mode uint8

const (
	ModeRequest Mode = iota
	ModeResponse
	ModeEither
)

// MaxHeaderSize is the cap on bytes read in one non-body stretch of a
// message. The count restarts at message begin, at the end of the start
// line, and at each chunk-size line and chunk end, so the start line and
// the header block are each bounded separately; a stretch longer than this
// many bytes aborts with HeaderOverflow.
const MaxHeaderSize = 80 * 1024

// ContentLengthUnset is the sentinel content-length value meaning "no
// Content-Length header was observed yet".
const ContentLengthUnset = math.MaxUint64 - 1

// Parser is the live parsing state for one HTTP/1.x connection. Create one
// Parser per connection with NewParser and reuse it across every message on
// that connection; do not share a Parser across concurrently-executing
// goroutines.
type Parser struct {
	mode Mode

	state       state
	headerState headerState
	flags       Flags

	index int // cursor into the active matcher (method / header keyword)
	nread int // bytes consumed since the last message boundary

	contentLength uint64

	httpMajor uint8
	httpMinor uint8

	method     HTTPMethod
	statusCode uint16

	errno Errno

	upgrade bool
	strict  bool

	methodCandidates methodMask

	// isReq is set as soon as the message's direction is known (mode
	// resolved, for ModeEither) and drives IsRequest/messageNeedsEOF.
	isReq bool
}

// NewParser creates a Parser for the given mode.
func NewParser(mode Mode) *Parser {
	p := &Parser{}
	p.init(mode)
	return p
}

// init resets a Parser and (re-)applies mode, used both by NewParser and by
// the post-message-done transition back to a start state.
func (p *Parser) init(mode Mode) {
	*p = Parser{mode: mode, strict: p.strict}
	p.contentLength = ContentLengthUnset
	switch mode {
	case ModeRequest:
		p.state = sStartReq
		p.isReq = true
	case ModeResponse:
		p.state = sStartRes
	default:
		p.state = sStartReqOrRes
	}
}

// SetStrict toggles strict mode: every line terminator must be a literal
// CRLF and method tokens reject embedded whitespace. Non-strict (the
// default) tolerates a bare LF ending the start line, a header line or the
// header block, and is otherwise more permissive, matching real-world
// HTTP/1.x traffic. Chunk-size lines and the line end after chunk data
// require CRLF in both modes.
func (p *Parser) SetStrict(strict bool) { p.strict = strict }

// Strict reports whether strict mode is enabled.
func (p *Parser) Strict() bool { return p.strict }

// Mode returns the parser's mode.
func (p *Parser) Mode() Mode { return p.mode }

// Errno returns the sticky error code of the last Execute call, or Ok if
// none occurred.
func (p *Parser) Errno() Errno { return p.errno }

// Method returns the parsed request method. Zero value (MUndef) for
// responses or before the method is parsed.
func (p *Parser) Method() HTTPMethod { return p.method }

// StatusCode returns the parsed response status code. Zero for requests or
// before the status line is parsed.
func (p *Parser) StatusCode() uint16 { return p.statusCode }

// HTTPVersion returns the parsed HTTP major and minor version numbers.
func (p *Parser) HTTPVersion() (major, minor uint8) { return p.httpMajor, p.httpMinor }

// ContentLength returns the parsed Content-Length value, or
// ContentLengthUnset if no Content-Length header was seen.
func (p *Parser) ContentLength() uint64 { return p.contentLength }

// Upgrade reports whether this message is a protocol upgrade (Upgrade:
// header present, or method is CONNECT). Only meaningful once headers are
// complete.
func (p *Parser) Upgrade() bool { return p.upgrade }

// IsRequest reports whether the message being parsed is a request.
func (p *Parser) IsRequest() bool { return p.isReq }

// BodyIsFinal reports whether the parser has finished the current message
// (state is sMessageDone, awaiting the transition to the next message or to
// Dead).
func (p *Parser) BodyIsFinal() bool { return p.state == sMessageDone }

// messageNeedsEOF implements the spec's http_message_needs_eof: for
// responses only, false for 1xx, 204, 304, a skipped body, chunked coding,
// or an explicit Content-Length; true otherwise. Requests never need EOF.
func (p *Parser) messageNeedsEOF() bool {
	if p.IsRequest() {
		return false
	}
	if (p.statusCode >= 100 && p.statusCode < 200) ||
		p.statusCode == 204 || p.statusCode == 304 ||
		p.flags.has(FlagSkipBody) {
		return false
	}
	if p.flags.has(FlagChunked) {
		return false
	}
	if p.contentLength != ContentLengthUnset {
		return false
	}
	return true
}

// ShouldKeepAlive implements the spec's http_should_keep_alive: HTTP/1.1+
// keeps the connection alive unless Connection: close was seen; HTTP/1.0
// and earlier require an explicit Connection: keep-alive. Either way, a
// message whose body can only be delimited by EOF forces the connection
// closed regardless of the Connection header.
func (p *Parser) ShouldKeepAlive() bool {
	if p.httpMajor > 0 && p.httpMinor > 0 || p.httpMajor > 1 {
		if p.flags.has(FlagConnectionClose) {
			return false
		}
	} else {
		if !p.flags.has(FlagConnectionKeepAlive) {
			return false
		}
	}
	return !p.messageNeedsEOF()
}

// Pause latches the parser into (or out of) the Paused error state.
// pause(true) is idempotent. pause(false) only has an effect if the
// current error is Paused; calling it while any other error is sticky is a
// contract violation (ignored, matching "pause in any other error state is
// a contract violation" from the spec rather than panicking on embedder
// misuse).
func (p *Parser) Pause(paused bool) {
	if paused {
		p.errno = Paused
		return
	}
	if p.errno == Paused {
		p.errno = Ok
	}
}
