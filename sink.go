package httpparse

// HeadersAction is the tagged choice a Sink's OnHeadersComplete returns,
// per the spec's design note that this be "a tagged choice {Nothing,
// SkipBody, Error}, not an integer overload".
type HeadersAction uint8

const (
	// ActionNothing proceeds with normal body framing (Content-Length /
	// chunked / EOF, as determined by Parser.headersComplete).
	ActionNothing HeadersAction = iota
	// ActionSkipBody tells the parser this message has no body regardless
	// of Content-Length or Transfer-Encoding (e.g. a response to a HEAD
	// request, known only to the embedder).
	ActionSkipBody
	// ActionError aborts the message with CBHeadersComplete.
	ActionError
)

// Sink is the capability set an embedder implements to receive parsing
// events. Every method may return a non-nil error to abort parsing; the
// Parser then reports the corresponding CB* Errno and Execute returns the
// offset of the byte that triggered the callback.
//
// Slices passed to Sink methods point directly into the chunk passed to
// Execute and are valid only for the duration of the call: a Sink that
// needs to retain data must copy it.
type Sink interface {
	// OnMessageBegin fires on the first non-CRLF byte of a message.
	OnMessageBegin(p *Parser) error
	// OnURL delivers (possibly repeated, chunk-boundary-split) fragments
	// of the request-target of a request message.
	OnURL(p *Parser, data []byte) error
	// OnStatus delivers (possibly repeated) fragments of the reason
	// phrase of a response's status line.
	OnStatus(p *Parser, data []byte) error
	// OnHeaderField delivers (possibly repeated) fragments of a header
	// field name.
	OnHeaderField(p *Parser, data []byte) error
	// OnHeaderValue delivers (possibly repeated) fragments of a header
	// field value.
	OnHeaderValue(p *Parser, data []byte) error
	// OnHeadersComplete fires exactly once per message, after the last
	// header and before the first body byte (if any).
	OnHeadersComplete(p *Parser) (HeadersAction, error)
	// OnBody delivers (possibly repeated) fragments of the message body,
	// already de-chunked if the transfer coding was chunked.
	OnBody(p *Parser, data []byte) error
	// OnMessageComplete fires exactly once per message, at termination.
	OnMessageComplete(p *Parser) error
}

// NopSink is a Sink implementation whose methods all succeed and do
// nothing, useful for embedders that only care about framing (e.g.
// discarding a message body) or as a base to embed and override selectively.
type NopSink struct{}

func (NopSink) OnMessageBegin(*Parser) error                        { return nil }
func (NopSink) OnURL(*Parser, []byte) error                         { return nil }
func (NopSink) OnStatus(*Parser, []byte) error                      { return nil }
func (NopSink) OnHeaderField(*Parser, []byte) error                 { return nil }
func (NopSink) OnHeaderValue(*Parser, []byte) error                 { return nil }
func (NopSink) OnHeadersComplete(*Parser) (HeadersAction, error)    { return ActionNothing, nil }
func (NopSink) OnBody(*Parser, []byte) error                        { return nil }
func (NopSink) OnMessageComplete(*Parser) error                     { return nil }
