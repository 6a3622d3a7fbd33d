// Package httpparse implements an incremental, streaming parser for HTTP/1.x
// request and response messages.
//
// The parser consumes arbitrary byte chunks handed to it by the embedder and
// emits structural events (message begin, URL or status line, header field
// and value pairs, headers complete, body fragments, message complete)
// through a caller-supplied Sink. It never buffers or copies the input: every
// slice handed to a Sink method points directly into the chunk passed to
// Execute and is valid only for the duration of that call.
//
// A Parser is reused across an arbitrary number of messages on the same
// connection (HTTP keep-alive and pipelining); create one Parser per
// connection and feed it every byte read from that connection, in order,
// across as many Execute calls as convenient.
package httpparse
