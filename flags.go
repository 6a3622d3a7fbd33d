package httpparse

// Flags is a bitset of per-message framing flags derived while parsing
// headers. It is reset to zero at the start of every message.
type Flags uint16

const (
	// FlagChunked indicates a Transfer-Encoding header whose value starts
	// with "chunked" (case-insensitively) was seen. Only the start of the
	// value is matched: text after "chunked" is not examined, and a
	// "chunked" that is not the first listed coding is not recognized.
	FlagChunked Flags = 1 << iota
	// FlagConnectionKeepAlive indicates a Connection: keep-alive header.
	FlagConnectionKeepAlive
	// FlagConnectionClose indicates a Connection: close header.
	FlagConnectionClose
	// FlagTrailing indicates the parser is reading chunked-encoding
	// trailer headers after the terminating zero-size chunk.
	FlagTrailing
	// FlagUpgrade indicates an Upgrade: header was present. A CONNECT
	// method does not set it; Parser.Upgrade covers both cases.
	FlagUpgrade
	// FlagSkipBody indicates the Sink asked the parser to not look for
	// a message body (e.g. in response to a HEAD request).
	FlagSkipBody
)

func (f Flags) has(bit Flags) bool { return f&bit != 0 }
func (f *Flags) set(bit Flags)     { *f |= bit }
