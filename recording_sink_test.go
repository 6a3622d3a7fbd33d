package httpparse

// event is one recorded callback invocation, flattened to a kind tag plus
// whatever payload applies, for easy comparison in table-driven tests.
type event struct {
	kind string
	data string
}

// recordingSink is a Sink that appends every callback to a flat event log,
// concatenating repeated field/value/url/status/body fragments that arrive
// split across chunk boundaries into a single logical event - the thing
// tests actually want to assert on, since exactly where a span was split is
// an implementation detail of the chunk boundaries fed in, not of the
// parser's behavior.
type recordingSink struct {
	events       []event
	headersDone  []HeadersAction
	skipNextBody bool
}

func (s *recordingSink) append(kind, data string) {
	n := len(s.events)
	if n > 0 && s.events[n-1].kind == kind {
		s.events[n-1].data += data
		return
	}
	s.events = append(s.events, event{kind: kind, data: data})
}

func (s *recordingSink) OnMessageBegin(p *Parser) error {
	s.events = append(s.events, event{kind: "message-begin"})
	return nil
}
func (s *recordingSink) OnURL(p *Parser, data []byte) error {
	s.append("url", string(data))
	return nil
}
func (s *recordingSink) OnStatus(p *Parser, data []byte) error {
	s.append("status", string(data))
	return nil
}
func (s *recordingSink) OnHeaderField(p *Parser, data []byte) error {
	s.append("header-field", string(data))
	return nil
}
func (s *recordingSink) OnHeaderValue(p *Parser, data []byte) error {
	s.append("header-value", string(data))
	return nil
}
func (s *recordingSink) OnHeadersComplete(p *Parser) (HeadersAction, error) {
	s.events = append(s.events, event{kind: "headers-complete"})
	if s.skipNextBody {
		s.skipNextBody = false
		return ActionSkipBody, nil
	}
	return ActionNothing, nil
}
func (s *recordingSink) OnBody(p *Parser, data []byte) error {
	s.append("body", string(data))
	return nil
}
func (s *recordingSink) OnMessageComplete(p *Parser) error {
	s.events = append(s.events, event{kind: "message-complete"})
	return nil
}

// runChunks feeds chunks to p in order via Execute and stops at the first
// non-Ok errno, returning the bytes consumed so far and that errno.
func runChunks(p *Parser, sink Sink, chunks [][]byte) (int, Errno) {
	total := 0
	for _, c := range chunks {
		n, errno := p.Execute(sink, c)
		total += n
		if errno != Ok {
			return total, errno
		}
	}
	return total, Ok
}
