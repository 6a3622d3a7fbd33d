package httpparse

import "math"

// Overflow guards, checked before each multiply-and-add. The hex guard is
// exact: any size at or below it still fits after *16 plus any digit. The
// decimal guard allows for the largest digit, so it rejects every value
// above 18446744073709551609, including the few where a smaller final digit
// would still fit in 64 bits.
const maxContentLengthBeforeMul uint64 = (math.MaxUint64 - 9) / 10
const maxChunkSizeBeforeMul uint64 = (math.MaxUint64 - 15) / 16

// inHeaderPhase reports whether the current state counts against the
// per-message nread budget (MaxHeaderSize). Raw body and chunk-data bytes
// are excluded; every other state counts, which covers the states up to
// HeadersDone and also the chunk-size lines, the CRLF after each chunk's
// data, and the trailer header lines (which reuse the header states).
func (p *Parser) inHeaderPhase() bool {
	switch p.state {
	case sBodyIdentity, sBodyIdentityEOF, sChunkData, sMessageDone, sDead:
		return false
	default:
		return true
	}
}

// Execute feeds chunk to the parser, driving sink callbacks as structural
// events are recognized. It returns the number of bytes consumed: equal to
// len(chunk) on success, or the index at which parsing halted on error or
// pause. A zero-length chunk signals EOF on the underlying transport.
func (p *Parser) Execute(sink Sink, chunk []byte) (int, Errno) {
	if p.errno == Paused {
		return 0, Paused
	}
	if p.errno != Ok {
		return 0, p.errno
	}

	if len(chunk) == 0 {
		return p.executeEOF(sink)
	}

	markKind := p.preSeedMark()
	markOffset := 0
	if markKind == markNone {
		markOffset = -1
	}

	i := 0
	for i < len(chunk) {
		c := chunk[i]

		if p.inHeaderPhase() {
			if p.nread+1 > MaxHeaderSize {
				p.errno = HeaderOverflow
				return i, HeaderOverflow
			}
			p.nread++
		}

		advance := true

		switch p.state {
		case sBodyIdentity:
			avail := len(chunk) - i
			toRead := p.contentLength
			if toRead > uint64(avail) {
				toRead = uint64(avail)
			}
			end := i + int(toRead)
			if e := emit(sink, p, markBody, chunk, i, end); e != Ok {
				p.errno = e
				return end, e
			}
			p.contentLength -= toRead
			i = end
			if p.contentLength == 0 {
				if cerr := sink.OnMessageComplete(p); cerr != nil {
					p.errno = CBMessageComplete
					return i, CBMessageComplete
				}
				p.state = sMessageDone
			}
			continue

		case sChunkData:
			avail := len(chunk) - i
			toRead := p.contentLength
			if toRead > uint64(avail) {
				toRead = uint64(avail)
			}
			end := i + int(toRead)
			if e := emit(sink, p, markBody, chunk, i, end); e != Ok {
				p.errno = e
				return end, e
			}
			p.contentLength -= toRead
			i = end
			if p.contentLength == 0 {
				p.state = sChunkDataAlmostDone
			}
			continue

		case sBodyIdentityEOF:
			end := len(chunk)
			if e := emit(sink, p, markBody, chunk, i, end); e != Ok {
				p.errno = e
				return end, e
			}
			i = end
			continue

		case sMessageDone:
			if p.strict && !p.ShouldKeepAlive() {
				p.state = sDead
			} else {
				p.init(p.mode)
			}
			continue // reconsume this byte under the freshly reset state

		case sDead:
			p.errno = ClosedConnection
			return i, ClosedConnection

		case sHeadersAlmostDone:
			if c != '\n' {
				p.errno = LFExpected
				return i, LFExpected
			}
			stop, err := p.finishHeaderSection(sink)
			if err != Ok {
				p.errno = err
				return i, err
			}
			i++
			if stop {
				return i, Ok
			}
			continue

		default:
			errno := p.stepByte(sink, chunk, i, c, &markOffset, &markKind, &advance)
			if errno != Ok {
				p.errno = errno
				return i, errno
			}
		}

		if advance {
			i++
		}
	}

	if markKind != markNone && markOffset >= 0 {
		if e := emit(sink, p, markKind, chunk, markOffset, len(chunk)); e != Ok {
			p.errno = e
			return len(chunk), e
		}
	}
	return len(chunk), Ok
}

// executeEOF implements the EOF-handling rules of spec section 7: valid
// iff the state is BodyIdentityEOF (finalizes the message), a start state,
// or Dead (both harmless no-ops); any other state is InvalidEOFState.
func (p *Parser) executeEOF(sink Sink) (int, Errno) {
	switch p.state {
	case sBodyIdentityEOF:
		if cerr := sink.OnMessageComplete(p); cerr != nil {
			p.errno = CBMessageComplete
			return 0, CBMessageComplete
		}
		p.state = sMessageDone
		return 0, Ok
	case sStartReq, sStartRes, sStartReqOrRes, sDead:
		return 0, Ok
	default:
		p.errno = InvalidEOFState
		return 0, InvalidEOFState
	}
}

// finishHeaderSection is reached whenever a blank line terminates a
// header block: either the message's real headers, or (when FlagTrailing
// is set) the trailer headers following the final chunk. Trailers never
// re-fire OnHeadersComplete or redo the body-framing decision; they go
// straight to OnMessageComplete.
func (p *Parser) finishHeaderSection(sink Sink) (stop bool, errno Errno) {
	if p.flags.has(FlagTrailing) {
		if cerr := sink.OnMessageComplete(p); cerr != nil {
			return false, CBMessageComplete
		}
		p.state = sMessageDone
		return false, Ok
	}
	return p.headersComplete(sink)
}

// headersComplete implements the body framing decision of spec section
// 4.3 point 6, fired exactly once per message between the last header and
// the first body byte.
func (p *Parser) headersComplete(sink Sink) (stop bool, errno Errno) {
	p.upgrade = p.flags.has(FlagUpgrade) || p.method == MConnect

	action, cerr := sink.OnHeadersComplete(p)
	if cerr != nil || action == ActionError {
		return false, CBHeadersComplete
	}
	if action == ActionSkipBody {
		p.flags.set(FlagSkipBody)
	}

	switch {
	case p.upgrade:
		if cerr := sink.OnMessageComplete(p); cerr != nil {
			return false, CBMessageComplete
		}
		p.state = sMessageDone
		return true, Ok
	case p.flags.has(FlagSkipBody):
		if cerr := sink.OnMessageComplete(p); cerr != nil {
			return false, CBMessageComplete
		}
		p.state = sMessageDone
	case p.flags.has(FlagChunked):
		p.contentLength = 0
		p.state = sChunkSizeStart
	case p.contentLength == 0:
		if cerr := sink.OnMessageComplete(p); cerr != nil {
			return false, CBMessageComplete
		}
		p.state = sMessageDone
	case p.contentLength != ContentLengthUnset:
		p.state = sBodyIdentity
	case p.IsRequest() || !p.messageNeedsEOF():
		if cerr := sink.OnMessageComplete(p); cerr != nil {
			return false, CBMessageComplete
		}
		p.state = sMessageDone
	default:
		p.state = sBodyIdentityEOF
	}
	return false, Ok
}

// commitHeaderFlags is called once per header line, when the line's true
// end (not a folded continuation) is found: CHUNKED, CONNECTION_KEEP_ALIVE
// and CONNECTION_CLOSE are latched here rather than as each byte is
// matched, per spec 4.3's HeaderValueLws description. The Upgrade flag is
// the one exception, committed immediately at value start, since its
// presence (not its value content) is all that matters.
func (p *Parser) commitHeaderFlags() {
	switch p.headerState {
	case hTransferEncodingChunked:
		p.flags.set(FlagChunked)
	case hConnectionKeepAlive:
		p.flags.set(FlagConnectionKeepAlive)
	case hConnectionClose:
		p.flags.set(FlagConnectionClose)
	}
	p.headerState = hGeneral
	p.index = 0
}

// matchKeyword advances the sliding keyword matcher used for both header
// field names and framing header values: folded is compared against
// kw[p.index]; a match advances the cursor (promoting to terminal on full
// match), a mismatch demotes to hGeneral.
func (p *Parser) matchKeyword(folded byte, kw string, terminal headerState) {
	if p.index < len(kw) && folded == kw[p.index] {
		p.index++
		if p.index == len(kw) {
			p.headerState = terminal
		}
		return
	}
	p.headerState = hGeneral
}

// headerNameByte advances header-name recognition for one byte beyond the
// first (which sHeaderFieldStart seeds directly). See spec 4.3 "Header
// name recognition".
func (p *Parser) headerNameByte(folded byte) {
	switch p.headerState {
	case hGeneral:
		// no framing header recognized for this name; nothing to track
	case hC:
		if folded == 'o' {
			p.index = 2
			p.headerState = hCO
		} else {
			p.headerState = hGeneral
		}
	case hCO:
		if folded == 'n' {
			p.index = 3
			p.headerState = hCON
		} else {
			p.headerState = hGeneral
		}
	case hCON:
		switch folded {
		case 'n':
			p.headerState = hMatchingConnection
			p.index = 4
		case 't':
			p.headerState = hMatchingContentLength
			p.index = 4
		default:
			p.headerState = hGeneral
		}
	case hMatchingConnection:
		p.matchKeyword(folded, "connection", hConnection)
	case hMatchingContentLength:
		p.matchKeyword(folded, "content-length", hContentLength)
	case hMatchingTransferEncoding:
		p.matchKeyword(folded, "transfer-encoding", hTransferEncoding)
	case hMatchingUpgrade:
		p.matchKeyword(folded, "upgrade", hUpgrade)
	case hMatchingProxyConnection:
		p.matchKeyword(folded, "proxy-connection", hConnection)
	case hConnection, hContentLength, hTransferEncoding, hUpgrade:
		if folded != ' ' {
			p.headerState = hGeneral
		}
	}
}

// headerValueByte advances the framing-header value matchers (see spec
// 4.3 "Header value recognition"). It is called for every header-value
// byte that is not a line terminator.
func (p *Parser) headerValueByte(c byte) Errno {
	switch p.headerState {
	case hContentLength:
		if isNum(c) {
			if p.contentLength > maxContentLengthBeforeMul {
				return InvalidContentLength
			}
			p.contentLength = p.contentLength*10 + uint64(c-'0')
		} else if c != ' ' && c != '\t' {
			return InvalidContentLength
		}
	case hMatchingTransferEncodingChunked:
		p.matchKeyword(lower(c), "chunked", hTransferEncodingChunked)
	case hMatchingConnectionKeepAlive:
		p.matchKeyword(lower(c), "keep-alive", hConnectionKeepAlive)
	case hMatchingConnectionClose:
		p.matchKeyword(lower(c), "close", hConnectionClose)
	}
	return Ok
}

// errorForURLState maps a rejecting URL sub-machine state to the specific
// Errno the spec's taxonomy names for that URL component.
func errorForURLState(s state) Errno {
	switch s {
	case sReqServerStart, sReqServer, sReqServerWithAt:
		return InvalidHost
	case sReqPath:
		return InvalidPath
	case sReqQueryStringStart, sReqQueryString:
		return InvalidQueryString
	case sReqFragmentStart, sReqFragment:
		return InvalidFragment
	default:
		return InvalidURL
	}
}

// stepByte handles every state not given bulk or early-return treatment
// directly in Execute's loop: the start states, the request and response
// start lines (including the embedded URL sub-machine and method
// dispatch), the header states, and the chunk-size states.
func (p *Parser) stepByte(sink Sink, data []byte, i int, c byte, markOffset *int, markKind *markKind, advance *bool) Errno {
	switch p.state {

	// --- start states ---
	case sStartReqOrRes:
		if c == '\r' || c == '\n' {
			return Ok
		}
		if cerr := sink.OnMessageBegin(p); cerr != nil {
			return CBMessageBegin
		}
		p.nread = 0
		if c == 'H' {
			p.state = sResOrRespH
			return Ok
		}
		p.isReq = true
		mask := startMethod(c)
		if mask == 0 {
			return InvalidMethod
		}
		p.methodCandidates = mask
		p.index = 1
		p.state = sReqMethod
		return Ok

	case sResOrRespH:
		if c == 'T' {
			p.isReq = false
			p.state = sResHT
			return Ok
		}
		p.isReq = true
		mask := startMethod('H').narrow(1, c)
		if mask == 0 {
			return InvalidMethod
		}
		p.methodCandidates = mask
		p.index = 2
		p.state = sReqMethod
		return Ok

	case sStartReq:
		if c == '\r' || c == '\n' {
			return Ok
		}
		if cerr := sink.OnMessageBegin(p); cerr != nil {
			return CBMessageBegin
		}
		p.nread = 0
		p.isReq = true
		mask := startMethod(c)
		if mask == 0 {
			return InvalidMethod
		}
		p.methodCandidates = mask
		p.index = 1
		p.state = sReqMethod
		return Ok

	case sStartRes:
		if c == '\r' || c == '\n' {
			return Ok
		}
		if cerr := sink.OnMessageBegin(p); cerr != nil {
			return CBMessageBegin
		}
		p.nread = 0
		p.isReq = false
		if c != 'H' {
			return InvalidConstant
		}
		p.state = sResH
		return Ok

	// --- response status line ---
	case sResH:
		if c != 'T' {
			return InvalidConstant
		}
		p.state = sResHT
		return Ok
	case sResHT:
		if c != 'T' {
			return InvalidConstant
		}
		p.state = sResHTT
		return Ok
	case sResHTT:
		if c != 'P' {
			return InvalidConstant
		}
		p.state = sResHTTP
		return Ok
	case sResHTTP:
		if c != '/' {
			return InvalidConstant
		}
		p.state = sResFirstHTTPMajor
		return Ok
	case sResFirstHTTPMajor:
		if !isNum(c) {
			return InvalidVersion
		}
		p.httpMajor = c - '0'
		p.state = sResHTTPMajor
		return Ok
	case sResHTTPMajor:
		if c == '.' {
			p.state = sResFirstHTTPMinor
			return Ok
		}
		if !isNum(c) {
			return InvalidVersion
		}
		nv := int(p.httpMajor)*10 + int(c-'0')
		if nv > 99 {
			return InvalidVersion
		}
		p.httpMajor = uint8(nv)
		return Ok
	case sResFirstHTTPMinor:
		if !isNum(c) {
			return InvalidVersion
		}
		p.httpMinor = c - '0'
		p.state = sResHTTPMinor
		return Ok
	case sResHTTPMinor:
		if c == ' ' {
			p.state = sResFirstStatusCode
			return Ok
		}
		if !isNum(c) {
			return InvalidVersion
		}
		nv := int(p.httpMinor)*10 + int(c-'0')
		if nv > 99 {
			return InvalidVersion
		}
		p.httpMinor = uint8(nv)
		return Ok
	case sResFirstStatusCode:
		if !isNum(c) {
			return InvalidStatus
		}
		p.statusCode = uint16(c - '0')
		p.state = sResStatusCode
		return Ok
	case sResStatusCode:
		if c == ' ' {
			p.state = sResStatusStart
			return Ok
		}
		if !isNum(c) {
			if c == '\r' || c == '\n' {
				p.state = sResStatusStart
				*advance = false
				return Ok
			}
			return InvalidStatus
		}
		nv := int(p.statusCode)*10 + int(c-'0')
		if nv > 999 {
			return InvalidStatus
		}
		p.statusCode = uint16(nv)
		return Ok
	case sResStatusStart:
		if c == '\r' {
			p.state = sResLineAlmostDone
			return Ok
		}
		if c == '\n' {
			if p.strict {
				return LFExpected
			}
			p.nread = 0
			p.state = sHeaderFieldStart
			return Ok
		}
		*markOffset = i
		*markKind = markStatus
		p.state = sResStatus
		*advance = false
		return Ok
	case sResStatus:
		if c == '\r' {
			if e := emit(sink, p, markStatus, data, *markOffset, i); e != Ok {
				return e
			}
			*markKind = markNone
			p.state = sResLineAlmostDone
			return Ok
		}
		if c == '\n' {
			if p.strict {
				return LFExpected
			}
			if e := emit(sink, p, markStatus, data, *markOffset, i); e != Ok {
				return e
			}
			*markKind = markNone
			p.nread = 0
			p.state = sHeaderFieldStart
			return Ok
		}
		return Ok
	case sResLineAlmostDone:
		if c != '\n' {
			return LFExpected
		}
		p.nread = 0
		p.state = sHeaderFieldStart
		return Ok

	// --- request line: method ---
	case sReqMethod:
		if c == ' ' {
			m := p.methodCandidates.resolve(p.index)
			if m == MUndef {
				return InvalidMethod
			}
			p.method = m
			p.state = sReqSpacesBeforeURL
			return Ok
		}
		mask := p.methodCandidates.narrow(p.index, c)
		if mask == 0 {
			return InvalidMethod
		}
		p.methodCandidates = mask
		p.index++
		return Ok

	case sReqSpacesBeforeURL:
		if c == ' ' {
			return Ok
		}
		ns := parseURLChar(sReqSpacesBeforeURL, c, p.strict)
		if ns == sURLDead {
			return InvalidURL
		}
		*markOffset = i
		*markKind = markURL
		p.state = ns
		return Ok

	// --- request line: HTTP version ---
	case sReqHTTPStart:
		if c == ' ' {
			return Ok
		}
		if c != 'H' {
			return InvalidVersion
		}
		p.state = sReqHTTPH
		return Ok
	case sReqHTTPH:
		if c != 'T' {
			return InvalidVersion
		}
		p.state = sReqHTTPHT
		return Ok
	case sReqHTTPHT:
		if c != 'T' {
			return InvalidVersion
		}
		p.state = sReqHTTPHTT
		return Ok
	case sReqHTTPHTT:
		if c != 'P' {
			return InvalidVersion
		}
		p.state = sReqHTTPHTTP
		return Ok
	case sReqHTTPHTTP:
		if c != '/' {
			return InvalidVersion
		}
		p.state = sReqFirstHTTPMajor
		return Ok
	case sReqFirstHTTPMajor:
		if !isNum(c) {
			return InvalidVersion
		}
		p.httpMajor = c - '0'
		p.state = sReqHTTPMajor
		return Ok
	case sReqHTTPMajor:
		if c == '.' {
			p.state = sReqFirstHTTPMinor
			return Ok
		}
		if !isNum(c) {
			return InvalidVersion
		}
		nv := int(p.httpMajor)*10 + int(c-'0')
		if nv > 99 {
			return InvalidVersion
		}
		p.httpMajor = uint8(nv)
		return Ok
	case sReqFirstHTTPMinor:
		if !isNum(c) {
			return InvalidVersion
		}
		p.httpMinor = c - '0'
		p.state = sReqHTTPMinor
		return Ok
	case sReqHTTPMinor:
		if c == '\r' {
			p.state = sReqLineAlmostDone
			return Ok
		}
		if c == '\n' {
			if p.strict {
				return LFExpected
			}
			p.nread = 0
			p.state = sHeaderFieldStart
			return Ok
		}
		if !isNum(c) {
			return InvalidVersion
		}
		nv := int(p.httpMinor)*10 + int(c-'0')
		if nv > 99 {
			return InvalidVersion
		}
		p.httpMinor = uint8(nv)
		return Ok
	case sReqLineAlmostDone:
		if c != '\n' {
			return LFExpected
		}
		p.nread = 0
		p.state = sHeaderFieldStart
		return Ok

	// --- headers ---
	case sHeaderFieldStart:
		if c == '\r' {
			p.state = sHeadersAlmostDone
			return Ok
		}
		if c == '\n' {
			if p.strict {
				return LFExpected
			}
			// bare LF ending the header block: reprocess it as the LF of
			// sHeadersAlmostDone so Execute handles an upgrade stop there
			p.state = sHeadersAlmostDone
			*advance = false
			return Ok
		}
		folded, ok := token(p.strict, c)
		if !ok {
			return InvalidHeaderToken
		}
		*markOffset = i
		*markKind = markField
		p.state = sHeaderField
		p.index = 1
		switch folded {
		case 'c':
			p.headerState = hC
		case 'p':
			p.headerState = hMatchingProxyConnection
		case 't':
			p.headerState = hMatchingTransferEncoding
		case 'u':
			p.headerState = hMatchingUpgrade
		default:
			p.headerState = hGeneral
		}
		return Ok

	case sHeaderField:
		if c == ':' {
			if e := emit(sink, p, markField, data, *markOffset, i); e != Ok {
				return e
			}
			*markKind = markNone
			p.state = sHeaderValueDiscardWs
			return Ok
		}
		folded, ok := token(p.strict, c)
		if !ok {
			return InvalidHeaderToken
		}
		p.headerNameByte(folded)
		return Ok

	case sHeaderValueDiscardWs:
		if c == ' ' || c == '\t' {
			return Ok
		}
		if c == '\r' {
			p.state = sHeaderValueDiscardWsAlmostDone
			return Ok
		}
		if c == '\n' {
			if p.strict {
				return LFExpected
			}
			p.state = sHeaderValueDiscardLws
			return Ok
		}
		*markOffset = i
		*markKind = markValue
		p.state = sHeaderValueStart
		*advance = false
		return Ok

	case sHeaderValueDiscardWsAlmostDone:
		if c != '\n' {
			return LFExpected
		}
		p.state = sHeaderValueDiscardLws
		return Ok

	case sHeaderValueDiscardLws:
		if c == ' ' || c == '\t' {
			p.state = sHeaderValueDiscardWs
			return Ok
		}
		p.commitHeaderFlags()
		p.state = sHeaderFieldStart
		*advance = false
		return Ok

	case sHeaderValueStart:
		switch p.headerState {
		case hUpgrade:
			p.flags.set(FlagUpgrade)
			p.headerState = hGeneral
		case hContentLength:
			p.contentLength = 0
		case hTransferEncoding:
			p.headerState = hMatchingTransferEncodingChunked
			p.index = 0
		case hConnection:
			switch lower(c) {
			case 'k':
				p.headerState = hMatchingConnectionKeepAlive
				p.index = 0
			case 'c':
				p.headerState = hMatchingConnectionClose
				p.index = 0
			default:
				p.headerState = hGeneral
			}
		}
		p.state = sHeaderValue
		*advance = false
		return Ok

	case sHeaderValue:
		if c == '\r' {
			if e := emit(sink, p, markValue, data, *markOffset, i); e != Ok {
				return e
			}
			*markKind = markNone
			p.state = sHeaderAlmostDone
			return Ok
		}
		if c == '\n' {
			if p.strict {
				return LFExpected
			}
			if e := emit(sink, p, markValue, data, *markOffset, i); e != Ok {
				return e
			}
			*markKind = markNone
			p.state = sHeaderValueLws
			return Ok
		}
		return p.headerValueByte(c)

	case sHeaderAlmostDone:
		if c != '\n' {
			return LFExpected
		}
		p.state = sHeaderValueLws
		return Ok

	case sHeaderValueLws:
		if c == ' ' || c == '\t' {
			*markOffset = i
			*markKind = markValue
			p.state = sHeaderValue
			*advance = false
			return Ok
		}
		p.commitHeaderFlags()
		p.state = sHeaderFieldStart
		*advance = false
		return Ok

	// --- chunked transfer coding ---
	case sChunkSizeStart:
		v := unhex(c)
		if v < 0 {
			return InvalidChunkSize
		}
		p.contentLength = uint64(v)
		p.state = sChunkSize
		return Ok

	case sChunkSize:
		if c == ';' || c == ' ' {
			p.state = sChunkParameters
			return Ok
		}
		if c == '\r' {
			p.state = sChunkSizeAlmostDone
			return Ok
		}
		v := unhex(c)
		if v < 0 {
			return InvalidChunkSize
		}
		if p.contentLength > maxChunkSizeBeforeMul {
			return InvalidChunkSize
		}
		p.contentLength = p.contentLength*16 + uint64(v)
		return Ok

	case sChunkParameters:
		if c == '\r' {
			p.state = sChunkSizeAlmostDone
		}
		return Ok

	case sChunkSizeAlmostDone:
		if c != '\n' {
			return LFExpected
		}
		p.nread = 0
		if p.contentLength == 0 {
			p.flags.set(FlagTrailing)
			p.state = sHeaderFieldStart
		} else {
			p.state = sChunkData
		}
		return Ok

	case sChunkDataAlmostDone:
		if c != '\r' {
			return InvalidChunkSize
		}
		p.state = sChunkDataDone
		return Ok

	case sChunkDataDone:
		if c != '\n' {
			return LFExpected
		}
		p.nread = 0
		p.contentLength = 0
		p.state = sChunkSizeStart
		return Ok
	}

	if isURLState(p.state) {
		ns := parseURLChar(p.state, c, p.strict)
		if ns == sURLDead {
			if c == ' ' {
				if e := emit(sink, p, markURL, data, *markOffset, i); e != Ok {
					return e
				}
				*markKind = markNone
				p.state = sReqHTTPStart
				return Ok
			}
			return errorForURLState(p.state)
		}
		p.state = ns
		return Ok
	}

	return InvalidInternalState
}
