package httpparse

// state is a node of the main byte-level state machine. The URL
// sub-machine's states live in the same space (parseURLChar is a pure
// function over a subset of these values) since the main driver treats them
// as ordinary states of the request-line group.
type state uint8

const (
	sStartReqOrRes state = iota
	sStartReq
	sStartRes
	sDead

	// response status line
	sResOrRespH
	sResH
	sResHT
	sResHTT
	sResHTTP
	sResFirstHTTPMajor
	sResHTTPMajor
	sResFirstHTTPMinor
	sResHTTPMinor
	sResFirstStatusCode
	sResStatusCode
	sResStatusStart
	sResStatus
	sResLineAlmostDone

	// request line
	sReqMethod
	sReqSpacesBeforeURL

	// URL sub-machine states (shared value space, see urlmachine.go)
	sReqSchema
	sReqSchemaSlash
	sReqSchemaSlashSlash
	sReqServerStart
	sReqServer
	sReqServerWithAt
	sReqPath
	sReqQueryStringStart
	sReqQueryString
	sReqFragmentStart
	sReqFragment
	sURLDead // URL sub-machine rejection sentinel, never a "current" state

	sReqHTTPStart
	sReqHTTPH
	sReqHTTPHT
	sReqHTTPHTT
	sReqHTTPHTTP
	sReqFirstHTTPMajor
	sReqHTTPMajor
	sReqFirstHTTPMinor
	sReqHTTPMinor
	sReqLineAlmostDone

	// headers
	sHeaderFieldStart
	sHeaderField
	sHeaderValueDiscardWs
	sHeaderValueDiscardWsAlmostDone
	sHeaderValueDiscardLws
	sHeaderValueStart
	sHeaderValue
	sHeaderAlmostDone
	sHeaderValueLws
	sHeadersAlmostDone
	sHeadersDone

	// body
	sBodyIdentity
	sBodyIdentityEOF
	sMessageDone

	// chunked transfer coding
	sChunkSizeStart
	sChunkSize
	sChunkParameters
	sChunkSizeAlmostDone
	sChunkData
	sChunkDataAlmostDone
	sChunkDataDone
)

// isURLState reports whether s belongs to the URL sub-machine's domain,
// i.e. it is one of the states the main driver hands off to parseURLChar.
func isURLState(s state) bool {
	return s >= sReqSchema && s <= sReqFragment
}

// headerState is the sub-state used while sliding-matching a known header
// field name or a framing header's value against its expected keyword.
type headerState uint8

const (
	hGeneral headerState = iota
	hC
	hCO
	hCON

	hMatchingConnection
	hMatchingProxyConnection
	hMatchingContentLength
	hMatchingTransferEncoding
	hMatchingUpgrade

	hConnection
	hContentLength
	hTransferEncoding
	hUpgrade

	hMatchingTransferEncodingChunked
	hTransferEncodingChunked

	hMatchingConnectionKeepAlive
	hMatchingConnectionClose
	hConnectionKeepAlive
	hConnectionClose
)
