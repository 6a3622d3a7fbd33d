// Command httpdump is a diagnostic embedder for httpparse: it accepts TCP
// connections, feeds whatever bytes arrive to one httpparse.Parser per
// connection in caller-chosen chunk sizes, and logs the resulting event
// sequence. It exists to exercise the library end to end - pipelining,
// upgrades, and byte-at-a-time chunking included - outside of the test
// suite.
package main

import (
	"flag"
	"net"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/httpparse"
)

func main() {
	addr := flag.String("addr", ":8080", "address to listen on")
	mode := flag.String("mode", "request", "request, response or either")
	strict := flag.Bool("strict", false, "enable strict grammar mode")
	chunkSize := flag.Int("chunk-size", 4096, "max bytes read per connection read() call; use 1 to force byte-at-a-time parsing")
	maxHeaderSize := flag.Int("max-header-size", httpparse.MaxHeaderSize, "informational only; the parser's own cap is compile-time fixed")
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var m httpparse.Mode
	switch *mode {
	case "request":
		m = httpparse.ModeRequest
	case "response":
		m = httpparse.ModeResponse
	default:
		m = httpparse.ModeEither
	}

	ln, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", *addr).Msg("listen failed")
	}
	log.Info().Str("addr", *addr).Str("mode", *mode).Int("chunk_size", *chunkSize).
		Int("max_header_size", *maxHeaderSize).Msg("httpdump listening")

	for {
		conn, err := ln.Accept()
		if err != nil {
			log.Error().Err(err).Msg("accept failed")
			continue
		}
		go handleConn(conn, m, *strict, *chunkSize)
	}
}

func handleConn(conn net.Conn, mode httpparse.Mode, strict bool, chunkSize int) {
	defer conn.Close()
	remote := conn.RemoteAddr().String()
	clog := log.With().Str("remote", remote).Logger()
	clog.Info().Msg("connection accepted")

	p := httpparse.NewParser(mode)
	p.SetStrict(strict)
	sink := &dumpSink{log: clog}

	buf := make([]byte, chunkSize)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			consumed, errno := p.Execute(sink, buf[:n])
			if errno != httpparse.Ok {
				ev := clog.Error()
				if errno.IsCallbackError() {
					ev = clog.Warn()
				}
				ev.Str("errno", errno.String()).Bool("callback_error", errno.IsCallbackError()).
					Int("consumed", consumed).Msg("parse error")
				return
			}
			if p.Upgrade() {
				clog.Info().Int("residual_bytes", n-consumed).Msg("connection upgraded, handing off raw bytes")
				return
			}
		}
		if err != nil {
			if _, errno := p.Execute(sink, nil); errno != httpparse.Ok {
				clog.Warn().Str("errno", errno.String()).Msg("eof in unexpected state")
			}
			clog.Info().Msg("connection closed")
			return
		}
	}
}

// dumpSink logs the lifecycle of each message at a coarse grain (one line
// per structural event, not per byte); it never retains the slices handed
// to it.
type dumpSink struct {
	httpparse.NopSink
	log zerolog.Logger

	method string
	url    string
	status uint16
}

func (s *dumpSink) OnMessageBegin(p *httpparse.Parser) error {
	s.method, s.url, s.status = "", "", 0
	s.log.Debug().Msg("message begin")
	return nil
}

func (s *dumpSink) OnURL(p *httpparse.Parser, data []byte) error {
	s.url += string(data)
	return nil
}

func (s *dumpSink) OnHeadersComplete(p *httpparse.Parser) (httpparse.HeadersAction, error) {
	major, minor := p.HTTPVersion()
	if p.IsRequest() {
		s.log.Info().Str("method", p.Method().String()).Str("url", s.url).
			Uint8("http_major", major).Uint8("http_minor", minor).Msg("request headers complete")
	} else {
		s.log.Info().Uint16("status", p.StatusCode()).
			Uint8("http_major", major).Uint8("http_minor", minor).Msg("response headers complete")
	}
	return httpparse.ActionNothing, nil
}

func (s *dumpSink) OnMessageComplete(p *httpparse.Parser) error {
	s.log.Info().Bool("keep_alive", p.ShouldKeepAlive()).Msg("message complete")
	return nil
}
