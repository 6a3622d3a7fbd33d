package httpparse

import "testing"

func parseRequest(t *testing.T, raw string) (*Parser, *recordingSink) {
	t.Helper()
	p := NewParser(ModeRequest)
	sink := &recordingSink{}
	if _, errno := p.Execute(sink, []byte(raw)); errno != Ok {
		t.Fatalf("Execute failed: %v", errno)
	}
	return p, sink
}

func TestConnectionCloseRecognizedCaseInsensitively(t *testing.T) {
	for _, hdr := range []string{"Connection", "CONNECTION", "connection", "CoNnEcTiOn"} {
		for _, val := range []string{"close", "CLOSE", "Close"} {
			raw := "GET / HTTP/1.1\r\n" + hdr + ": " + val + "\r\n\r\n"
			p, _ := parseRequest(t, raw)
			if p.ShouldKeepAlive() {
				t.Fatalf("%q: expected ShouldKeepAlive()==false", raw)
			}
		}
	}
}

func TestConnectionKeepAliveRecognized(t *testing.T) {
	raw := "GET / HTTP/1.0\r\nConnection: keep-alive\r\n\r\n"
	p, _ := parseRequest(t, raw)
	if !p.ShouldKeepAlive() {
		t.Fatal("expected ShouldKeepAlive()==true for HTTP/1.0 with Connection: keep-alive")
	}
}

func TestHTTP11DefaultsToKeepAlive(t *testing.T) {
	p, _ := parseRequest(t, "GET / HTTP/1.1\r\n\r\n")
	if !p.ShouldKeepAlive() {
		t.Fatal("HTTP/1.1 without Connection: close should keep-alive")
	}
}

func TestProxyConnectionTreatedAsConnection(t *testing.T) {
	raw := "GET / HTTP/1.1\r\nProxy-Connection: close\r\n\r\n"
	p, _ := parseRequest(t, raw)
	if p.ShouldKeepAlive() {
		t.Fatal("Proxy-Connection: close should behave like Connection: close")
	}
}

func TestUpgradeFlagSet(t *testing.T) {
	raw := "GET / HTTP/1.1\r\nUpgrade: h2c\r\nConnection: Upgrade\r\n\r\n"
	p, _ := parseRequest(t, raw)
	if !p.Upgrade() {
		t.Fatal("expected Upgrade() == true")
	}
}

func TestContentLengthAccumulatesMultipleDigits(t *testing.T) {
	p, _ := parseRequest(t, "POST / HTTP/1.1\r\nContent-Length: 12345\r\n\r\n12345")
	if p.ContentLength() != 12345 {
		t.Fatalf("content-length = %d, want 12345", p.ContentLength())
	}
}

func TestHeaderNameSimilarToConnectionButDifferentStaysGeneral(t *testing.T) {
	// "Connector" shares "Conn" with Connection but must not be mistaken
	// for it - the value here must never influence ShouldKeepAlive.
	raw := "GET / HTTP/1.1\r\nConnector: close\r\n\r\n"
	p, _ := parseRequest(t, raw)
	if !p.ShouldKeepAlive() {
		t.Fatal("an unrelated header named Connector must not trigger Connection: close semantics")
	}
}

func TestContentLengthVsConnectionSharedPrefixDisambiguates(t *testing.T) {
	raw := "POST / HTTP/1.1\r\nContent-Length: 3\r\n\r\nabc"
	p, sink := parseRequest(t, raw)
	if p.ContentLength() != 3 {
		t.Fatalf("content-length = %d, want 3", p.ContentLength())
	}
	found := false
	for _, e := range sink.events {
		if e.kind == "body" && e.data == "abc" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a body event with \"abc\"")
	}
}

func TestObsFoldedHeaderValueContinuesAcrossLine(t *testing.T) {
	raw := "GET / HTTP/1.1\r\nX-Long: first\r\n second\r\n\r\n"
	_, sink := parseRequest(t, raw)
	want := ""
	for _, e := range sink.events {
		if e.kind == "header-value" {
			want = e.data
		}
	}
	// The CRLF of the folded line break is not part of any emitted span
	// (it is consumed transitioning through HeaderAlmostDone/HeaderValueLws);
	// the continuation line's leading whitespace is preserved verbatim.
	if want != "first second" {
		t.Fatalf("folded header value = %q, want %q", want, "first second")
	}
}
