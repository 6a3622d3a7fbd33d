package httpparse

import "testing"

func TestChunkExtensionsAreIgnored(t *testing.T) {
	raw := "POST /u HTTP/1.1\r\nTransfer-Encoding: chunked\r\n\r\n" +
		"4;ext=value\r\nWiki\r\n0\r\n\r\n"
	p := NewParser(ModeRequest)
	sink := &recordingSink{}
	if _, errno := p.Execute(sink, []byte(raw)); errno != Ok {
		t.Fatalf("Execute failed: %v", errno)
	}
	body := ""
	for _, e := range sink.events {
		if e.kind == "body" {
			body = e.data
		}
	}
	if body != "Wiki" {
		t.Fatalf("body = %q, want %q", body, "Wiki")
	}
}

func TestChunkedTrailersDoNotRefireHeadersComplete(t *testing.T) {
	raw := "POST /u HTTP/1.1\r\nTransfer-Encoding: chunked\r\n\r\n" +
		"4\r\nWiki\r\n0\r\nX-Trailer: value\r\n\r\n"
	p := NewParser(ModeRequest)
	sink := &recordingSink{}
	if _, errno := p.Execute(sink, []byte(raw)); errno != Ok {
		t.Fatalf("Execute failed: %v", errno)
	}
	count := 0
	for _, e := range sink.events {
		if e.kind == "headers-complete" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("headers-complete fired %d times, want 1", count)
	}
	last := sink.events[len(sink.events)-1]
	if last.kind != "message-complete" {
		t.Fatalf("last event = %v, want message-complete", last)
	}
}

func TestHexChunkSizeParsesUpperCaseDigit(t *testing.T) {
	raw := "POST /u HTTP/1.1\r\nTransfer-Encoding: chunked\r\n\r\n" +
		"A\r\n0123456789\r\n0\r\n\r\n"
	p := NewParser(ModeRequest)
	sink := &recordingSink{}
	if _, errno := p.Execute(sink, []byte(raw)); errno != Ok {
		t.Fatalf("Execute failed: %v", errno)
	}
	body := ""
	for _, e := range sink.events {
		if e.kind == "body" {
			body = e.data
		}
	}
	if body != "0123456789" {
		t.Fatalf("body = %q, want %q", body, "0123456789")
	}
}

func TestInvalidChunkSizeCharRejected(t *testing.T) {
	raw := "POST /u HTTP/1.1\r\nTransfer-Encoding: chunked\r\n\r\nZZ\r\n"
	p := NewParser(ModeRequest)
	sink := &recordingSink{}
	_, errno := p.Execute(sink, []byte(raw))
	if errno != InvalidChunkSize {
		t.Fatalf("errno = %v, want InvalidChunkSize", errno)
	}
}

func TestChunkedSplitByteAtATimeMatchesOneShot(t *testing.T) {
	raw := []byte("POST /u HTTP/1.1\r\nTransfer-Encoding: chunked\r\n\r\n" +
		"4\r\nWiki\r\n5\r\npedia\r\n0\r\n\r\n")

	oneShot := &recordingSink{}
	p1 := NewParser(ModeRequest)
	if _, errno := p1.Execute(oneShot, raw); errno != Ok {
		t.Fatalf("one-shot Execute failed: %v", errno)
	}

	split := &recordingSink{}
	p2 := NewParser(ModeRequest)
	for _, c := range byteAtATime(raw) {
		if _, errno := p2.Execute(split, c); errno != Ok {
			t.Fatalf("split Execute failed: %v", errno)
		}
	}

	if len(oneShot.events) != len(split.events) {
		t.Fatalf("event count differs: one-shot=%d split=%d", len(oneShot.events), len(split.events))
	}
	for i := range oneShot.events {
		if oneShot.events[i] != split.events[i] {
			t.Fatalf("event %d differs: one-shot=%v split=%v", i, oneShot.events[i], split.events[i])
		}
	}
}
