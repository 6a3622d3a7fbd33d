package httpparse

import "testing"

func runURL(t *testing.T, url string) state {
	t.Helper()
	s := sReqSpacesBeforeURL
	for i := 0; i < len(url); i++ {
		ns := parseURLChar(s, url[i], true)
		if ns == sURLDead {
			t.Fatalf("URL %q rejected at byte %d (%q), state %v", url, i, url[i], s)
		}
		s = ns
	}
	return s
}

func TestURLMachineAcceptsCommonForms(t *testing.T) {
	cases := []string{
		"/",
		"*",
		"/a/b/c",
		"/a/b?x=1&y=2",
		"/a#frag",
		"/a?x=1#frag",
		"http://example.com/",
		"http://example.com:8080/path",
		"http://user@example.com/",
		"http://[::1]:8080/",
	}
	for _, c := range cases {
		runURL(t, c)
	}
}

func TestURLMachineRejectsSpaceInPath(t *testing.T) {
	s := runURLUpTo(t, "/a")
	if ns := parseURLChar(s, ' ', true); ns != sURLDead {
		t.Fatal("space must end a URL, not be accepted into it")
	}
}

func runURLUpTo(t *testing.T, url string) state {
	t.Helper()
	s := sReqSpacesBeforeURL
	for i := 0; i < len(url); i++ {
		s = parseURLChar(s, url[i], true)
	}
	return s
}

func TestURLMachineRejectsDoubleAt(t *testing.T) {
	s := runURLUpTo(t, "http://user@")
	if ns := parseURLChar(s, '@', true); ns != sURLDead {
		t.Fatal("\"@@\" in the authority must be rejected")
	}
}

func TestURLMachineStrictRejectsHighBit(t *testing.T) {
	s := runURLUpTo(t, "/a")
	if ns := parseURLChar(s, 0x81, true); ns != sURLDead {
		t.Fatal("strict mode should reject a high-bit byte in the path")
	}
	if ns := parseURLChar(s, 0x81, false); ns == sURLDead {
		t.Fatal("non-strict mode should accept a high-bit byte in the path")
	}
}
