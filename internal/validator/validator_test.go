package validator

import "testing"

func TestIsSafePath(t *testing.T) {
	safe := []string{"/", "/team", "/invoices?status=paid", "/a/b/c"}
	for _, p := range safe {
		if !IsSafePath(p) {
			t.Errorf("IsSafePath(%q) should be true", p)
		}
	}

	unsafe := []string{
		"",
		"team",
		"https://evil.example",
		"//evil.example",
		"/\\evil.example",
		"/x\r\nSet-Cookie: a=b",
	}
	for _, p := range unsafe {
		if IsSafePath(p) {
			t.Errorf("IsSafePath(%q) should be false", p)
		}
	}
}
