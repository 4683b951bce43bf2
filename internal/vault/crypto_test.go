package vault

import (
	"strings"
	"testing"
)

func TestSealOpenRoundTrip(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt: %v", err)
	}
	v := New("hunter2", salt)

	sealed, err := v.Seal([]byte("i still think about it"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if strings.Contains(sealed, "still think") {
		t.Fatalf("sealed content leaks plaintext")
	}

	opened, err := v.Open(sealed)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if string(opened) != "i still think about it" {
		t.Fatalf("Open = %q", opened)
	}
}

func TestOpenWithWrongPassphraseFails(t *testing.T) {
	salt, _ := GenerateSalt()
	sealed, err := New("right", salt).Seal([]byte("secret"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	if _, err := New("wrong", salt).Open(sealed); err == nil {
		t.Fatalf("wrong passphrase must fail to open")
	}
}

func TestOpenRejectsGarbage(t *testing.T) {
	salt, _ := GenerateSalt()
	v := New("pass", salt)

	if _, err := v.Open("not-base64!!"); err == nil {
		t.Fatalf("invalid base64 must fail")
	}
	if _, err := v.Open("YWJj"); err == nil { // "abc", shorter than a nonce
		t.Fatalf("truncated payload must fail")
	}
}
