package auth

import (
	"testing"
	"time"
)

func TestIssueAndParse(t *testing.T) {
	j := &JWTer{Secret: []byte("s3cret"), Issuer: "test", TTL: time.Hour}

	tok, err := j.Issue("u1", "Asha", "client")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	c, err := j.Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.UID != "u1" || c.Name != "Asha" || c.Role != "client" {
		t.Errorf("claims = %+v", c)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	a := &JWTer{Secret: []byte("aaa"), Issuer: "test", TTL: time.Hour}
	b := &JWTer{Secret: []byte("bbb"), Issuer: "test", TTL: time.Hour}

	tok, err := a.Issue("u1", "n", "admin")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Parse(tok); err == nil {
		t.Error("token with wrong secret accepted")
	}
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	a := &JWTer{Secret: []byte("same"), Issuer: "a", TTL: time.Hour}
	b := &JWTer{Secret: []byte("same"), Issuer: "b", TTL: time.Hour}

	tok, err := a.Issue("u1", "n", "admin")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Parse(tok); err == nil {
		t.Error("token with wrong issuer accepted")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	// 过期超出 60s leeway
	j := &JWTer{Secret: []byte("s"), Issuer: "test", TTL: -2 * time.Minute}
	tok, err := j.Issue("u1", "n", "client")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := j.Parse(tok); err == nil {
		t.Error("expired token accepted")
	}
}
