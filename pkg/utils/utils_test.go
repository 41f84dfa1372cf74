package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	h := HashPassword("admin123")
	if h == "admin123" || h == "" {
		t.Fatal("password not hashed")
	}
	if !CheckPassword("admin123", h) {
		t.Error("correct password rejected")
	}
	if CheckPassword("wrong", h) {
		t.Error("wrong password accepted")
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("empty id")
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = struct{}{}
	}
}
