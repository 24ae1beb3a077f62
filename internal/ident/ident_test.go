package ident

import (
	"strings"
	"testing"
)

func TestNewLengthAndAlphabet(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := New()
		if len(id) != Length {
			t.Fatalf("expected length %d got %d (%q)", Length, len(id), id)
		}
		for _, r := range id {
			if !strings.ContainsRune(alphabet, r) {
				t.Fatalf("unexpected character %q in id %q", r, id)
			}
		}
	}
}

func TestNewIsPracticallyUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 10000; i++ {
		id := New()
		if _, ok := seen[id]; ok {
			t.Fatalf("collision after %d draws: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}
