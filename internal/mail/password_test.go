package mail

import (
	"strings"
	"testing"
)

func TestGeneratePassword_Length(t *testing.T) {
	for _, length := range []int{1, 8, 12, 32, 64} {
		got, err := GeneratePassword(length)
		if err != nil {
			t.Fatalf("GeneratePassword(%d) returned err: %v", length, err)
		}
		if len(got) != length {
			t.Fatalf("expected length %d, got %d", length, len(got))
		}
	}
}

func TestGeneratePassword_DefaultLength(t *testing.T) {
	for _, length := range []int{0, -1} {
		got, err := GeneratePassword(length)
		if err != nil {
			t.Fatalf("GeneratePassword(%d) returned err: %v", length, err)
		}
		if len(got) != DefaultPasswordLength {
			t.Fatalf("expected default length %d, got %d", DefaultPasswordLength, len(got))
		}
	}
}

func TestGeneratePassword_Alphabet(t *testing.T) {
	for i := 0; i < 50; i++ {
		got, err := GeneratePassword(24)
		if err != nil {
			t.Fatalf("GeneratePassword returned err: %v", err)
		}
		for _, r := range got {
			if !strings.ContainsRune(passwordAlphabet, r) {
				t.Fatalf("character %q not in alphabet", r)
			}
		}
	}
}
