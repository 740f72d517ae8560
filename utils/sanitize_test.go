package utils

import (
	"strings"
	"testing"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{"trims whitespace", "  phở bò  ", 100, "phở bò"},
		{"strips markup chars", "<script>alert(1)</script>", 100, "scriptalert(1)/script"},
		{"strips control chars", "abc\x00\x1bdef", 100, "abcdef"},
		{"keeps newline in notes", "không hành\nthêm ớt", 100, "không hành\nthêm ớt"},
		{"caps length by runes", "aaaaaaaaaa", 4, "aaaa"},
		{"unicode not mangled by cap", "phở phở", 5, "phở p"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeText(tt.in, tt.maxLen); got != tt.want {
				t.Errorf("SanitizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeLine(t *testing.T) {
	got := SanitizeLine("Nguyễn\r\nVăn A", 100)
	if strings.ContainsAny(got, "\r\n") {
		t.Errorf("SanitizeLine left newlines: %q", got)
	}
}
