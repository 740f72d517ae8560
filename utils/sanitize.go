package utils

import (
	"strings"
	"unicode"
)

// SanitizeText cắt độ dài và loại ký tự điều khiển/markup khỏi text tự do.
// Các chuỗi này về sau render ra dashboard, email, WhatsApp nên đây là
// chốt chặn an toàn, không phải làm đẹp dữ liệu.
func SanitizeText(s string, maxLen int) string {
	s = strings.TrimSpace(s)

	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) && r != '\n' {
			continue
		}
		switch r {
		case '<', '>', '`':
			continue
		}
		b.WriteRune(r)
	}

	out := b.String()
	if maxLen > 0 && len([]rune(out)) > maxLen {
		out = string([]rune(out)[:maxLen])
	}
	return out
}

// SanitizeLine như SanitizeText nhưng bỏ luôn xuống dòng (tên, mã, địa chỉ)
func SanitizeLine(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return SanitizeText(s, maxLen)
}
