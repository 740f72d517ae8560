package utils

import (
	qrcode "github.com/skip2/go-qrcode"
)

// GenerateQRCode tạo ảnh QR PNG (nhúng link theo dõi đơn vào email)
func GenerateQRCode(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, size)
}
