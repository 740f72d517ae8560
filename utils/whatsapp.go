package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

var whatsappHTTP = &http.Client{Timeout: 10 * time.Second}

// WhatsappConfigured: đã có token + phone number id của WhatsApp Cloud API chưa
func WhatsappConfigured() bool {
	return os.Getenv("WHATSAPP_TOKEN") != "" && os.Getenv("WHATSAPP_PHONE_ID") != ""
}

// WhatsappDeepLink tạo link wa.me mở chat kèm nội dung soạn sẵn.
// Đây là fallback khi chưa tích hợp Cloud API: tin nhắn vẫn gửi được
// bằng tay từ UI.
func WhatsappDeepLink(number, text string) string {
	number = strings.TrimLeft(strings.ReplaceAll(number, " ", ""), "+")
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(text))
}

// SendWhatsapp gửi tin qua Cloud API nếu đã cấu hình, ngược lại trả deep link.
// sent=false + deepLink khác rỗng nghĩa là dùng fallback, không phải lỗi.
func SendWhatsapp(to, text string) (deepLink string, sent bool, err error) {
	if to == "" {
		return "", false, nil
	}
	if !WhatsappConfigured() {
		return WhatsappDeepLink(to, text), false, nil
	}

	payload, _ := json.Marshal(map[string]any{
		"messaging_product": "whatsapp",
		"to":                strings.TrimLeft(to, "+"),
		"type":              "text",
		"text":              map[string]string{"body": text},
	})

	endpoint := fmt.Sprintf("https://graph.facebook.com/v19.0/%s/messages", os.Getenv("WHATSAPP_PHONE_ID"))
	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", false, err
	}
	req.Header.Set("Authorization", "Bearer "+os.Getenv("WHATSAPP_TOKEN"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := whatsappHTTP.Do(req)
	if err != nil {
		return "", false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", false, fmt.Errorf("whatsapp api status %d", resp.StatusCode)
	}
	log.Printf("Đã gửi WhatsApp cho %s", to)
	return "", true, nil
}
