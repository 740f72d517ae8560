package utils

import (
	"bytes"
	"html/template"
	"io"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// OrderEmailData dữ liệu cho template email đơn hàng
type OrderEmailData struct {
	OrderCode      string
	RestaurantName string
	CustomerName   string
	Items          string
	Subtotal       string
	Discount       string
	Total          string
	Status         string
	StatusLabel    string
	TrackingLink   string
}

// SendOrderEmail render template rồi gửi qua SMTP. Chưa cấu hình SMTP thì
// coi như no-op (log rồi thôi), không phải lỗi.
func SendOrderEmail(to, subject, tmplName string, data OrderEmailData, qrPng []byte) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" || to == "" {
		log.Printf("Bỏ qua email %q cho %s: SMTP chưa cấu hình hoặc thiếu địa chỉ", subject, to)
		return nil
	}

	tmpl, err := template.ParseFiles("templates/" + tmplName)
	if err != nil {
		log.Printf("Lỗi load template email %s: %v", tmplName, err)
		return err
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		log.Printf("Lỗi render template email %s: %v", tmplName, err)
		return err
	}

	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	// Nhúng QR link theo dõi đơn nếu có
	if len(qrPng) > 0 {
		m.Embed("qr_order.png", gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(qrPng)
			return err
		}), gomail.SetHeader(map[string][]string{
			"Content-Type":        {"image/png"},
			"Content-ID":          {"<qr_order_code>"},
			"Content-Disposition": {"inline"},
		}))
	}

	d := gomail.NewDialer(host, port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
	if err := d.DialAndSend(m); err != nil {
		log.Printf("Lỗi gửi email %q cho %s: %v", subject, to, err)
		return err
	}
	return nil
}
