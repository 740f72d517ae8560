package handler

import (
	"fmt"
	"log"
	"strings"

	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"
)

var statusLabels = map[string]string{
	constants.ORDER_PENDING:   "Chờ xác nhận",
	constants.ORDER_CONFIRMED: "Đã xác nhận",
	constants.ORDER_PREPARING: "Đang chuẩn bị",
	constants.ORDER_READY:     "Sẵn sàng",
	constants.ORDER_DELIVERED: "Đã giao",
	constants.ORDER_CANCELLED: "Đã hủy",
}

func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// FormatMoney: tiền lưu theo đơn vị nhỏ nhất, render dạng thập phân
func FormatMoney(amount int64) string {
	return fmt.Sprintf("%d.%02d", amount/100, amount%100)
}

func TrackingLink(slug, orderCode string) string {
	base := config.ConfigOr("PUBLIC_BASE_URL", "http://localhost:8002")
	return fmt.Sprintf("%s/theo-doi/%s/%s", base, slug, orderCode)
}

// RenderWhatsappText soạn tin nhắn cho khách theo loại sự kiện
func RenderWhatsappText(ev model.OrderEvent, trackingLink string) string {
	if ev.Type == constants.EVENT_ORDER_CREATED {
		return fmt.Sprintf("Đơn %s đã được tiếp nhận: %s. Tổng cộng %s. Theo dõi đơn tại %s",
			ev.OrderCode, strings.Join(ev.ItemNames, ", "), FormatMoney(ev.Total), trackingLink)
	}
	return fmt.Sprintf("Đơn %s: %s", ev.OrderCode, StatusLabel(ev.Status))
}

// RenderOwnerWhatsappText soạn tin báo đơn mới cho số WhatsApp của quán
func RenderOwnerWhatsappText(ev model.OrderEvent) string {
	return fmt.Sprintf("Đơn mới %s: %s. Tổng cộng %s, khách %s",
		ev.OrderCode, strings.Join(ev.ItemNames, ", "), FormatMoney(ev.Total), ev.CustomerName)
}

// DispatchOrderNotifications gửi email + WhatsApp theo cấu hình nhà hàng.
// Không bao giờ trả lỗi cho caller: kênh nào fail thì log kênh đó, đơn đã
// nằm trong DB rồi.
func DispatchOrderNotifications(ev model.OrderEvent, restaurant model.Restaurant) {
	// Không có tenant thì không dựng được link theo dõi lẫn người nhận
	if restaurant.ID == 0 {
		log.Printf("Đơn %s: thiếu thông tin nhà hàng, bỏ qua thông báo", ev.OrderCode)
		return
	}
	if restaurant.NotifyEnabled != nil && !*restaurant.NotifyEnabled {
		log.Printf("Đơn %s: nhà hàng tắt thông báo, bỏ qua", ev.OrderCode)
		return
	}

	link := TrackingLink(restaurant.Slug, ev.OrderCode)
	data := utils.OrderEmailData{
		OrderCode:      ev.OrderCode,
		RestaurantName: restaurant.Name,
		CustomerName:   ev.CustomerName,
		Items:          strings.Join(ev.ItemNames, ", "),
		Subtotal:       FormatMoney(ev.Subtotal),
		Discount:       FormatMoney(ev.Discount),
		Total:          FormatMoney(ev.Total),
		Status:         ev.Status,
		StatusLabel:    StatusLabel(ev.Status),
		TrackingLink:   link,
	}

	switch ev.Type {
	case constants.EVENT_ORDER_CREATED:
		// Email xác nhận cho khách, nhúng QR link theo dõi
		if ev.CustomerEmail != "" {
			qr, err := utils.GenerateQRCode(link, 300)
			if err != nil {
				log.Printf("Đơn %s: lỗi tạo QR: %v", ev.OrderCode, err)
				qr = nil
			}
			if err := utils.SendOrderEmail(ev.CustomerEmail, "Xác nhận đơn hàng "+ev.OrderCode, "order_confirmation.html", data, qr); err != nil {
				log.Printf("Đơn %s: email xác nhận cho khách thất bại: %v", ev.OrderCode, err)
			} else {
				log.Printf("Đơn %s: đã xử lý email xác nhận cho %s", ev.OrderCode, ev.CustomerEmail)
			}
		}

		// Email báo đơn mới cho chủ quán
		if restaurant.NotifyEmail != "" {
			if err := utils.SendOrderEmail(restaurant.NotifyEmail, "Đơn hàng mới "+ev.OrderCode, "new_order_alert.html", data, nil); err != nil {
				log.Printf("Đơn %s: email báo chủ quán thất bại: %v", ev.OrderCode, err)
			}
		}

		dispatchWhatsapp(ev.OrderCode, ev.CustomerPhone, RenderWhatsappText(ev, link))
		// Báo đơn mới cho số WhatsApp của quán
		dispatchWhatsapp(ev.OrderCode, restaurant.WhatsappNumber, RenderOwnerWhatsappText(ev))

	case constants.EVENT_STATUS_CHANGED:
		if ev.CustomerEmail != "" {
			subject := fmt.Sprintf("Đơn %s: %s", ev.OrderCode, StatusLabel(ev.Status))
			if err := utils.SendOrderEmail(ev.CustomerEmail, subject, "order_status.html", data, nil); err != nil {
				log.Printf("Đơn %s: email cập nhật trạng thái thất bại: %v", ev.OrderCode, err)
			}
		}

		dispatchWhatsapp(ev.OrderCode, ev.CustomerPhone, RenderWhatsappText(ev, link))
	}
}

// dispatchWhatsapp gửi qua Cloud API nếu cấu hình, không thì log deep link
// wa.me để UI cho bấm gửi tay. Fallback này không tính là lỗi.
func dispatchWhatsapp(orderCode, to, text string) {
	if to == "" {
		return
	}
	deepLink, sent, err := utils.SendWhatsapp(to, text)
	switch {
	case err != nil:
		log.Printf("Đơn %s: WhatsApp thất bại: %v", orderCode, err)
	case sent:
		log.Printf("Đơn %s: đã gửi WhatsApp tới %s", orderCode, to)
	case deepLink != "":
		log.Printf("Đơn %s: WhatsApp chưa cấu hình, deep link: %s", orderCode, deepLink)
	}
}
