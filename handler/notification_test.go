package handler

import (
	"strings"
	"testing"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/model"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0.00"},
		{280, "2.80"},
		{4500000, "45000.00"},
		{105, "1.05"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.amount); got != tt.want {
			t.Errorf("FormatMoney(%d) = %s, want %s", tt.amount, got, tt.want)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	if got := StatusLabel(constants.ORDER_PREPARING); got != "Đang chuẩn bị" {
		t.Errorf("StatusLabel(PREPARING) = %q", got)
	}
	// Trạng thái lạ trả nguyên văn, không panic
	if got := StatusLabel("SOMETHING_ELSE"); got != "SOMETHING_ELSE" {
		t.Errorf("unknown status label = %q", got)
	}
}

func TestRenderWhatsappText(t *testing.T) {
	ev := model.OrderEvent{
		Type:      constants.EVENT_ORDER_CREATED,
		OrderCode: "DH-0042",
		Status:    constants.ORDER_PENDING,
		Total:     28000,
		ItemNames: []string{"Phở bò", "Trà đá"},
		CreatedAt: time.Now(),
	}
	text := RenderWhatsappText(ev, "http://localhost:8002/theo-doi/quan/DH-0042")
	for _, want := range []string{"DH-0042", "Phở bò", "280.00", "theo-doi"} {
		if !strings.Contains(text, want) {
			t.Errorf("order_created text %q missing %q", text, want)
		}
	}

	ev.Type = constants.EVENT_STATUS_CHANGED
	ev.Status = constants.ORDER_READY
	text = RenderWhatsappText(ev, "")
	if !strings.Contains(text, "DH-0042") || !strings.Contains(text, "Sẵn sàng") {
		t.Errorf("status_changed text %q must carry code and label", text)
	}
}

func TestRenderOwnerWhatsappText(t *testing.T) {
	ev := model.OrderEvent{
		Type:         constants.EVENT_ORDER_CREATED,
		OrderCode:    "DH-0042",
		CustomerName: "Nguyễn Văn A",
		Total:        28000,
		ItemNames:    []string{"Phở bò"},
	}
	text := RenderOwnerWhatsappText(ev)
	for _, want := range []string{"DH-0042", "Phở bò", "280.00", "Nguyễn Văn A"} {
		if !strings.Contains(text, want) {
			t.Errorf("owner alert %q missing %q", text, want)
		}
	}
}

func TestDispatchSkipsWhenNotificationsDisabled(t *testing.T) {
	off := false
	restaurant := model.Restaurant{
		Name:          "Quán Phở Hà Nội",
		Slug:          "quan-pho-ha-noi",
		NotifyEnabled: &off,
		NotifyEmail:   "chu-quan@gmail.com",
	}
	restaurant.ID = 1
	ev := model.OrderEvent{
		Type:          constants.EVENT_ORDER_CREATED,
		OrderCode:     "DH-0042",
		CustomerEmail: "khach@gmail.com",
		CustomerPhone: "0901234567",
	}
	// Tắt thông báo thì không đụng kênh nào, gọi xong là về
	DispatchOrderNotifications(ev, restaurant)
}

func TestDispatchSkipsWithoutRestaurant(t *testing.T) {
	ev := model.OrderEvent{
		Type:          constants.EVENT_STATUS_CHANGED,
		OrderCode:     "DH-0042",
		CustomerEmail: "khach@gmail.com",
	}
	// Tenant rỗng thì không gửi gì, link theo dõi sẽ thiếu slug
	DispatchOrderNotifications(ev, model.Restaurant{})
}

func TestBuildOrderEvent(t *testing.T) {
	order := model.Order{
		PublicCode:   "DH-0001",
		RestaurantId: 7,
		Status:       constants.ORDER_PENDING,
		CustomerName: "Nguyễn Văn A",
		Subtotal:     280,
		Discount:     28,
		Total:        252,
		Items: []model.OrderItem{
			{ProductName: "Phở bò", Quantity: 2},
		},
	}
	order.ID = 42

	ev := BuildOrderEvent(constants.EVENT_ORDER_CREATED, order)
	if ev.OrderId != 42 || ev.OrderCode != "DH-0001" || ev.RestaurantId != 7 {
		t.Errorf("event identity fields wrong: %+v", ev)
	}
	if ev.Total != 252 || ev.ItemCount != 1 || ev.ItemNames[0] != "Phở bò" {
		t.Errorf("event payload fields wrong: %+v", ev)
	}
}
