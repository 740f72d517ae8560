package validate

import (
	"errors"
	"strings"
	"testing"

	"restaurant_manager/constants"
	"restaurant_manager/model"
)

func validInput() model.SubmitOrderInput {
	return model.SubmitOrderInput{
		CustomerName:  "Nguyễn Văn A",
		Phone:         "0901234567",
		Channel:       constants.CHANNEL_PICKUP,
		PaymentMethod: constants.PAYMENT_CASH,
		Items: []model.SubmitOrderItemInput{
			{ProductId: 1, Quantity: 2},
		},
	}
}

func TestCheckSubmitOrderValid(t *testing.T) {
	if err := CheckSubmitOrder(validInput()); err != nil {
		t.Errorf("valid cart rejected: %v", err)
	}
}

func TestCheckSubmitOrderRejectsBadCarts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.SubmitOrderInput)
	}{
		{"missing customer name", func(in *model.SubmitOrderInput) { in.CustomerName = "" }},
		{"empty items", func(in *model.SubmitOrderInput) { in.Items = nil }},
		{"zero quantity", func(in *model.SubmitOrderInput) { in.Items[0].Quantity = 0 }},
		{"negative quantity", func(in *model.SubmitOrderInput) { in.Items[0].Quantity = -1 }},
		{"unknown channel", func(in *model.SubmitOrderInput) { in.Channel = "DRIVE_THRU" }},
		{"unknown payment method", func(in *model.SubmitOrderInput) { in.PaymentMethod = "CRYPTO" }},
		{"bad email", func(in *model.SubmitOrderInput) { in.Email = "không-phải-email" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			if err := CheckSubmitOrder(input); err == nil {
				t.Error("cart should be rejected")
			}
		})
	}
}

func TestCheckSubmitOrderDeliveryNeedsAddress(t *testing.T) {
	input := validInput()
	input.Channel = constants.CHANNEL_DELIVERY

	if err := CheckSubmitOrder(input); !errors.Is(err, ErrAddressRequired) {
		t.Errorf("delivery without address: err = %v, want ErrAddressRequired", err)
	}

	input.Address = "12 Hàng Bài, Hoàn Kiếm, Hà Nội"
	if err := CheckSubmitOrder(input); err != nil {
		t.Errorf("delivery with address rejected: %v", err)
	}
}

func TestSanitizeSubmitOrder(t *testing.T) {
	input := validInput()
	input.CustomerName = "  Nguyễn\nVăn A  "
	input.Notes = "không hành\x00\nthêm ớt"
	input.Items[0].Notes = "<b>ít bánh</b>"

	out := SanitizeSubmitOrder(input)
	if strings.ContainsAny(out.CustomerName, "\r\n") {
		t.Errorf("customer name still has newlines: %q", out.CustomerName)
	}
	if strings.Contains(out.Notes, "\x00") {
		t.Errorf("notes still has control chars: %q", out.Notes)
	}
	if !strings.Contains(out.Notes, "\n") {
		t.Error("notes should keep plain newlines")
	}
	if strings.ContainsAny(out.Items[0].Notes, "<>") {
		t.Errorf("item notes still has markup chars: %q", out.Items[0].Notes)
	}
}
