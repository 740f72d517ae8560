package helper

import (
	"errors"
	"testing"

	"restaurant_manager/model"
)

func testProduct() model.Product {
	product := model.Product{BasePrice: 100}
	product.ID = 1
	variant := model.Variant{ProductId: 1, PriceDelta: 20}
	variant.ID = 10
	extra1 := model.Extra{ProductId: 1, Price: 10}
	extra1.ID = 20
	extra2 := model.Extra{ProductId: 1, Price: 10}
	extra2.ID = 21
	option := model.ModifierOption{GroupId: 30, PriceDelta: 5}
	option.ID = 31
	group := model.ModifierGroup{ProductId: 1, Name: "Size", Options: []model.ModifierOption{option}}
	group.ID = 30

	product.Variants = []model.Variant{variant}
	product.Extras = []model.Extra{extra1, extra2}
	product.ModifierGroups = []model.ModifierGroup{group}
	return product
}

func TestPriceLine(t *testing.T) {
	product := testProduct()
	variantId := uint(10)

	tests := []struct {
		name          string
		variantId     *uint
		extraIds      []uint
		optionIds     []uint
		quantity      int
		wantUnitPrice int64
		wantLineTotal int64
		wantErr       error
	}{
		{
			name:          "base price only",
			quantity:      1,
			wantUnitPrice: 100,
			wantLineTotal: 100,
		},
		{
			name:          "variant plus two extras at quantity 2",
			variantId:     &variantId,
			extraIds:      []uint{20, 21},
			quantity:      2,
			wantUnitPrice: 140,
			wantLineTotal: 280,
		},
		{
			name:          "modifier option delta",
			optionIds:     []uint{31},
			quantity:      1,
			wantUnitPrice: 105,
			wantLineTotal: 105,
		},
		{
			name:      "variant from another product",
			variantId: func() *uint { id := uint(99); return &id }(),
			quantity:  1,
			wantErr:   ErrInvalidSelection,
		},
		{
			name:     "unknown extra",
			extraIds: []uint{999},
			quantity: 1,
			wantErr:  ErrInvalidSelection,
		},
		{
			name:      "unknown modifier option",
			optionIds: []uint{999},
			quantity:  1,
			wantErr:   ErrInvalidSelection,
		},
		{
			name:     "zero quantity",
			quantity: 0,
			wantErr:  ErrInvalidQuantity,
		},
		{
			name:     "negative quantity",
			quantity: -2,
			wantErr:  ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PriceLine(product, tt.variantId, tt.extraIds, tt.optionIds, tt.quantity)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("PriceLine() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("PriceLine() unexpected error: %v", err)
			}
			if got.UnitPrice != tt.wantUnitPrice {
				t.Errorf("UnitPrice = %d, want %d", got.UnitPrice, tt.wantUnitPrice)
			}
			if got.LineTotal != tt.wantLineTotal {
				t.Errorf("LineTotal = %d, want %d", got.LineTotal, tt.wantLineTotal)
			}
		})
	}
}

func TestSubtotal(t *testing.T) {
	lines := []LinePrice{
		{UnitPrice: 140, LineTotal: 280},
		{UnitPrice: 50, LineTotal: 150},
	}
	if got := Subtotal(lines); got != 430 {
		t.Errorf("Subtotal = %d, want 430", got)
	}
	if got := Subtotal(nil); got != 0 {
		t.Errorf("Subtotal(nil) = %d, want 0", got)
	}
}

func TestOrderTotal(t *testing.T) {
	tests := []struct {
		subtotal int64
		discount int64
		want     int64
	}{
		{280, 0, 280},
		{280, 28, 252},
		{280, 280, 0},
		{280, 500, 0}, // giảm giá không bao giờ kéo tổng xuống âm
	}
	for _, tt := range tests {
		if got := OrderTotal(tt.subtotal, tt.discount); got != tt.want {
			t.Errorf("OrderTotal(%d, %d) = %d, want %d", tt.subtotal, tt.discount, got, tt.want)
		}
	}
}
