package helper

import (
	"errors"

	"restaurant_manager/model"
)

var (
	ErrInvalidSelection = errors.New("lựa chọn không thuộc món này")
	ErrInvalidQuantity  = errors.New("số lượng không hợp lệ")
)

type LinePrice struct {
	UnitPrice int64
	LineTotal int64
}

// PriceLine tính đơn giá + thành tiền của một món, mọi số tiền tính bằng đơn vị nhỏ nhất.
// unitPrice = giá gốc + chênh lệch biến thể + tổng topping + tổng tuỳ chọn.
// Biến thể/topping/tuỳ chọn phải thuộc đúng món, sai thì trả ErrInvalidSelection.
func PriceLine(product model.Product, variantId *uint, extraIds []uint, optionIds []uint, quantity int) (LinePrice, error) {
	if quantity < 1 {
		return LinePrice{}, ErrInvalidQuantity
	}

	unitPrice := product.BasePrice

	if variantId != nil {
		found := false
		for _, v := range product.Variants {
			if v.ID == *variantId {
				unitPrice += v.PriceDelta
				found = true
				break
			}
		}
		if !found {
			return LinePrice{}, ErrInvalidSelection
		}
	}

	for _, extraId := range extraIds {
		found := false
		for _, e := range product.Extras {
			if e.ID == extraId {
				unitPrice += e.Price
				found = true
				break
			}
		}
		if !found {
			return LinePrice{}, ErrInvalidSelection
		}
	}

	for _, optionId := range optionIds {
		found := false
		for _, g := range product.ModifierGroups {
			for _, o := range g.Options {
				if o.ID == optionId {
					unitPrice += o.PriceDelta
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			return LinePrice{}, ErrInvalidSelection
		}
	}

	return LinePrice{
		UnitPrice: unitPrice,
		LineTotal: unitPrice * int64(quantity),
	}, nil
}

func Subtotal(lines []LinePrice) int64 {
	var total int64
	for _, line := range lines {
		total += line.LineTotal
	}
	return total
}

// OrderTotal = max(0, subtotal - discount)
func OrderTotal(subtotal, discount int64) int64 {
	total := subtotal - discount
	if total < 0 {
		return 0
	}
	return total
}
