package helper

import (
	"errors"
	"log"
	"strings"
	"time"

	"restaurant_manager/model"

	"gorm.io/gorm"
)

var (
	ErrCodeNotFound      = errors.New("mã giảm giá không tồn tại")
	ErrCodeExpired       = errors.New("mã giảm giá đã hết hạn")
	ErrMinimumNotMet     = errors.New("đơn hàng chưa đạt giá trị tối thiểu")
	ErrUsageLimitReached = errors.New("mã giảm giá đã hết lượt sử dụng")
)

type PromoResult struct {
	Discount    int64
	Description string
}

// CheckPromo kiểm tra một khuyến mãi đã nạp sẵn, thứ tự: hạn dùng → tối thiểu → số lượt.
// Giảm giá không bao giờ vượt quá subtotal.
func CheckPromo(promo model.Promotion, subtotal int64, now time.Time) (int64, error) {
	if promo.Active != nil && !*promo.Active {
		return 0, ErrCodeNotFound
	}
	if now.Before(promo.StartDate) || now.After(promo.EndDate) {
		return 0, ErrCodeExpired
	}
	if subtotal < promo.MinOrder {
		return 0, ErrMinimumNotMet
	}
	if promo.UsageLimit > 0 && promo.UsageCount >= promo.UsageLimit {
		return 0, ErrUsageLimitReached
	}

	var discount int64
	switch promo.DiscountType {
	case model.DISCOUNT_PERCENTAGE:
		discount = subtotal * promo.DiscountValue / 100
	default:
		discount = promo.DiscountValue
	}
	if discount > subtotal {
		discount = subtotal
	}
	return discount, nil
}

// ValidatePromo tìm mã theo nhà hàng (không phân biệt hoa thường) rồi kiểm tra điều kiện
func ValidatePromo(db *gorm.DB, restaurantId uint, code string, subtotal int64) (*PromoResult, error) {
	var promo model.Promotion
	if err := db.Where("restaurant_id = ? AND LOWER(code) = ?", restaurantId, strings.ToLower(strings.TrimSpace(code))).
		First(&promo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCodeNotFound
		}
		return nil, err
	}

	discount, err := CheckPromo(promo, subtotal, time.Now())
	if err != nil {
		return nil, err
	}
	return &PromoResult{Discount: discount, Description: promo.Description}, nil
}

// RedeemPromo tăng lượt dùng bằng một câu UPDATE duy nhất, không đọc-rồi-ghi.
// Gọi fire-and-forget sau khi tạo đơn: thất bại chỉ log, không chặn đơn.
func RedeemPromo(db *gorm.DB, restaurantId uint, code string) {
	result := db.Model(&model.Promotion{}).
		Where("restaurant_id = ? AND LOWER(code) = ? AND (usage_limit = 0 OR usage_count < usage_limit)",
			restaurantId, strings.ToLower(strings.TrimSpace(code))).
		UpdateColumn("usage_count", gorm.Expr("usage_count + 1"))
	if result.Error != nil {
		log.Printf("Lỗi tăng lượt dùng mã %s (nhà hàng %d): %v", code, restaurantId, result.Error)
	}
}
