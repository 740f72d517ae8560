package model

import "time"

type Promotion struct {
	DTO
	RestaurantId uint       `gorm:"not null;index;uniqueIndex:idx_restaurant_promo_code" json:"restaurantId"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantId" json:"-"`

	Code        string `gorm:"not null;uniqueIndex:idx_restaurant_promo_code" json:"code"`
	Description string `gorm:"type:text" json:"description"`

	DiscountType  string `gorm:"not null" json:"discountType"` // 'percentage' | 'fixed'
	DiscountValue int64  `gorm:"not null" json:"discountValue"`

	// Điều kiện áp dụng
	MinOrder   int64     `gorm:"not null;default:0" json:"minOrder"`
	StartDate  time.Time `gorm:"not null" json:"startDate"`
	EndDate    time.Time `gorm:"not null" json:"endDate"`
	UsageLimit int       `gorm:"not null;default:0" json:"usageLimit"` // 0 = không giới hạn
	UsageCount int       `gorm:"not null;default:0" json:"usageCount"`
	Active     *bool     `gorm:"not null;default:true" json:"isActive"`
}

type Promotions []Promotion

const (
	DISCOUNT_PERCENTAGE = "percentage"
	DISCOUNT_FIXED      = "fixed"
)
