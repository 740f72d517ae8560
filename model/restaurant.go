package model

type Restaurant struct {
	DTO
	Slug        string  `gorm:"uniqueIndex" json:"slug"`
	Name        string  `gorm:"not null" validate:"required" json:"name"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	Address     string  `json:"address"`
	Active      *bool   `gorm:"not null;default:true" json:"isActive"`
	Description *string `json:"description"`

	// Cấu hình thông báo
	NotifyEnabled  *bool  `gorm:"not null;default:true" json:"notifyEnabled"`
	NotifyEmail    string `json:"notifyEmail"`
	WhatsappNumber string `json:"whatsappNumber"`

	// Bộ đếm số đơn hàng, tăng atomic khi tạo đơn
	OrderCounter int64 `gorm:"not null;default:0" json:"-"`

	Categories []Category  `gorm:"foreignKey:RestaurantId" json:"categories,omitempty"`
	Promotions []Promotion `gorm:"foreignKey:RestaurantId" json:"promotions,omitempty"`
}

type Restaurants []Restaurant

type Account struct {
	DTO
	Username     string     `gorm:"unique;not null" json:"username"`
	Password     string     `gorm:"not null" json:"-"`
	Role         string     `gorm:"not null" json:"role"`
	Active       bool       `gorm:"not null;default:true" json:"isActive"`
	RestaurantId uint       `json:"restaurantId"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantId" json:"restaurant,omitempty"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
