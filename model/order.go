package model

import "time"

type Order struct {
	DTO
	// Mã đơn công khai, duy nhất trong phạm vi một nhà hàng (ví dụ: DH-0042)
	PublicCode   string     `gorm:"size:20;uniqueIndex:idx_restaurant_order_code" json:"publicCode"`
	RestaurantId uint       `gorm:"not null;index;uniqueIndex:idx_restaurant_order_code" json:"restaurantId"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantId" json:"-"`

	Status        string `gorm:"not null;index" json:"status"`
	Channel       string `gorm:"not null" json:"channel"`
	PaymentMethod string `gorm:"not null" json:"paymentMethod"`

	// Snapshot thông tin khách tại thời điểm đặt, không tham chiếu bảng khách hàng
	CustomerName string `gorm:"not null" json:"customerName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Notes        string `gorm:"type:text" json:"notes"`

	// Tiền tính bằng đơn vị nhỏ nhất, cố định sau khi tạo
	Subtotal  int64   `gorm:"not null" json:"subtotal"`
	Discount  int64   `gorm:"not null;default:0" json:"discount"`
	Total     int64   `gorm:"not null" json:"total"`
	PromoCode *string `json:"promoCode,omitempty"`

	CancelledAt *time.Time  `json:"cancelledAt,omitempty"`
	Items       []OrderItem `gorm:"foreignKey:OrderId" json:"items"`
}

type Orders []Order

type OrderItem struct {
	DTO
	OrderId   uint  `gorm:"not null;index" json:"orderId"`
	ProductId uint  `gorm:"not null" json:"productId"`
	VariantId *uint `json:"variantId,omitempty"`

	// Tên và giá đóng băng tại thời điểm đặt
	ProductName string `gorm:"not null" json:"productName"`
	VariantName string `json:"variantName,omitempty"`
	Quantity    int    `gorm:"not null" json:"quantity"`
	UnitPrice   int64  `gorm:"not null" json:"unitPrice"`
	LineTotal   int64  `gorm:"not null" json:"lineTotal"`
	Notes       string `json:"notes"`

	Extras    []OrderItemExtra    `gorm:"foreignKey:OrderItemId" json:"extras"`
	Modifiers []OrderItemModifier `gorm:"foreignKey:OrderItemId" json:"modifiers"`
}

type OrderItemExtra struct {
	DTO
	OrderItemId uint   `gorm:"not null;index" json:"orderItemId"`
	ExtraId     uint   `gorm:"not null" json:"extraId"`
	Name        string `gorm:"not null" json:"name"`
	Price       int64  `gorm:"not null" json:"price"`
}

type OrderItemModifier struct {
	DTO
	OrderItemId uint   `gorm:"not null;index" json:"orderItemId"`
	OptionId    uint   `gorm:"not null" json:"optionId"`
	GroupName   string `json:"groupName"`
	OptionName  string `gorm:"not null" json:"optionName"`
	PriceDelta  int64  `gorm:"not null" json:"priceDelta"`
}

// ===== Input từ client =====

type SubmitOrderInput struct {
	CustomerName  string                 `json:"customerName" validate:"required,max=120"`
	Phone         string                 `json:"phone" validate:"omitempty,max=20"`
	Email         string                 `json:"email" validate:"omitempty,email"`
	Channel       string                 `json:"channel" validate:"required,oneof=DINE_IN PICKUP DELIVERY"`
	PaymentMethod string                 `json:"paymentMethod" validate:"required,oneof=CASH ONLINE"`
	Address       string                 `json:"address" validate:"omitempty,max=300"`
	Notes         string                 `json:"notes" validate:"omitempty,max=500"`
	PromoCode     string                 `json:"promoCode" validate:"omitempty,max=40"`
	Items         []SubmitOrderItemInput `json:"items" validate:"required,min=1,dive"`
}

type SubmitOrderItemInput struct {
	ProductId uint   `json:"productId" validate:"required"`
	VariantId *uint  `json:"variantId"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Notes     string `json:"notes" validate:"omitempty,max=300"`
	// Giá client gửi lên chỉ dùng để đối chiếu, server luôn tính lại
	UnitPrice int64  `json:"unitPrice"`
	LineTotal int64  `json:"lineTotal"`
	ExtraIds  []uint `json:"extraIds"`
	OptionIds []uint `json:"optionIds"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required,oneof=CONFIRMED PREPARING READY DELIVERED CANCELLED"`
}

type UpdateOrderNotesInput struct {
	Notes string `json:"notes" validate:"max=500"`
}

// OrderEvent: payload realtime + thông báo, không lưu DB
type OrderEvent struct {
	Type          string    `json:"type"`
	OrderId       uint      `json:"orderId"`
	OrderCode     string    `json:"orderCode"`
	RestaurantId  uint      `json:"restaurantId"`
	Status        string    `json:"status"`
	Channel       string    `json:"channel"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone,omitempty"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	Subtotal      int64     `json:"subtotal"`
	Discount      int64     `json:"discount"`
	Total         int64     `json:"total"`
	ItemNames     []string  `json:"itemNames,omitempty"`
	ItemCount     int       `json:"itemCount"`
	CreatedAt     time.Time `json:"createdAt"`
}
