package model

// Catalog: pipeline chỉ đọc, không sửa (CRUD nằm ở service khác)

type Category struct {
	DTO
	RestaurantId uint      `gorm:"not null;index" json:"restaurantId"`
	Name         string    `gorm:"not null" validate:"required" json:"name"`
	SortOrder    int       `gorm:"default:0" json:"sortOrder"`
	Products     []Product `gorm:"foreignKey:CategoryId" json:"products,omitempty"`
}

type Product struct {
	DTO
	RestaurantId uint    `gorm:"not null;index" json:"restaurantId"`
	CategoryId   uint    `gorm:"not null;index" json:"categoryId"`
	Name         string  `gorm:"not null" validate:"required" json:"name"`
	Description  *string `json:"description"`
	// Giá gốc, đơn vị nhỏ nhất (xu/đồng)
	BasePrice int64 `gorm:"not null" json:"basePrice"`
	Available *bool `gorm:"not null;default:true" json:"isAvailable"`

	Variants       []Variant       `gorm:"foreignKey:ProductId" json:"variants,omitempty"`
	Extras         []Extra         `gorm:"foreignKey:ProductId" json:"extras,omitempty"`
	ModifierGroups []ModifierGroup `gorm:"foreignKey:ProductId" json:"modifierGroups,omitempty"`
}

type Variant struct {
	DTO
	ProductId  uint   `gorm:"not null;index" json:"productId"`
	Name       string `gorm:"not null" json:"name"`
	PriceDelta int64  `gorm:"not null;default:0" json:"priceDelta"`
}

type Extra struct {
	DTO
	ProductId uint   `gorm:"not null;index" json:"productId"`
	Name      string `gorm:"not null" json:"name"`
	Price     int64  `gorm:"not null;default:0" json:"price"`
}

type ModifierGroup struct {
	DTO
	ProductId   uint             `gorm:"not null;index" json:"productId"`
	Name        string           `gorm:"not null" json:"name"`
	MultiSelect *bool            `gorm:"not null;default:false" json:"multiSelect"`
	Options     []ModifierOption `gorm:"foreignKey:GroupId" json:"options,omitempty"`
}

type ModifierOption struct {
	DTO
	GroupId    uint   `gorm:"not null;index" json:"groupId"`
	Name       string `gorm:"not null" json:"name"`
	PriceDelta int64  `gorm:"not null;default:0" json:"priceDelta"`
}
