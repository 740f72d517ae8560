package model

import "time"

type TokenClaim struct {
	AccountId    uint   `json:"accountId"`
	Username     string `json:"username"`
	RestaurantId uint   `json:"restaurantId"`
}

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
