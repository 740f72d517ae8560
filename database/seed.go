package database

import (
	"log"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gosimple/slug"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("123456cn"), 10)
	HashPassword := string(bytes)
	if err != nil {
		HashPassword = "123456cn"
	}

	restaurantName := "Quán Phở Hà Nội"
	restaurant := model.Restaurant{
		Name:          restaurantName,
		Slug:          slug.Make(restaurantName),
		Phone:         "0901234567",
		Email:         "quanphohanoi@gmail.com",
		Address:       "12 Lý Thường Kiệt, Hà Nội",
		Active:        utils.Ptr(true),
		NotifyEnabled: utils.Ptr(true),
		NotifyEmail:   "chu-quan@gmail.com",
	}
	if err := db.Where(model.Restaurant{Slug: restaurant.Slug}).FirstOrCreate(&restaurant).Error; err != nil {
		log.Println("failed to seed restaurant:", restaurant.Name, "error:", err)
	}

	accounts := []model.Account{
		{Username: "Administration", Password: HashPassword, Active: true, Role: constants.ROLE_ADMIN, RestaurantId: restaurant.ID},
		{Username: "chuquan", Password: HashPassword, Active: true, Role: constants.ROLE_OWNER, RestaurantId: restaurant.ID},
		{Username: "bep01", Password: HashPassword, Active: true, Role: constants.ROLE_STAFF, RestaurantId: restaurant.ID},
	}
	for _, account := range accounts {
		// Tạo mới nếu không tồn tại
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed data for account:", account.Username, "error:", err)
		}
	}

	category := model.Category{RestaurantId: restaurant.ID, Name: "Phở"}
	if err := db.Where(model.Category{RestaurantId: restaurant.ID, Name: category.Name}).FirstOrCreate(&category).Error; err != nil {
		log.Println("failed to seed category:", err)
	}

	products := []model.Product{
		{RestaurantId: restaurant.ID, CategoryId: category.ID, Name: "Phở bò", BasePrice: 4500000, Available: utils.Ptr(true)},
		{RestaurantId: restaurant.ID, CategoryId: category.ID, Name: "Phở gà", BasePrice: 4000000, Available: utils.Ptr(true)},
	}
	for i := range products {
		if err := db.Where(model.Product{RestaurantId: restaurant.ID, Name: products[i].Name}).FirstOrCreate(&products[i]).Error; err != nil {
			log.Println("failed to seed product:", products[i].Name, "error:", err)
			continue
		}
		variants := []model.Variant{
			{ProductId: products[i].ID, Name: "Tô nhỏ", PriceDelta: 0},
			{ProductId: products[i].ID, Name: "Tô lớn", PriceDelta: 1000000},
		}
		for _, v := range variants {
			db.Where(model.Variant{ProductId: v.ProductId, Name: v.Name}).FirstOrCreate(&v)
		}
		extras := []model.Extra{
			{ProductId: products[i].ID, Name: "Thêm bò", Price: 1500000},
			{ProductId: products[i].ID, Name: "Trứng chần", Price: 500000},
		}
		for _, e := range extras {
			db.Where(model.Extra{ProductId: e.ProductId, Name: e.Name}).FirstOrCreate(&e)
		}
	}

	promotions := []model.Promotion{
		{
			RestaurantId:  restaurant.ID,
			Code:          "khaitruong10",
			Description:   "Giảm 10% mừng khai trương",
			DiscountType:  model.DISCOUNT_PERCENTAGE,
			DiscountValue: 10,
			StartDate:     time.Now().AddDate(0, 0, -1),
			EndDate:       time.Now().AddDate(0, 1, 0),
			UsageLimit:    100,
			Active:        utils.Ptr(true),
		},
	}
	for _, promo := range promotions {
		if err := db.Where(model.Promotion{RestaurantId: promo.RestaurantId, Code: promo.Code}).FirstOrCreate(&promo).Error; err != nil {
			log.Println("failed to seed promotion:", promo.Code, "error:", err)
		}
	}
}
