package helper

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"restaurant_manager/database"
	"restaurant_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetAccountByUsername(u string) (*model.Account, error) {
	db := database.DB
	var account model.Account
	if err := db.Where(&model.Account{Username: u}).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["accountId"] = tokenClaim.AccountId
	claims["restaurantId"] = tokenClaim.RestaurantId
	claims["exp"] = time.Now().Add(time.Hour * 12).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Xác thực thuật toán ký là HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})

	return token, err
}

// TokenClaimFrom đọc claim nhân viên từ token đã parse, không truy vấn DB
func TokenClaimFrom(token *jwt.Token) (model.TokenClaim, bool) {
	if token == nil {
		return model.TokenClaim{}, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, false
	}

	accountId, _ := claims["accountId"].(float64)
	restaurantId, _ := claims["restaurantId"].(float64)
	username, _ := claims["username"].(string)
	if accountId == 0 {
		return model.TokenClaim{}, false
	}

	return model.TokenClaim{
		AccountId:    uint(accountId),
		Username:     username,
		RestaurantId: uint(restaurantId),
	}, true
}

// GetInfoAccountFromToken lấy claim nhân viên từ token đã qua middleware.Protected
func GetInfoAccountFromToken(c *fiber.Ctx) (model.TokenClaim, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return model.TokenClaim{}, false
	}
	claim, ok := TokenClaimFrom(token)
	if !ok {
		return model.TokenClaim{}, false
	}

	var account model.Account
	if err := database.DB.First(&account, claim.AccountId).Error; err != nil || !account.Active {
		log.Printf("Account not found or inactive: id=%d", claim.AccountId)
		return model.TokenClaim{}, false
	}

	return claim, true
}
