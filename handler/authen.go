package handler

import (
	"errors"

	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// Login cấp token cho nhân viên/chủ quán (quản lý tài khoản nằm ở service khác)
func Login(c *fiber.Ctx) error {
	var input model.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, 400, "Dữ liệu không hợp lệ", err)
	}

	account, err := helper.GetAccountByUsername(input.Username)
	if err != nil {
		return utils.ErrorResponse(c, 500, "Lỗi hệ thống", err)
	}
	if account == nil || !account.Active || !helper.CheckPasswordHash(input.Password, account.Password) {
		return utils.ErrorResponse(c, 401, "Sai tên đăng nhập hoặc mật khẩu", errors.New("invalid credentials"))
	}

	token, err := helper.GenerateAccessToken(model.TokenClaim{
		AccountId:    account.ID,
		Username:     account.Username,
		RestaurantId: account.RestaurantId,
	})
	if err != nil {
		return utils.ErrorResponse(c, 500, "Không tạo được token", err)
	}

	return utils.SuccessResponse(c, 200, fiber.Map{
		"accessToken":  token,
		"role":         account.Role,
		"restaurantId": account.RestaurantId,
	})
}
