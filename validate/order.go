package validate

import (
	"errors"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

var ErrAddressRequired = errors.New("đơn giao hàng phải có địa chỉ")

// CheckSubmitOrder kiểm tra hình dạng giỏ hàng: field bắt buộc, enum,
// số lượng dương, giao hàng phải có địa chỉ. Không đụng DB.
func CheckSubmitOrder(input model.SubmitOrderInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}
	if input.Channel == constants.CHANNEL_DELIVERY && input.Address == "" {
		return ErrAddressRequired
	}
	return nil
}

// SanitizeSubmitOrder cắt độ dài + lọc ký tự điều khiển mọi text tự do
// trước khi đi tiếp vào pipeline
func SanitizeSubmitOrder(input model.SubmitOrderInput) model.SubmitOrderInput {
	input.CustomerName = utils.SanitizeLine(input.CustomerName, 120)
	input.Phone = utils.SanitizeLine(input.Phone, 20)
	input.Email = utils.SanitizeLine(input.Email, 120)
	input.Address = utils.SanitizeLine(input.Address, 300)
	input.Notes = utils.SanitizeText(input.Notes, 500)
	input.PromoCode = utils.SanitizeLine(input.PromoCode, 40)
	for i := range input.Items {
		input.Items[i].Notes = utils.SanitizeText(input.Items[i].Notes, 300)
	}
	return input
}

func SubmitOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SubmitOrderInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Dữ liệu không hợp lệ", err)
		}

		input = SanitizeSubmitOrder(input)

		if err := CheckSubmitOrder(input); err != nil {
			return utils.ErrorResponse(c, 400, "Giỏ hàng không hợp lệ", err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func UpdateOrderStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateOrderStatusInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Dữ liệu không hợp lệ", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, err.Error(), err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func UpdateOrderNotes() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateOrderNotesInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Dữ liệu không hợp lệ", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, err.Error(), err)
		}
		input.Notes = utils.SanitizeText(input.Notes, 500)
		c.Locals("input", input)
		return c.Next()
	}
}
