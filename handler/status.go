package handler

import (
	"errors"
	"log"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// ApplyStatusChange: lối vào duy nhất cho mọi thay đổi trạng thái
// (nhân viên, khách hủy, job timeout). Persist xong mới bắn realtime +
// thông báo, cả hai fire-and-forget.
func ApplyStatusChange(order *model.Order, target string) error {
	db := database.DB

	if err := helper.Transition(db, order, target); err != nil {
		return err
	}

	event := BuildOrderEvent(constants.EVENT_STATUS_CHANGED, *order)
	go PublishOrderEvent(event)

	// Không nạp được tenant thì bỏ qua thông báo, realtime vẫn chạy:
	// link theo dõi trong email/WhatsApp cần slug của quán
	var restaurant model.Restaurant
	if err := db.First(&restaurant, order.RestaurantId).Error; err != nil {
		log.Printf("Đơn %s: không nạp được nhà hàng %d, bỏ qua thông báo: %v", order.PublicCode, order.RestaurantId, err)
		return nil
	}
	go DispatchOrderNotifications(event, restaurant)
	return nil
}

// UpdateOrderStatus: nhân viên bếp/chủ quán chuyển trạng thái đơn
func UpdateOrderStatus(c *fiber.Ctx) error {
	claim, ok := helper.GetInfoAccountFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, 401, "Tài khoản không hợp lệ", nil)
	}
	input := c.Locals("input").(model.UpdateOrderStatusInput)
	orderId := c.Locals("inputId").(int)

	var order model.Order
	if err := database.DB.Preload("Items").
		Where("id = ? AND restaurant_id = ?", orderId, claim.RestaurantId).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Không tìm thấy đơn hàng", err)
	}

	if err := ApplyStatusChange(&order, input.Status); err != nil {
		if errors.Is(err, helper.ErrInvalidTransition) {
			return utils.ErrorResponse(c, 400, "Chuyển trạng thái không hợp lệ", err)
		}
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, 200, fiber.Map{
		"orderId":   order.ID,
		"orderCode": order.PublicCode,
		"status":    order.Status,
	})
}
