package helper

import (
	"errors"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/model"

	"gorm.io/gorm"
)

var ErrInvalidTransition = errors.New("chuyển trạng thái không hợp lệ")

// Bảng chuyển trạng thái hợp lệ. DELIVERED và CANCELLED là trạng thái cuối.
var orderTransitions = map[string][]string{
	constants.ORDER_PENDING:   {constants.ORDER_CONFIRMED, constants.ORDER_CANCELLED},
	constants.ORDER_CONFIRMED: {constants.ORDER_PREPARING, constants.ORDER_CANCELLED},
	constants.ORDER_PREPARING: {constants.ORDER_READY, constants.ORDER_CANCELLED},
	constants.ORDER_READY:     {constants.ORDER_DELIVERED},
	constants.ORDER_DELIVERED: {},
	constants.ORDER_CANCELLED: {},
}

func CanTransition(from, to string) bool {
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ActiveOrderStatuses: các trạng thái còn hiển thị trên màn hình bếp
func ActiveOrderStatuses() []string {
	return []string{
		constants.ORDER_PENDING,
		constants.ORDER_CONFIRMED,
		constants.ORDER_PREPARING,
		constants.ORDER_READY,
	}
}

func IsTerminalStatus(status string) bool {
	return status == constants.ORDER_DELIVERED || status == constants.ORDER_CANCELLED
}

// Transition ghi trạng thái mới nếu hợp lệ theo bảng, sai thì không đụng vào đơn.
// Chỉ lo phần bền vững; publish realtime + thông báo do caller bắn sau.
func Transition(db *gorm.DB, order *model.Order, target string) error {
	if !CanTransition(order.Status, target) {
		return ErrInvalidTransition
	}

	updates := map[string]any{"status": target, "updated_at": time.Now()}
	if target == constants.ORDER_CANCELLED {
		updates["cancelled_at"] = time.Now()
	}
	if err := db.Model(order).Updates(updates).Error; err != nil {
		return err
	}
	order.Status = target
	return nil
}
