package handler

import (
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

type OwnerStats struct {
	TodayOrders  int64   `json:"todayOrders"`
	TodaySales   int64   `json:"todaySales"`
	ActiveOrders int64   `json:"activeOrders"`
	OrdersGrowth float64 `json:"ordersGrowth"` // %
	SalesGrowth  float64 `json:"salesGrowth"`  // %
}

// FetchOwnerStats tính bộ đếm trong ngày cho dashboard chủ quán
func FetchOwnerStats(restaurantId uint, now time.Time) (OwnerStats, error) {
	db := database.DB
	var stats OwnerStats

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())

	// === Hôm nay ===
	if err := db.Raw(`
        SELECT COUNT(*)
        FROM orders
        WHERE restaurant_id = ?
          AND status <> ?
          AND created_at BETWEEN ? AND ?
    `, restaurantId, constants.ORDER_CANCELLED, todayStart, todayEnd).Scan(&stats.TodayOrders).Error; err != nil {
		return stats, err
	}

	if err := db.Raw(`
        SELECT COALESCE(SUM(total), 0)
        FROM orders
        WHERE restaurant_id = ?
          AND status <> ?
          AND created_at BETWEEN ? AND ?
    `, restaurantId, constants.ORDER_CANCELLED, todayStart, todayEnd).Scan(&stats.TodaySales).Error; err != nil {
		return stats, err
	}

	db.Raw(`
        SELECT COUNT(*)
        FROM orders
        WHERE restaurant_id = ? AND status IN ?
    `, restaurantId, helper.ActiveOrderStatuses()).Scan(&stats.ActiveOrders)

	// === Hôm qua ===
	yesterdayStart := todayStart.AddDate(0, 0, -1)
	yesterdayEnd := todayEnd.AddDate(0, 0, -1)

	var yesterdayOrders int64
	var yesterdaySales int64
	db.Raw(`
        SELECT COUNT(*)
        FROM orders
        WHERE restaurant_id = ?
          AND status <> ?
          AND created_at BETWEEN ? AND ?
    `, restaurantId, constants.ORDER_CANCELLED, yesterdayStart, yesterdayEnd).Scan(&yesterdayOrders)
	db.Raw(`
        SELECT COALESCE(SUM(total), 0)
        FROM orders
        WHERE restaurant_id = ?
          AND status <> ?
          AND created_at BETWEEN ? AND ?
    `, restaurantId, constants.ORDER_CANCELLED, yesterdayStart, yesterdayEnd).Scan(&yesterdaySales)

	// === Tính % tăng trưởng ===
	stats.OrdersGrowth = utils.CalculateGrowth(float64(stats.TodayOrders), float64(yesterdayOrders))
	stats.SalesGrowth = utils.CalculateGrowth(float64(stats.TodaySales), float64(yesterdaySales))
	return stats, nil
}

func GetOwnerStats(c *fiber.Ctx) error {
	claim, ok := helper.GetInfoAccountFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, 401, "Tài khoản không hợp lệ", nil)
	}

	stats, err := FetchOwnerStats(claim.RestaurantId, time.Now())
	if err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}
