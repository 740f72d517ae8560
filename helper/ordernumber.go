package helper

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NextOrderNumber sinh mã đơn tuần tự theo nhà hàng bằng một câu UPDATE atomic
// trên cột order_counter. Nếu bộ đếm lỗi thì fallback mã theo uuid, tạo đơn
// không bao giờ fail chỉ vì không sinh được số.
func NextOrderNumber(db *gorm.DB, restaurantId uint) string {
	var seq int64
	err := db.Raw(
		`UPDATE restaurants SET order_counter = order_counter + 1 WHERE id = ? RETURNING order_counter`,
		restaurantId,
	).Scan(&seq).Error

	if err != nil || seq == 0 {
		log.Printf("Lỗi bộ đếm đơn hàng (nhà hàng %d): %v, dùng mã dự phòng", restaurantId, err)
		return FallbackOrderNumber()
	}
	return fmt.Sprintf("DH-%04d", seq)
}

func FallbackOrderNumber() string {
	return "DH-" + strings.ToUpper(uuid.New().String()[:8])
}
