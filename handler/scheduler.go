package handler

import (
	"log"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"

	"github.com/go-co-op/gocron/v2"
)

// Đơn PENDING quá lâu không ai xác nhận thì tự hủy
const PendingOrderTimeout = 30 * time.Minute

var staleOrderScheduler gocron.Scheduler

func StartStaleOrderScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("Lỗi khởi tạo scheduler hủy đơn: %v", err)
		return
	}
	staleOrderScheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(CancelStaleOrders),
	)
	if err != nil {
		log.Printf("Lỗi đăng ký job hủy đơn: %v", err)
		return
	}
	s.Start()
}

func StopStaleOrderScheduler() {
	if staleOrderScheduler != nil {
		staleOrderScheduler.Shutdown()
	}
}

// CancelStaleOrders chạy mỗi phút, hủy qua ApplyStatusChange nên vẫn đi qua
// máy trạng thái và vẫn bắn realtime + thông báo như nhân viên hủy tay
func CancelStaleOrders() {
	cutoff := time.Now().Add(-PendingOrderTimeout)

	var orders []model.Order
	if err := database.DB.Preload("Items").
		Where("status = ? AND created_at < ?", constants.ORDER_PENDING, cutoff).
		Find(&orders).Error; err != nil {
		log.Printf("Lỗi quét đơn quá hạn: %v", err)
		return
	}

	for i := range orders {
		if err := ApplyStatusChange(&orders[i], constants.ORDER_CANCELLED); err != nil {
			log.Printf("Đơn %s: tự hủy thất bại: %v", orders[i].PublicCode, err)
			continue
		}
		log.Printf("Đơn %s: tự hủy vì chờ xác nhận quá %v", orders[i].PublicCode, PendingOrderTimeout)
	}
}
