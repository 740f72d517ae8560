package helper

import (
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/model"
)

// Thời gian một đơn mới được gắn cờ "mới" trên màn hình bếp
const KitchenNewGrace = 15 * time.Second

type KitchenCard struct {
	OrderId      uint      `json:"orderId"`
	OrderCode    string    `json:"orderCode"`
	Status       string    `json:"status"`
	Channel      string    `json:"channel"`
	CustomerName string    `json:"customerName"`
	ItemCount    int       `json:"itemCount"`
	Total        int64     `json:"total"`
	IsNew        bool      `json:"isNew"`
	NewUntil     time.Time `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// KitchenBoard: view phía màn hình bếp, key theo order id.
// Apply cùng một sự kiện nhiều lần cho ra cùng một board.
type KitchenBoard struct {
	Cards map[uint]*KitchenCard
}

func NewKitchenBoard() *KitchenBoard {
	return &KitchenBoard{Cards: make(map[uint]*KitchenCard)}
}

func (b *KitchenBoard) Apply(ev model.OrderEvent, now time.Time) {
	if IsTerminalStatus(ev.Status) {
		delete(b.Cards, ev.OrderId)
		return
	}

	card, ok := b.Cards[ev.OrderId]
	if !ok {
		card = &KitchenCard{
			OrderId:      ev.OrderId,
			OrderCode:    ev.OrderCode,
			Channel:      ev.Channel,
			CustomerName: ev.CustomerName,
			ItemCount:    ev.ItemCount,
			Total:        ev.Total,
			CreatedAt:    ev.CreatedAt,
		}
		if ev.Type == constants.EVENT_ORDER_CREATED {
			card.NewUntil = ev.CreatedAt.Add(KitchenNewGrace)
		}
		b.Cards[ev.OrderId] = card
	}
	card.Status = ev.Status
	card.IsNew = now.Before(card.NewUntil)
}

// Columns gom đơn theo cột trạng thái cho UI bếp
func (b *KitchenBoard) Columns() map[string][]*KitchenCard {
	columns := make(map[string][]*KitchenCard)
	for _, status := range ActiveOrderStatuses() {
		columns[status] = []*KitchenCard{}
	}
	for _, card := range b.Cards {
		columns[card.Status] = append(columns[card.Status], card)
	}
	return columns
}

// TrackerView: view phía khách, chỉ theo dõi một đơn, thay thế toàn bộ field
type TrackerView struct {
	OrderCode string    `json:"orderCode"`
	Status    string    `json:"status"`
	Total     int64     `json:"total"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (v *TrackerView) Apply(ev model.OrderEvent) {
	if v.OrderCode != "" && v.OrderCode != ev.OrderCode {
		return
	}
	v.OrderCode = ev.OrderCode
	v.Status = ev.Status
	v.Total = ev.Total
	v.UpdatedAt = ev.CreatedAt
}

// DashboardStats: bộ đếm dồn cho chủ quán, không cần payload đầy đủ.
// Đếm theo order id nên nhận trùng sự kiện không cộng đôi.
type DashboardStats struct {
	Day         string `json:"day"`
	TodayOrders int64  `json:"todayOrders"`
	TodaySales  int64  `json:"todaySales"`

	counted map[uint]bool
}

func NewDashboardStats(now time.Time) *DashboardStats {
	return &DashboardStats{
		Day:     now.Format("2006-01-02"),
		counted: make(map[uint]bool),
	}
}

func (s *DashboardStats) Apply(ev model.OrderEvent, now time.Time) {
	day := now.Format("2006-01-02")
	if day != s.Day {
		s.Day = day
		s.TodayOrders = 0
		s.TodaySales = 0
		s.counted = make(map[uint]bool)
	}

	if ev.Type != constants.EVENT_ORDER_CREATED || s.counted[ev.OrderId] {
		return
	}
	s.counted[ev.OrderId] = true
	s.TodayOrders++
	s.TodaySales += ev.Total
}
