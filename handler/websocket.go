package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient = redis.NewClient(&redis.Options{Addr: config.ConfigOr("REDIS_ADDR", "localhost:6379")})

	// room theo nhà hàng; value = mã đơn mà connection muốn lọc ("" = nhận hết)
	orderRooms = make(map[uint]map[*websocket.Conn]string)
	roomSubs   = make(map[uint]*redis.PubSub)
	roomMu     sync.Mutex
)

func orderChannel(restaurantId uint) string {
	return fmt.Sprintf("orders:%d", restaurantId)
}

// streamAuthorized: token trên connection phải thuộc đúng nhà hàng của room,
// không tin param trên URL
func streamAuthorized(token *jwt.Token, restaurantId uint) bool {
	claim, ok := helper.TokenClaimFrom(token)
	return ok && claim.RestaurantId == restaurantId
}

// kitchenBoardSnapshot dựng board ban đầu từ các đơn đang hoạt động; client
// áp tiếp sự kiện lên đúng cấu trúc này
func kitchenBoardSnapshot(orders []model.Order, now time.Time) map[string][]*helper.KitchenCard {
	board := helper.NewKitchenBoard()
	for _, order := range orders {
		board.Apply(BuildOrderEvent(constants.EVENT_ORDER_CREATED, order), now)
	}
	return board.Columns()
}

// BuildOrderEvent gom dữ liệu tối thiểu để render KDS/tracker/thông báo
func BuildOrderEvent(evType string, order model.Order) model.OrderEvent {
	itemNames := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		itemNames = append(itemNames, item.ProductName)
	}
	return model.OrderEvent{
		Type:          evType,
		OrderId:       order.ID,
		OrderCode:     order.PublicCode,
		RestaurantId:  order.RestaurantId,
		Status:        order.Status,
		Channel:       order.Channel,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.Phone,
		CustomerEmail: order.Email,
		Subtotal:      order.Subtotal,
		Discount:      order.Discount,
		Total:         order.Total,
		ItemNames:     itemNames,
		ItemCount:     len(order.Items),
		CreatedAt:     order.CreatedAt,
	}
}

// PublishOrderEvent đẩy sự kiện lên kênh Redis của nhà hàng, fire-and-forget.
// Redis lỗi thì phát thẳng cho client local để màn hình không đứng.
func PublishOrderEvent(ev model.OrderEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		log.Printf("Lỗi encode sự kiện đơn %s: %v", ev.OrderCode, err)
		return
	}

	if err := redisClient.Publish(context.Background(), orderChannel(ev.RestaurantId), payload).Err(); err != nil {
		log.Printf("Lỗi publish Redis (nhà hàng %d): %v, phát trực tiếp", ev.RestaurantId, err)
		broadcastOrderEvent(ev.RestaurantId, payload)
	}
}

// broadcastOrderEvent gửi payload tới mọi connection trong room, tôn trọng
// filter theo mã đơn của tracker. Client lỗi → đóng và xoá.
func broadcastOrderEvent(restaurantId uint, payload []byte) {
	var ev model.OrderEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		log.Printf("Sự kiện không đọc được (nhà hàng %d): %v", restaurantId, err)
		return
	}

	roomMu.Lock()
	conns := make(map[*websocket.Conn]string, len(orderRooms[restaurantId]))
	for conn, filter := range orderRooms[restaurantId] {
		conns[conn] = filter
	}
	roomMu.Unlock()

	for conn, filter := range conns {
		if filter != "" && filter != ev.OrderCode {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			leaveOrderRoom(restaurantId, conn)
		}
	}
}

func joinOrderRoom(restaurantId uint, c *websocket.Conn, filter string) {
	roomMu.Lock()
	defer roomMu.Unlock()

	if orderRooms[restaurantId] == nil {
		orderRooms[restaurantId] = make(map[*websocket.Conn]string)
	}
	orderRooms[restaurantId][c] = filter

	// Một subscriber Redis cho mỗi room, mở khi có client đầu tiên
	if _, ok := roomSubs[restaurantId]; !ok {
		pubsub := redisClient.Subscribe(context.Background(), orderChannel(restaurantId))
		roomSubs[restaurantId] = pubsub
		go func() {
			for msg := range pubsub.Channel() {
				broadcastOrderEvent(restaurantId, []byte(msg.Payload))
			}
		}()
	}
}

func leaveOrderRoom(restaurantId uint, c *websocket.Conn) {
	roomMu.Lock()
	defer roomMu.Unlock()

	if orderRooms[restaurantId] != nil {
		delete(orderRooms[restaurantId], c)
		if len(orderRooms[restaurantId]) == 0 {
			delete(orderRooms, restaurantId)
			if pubsub, ok := roomSubs[restaurantId]; ok {
				pubsub.Close()
				delete(roomSubs, restaurantId)
			}
		}
	}
}

// KitchenWebsocket: màn hình bếp. Gửi snapshot trước rồi mới vào stream,
// client áp sự kiện idempotent nên nhận trùng không sao.
func KitchenWebsocket(c *websocket.Conn) {
	idStr := c.Params("restaurantId")
	id64, _ := strconv.ParseUint(idStr, 10, 64)
	restaurantId := uint(id64)

	token, _ := c.Locals("user").(*jwt.Token)
	if !streamAuthorized(token, restaurantId) {
		c.Close()
		return
	}

	defer func() {
		leaveOrderRoom(restaurantId, c)
		c.Close()
	}()

	orders, err := FetchKitchenSnapshot(restaurantId)
	if err != nil {
		log.Printf("Lỗi nạp snapshot bếp (nhà hàng %d): %v", restaurantId, err)
		return
	}
	if err := c.WriteJSON(kitchenBoardSnapshot(orders, time.Now())); err != nil {
		return
	}

	joinOrderRoom(restaurantId, c, "")

	// Giữ connection, không cần đọc nội dung client gửi
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}

// TrackerWebsocket: khách theo dõi một đơn duy nhất
func TrackerWebsocket(c *websocket.Conn) {
	slugParam := c.Params("slug")
	orderCode := c.Params("orderCode")

	var restaurant model.Restaurant
	if err := database.DB.Where("slug = ? AND active = true", slugParam).First(&restaurant).Error; err != nil {
		c.Close()
		return
	}

	defer func() {
		leaveOrderRoom(restaurant.ID, c)
		c.Close()
	}()

	var order model.Order
	if err := database.DB.Preload("Items").
		Where("restaurant_id = ? AND public_code = ?", restaurant.ID, orderCode).
		First(&order).Error; err != nil {
		return
	}

	view := helper.TrackerView{
		OrderCode: order.PublicCode,
		Status:    order.Status,
		Total:     order.Total,
		UpdatedAt: order.UpdatedAt,
	}
	if err := c.WriteJSON(view); err != nil {
		return
	}

	joinOrderRoom(restaurant.ID, c, orderCode)

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}

// DashboardWebsocket: bộ đếm realtime cho chủ quán
func DashboardWebsocket(c *websocket.Conn) {
	idStr := c.Params("restaurantId")
	id64, _ := strconv.ParseUint(idStr, 10, 64)
	restaurantId := uint(id64)

	token, _ := c.Locals("user").(*jwt.Token)
	if !streamAuthorized(token, restaurantId) {
		c.Close()
		return
	}

	defer func() {
		leaveOrderRoom(restaurantId, c)
		c.Close()
	}()

	stats, err := FetchOwnerStats(restaurantId, time.Now())
	if err != nil {
		log.Printf("Lỗi nạp snapshot dashboard (nhà hàng %d): %v", restaurantId, err)
		return
	}
	if err := c.WriteJSON(stats); err != nil {
		return
	}

	joinOrderRoom(restaurantId, c, "")

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
