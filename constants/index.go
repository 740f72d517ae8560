package constants

const (
	ROLE_ADMIN = "ADMIN"
	ROLE_OWNER = "OWNER"
	ROLE_STAFF = "STAFF"
)

// Trạng thái đơn hàng
const (
	ORDER_PENDING   = "PENDING"
	ORDER_CONFIRMED = "CONFIRMED"
	ORDER_PREPARING = "PREPARING"
	ORDER_READY     = "READY"
	ORDER_DELIVERED = "DELIVERED"
	ORDER_CANCELLED = "CANCELLED"
)

// Kênh đặt hàng
const (
	CHANNEL_DINE_IN  = "DINE_IN"
	CHANNEL_PICKUP   = "PICKUP"
	CHANNEL_DELIVERY = "DELIVERY"
)

const (
	PAYMENT_CASH   = "CASH"
	PAYMENT_ONLINE = "ONLINE"
)

// Loại sự kiện realtime
const (
	EVENT_ORDER_CREATED  = "order_created"
	EVENT_STATUS_CHANGED = "status_changed"
)

const (
	ERROR_INTERNAL_ERROR     = "Lỗi hệ thống, vui lòng thử lại sau"
	DATA_INPUT_IS_NOT_NUMBER = "Dữ liệu phải là số"
	NOT_ADMIN                = "Không có quyền truy cập"
)
