package router

import (
	"time"

	"restaurant_manager/handler"
	"restaurant_manager/middleware"
	"restaurant_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)

	// Thực đơn public cho trang đặt món
	thucdon := v1.Group("/thuc-don")
	thucdon.Get("/:slug", handler.GetMenu)

	// Đơn hàng
	donhang := v1.Group("/don-hang", logger.New())
	// endpoint public, giới hạn 10 đơn/phút mỗi IP
	donhang.Post("/:slug", middleware.RateLimit("order", 10, time.Minute), validate.SubmitOrder(), handler.SubmitOrder)
	donhang.Get("/kitchen", middleware.Protected(), handler.GetKitchenOrders)
	donhang.Patch("/:orderId/status", middleware.Protected(), validate.GetById("orderId"), validate.UpdateOrderStatus(), handler.UpdateOrderStatus)
	donhang.Patch("/:orderId/notes", middleware.Protected(), validate.GetById("orderId"), validate.UpdateOrderNotes(), handler.UpdateOrderNotes)
	donhang.Get("/:slug/:orderCode", handler.GetOrderStatus)
	donhang.Post("/:slug/:orderCode/cancel", handler.CancelOrderByCustomer)

	statistic := v1.Group("/thong-ke", logger.New())
	statistic.Get("/", middleware.Protected(), handler.GetOwnerStats)

	// Realtime: bếp + dashboard cần token, tracker public theo mã đơn
	ws := app.Group("/ws")
	ws.Get("/kitchen/:restaurantId", middleware.Protected(), websocket.New(handler.KitchenWebsocket))
	ws.Get("/dashboard/:restaurantId", middleware.Protected(), websocket.New(handler.DashboardWebsocket))
	ws.Get("/track/:slug/:orderCode", websocket.New(handler.TrackerWebsocket))
}
