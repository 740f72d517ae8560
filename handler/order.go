package handler

import (
	"log"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// buildOrderItems tính lại giá từng món từ catalog đã nạp. Giá client gửi lên
// chỉ để đối chiếu, không bao giờ ghi vào đơn.
func buildOrderItems(productMap map[uint]model.Product, lines []model.SubmitOrderItemInput) ([]model.OrderItem, int64, error) {
	var subtotal int64
	items := make([]model.OrderItem, 0, len(lines))
	for _, line := range lines {
		product, ok := productMap[line.ProductId]
		if !ok || (product.Available != nil && !*product.Available) {
			return nil, 0, helper.ErrInvalidSelection
		}

		price, err := helper.PriceLine(product, line.VariantId, line.ExtraIds, line.OptionIds, line.Quantity)
		if err != nil {
			return nil, 0, err
		}

		// Lệch giá so với client: log để soi, giá server luôn thắng
		if line.UnitPrice != 0 && line.UnitPrice != price.UnitPrice {
			log.Printf("Giá client lệch server (món %d): client=%d server=%d", line.ProductId, line.UnitPrice, price.UnitPrice)
		}

		item := model.OrderItem{
			ProductId:   line.ProductId,
			VariantId:   line.VariantId,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   price.UnitPrice,
			LineTotal:   price.LineTotal,
			Notes:       line.Notes,
		}
		if line.VariantId != nil {
			for _, v := range product.Variants {
				if v.ID == *line.VariantId {
					item.VariantName = v.Name
				}
			}
		}
		for _, extraId := range line.ExtraIds {
			for _, e := range product.Extras {
				if e.ID == extraId {
					item.Extras = append(item.Extras, model.OrderItemExtra{ExtraId: e.ID, Name: e.Name, Price: e.Price})
				}
			}
		}
		for _, optionId := range line.OptionIds {
			for _, g := range product.ModifierGroups {
				for _, o := range g.Options {
					if o.ID == optionId {
						item.Modifiers = append(item.Modifiers, model.OrderItemModifier{OptionId: o.ID, GroupName: g.Name, OptionName: o.Name, PriceDelta: o.PriceDelta})
					}
				}
			}
		}

		items = append(items, item)
		subtotal += price.LineTotal
	}
	return items, subtotal, nil
}

// promoOutcome: mã sai không chặn checkout, chỉ bỏ giảm giá và trả thông điệp
// cho client hiển thị
func promoOutcome(result *helper.PromoResult, err error, code string) (discount int64, promoCode *string, message string) {
	if err != nil {
		return 0, nil, err.Error()
	}
	return result.Discount, &code, ""
}

// SubmitOrder: endpoint public tạo đơn. Giá client gửi lên chỉ để đối chiếu,
// server luôn tính lại từ catalog hiện tại.
func SubmitOrder(c *fiber.Ctx) error {
	input := c.Locals("input").(model.SubmitOrderInput)
	db := database.DB

	var restaurant model.Restaurant
	if err := db.Where("slug = ? AND active = true", c.Params("slug")).First(&restaurant).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Nhà hàng không tồn tại", err)
	}

	// Nạp catalog cho các món trong giỏ, scope theo nhà hàng để chặn
	// tham chiếu chéo tenant hoặc id cũ
	productIds := make([]uint, 0, len(input.Items))
	for _, line := range input.Items {
		productIds = append(productIds, line.ProductId)
	}
	var products []model.Product
	if err := db.Preload("Variants").Preload("Extras").Preload("ModifierGroups.Options").
		Where("restaurant_id = ? AND id IN ?", restaurant.ID, productIds).
		Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}
	productMap := make(map[uint]model.Product, len(products))
	for _, p := range products {
		productMap[p.ID] = p
	}

	items, subtotal, err := buildOrderItems(productMap, input.Items)
	if err != nil {
		return utils.ErrorResponse(c, 400, "Giỏ hàng có món không hợp lệ", err)
	}

	var discount int64
	var promoMessage string
	var promoCode *string
	if input.PromoCode != "" {
		result, err := helper.ValidatePromo(db, restaurant.ID, input.PromoCode, subtotal)
		discount, promoCode, promoMessage = promoOutcome(result, err, input.PromoCode)
	}

	address := input.Address
	if input.Channel != constants.CHANNEL_DELIVERY {
		address = ""
	}

	order := model.Order{
		PublicCode:    helper.NextOrderNumber(db, restaurant.ID),
		RestaurantId:  restaurant.ID,
		Status:        constants.ORDER_PENDING,
		Channel:       input.Channel,
		PaymentMethod: input.PaymentMethod,
		CustomerName:  input.CustomerName,
		Phone:         input.Phone,
		Email:         input.Email,
		Address:       address,
		Notes:         input.Notes,
		Subtotal:      subtotal,
		Discount:      discount,
		Total:         helper.OrderTotal(subtotal, discount),
		PromoCode:     promoCode,
	}

	if err := db.Create(&order).Error; err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Món ghi sau khi đơn đã commit. Lỗi ghi món không rollback đơn:
	// mất checkout của khách tệ hơn một bản ghi cần đối soát tay.
	for i := range items {
		items[i].OrderId = order.ID
		if err := db.Create(&items[i]).Error; err != nil {
			log.Printf("Đơn %s: lỗi ghi món %q, cần đối soát thủ công: %v", order.PublicCode, items[i].ProductName, err)
		}
	}
	order.Items = items

	if promoCode != nil {
		go helper.RedeemPromo(db, restaurant.ID, *promoCode)
	}

	event := BuildOrderEvent(constants.EVENT_ORDER_CREATED, order)
	go PublishOrderEvent(event)
	go DispatchOrderNotifications(event, restaurant)

	return utils.SuccessResponse(c, 201, fiber.Map{
		"orderId":      order.ID,
		"orderCode":    order.PublicCode,
		"slug":         restaurant.Slug,
		"subtotal":     order.Subtotal,
		"discount":     order.Discount,
		"total":        order.Total,
		"promoMessage": promoMessage,
	})
}

// GetOrderStatus: snapshot public cho màn hình theo dõi của khách
func GetOrderStatus(c *fiber.Ctx) error {
	var restaurant model.Restaurant
	if err := database.DB.Where("slug = ? AND active = true", c.Params("slug")).First(&restaurant).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Nhà hàng không tồn tại", err)
	}

	var order model.Order
	if err := database.DB.
		Preload("Items").
		Preload("Items.Extras").
		Preload("Items.Modifiers").
		Where("restaurant_id = ? AND public_code = ?", restaurant.ID, c.Params("orderCode")).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Không tìm thấy đơn hàng", err)
	}

	return utils.SuccessResponse(c, 200, fiber.Map{
		"orderCode":     order.PublicCode,
		"status":        order.Status,
		"channel":       order.Channel,
		"paymentMethod": order.PaymentMethod,
		"customerName":  order.CustomerName,
		"items":         order.Items,
		"subtotal":      order.Subtotal,
		"discount":      order.Discount,
		"total":         order.Total,
		"createdAt":     order.CreatedAt,
		"updatedAt":     order.UpdatedAt,
	})
}

// FetchKitchenSnapshot: các đơn còn hoạt động cho màn hình bếp
func FetchKitchenSnapshot(restaurantId uint) ([]model.Order, error) {
	var orders []model.Order
	err := database.DB.
		Preload("Items").
		Preload("Items.Extras").
		Preload("Items.Modifiers").
		Where("restaurant_id = ? AND status IN ?", restaurantId, helper.ActiveOrderStatuses()).
		Order("created_at asc").
		Find(&orders).Error
	return orders, err
}

func GetKitchenOrders(c *fiber.Ctx) error {
	claim, ok := helper.GetInfoAccountFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, 401, "Tài khoản không hợp lệ", nil)
	}

	orders, err := FetchKitchenSnapshot(claim.RestaurantId)
	if err != nil {
		return utils.ErrorResponse(c, 500, "Lỗi tải đơn hàng", err)
	}
	return utils.SuccessResponse(c, 200, orders)
}

// CancelOrderByCustomer: khách tự hủy, đi qua đúng máy trạng thái
// nên đơn đã vào bếp xong (READY trở đi) không hủy được
func CancelOrderByCustomer(c *fiber.Ctx) error {
	var restaurant model.Restaurant
	if err := database.DB.Where("slug = ? AND active = true", c.Params("slug")).First(&restaurant).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Nhà hàng không tồn tại", err)
	}

	var order model.Order
	if err := database.DB.Preload("Items").
		Where("restaurant_id = ? AND public_code = ?", restaurant.ID, c.Params("orderCode")).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Không tìm thấy đơn hàng", err)
	}

	if err := ApplyStatusChange(&order, constants.ORDER_CANCELLED); err != nil {
		return utils.ErrorResponse(c, 400, "Đơn hàng không thể hủy ở trạng thái hiện tại", err)
	}

	return utils.SuccessResponse(c, 200, fiber.Map{
		"message":   "Hủy đơn hàng thành công!",
		"orderCode": order.PublicCode,
		"status":    order.Status,
	})
}

// UpdateOrderNotes: chủ quán sửa ghi chú, một cột duy nhất,
// nằm ngoài máy trạng thái
func UpdateOrderNotes(c *fiber.Ctx) error {
	claim, ok := helper.GetInfoAccountFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, 401, "Tài khoản không hợp lệ", nil)
	}
	input := c.Locals("input").(model.UpdateOrderNotesInput)
	orderId := c.Locals("inputId").(int)

	var order model.Order
	if err := database.DB.Where("id = ? AND restaurant_id = ?", orderId, claim.RestaurantId).First(&order).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Không tìm thấy đơn hàng", err)
	}

	if err := database.DB.Model(&order).Update("notes", input.Notes).Error; err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, 200, fiber.Map{"orderId": order.ID, "notes": input.Notes})
}

// GetMenu: thực đơn public cho trang đặt món (catalog chỉ đọc)
func GetMenu(c *fiber.Ctx) error {
	var restaurant model.Restaurant
	if err := database.DB.
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order asc") }).
		Preload("Categories.Products", "available = true").
		Preload("Categories.Products.Variants").
		Preload("Categories.Products.Extras").
		Preload("Categories.Products.ModifierGroups.Options").
		Where("slug = ? AND active = true", c.Params("slug")).
		First(&restaurant).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Nhà hàng không tồn tại", err)
	}

	return utils.SuccessResponse(c, 200, restaurant)
}
