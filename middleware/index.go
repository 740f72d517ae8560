package middleware

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"restaurant_manager/helper"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			// check header Authorization: Bearer xxx
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}
		if token == "" {
			// websocket client gửi token qua query
			token = c.Query("token")
		}

		if token == "" {
			return utils.ErrorResponse(c, 401, "Missing token", errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, 401, "Invalid token", err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// ===== Rate limit cửa sổ cố định =====

type rateWindow struct {
	count   int
	resetAt time.Time
}

var (
	rateMu      sync.Mutex
	rateWindows = make(map[string]*rateWindow)
)

// CheckRate đếm theo key trong một cửa sổ cố định, reset tại biên cửa sổ.
// Bộ đếm in-process, chấp nhận xấp xỉ khi chạy nhiều instance.
func CheckRate(key string, limit int, window time.Duration) (allowed bool, remaining int, retryAfter time.Duration) {
	now := time.Now()

	rateMu.Lock()
	defer rateMu.Unlock()

	w, ok := rateWindows[key]
	if !ok || now.After(w.resetAt) {
		w = &rateWindow{count: 0, resetAt: now.Add(window)}
		rateWindows[key] = w
	}

	if w.count >= limit {
		return false, 0, time.Until(w.resetAt)
	}
	w.count++
	return true, limit - w.count, 0
}

// ResetRate xoá bộ đếm của một key (dùng trong test)
func ResetRate(key string) {
	rateMu.Lock()
	delete(rateWindows, key)
	rateMu.Unlock()
}

// RateLimit chặn endpoint public theo IP, ví dụ key "order:1.2.3.4"
func RateLimit(action string, limit int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := fmt.Sprintf("%s:%s", action, c.IP())
		allowed, remaining, retryAfter := CheckRate(key, limit, window)
		if !allowed {
			c.Set("Retry-After", fmt.Sprintf("%d", int(retryAfter.Seconds())+1))
			return utils.ErrorResponse(c, fiber.StatusTooManyRequests,
				"Bạn thao tác quá nhanh, vui lòng thử lại sau", nil)
		}
		c.Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		return c.Next()
	}
}
