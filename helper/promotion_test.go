package helper

import (
	"errors"
	"testing"
	"time"

	"restaurant_manager/model"
	"restaurant_manager/utils"
)

func testPromo() model.Promotion {
	return model.Promotion{
		Code:          "khaitruong10",
		DiscountType:  model.DISCOUNT_PERCENTAGE,
		DiscountValue: 10,
		StartDate:     time.Now().AddDate(0, 0, -1),
		EndDate:       time.Now().AddDate(0, 0, 1),
		UsageLimit:    100,
		Active:        utils.Ptr(true),
	}
}

func TestCheckPromo(t *testing.T) {
	now := time.Now()

	t.Run("ten percent discount", func(t *testing.T) {
		discount, err := CheckPromo(testPromo(), 280, now)
		if err != nil {
			t.Fatalf("CheckPromo() error: %v", err)
		}
		if discount != 28 {
			t.Errorf("discount = %d, want 28", discount)
		}
	})

	t.Run("fixed discount capped at subtotal", func(t *testing.T) {
		promo := testPromo()
		promo.DiscountType = model.DISCOUNT_FIXED
		promo.DiscountValue = 500
		discount, err := CheckPromo(promo, 280, now)
		if err != nil {
			t.Fatalf("CheckPromo() error: %v", err)
		}
		if discount != 280 {
			t.Errorf("discount = %d, want 280 (capped)", discount)
		}
	})

	t.Run("expired code", func(t *testing.T) {
		promo := testPromo()
		promo.EndDate = now.AddDate(0, 0, -1)
		if _, err := CheckPromo(promo, 280, now); !errors.Is(err, ErrCodeExpired) {
			t.Errorf("error = %v, want ErrCodeExpired", err)
		}
	})

	t.Run("not started yet", func(t *testing.T) {
		promo := testPromo()
		promo.StartDate = now.AddDate(0, 0, 1)
		promo.EndDate = now.AddDate(0, 0, 2)
		if _, err := CheckPromo(promo, 280, now); !errors.Is(err, ErrCodeExpired) {
			t.Errorf("error = %v, want ErrCodeExpired", err)
		}
	})

	t.Run("minimum order not met", func(t *testing.T) {
		promo := testPromo()
		promo.MinOrder = 500
		if _, err := CheckPromo(promo, 280, now); !errors.Is(err, ErrMinimumNotMet) {
			t.Errorf("error = %v, want ErrMinimumNotMet", err)
		}
	})

	t.Run("usage limit reached", func(t *testing.T) {
		promo := testPromo()
		promo.UsageLimit = 5
		promo.UsageCount = 5
		if _, err := CheckPromo(promo, 280, now); !errors.Is(err, ErrUsageLimitReached) {
			t.Errorf("error = %v, want ErrUsageLimitReached", err)
		}
	})

	t.Run("unlimited usage when limit is zero", func(t *testing.T) {
		promo := testPromo()
		promo.UsageLimit = 0
		promo.UsageCount = 100000
		if _, err := CheckPromo(promo, 280, now); err != nil {
			t.Errorf("CheckPromo() error: %v", err)
		}
	})

	t.Run("inactive code behaves as not found", func(t *testing.T) {
		promo := testPromo()
		promo.Active = utils.Ptr(false)
		if _, err := CheckPromo(promo, 280, now); !errors.Is(err, ErrCodeNotFound) {
			t.Errorf("error = %v, want ErrCodeNotFound", err)
		}
	})
}
