package helper

import (
	"testing"

	"restaurant_manager/constants"
)

func TestCanTransition(t *testing.T) {
	allStatuses := []string{
		constants.ORDER_PENDING,
		constants.ORDER_CONFIRMED,
		constants.ORDER_PREPARING,
		constants.ORDER_READY,
		constants.ORDER_DELIVERED,
		constants.ORDER_CANCELLED,
	}

	allowed := map[[2]string]bool{
		{constants.ORDER_PENDING, constants.ORDER_CONFIRMED}:   true,
		{constants.ORDER_PENDING, constants.ORDER_CANCELLED}:   true,
		{constants.ORDER_CONFIRMED, constants.ORDER_PREPARING}: true,
		{constants.ORDER_CONFIRMED, constants.ORDER_CANCELLED}: true,
		{constants.ORDER_PREPARING, constants.ORDER_READY}:     true,
		{constants.ORDER_PREPARING, constants.ORDER_CANCELLED}: true,
		{constants.ORDER_READY, constants.ORDER_DELIVERED}:     true,
	}

	// Mọi cặp không có trong bảng phải bị từ chối
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := allowed[[2]string{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	for _, terminal := range []string{constants.ORDER_DELIVERED, constants.ORDER_CANCELLED} {
		if !IsTerminalStatus(terminal) {
			t.Errorf("IsTerminalStatus(%s) = false, want true", terminal)
		}
		for _, to := range []string{
			constants.ORDER_PENDING,
			constants.ORDER_CONFIRMED,
			constants.ORDER_PREPARING,
			constants.ORDER_READY,
			constants.ORDER_DELIVERED,
			constants.ORDER_CANCELLED,
		} {
			if CanTransition(terminal, to) {
				t.Errorf("CanTransition(%s, %s) = true, terminal status must have no exits", terminal, to)
			}
		}
	}
}

func TestConfirmedCannotSkipToDelivered(t *testing.T) {
	if CanTransition(constants.ORDER_CONFIRMED, constants.ORDER_DELIVERED) {
		t.Error("CONFIRMED -> DELIVERED must be rejected")
	}
}
