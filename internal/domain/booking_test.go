package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to BookingStatus }{
		{BookingPending, BookingConfirmed},
		{BookingPending, BookingCancelled},
		{BookingConfirmed, BookingInProgress},
		{BookingConfirmed, BookingCancelled},
		{BookingInProgress, BookingCompleted},
	}
	for _, tr := range allowed {
		assert.True(t, CanTransition(tr.from, tr.to), "%s -> %s should be allowed", tr.from, tr.to)
	}

	forbidden := []struct{ from, to BookingStatus }{
		{BookingPending, BookingCompleted},
		{BookingPending, BookingInProgress},
		{BookingConfirmed, BookingCompleted},
		{BookingInProgress, BookingCancelled},
		{BookingCompleted, BookingCancelled},
		{BookingCancelled, BookingPending},
		{BookingCompleted, BookingPending},
	}
	for _, tr := range forbidden {
		assert.False(t, CanTransition(tr.from, tr.to), "%s -> %s should be rejected", tr.from, tr.to)
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	assert.True(t, BookingCompleted.Terminal())
	assert.True(t, BookingCancelled.Terminal())
	assert.False(t, BookingPending.Terminal())
	assert.False(t, BookingConfirmed.Terminal())
	assert.False(t, BookingInProgress.Terminal())
}

func TestShopServesVehicle(t *testing.T) {
	shop := &Shop{VehicleTypes: []VehicleType{TwoWheeler}}
	assert.True(t, shop.ServesVehicle(TwoWheeler))
	assert.False(t, shop.ServesVehicle(FourWheeler))
}
