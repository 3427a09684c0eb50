package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     CategoryTag
	}{
		{name: "body mind exact", category: "Body Mind", want: TagBodyMind},
		{name: "pilates reformer exact", category: "Pilates Reformer", want: TagReformer},
		{name: "body mind wrong case is not a class", category: "body mind", want: TagOther},
		{name: "coworking russian", category: "Коворкинг", want: TagCoworking},
		{name: "coworking russian with suffix", category: "Коворкинг утро", want: TagCoworking},
		{name: "coworking latin", category: "Coworking capsule", want: TagCoworking},
		{name: "kids latin", category: "Eywa Kids", want: TagKids},
		{name: "kids russian", category: "Детская группа", want: TagKids},
		{name: "kids with age range", category: "Eywa Kids 6-10", want: TagKids},
		{name: "unknown category", category: "Массаж", want: TagOther},
		{name: "empty category", category: "", want: TagOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCategory(tt.category))
		})
	}
}

func TestBooking_OccupancyPercent(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		capacity int
		want     int
	}{
		{name: "empty slot", current: 0, capacity: 10, want: 0},
		{name: "half full", current: 5, capacity: 10, want: 50},
		{name: "full", current: 10, capacity: 10, want: 100},
		{name: "truncates fraction", current: 1, capacity: 3, want: 33},
		{name: "zero capacity", current: 3, capacity: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bk := &Booking{CurrentCount: tt.current, MaxCapacity: tt.capacity}
			assert.Equal(t, tt.want, bk.OccupancyPercent())
		})
	}
}

func TestBooking_IsBooked(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusReserved}).IsBooked())
	assert.True(t, (&Booking{Status: StatusPaid}).IsBooked())
	assert.False(t, (&Booking{Status: StatusFree}).IsBooked())
}
