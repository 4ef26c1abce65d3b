package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseAvailableSlots(t *testing.T) {
	full := Course{MaxStudents: 5, CurrentStudents: 5, IsActive: true}
	full.ComputeAvailableSlots()
	assert.Equal(t, 0, full.AvailableSlots)
	assert.False(t, full.Bookable())

	open := Course{MaxStudents: 5, CurrentStudents: 3, IsActive: true}
	open.ComputeAvailableSlots()
	assert.Equal(t, 2, open.AvailableSlots)
	assert.True(t, open.Bookable())

	inactive := Course{MaxStudents: 5, CurrentStudents: 0, IsActive: false}
	assert.False(t, inactive.Bookable())

	// Over-enrollment from legacy data never yields negative slots.
	over := Course{MaxStudents: 5, CurrentStudents: 7}
	over.ComputeAvailableSlots()
	assert.Equal(t, 0, over.AvailableSlots)
}

func TestBookingTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{BookingPending, BookingConfirmed, true},
		{BookingPending, BookingCancelled, true},
		{BookingPending, BookingCompleted, false},
		{BookingConfirmed, BookingCompleted, true},
		{BookingConfirmed, BookingCancelled, true},
		{BookingConfirmed, BookingPending, false},
		{BookingCancelled, BookingConfirmed, false},
		{BookingCancelled, BookingPending, false},
		{BookingCompleted, BookingCancelled, false},
		{BookingPending, BookingPending, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, CanTransitionBooking(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestValidBookingStatus(t *testing.T) {
	for _, s := range []string{BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted} {
		assert.True(t, ValidBookingStatus(s))
	}
	assert.False(t, ValidBookingStatus(""))
	assert.False(t, ValidBookingStatus("archived"))
}
