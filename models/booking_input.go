package models

import "time"

// Categorical choices offered by the form. The strings are the labels the
// model was trained on and must match them exactly.
var (
	MealPlans      = []string{"Meal Plan 1", "Meal Plan 2", "Meal Plan 3", "Not Selected"}
	RoomTypes      = []string{"Room_Type 1", "Room_Type 2", "Room_Type 4", "Room_Type 5", "Room_Type 6", "Room_Type 7"}
	MarketSegments = []string{"Online", "Offline", "Corporate", "Aviation", "Complementary"}
)

// BookingInput is one booking as collected by the form.
type BookingInput struct {
	Adults          int
	Children        int
	WeekendNights   int
	WeekNights      int
	MealPlan        string
	CarParking      int
	RoomType        string
	LeadTimeDays    int
	MarketSegment   string
	RepeatedGuest   int
	AvgPrice        float64
	SpecialRequests int
	ReservationDate time.Time
}

// DefaultBookingInput is what the form shows before anything is entered.
func DefaultBookingInput(today time.Time) BookingInput {
	return BookingInput{
		Adults:          2,
		Children:        0,
		WeekendNights:   1,
		WeekNights:      2,
		MealPlan:        MealPlans[0],
		CarParking:      0,
		RoomType:        RoomTypes[0],
		LeadTimeDays:    50,
		MarketSegment:   MarketSegments[0],
		RepeatedGuest:   0,
		AvgPrice:        100.0,
		SpecialRequests: 0,
		ReservationDate: time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC),
	}
}
