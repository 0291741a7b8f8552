package services

import (
	"time"

	"hotel-cancellation/models"
)

// Column names used when the model was trained.
const (
	FeatureAdults          = "number of adults"
	FeatureChildren        = "number of children"
	FeatureWeekendNights   = "number of weekend nights"
	FeatureWeekNights      = "number of week nights"
	FeatureMealPlan        = "type of meal"
	FeatureCarParking      = "car parking space"
	FeatureRoomType        = "room type"
	FeatureLeadTime        = "lead time"
	FeatureMarketSegment   = "market segment type"
	FeatureRepeated        = "repeated"
	FeaturePC              = "P-C"
	FeaturePNotC           = "P-not-C"
	FeatureAvgPrice        = "average price"
	FeatureSpecialRequests = "special requests"
	FeatureYear            = "reservation_year"
	FeatureMonth           = "reservation_month"
	FeatureDay             = "reservation_day"
	FeatureDayOfWeek       = "reservation_dow"
)

// BuildFeatures maps a booking to the training-time feature record.
// Values are passed through unchanged; P-C and P-not-C have no form field and are always 0.
func BuildFeatures(in models.BookingInput) models.RawFeatures {
	d := in.ReservationDate
	num := func(name string, v float64) models.RawFeature {
		return models.RawFeature{Name: name, Value: v}
	}
	cat := func(name, label string) models.RawFeature {
		return models.RawFeature{Name: name, Category: label, Categorical: true}
	}

	return models.RawFeatures{
		num(FeatureAdults, float64(in.Adults)),
		num(FeatureChildren, float64(in.Children)),
		num(FeatureWeekendNights, float64(in.WeekendNights)),
		num(FeatureWeekNights, float64(in.WeekNights)),
		cat(FeatureMealPlan, in.MealPlan),
		num(FeatureCarParking, float64(in.CarParking)),
		cat(FeatureRoomType, in.RoomType),
		num(FeatureLeadTime, float64(in.LeadTimeDays)),
		cat(FeatureMarketSegment, in.MarketSegment),
		num(FeatureRepeated, float64(in.RepeatedGuest)),
		num(FeaturePC, 0),
		num(FeaturePNotC, 0),
		num(FeatureAvgPrice, in.AvgPrice),
		num(FeatureSpecialRequests, float64(in.SpecialRequests)),
		num(FeatureYear, float64(d.Year())),
		num(FeatureMonth, float64(d.Month())),
		num(FeatureDay, float64(d.Day())),
		num(FeatureDayOfWeek, float64(isoWeekday(d))),
	}
}

// isoWeekday returns 0 for Monday through 6 for Sunday.
func isoWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
