package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"hotel-cancellation/models"
)

func sampleSource() FileSource {
	dir := filepath.Join("..", "artifacts")
	return FileSource{
		ClassifierPath: filepath.Join(dir, "classifier.json"),
		ScalerPath:     filepath.Join(dir, "scaler.json"),
		SchemaPath:     filepath.Join(dir, "model_columns.json"),
	}
}

func loadSampleArtifacts(t *testing.T) *Artifacts {
	t.Helper()
	a, err := LoadArtifacts(context.Background(), sampleSource())
	if err != nil {
		t.Fatalf("LoadArtifacts() error = %v", err)
	}
	return a
}

func scenarioBooking() models.BookingInput {
	return models.BookingInput{
		Adults:          2,
		Children:        0,
		WeekendNights:   1,
		WeekNights:      2,
		MealPlan:        "Meal Plan 1",
		CarParking:      0,
		RoomType:        "Room_Type 1",
		LeadTimeDays:    50,
		MarketSegment:   "Online",
		RepeatedGuest:   0,
		AvgPrice:        100.0,
		SpecialRequests: 0,
		ReservationDate: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
	}
}
