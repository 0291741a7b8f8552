package services

import (
	"strings"
	"testing"
	"time"

	"hotel-cancellation/models"
)

func TestBuildFeatures_DerivesCalendarFields(t *testing.T) {
	tests := []struct {
		name    string
		date    time.Time
		wantDow float64
	}{
		{name: "friday", date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), wantDow: 4},
		{name: "monday", date: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), wantDow: 0},
		{name: "sunday", date: time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), wantDow: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := scenarioBooking()
			in.ReservationDate = tt.date
			got := map[string]models.RawFeature{}
			for _, f := range BuildFeatures(in) {
				got[f.Name] = f
			}

			if got[FeatureDayOfWeek].Value != tt.wantDow {
				t.Errorf("%s = %v, want %v", FeatureDayOfWeek, got[FeatureDayOfWeek].Value, tt.wantDow)
			}
			if got[FeatureYear].Value != float64(tt.date.Year()) {
				t.Errorf("%s = %v, want %v", FeatureYear, got[FeatureYear].Value, tt.date.Year())
			}
			if got[FeatureDay].Value != float64(tt.date.Day()) {
				t.Errorf("%s = %v, want %v", FeatureDay, got[FeatureDay].Value, tt.date.Day())
			}
			for _, name := range []string{FeaturePC, FeaturePNotC} {
				f, ok := got[name]
				if !ok || f.Value != 0 || f.Categorical {
					t.Errorf("%s = %+v, want numeric 0", name, f)
				}
			}
		})
	}
}

func TestBuildFeatures_NoClamping(t *testing.T) {
	in := scenarioBooking()
	in.LeadTimeDays = 9000
	in.AvgPrice = -3
	for _, f := range BuildFeatures(in) {
		if f.Name == FeatureLeadTime && f.Value != 9000 {
			t.Errorf("%s = %v, want 9000", FeatureLeadTime, f.Value)
		}
		if f.Name == FeatureAvgPrice && f.Value != -3 {
			t.Errorf("%s = %v, want -3", FeatureAvgPrice, f.Value)
		}
	}
}

func TestAlignFeatures_Scenario(t *testing.T) {
	a := loadSampleArtifacts(t)

	row, dropped := AlignFeatures(BuildFeatures(scenarioBooking()), a.Schema)
	if len(dropped) != 0 {
		t.Errorf("AlignFeatures() dropped = %v, want none", dropped)
	}

	want := map[string]float64{
		"market segment type_Online":        1,
		"market segment type_Offline":       0,
		"market segment type_Corporate":     0,
		"market segment type_Aviation":      0,
		"market segment type_Complementary": 0,
		"type of meal_Meal Plan 1":          1,
		"room type_Room_Type 1":             1,
		"room type_Room_Type 3":             0,
		"reservation_year":                  2024,
		"reservation_month":                 3,
		"reservation_day":                   15,
		"reservation_dow":                   4,
		"lead time":                         50,
		"average price":                     100,
		"number of adults":                  2,
		"P-C":                               0,
		"P-not-C":                           0,
	}
	for col, v := range want {
		got, ok := row.Get(col)
		if !ok {
			t.Errorf("row has no column %q", col)
			continue
		}
		if got != v {
			t.Errorf("row[%q] = %v, want %v", col, got, v)
		}
	}
}

func TestAlignFeatures_EveryCategoricalCombination(t *testing.T) {
	a := loadSampleArtifacts(t)
	schemaCols := a.Schema.Columns()

	fields := map[string]string{}
	for _, meal := range models.MealPlans {
		for _, room := range models.RoomTypes {
			for _, market := range models.MarketSegments {
				in := scenarioBooking()
				in.MealPlan, in.RoomType, in.MarketSegment = meal, room, market
				fields[FeatureMealPlan], fields[FeatureRoomType], fields[FeatureMarketSegment] = meal, room, market

				row, dropped := AlignFeatures(BuildFeatures(in), a.Schema)
				if len(dropped) != 0 {
					t.Fatalf("%s/%s/%s: dropped %v", meal, room, market, dropped)
				}
				if len(row.Columns) != len(schemaCols) || len(row.Values) != len(schemaCols) {
					t.Fatalf("%s/%s/%s: row width %d, want %d", meal, room, market, len(row.Values), len(schemaCols))
				}
				for i := range schemaCols {
					if row.Columns[i] != schemaCols[i] {
						t.Fatalf("column %d = %q, want %q", i, row.Columns[i], schemaCols[i])
					}
				}

				for field, value := range fields {
					ones := 0
					for i, col := range row.Columns {
						if !strings.HasPrefix(col, field+"_") {
							continue
						}
						switch row.Values[i] {
						case 1:
							ones++
							if col != IndicatorColumn(field, value) {
								t.Errorf("%s: indicator %q set, want %q", field, col, IndicatorColumn(field, value))
							}
						case 0:
						default:
							t.Errorf("%s: indicator %q = %v", field, col, row.Values[i])
						}
					}
					if ones != 1 {
						t.Errorf("%s=%q: %d indicators set, want 1", field, value, ones)
					}
				}

				if _, err := Predict(row, a); err != nil {
					t.Errorf("%s/%s/%s: Predict() error = %v", meal, room, market, err)
				}
			}
		}
	}
}

func TestAlignFeatures_UnknownLabelIsZeroed(t *testing.T) {
	a := loadSampleArtifacts(t)

	tests := []struct {
		name   string
		market string
	}{
		{name: "lower case", market: "online"},
		{name: "trailing space", market: "Online "},
		{name: "never seen", market: "Travel Agent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := scenarioBooking()
			in.MarketSegment = tt.market
			row, dropped := AlignFeatures(BuildFeatures(in), a.Schema)

			if len(dropped) != 1 || dropped[0] != IndicatorColumn(FeatureMarketSegment, tt.market) {
				t.Errorf("dropped = %v, want [%q]", dropped, IndicatorColumn(FeatureMarketSegment, tt.market))
			}
			for i, col := range row.Columns {
				if strings.HasPrefix(col, FeatureMarketSegment+"_") && row.Values[i] != 0 {
					t.Errorf("row[%q] = %v, want 0", col, row.Values[i])
				}
			}
			if len(row.Values) != a.Schema.Len() {
				t.Errorf("row width = %d, want %d", len(row.Values), a.Schema.Len())
			}
		})
	}
}

func TestAlignFeatures_Boundaries(t *testing.T) {
	a := loadSampleArtifacts(t)
	in := scenarioBooking()
	in.LeadTimeDays = 0
	in.SpecialRequests = 5

	row, dropped := AlignFeatures(BuildFeatures(in), a.Schema)
	if len(dropped) != 0 {
		t.Errorf("dropped = %v, want none", dropped)
	}
	if v, _ := row.Get(FeatureLeadTime); v != 0 {
		t.Errorf("row[%q] = %v, want 0", FeatureLeadTime, v)
	}
	if v, _ := row.Get(FeatureSpecialRequests); v != 5 {
		t.Errorf("row[%q] = %v, want 5", FeatureSpecialRequests, v)
	}
	if _, err := Predict(row, a); err != nil {
		t.Errorf("Predict() error = %v", err)
	}
}

func TestAlignFeatures_ColumnWithoutFormField(t *testing.T) {
	schema, err := models.NewFeatureSchema("t", []string{FeatureAdults, "arrival_week"})
	if err != nil {
		t.Fatalf("NewFeatureSchema() error = %v", err)
	}
	row, dropped := AlignFeatures(models.RawFeatures{
		{Name: FeatureAdults, Value: 3},
		{Name: FeatureLeadTime, Value: 7},
	}, schema)

	if row.Values[0] != 3 || row.Values[1] != 0 {
		t.Errorf("row = %v, want [3 0]", row.Values)
	}
	if len(dropped) != 1 || dropped[0] != FeatureLeadTime {
		t.Errorf("dropped = %v, want [%q]", dropped, FeatureLeadTime)
	}
}
