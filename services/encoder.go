package services

import "hotel-cancellation/models"

// IndicatorColumn names the one-hot column for a categorical value.
func IndicatorColumn(field, value string) string {
	return field + "_" + value
}

// AlignFeatures one-hot encodes raw and lays it out in schema order.
// Schema columns that were not produced stay 0. Produced columns the schema
// does not know are returned in dropped and otherwise ignored.
func AlignFeatures(raw models.RawFeatures, schema *models.FeatureSchema) (row models.EncodedRow, dropped []string) {
	cols := schema.Columns()
	values := make([]float64, len(cols))

	for _, f := range raw {
		name, v := f.Name, f.Value
		if f.Categorical {
			name, v = IndicatorColumn(f.Name, f.Category), 1
		}
		i, ok := schema.Index(name)
		if !ok {
			dropped = append(dropped, name)
			continue
		}
		values[i] = v
	}

	return models.EncodedRow{Columns: cols, Values: values}, dropped
}
