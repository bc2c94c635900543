package features

import (
	"github.com/hydrosense/hydrosense-backend-go/internal/models"
)

// YearColumn is the name of the numeric year feature
const YearColumn = "year"

// StationPrefix is the naming convention for the one-hot station indicator
// columns produced when the training data was dummy-encoded on its "id" column
const StationPrefix = "id_"

// Encode turns a (year, station) selection into the exact feature row the
// model expects: the year value, a single 1 in the selected station's
// indicator column, and 0 everywhere else, projected onto expectedColumns in
// order. Values for columns outside the schema are dropped.
//
// A station id with no matching indicator column in the schema is a known
// soft failure: the row is still produced, with every station indicator 0,
// so the model sees no station signal rather than the request being rejected.
func Encode(year int, stationID string, expectedColumns []string) models.FeatureVector {
	raw := map[string]float64{
		YearColumn:                float64(year),
		StationPrefix + stationID: 1,
	}

	cols := make([]string, len(expectedColumns))
	copy(cols, expectedColumns)

	values := make([]float64, len(cols))
	for i, col := range cols {
		values[i] = raw[col] // missing columns zero-fill
	}

	return models.FeatureVector{Columns: cols, Values: values}
}
