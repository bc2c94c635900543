package report

import (
	"fmt"
	"math"

	"github.com/hydrosense/hydrosense-backend-go/internal/models"
)

// Indicator rendering for the deviation direction. At or above the limit
// renders as "over" with the success color, below as "under" with the warning
// color — uniformly for every pollutant, including dissolved oxygen.
const (
	ArrowUp   = "▲"
	ArrowDown = "▼"

	ColorSuccess = "#16c784"
	ColorWarning = "#ea3943"
	ColorNeutral = "#222222"
)

// Compare builds one report card per pollutant: the predicted value and its
// magnitude-only percent deviation from the safe limit. Output order is the
// fixed pollutant enumeration, never sorted by value. Pure.
func Compare(predictions models.PredictionResult, limits map[models.Pollutant]float64) []models.PollutantReport {
	reports := make([]models.PollutantReport, 0, len(predictions))

	for _, reading := range predictions {
		limit := limits[reading.Code]
		card := models.PollutantReport{
			Pollutant: reading.Code,
			Value:     reading.Value,
			Display:   fmt.Sprintf("%.2f %s", reading.Value, models.Unit),
			SafeLimit: limit,
		}

		if limit == 0 {
			// Deviation undefined, not an error
			card.Direction = models.DirectionNotApplicable
			card.Color = ColorNeutral
		} else {
			delta := (reading.Value - limit) / limit * 100
			card.PercentDeviation = math.Abs(delta)
			if delta < 0 {
				card.Direction = models.DirectionUnder
				card.Arrow = ArrowDown
				card.Color = ColorWarning
			} else {
				card.Direction = models.DirectionOver
				card.Arrow = ArrowUp
				card.Color = ColorSuccess
			}
		}

		reports = append(reports, card)
	}

	return reports
}
