package types

// ForecastRecord is one day of forecast output. Field names are part of the
// public wire format and match what existing clients download.
type ForecastRecord struct {
	// Calendar date in YYYY-MM-DD form.
	// example: 2024-01-01
	Date string `json:"Date" example:"2024-01-01"`
	// Point estimate of daily radiation.
	// example: 4.82
	ForecastRadiation float64 `json:"Forecast_Radiation" example:"4.82"`
	// Lower uncertainty bound.
	// example: 3.91
	LowerBound float64 `json:"Lower_Bound" example:"3.91"`
	// Upper uncertainty bound.
	// example: 5.73
	UpperBound float64 `json:"Upper_Bound" example:"5.73"`
}
