package types

// YearRequest is the body of POST /predict_year.
type YearRequest struct {
	// Calendar year to forecast, every day from January 1 to December 31.
	// example: 2024
	Year *int `json:"year" example:"2024"`
	// Model selector, "global" or "diffusion" (case-insensitive).
	// example: global
	ModelType *string `json:"model_type" example:"global"`
}

// DateRequest is the body of POST /predict_date.
type DateRequest struct {
	// Target date in YYYY-MM-DD form.
	// example: 2023-06-15
	Date *string `json:"date" example:"2023-06-15"`
	// Model selector, "global" or "diffusion" (case-insensitive).
	// example: diffusion
	ModelType *string `json:"model_type" example:"diffusion"`
}

// YearResponse is returned by POST /predict_year.
type YearResponse struct {
	// Echoed request year.
	// example: 2024
	Year int `json:"year" example:"2024"`
	// Normalized (lowercase) model selector.
	// example: global
	ModelType string `json:"model_type" example:"global"`
	// One record per calendar day, in order.
	DailyForecasts []ForecastRecord `json:"daily_forecasts"`
}

// DateResponse is returned by POST /predict_date.
type DateResponse struct {
	// Echoed request date, exactly as sent.
	// example: 2023-06-15
	Date string `json:"date" example:"2023-06-15"`
	// Normalized (lowercase) model selector.
	// example: diffusion
	ModelType string `json:"model_type" example:"diffusion"`
	// Forecast for the requested date.
	Forecast ForecastRecord `json:"forecast"`
}

// RootResponse is returned by GET /.
type RootResponse struct {
	// example: API is working! Use /predict_year or /predict_date endpoints.
	Message string `json:"message" example:"API is working! Use /predict_year or /predict_date endpoints."`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Human-readable error message.
	// example: Invalid model_type. Use 'global' or 'diffusion'.
	Detail string `json:"detail" example:"Invalid model_type. Use 'global' or 'diffusion'."`
}
