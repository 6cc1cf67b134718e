package manager

import (
	"context"
	"strings"

	"solarcast/internal/forecast"
	"solarcast/internal/registry"
	"solarcast/pkg/types"
)

// NormalizeSelector lowercases model_type; nil becomes "".
func NormalizeSelector(modelType *string) string {
	if modelType == nil {
		return ""
	}
	return strings.ToLower(*modelType)
}

// resolve validates a normalized selector and returns its model.
func (m *Manager) resolve(op, selector string) (forecast.Predictor, error) {
	switch selector {
	case registry.Global, registry.Diffusion:
	default:
		return nil, selectorError{op: op}
	}
	p, ok := m.store.Lookup(selector)
	if !ok {
		return nil, modelUnavailableError{name: selector}
	}
	return p, nil
}

// PredictYear forecasts every day of req.Year with the selected model.
func (m *Manager) PredictYear(ctx context.Context, req types.YearRequest) (types.YearResponse, error) {
	if req.Year == nil {
		return types.YearResponse{}, missingFieldError{field: "year"}
	}
	selector := NormalizeSelector(req.ModelType)
	p, err := m.resolve(OpYear, selector)
	if err != nil {
		return types.YearResponse{}, err
	}
	recs, err := forecast.ForecastYear(ctx, p, *req.Year)
	if err != nil {
		return types.YearResponse{}, err
	}
	return types.YearResponse{Year: *req.Year, ModelType: selector, DailyForecasts: recs}, nil
}

// PredictDate forecasts the single date req.Date with the selected model.
// The selector is validated before the date is parsed.
func (m *Manager) PredictDate(ctx context.Context, req types.DateRequest) (types.DateResponse, error) {
	if req.Date == nil {
		return types.DateResponse{}, missingFieldError{field: "date"}
	}
	selector := NormalizeSelector(req.ModelType)
	p, err := m.resolve(OpDate, selector)
	if err != nil {
		return types.DateResponse{}, err
	}
	rec, err := forecast.ForecastDate(ctx, p, *req.Date)
	if err != nil {
		return types.DateResponse{}, err
	}
	return types.DateResponse{Date: *req.Date, ModelType: selector, Forecast: rec}, nil
}
