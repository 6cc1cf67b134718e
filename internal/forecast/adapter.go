package forecast

import (
	"context"
	"fmt"
	"strings"
	"time"

	"solarcast/pkg/types"
)

// YearDates returns every calendar day of year from January 1 to December 31,
// at UTC midnight.
func YearDates(year int) []time.Time {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	dates := make([]time.Time, 0, 366)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, &ParseError{Value: s, Err: err}
	}
	return d, nil
}

// ForecastYear predicts every day of year with a single call to p.
func ForecastYear(ctx context.Context, p Predictor, year int) ([]types.ForecastRecord, error) {
	if year < MinYear || year > MaxYear {
		return nil, &YearRangeError{Year: year}
	}
	dates := YearDates(year)
	rows, err := p.Predict(ctx, dates)
	if err != nil {
		return nil, fmt.Errorf("predict year %d: %w", year, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyPrediction
	}
	if len(rows) != len(dates) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrRowMismatch, len(rows), len(dates))
	}
	out := make([]types.ForecastRecord, len(rows))
	for i, r := range rows {
		out[i] = toRecord(r)
	}
	return out, nil
}

// ForecastDate predicts a single date given as YYYY-MM-DD.
func ForecastDate(ctx context.Context, p Predictor, date string) (types.ForecastRecord, error) {
	d, err := ParseDate(date)
	if err != nil {
		return types.ForecastRecord{}, err
	}
	rows, err := p.Predict(ctx, []time.Time{d})
	if err != nil {
		return types.ForecastRecord{}, fmt.Errorf("predict date %s: %w", d.Format(DateLayout), err)
	}
	if len(rows) == 0 {
		return types.ForecastRecord{}, ErrEmptyPrediction
	}
	return toRecord(rows[0]), nil
}

func toRecord(r Row) types.ForecastRecord {
	return types.ForecastRecord{
		Date:              r.DS.Format(DateLayout),
		ForecastRadiation: r.Yhat,
		LowerBound:        r.YhatLower,
		UpperBound:        r.YhatUpper,
	}
}
