package forecast

import (
	"context"
	"time"
)

// Row is one prediction produced by a Predictor for a single target date.
type Row struct {
	DS        time.Time
	Yhat      float64
	YhatLower float64
	YhatUpper float64
}

// Predictor is a loaded, pre-trained forecasting model. Predict returns one
// Row per input date, in input order. Implementations must be safe for
// concurrent use; the service never mutates a Predictor after load.
type Predictor interface {
	Predict(ctx context.Context, ds []time.Time) ([]Row, error)
}
