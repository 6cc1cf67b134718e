package forecast

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"
)

const secondsPerDay = 86400.0

// Changepoint shifts the trend slope by Delta from scaled time T onward.
type Changepoint struct {
	T     float64 `json:"t" yaml:"t" toml:"t"`
	Delta float64 `json:"delta" yaml:"delta" toml:"delta"`
}

// Trend is a piecewise-linear trend in scaled time.
type Trend struct {
	K            float64       `json:"k" yaml:"k" toml:"k"`
	M            float64       `json:"m" yaml:"m" toml:"m"`
	Changepoints []Changepoint `json:"changepoints,omitempty" yaml:"changepoints,omitempty" toml:"changepoints,omitempty"`
}

// Seasonality is a Fourier series over a fixed period. Coefficients are
// interleaved cosine/sine pairs: a1, b1, a2, b2, ...
type Seasonality struct {
	Name         string    `json:"name" yaml:"name" toml:"name"`
	PeriodDays   float64   `json:"period_days" yaml:"period_days" toml:"period_days"`
	Coefficients []float64 `json:"coefficients" yaml:"coefficients" toml:"coefficients"`
}

// Interval describes the uncertainty band around the point estimate.
type Interval struct {
	// Width is the coverage probability of the band, e.g. 0.8.
	Width float64 `json:"width" yaml:"width" toml:"width"`
	// Sigma is the residual standard deviation in output units.
	Sigma float64 `json:"sigma" yaml:"sigma" toml:"sigma"`
}

// AdditiveModel is an exported fit of an additive trend + seasonality model:
//
//	yhat = y_scale * (trend(t) + sum(seasonalities(ds))) + offset
//
// where t is days since Start divided by TScaleDays, and the band is
// yhat +/- z*Sigma with z the two-sided normal quantile for Interval.Width.
//
// Call Prepare once before Predict; after that the model is read-only.
type AdditiveModel struct {
	Name          string        `json:"name" yaml:"name" toml:"name"`
	Start         string        `json:"start" yaml:"start" toml:"start"`
	TScaleDays    float64       `json:"t_scale_days" yaml:"t_scale_days" toml:"t_scale_days"`
	YScale        float64       `json:"y_scale" yaml:"y_scale" toml:"y_scale"`
	Offset        float64       `json:"offset" yaml:"offset" toml:"offset"`
	Trend         Trend         `json:"trend" yaml:"trend" toml:"trend"`
	Seasonalities []Seasonality `json:"seasonalities" yaml:"seasonalities" toml:"seasonalities"`
	Interval      Interval      `json:"interval" yaml:"interval" toml:"interval"`

	startDays float64
	z         float64
	prepared  bool
}

// Prepare validates the model and precomputes derived constants.
func (m *AdditiveModel) Prepare() error {
	start, err := time.Parse(DateLayout, m.Start)
	if err != nil {
		return fmt.Errorf("model %q: start: %w", m.Name, err)
	}
	if m.TScaleDays <= 0 {
		return fmt.Errorf("model %q: t_scale_days must be > 0", m.Name)
	}
	if m.YScale == 0 {
		m.YScale = 1
	}
	for _, s := range m.Seasonalities {
		if s.PeriodDays <= 0 {
			return fmt.Errorf("model %q: seasonality %q: period_days must be > 0", m.Name, s.Name)
		}
		if len(s.Coefficients)%2 != 0 {
			return fmt.Errorf("model %q: seasonality %q: coefficients must be cos/sin pairs", m.Name, s.Name)
		}
	}
	if m.Interval.Width <= 0 || m.Interval.Width >= 1 {
		return fmt.Errorf("model %q: interval.width must be in (0,1)", m.Name)
	}
	if m.Interval.Sigma < 0 {
		return fmt.Errorf("model %q: interval.sigma must be >= 0", m.Name)
	}
	sort.Slice(m.Trend.Changepoints, func(i, j int) bool {
		return m.Trend.Changepoints[i].T < m.Trend.Changepoints[j].T
	})
	m.startDays = float64(start.Unix()) / secondsPerDay
	m.z = math.Sqrt2 * math.Erfinv(m.Interval.Width)
	m.prepared = true
	return nil
}

// Predict implements Predictor.
func (m *AdditiveModel) Predict(ctx context.Context, ds []time.Time) ([]Row, error) {
	if !m.prepared {
		return nil, fmt.Errorf("model %q: not prepared", m.Name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	band := m.z * m.Interval.Sigma
	rows := make([]Row, len(ds))
	for i, d := range ds {
		days := float64(d.Unix()) / secondsPerDay
		y := m.YScale*(m.trend((days-m.startDays)/m.TScaleDays)+m.seasonal(days)) + m.Offset
		rows[i] = Row{DS: d, Yhat: y, YhatLower: y - band, YhatUpper: y + band}
	}
	return rows, nil
}

func (m *AdditiveModel) trend(t float64) float64 {
	k, off := m.Trend.K, m.Trend.M
	for _, cp := range m.Trend.Changepoints {
		if t < cp.T {
			break
		}
		k += cp.Delta
		off -= cp.T * cp.Delta
	}
	return k*t + off
}

func (m *AdditiveModel) seasonal(days float64) float64 {
	var sum float64
	for _, s := range m.Seasonalities {
		for n := 0; n < len(s.Coefficients)/2; n++ {
			x := 2 * math.Pi * float64(n+1) * days / s.PeriodDays
			sum += s.Coefficients[2*n]*math.Cos(x) + s.Coefficients[2*n+1]*math.Sin(x)
		}
	}
	return sum
}
