package recorder

import "TrendSentinel/internal/model"

// Recorder archives fetched market data for offline inspection. It stores
// raw bars only; scan results are never persisted.
type Recorder interface {
	RecordBars(symbol string, bars []model.Bar) error
	Close() error
}
