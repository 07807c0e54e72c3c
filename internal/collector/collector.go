package collector

import (
	"time"

	"github.com/rs/zerolog/log"

	"TrendSentinel/internal/model"
	"TrendSentinel/internal/recorder"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Bars  map[string][]model.Bar
	Err   error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(symbol string, days int) ([]model.Bar, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars[symbol], nil
	}
	return GenerateMockBars(m.Price, days), nil
}

// GenerateMockBars builds a gently drifting window around basePrice.
func GenerateMockBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Date:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector fetches one symbol's price window and archives the raw bars.
type Collector struct {
	Fetcher  Fetcher
	Recorder recorder.Recorder
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, rec recorder.Recorder) *Collector {
	return &Collector{Fetcher: fetcher, Recorder: rec}
}

// Collect fetches the trailing window of daily bars for symbol. An empty
// window means no data is available for the symbol; the caller decides what
// to do with that. Archive failures are logged and never fatal.
func (c *Collector) Collect(symbol string, days int) (model.Window, error) {
	bars, err := c.Fetcher.FetchDailyBars(symbol, days)
	if err != nil {
		return nil, err
	}
	if len(bars) > 0 {
		if err := c.Recorder.RecordBars(symbol, bars); err != nil {
			log.Warn().Err(err).Str("symbol", symbol).Msg("archive bars failed")
		}
	}
	return bars, nil
}
