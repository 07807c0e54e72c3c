package model

import "time"

// Bar represents a single daily candlestick bar.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Window is a chronologically ascending, per-symbol run of daily bars.
// The last bar is treated as "today" by the analyzer. A window is built
// fresh for each symbol on each scan and discarded afterwards.
type Window []Bar
