package model

import "time"

// Trend classifies the current phase of a window. The more recently formed
// extreme decides the phase: a low later than the high means UP.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// Action is the recommended side of a triggered breakout.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
)

// TradeRecommendation is the final output of a triggered analysis. It is
// built once by the analyzer and consumed once by the notifier.
type TradeRecommendation struct {
	Symbol       string
	Action       Action
	Trend        Trend
	CurrentPrice float64
	AsOf         time.Time
	Stoploss     float64
	Target       float64
	HighRefDate  time.Time
	LowRefDate   time.Time
}

// AnalysisOutcome reports one window's analysis. An empty Trend means the
// analysis failed; Breakout is then always false and Recommendation nil.
type AnalysisOutcome struct {
	Trend          Trend
	Breakout       bool
	Recommendation *TradeRecommendation
}

// SymbolStatus describes how one symbol's scan iteration ended.
type SymbolStatus string

const (
	StatusSignal         SymbolStatus = "signal"
	StatusNoSignal       SymbolStatus = "no_signal"
	StatusNoData         SymbolStatus = "no_data"
	StatusUndetermined   SymbolStatus = "undetermined"
	StatusDeliveryFailed SymbolStatus = "delivery_failed"
)

// SymbolOutcome is one entry in the per-run outcome log.
type SymbolOutcome struct {
	Symbol string
	Status SymbolStatus
	Trend  Trend
	Err    error
}
