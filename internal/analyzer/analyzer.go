package analyzer

import (
	"errors"
	"math"

	"TrendSentinel/internal/model"
)

// DefaultThreshold is the breakout proximity tolerance in absolute price
// units. Carried over unchanged from the original strategy; it is not
// scaled to the instrument's price level.
const DefaultThreshold = 3.0

var (
	// ErrEmptyWindow is returned when there are no bars to analyze.
	ErrEmptyWindow = errors.New("empty price window")
	// ErrMalformedBar is returned when a bar carries a NaN price or no date.
	ErrMalformedBar = errors.New("malformed bar in window")
)

// Analyze classifies the window's trend by recency of its extremes and
// checks the last bar for a breakout.
//
// The bar with the highest High and the bar with the lowest Low anchor the
// classification: if the low was made after the high the trend is up,
// otherwise down. The breakout triggers when today's open is within
// threshold of the extreme the trend leans on (the low in an uptrend, the
// high in a downtrend).
//
// On failure the returned outcome is zero-valued: trend undetermined, no
// breakout, no recommendation.
func Analyze(window model.Window, threshold float64) (model.AnalysisOutcome, error) {
	if len(window) == 0 {
		return model.AnalysisOutcome{}, ErrEmptyWindow
	}
	for _, b := range window {
		if math.IsNaN(b.Open) || math.IsNaN(b.High) || math.IsNaN(b.Low) || b.Date.IsZero() {
			return model.AnalysisOutcome{}, ErrMalformedBar
		}
	}

	highIdx, lowIdx := findExtremes(window)
	highBar := window[highIdx]
	lowBar := window[lowIdx]

	trend := model.TrendDown
	if lowBar.Date.After(highBar.Date) {
		trend = model.TrendUp
	}

	today := window[len(window)-1]
	breakout := false
	switch trend {
	case model.TrendUp:
		breakout = math.Abs(today.Open-today.Low) <= threshold
	case model.TrendDown:
		breakout = math.Abs(today.Open-today.High) <= threshold
	}

	outcome := model.AnalysisOutcome{Trend: trend, Breakout: breakout}
	if !breakout {
		return outcome, nil
	}

	rec := &model.TradeRecommendation{
		Trend:        trend,
		CurrentPrice: today.Open,
		AsOf:         today.Date,
		HighRefDate:  highBar.Date,
		LowRefDate:   lowBar.Date,
	}
	if trend == model.TrendUp {
		rec.Action = model.ActionBuy
		rec.Stoploss = lowBar.Low
		rec.Target = highBar.High
	} else {
		rec.Action = model.ActionSell
		rec.Stoploss = highBar.High
		rec.Target = lowBar.Low
	}
	outcome.Recommendation = rec
	return outcome, nil
}

// findExtremes returns the indices of the bars holding the window's highest
// High and lowest Low. Strict comparisons keep the chronologically earliest
// bar when several share an extreme value.
func findExtremes(window model.Window) (highIdx, lowIdx int) {
	high := math.Inf(-1)
	low := math.Inf(1)
	for i, b := range window {
		if b.High > high {
			high = b.High
			highIdx = i
		}
		if b.Low < low {
			low = b.Low
			lowIdx = i
		}
	}
	return highIdx, lowIdx
}
