package scanner

import (
	"github.com/rs/zerolog/log"

	"TrendSentinel/internal/analyzer"
	"TrendSentinel/internal/collector"
	"TrendSentinel/internal/model"
	"TrendSentinel/internal/notifier"
)

// Scanner walks the symbol list in order, analyzes each symbol's window and
// delivers triggered recommendations. Every failure is contained at the
// symbol boundary; a run always produces one outcome per input symbol.
type Scanner struct {
	Collector  *collector.Collector
	Notifier   notifier.Notifier
	WindowDays int
	Threshold  float64
	Recipient  string
}

// NewScanner creates a Scanner with the given read-only configuration.
func NewScanner(col *collector.Collector, n notifier.Notifier, windowDays int, threshold float64, recipient string) *Scanner {
	return &Scanner{
		Collector:  col,
		Notifier:   n,
		WindowDays: windowDays,
		Threshold:  threshold,
		Recipient:  recipient,
	}
}

// Run processes the symbols sequentially and returns the per-symbol outcome
// log. No state is shared across iterations and nothing is retried.
func (s *Scanner) Run(symbols []string) []model.SymbolOutcome {
	outcomes := make([]model.SymbolOutcome, 0, len(symbols))
	for _, symbol := range symbols {
		outcome := s.scanOne(symbol)
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

func (s *Scanner) scanOne(symbol string) model.SymbolOutcome {
	log.Info().Str("symbol", symbol).Msg("analyzing ticker")

	window, err := s.Collector.Collect(symbol, s.WindowDays)
	if err != nil {
		log.Error().Err(err).Str("symbol", symbol).Msg("fetch failed")
		return model.SymbolOutcome{Symbol: symbol, Status: model.StatusNoData, Err: err}
	}
	if len(window) == 0 {
		log.Warn().Str("symbol", symbol).Msg("no data fetched, check ticker symbol")
		return model.SymbolOutcome{Symbol: symbol, Status: model.StatusNoData}
	}

	outcome, err := analyzer.Analyze(window, s.Threshold)
	if err != nil {
		log.Warn().Err(err).Str("symbol", symbol).Msg("could not determine trend")
		return model.SymbolOutcome{Symbol: symbol, Status: model.StatusUndetermined, Err: err}
	}

	if !outcome.Breakout {
		log.Info().Str("symbol", symbol).Str("trend", string(outcome.Trend)).Msg("no signal")
		return model.SymbolOutcome{Symbol: symbol, Status: model.StatusNoSignal, Trend: outcome.Trend}
	}

	rec := outcome.Recommendation
	rec.Symbol = symbol
	log.Info().Str("symbol", symbol).Str("action", string(rec.Action)).Msg("signal found, preparing notification")

	if err := s.Notifier.Deliver(notifier.Subject(rec), notifier.Body(rec), s.Recipient); err != nil {
		log.Error().Err(err).Str("symbol", symbol).Msg("notification failed")
		return model.SymbolOutcome{Symbol: symbol, Status: model.StatusDeliveryFailed, Trend: outcome.Trend, Err: err}
	}

	log.Info().Str("symbol", symbol).Str("recipient", s.Recipient).Msg("notification sent")
	return model.SymbolOutcome{Symbol: symbol, Status: model.StatusSignal, Trend: outcome.Trend}
}
