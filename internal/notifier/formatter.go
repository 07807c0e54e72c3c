package notifier

import (
	"fmt"

	"TrendSentinel/internal/model"
)

const dateLayout = "2006-01-02"

// Subject builds the alert subject line for a recommendation.
func Subject(rec *model.TradeRecommendation) string {
	return fmt.Sprintf("Trade Signal: %s %s", rec.Action, rec.Symbol)
}

// Body renders the plain-text alert body. The layout is fixed; downstream
// mail filters key off these exact lines.
func Body(rec *model.TradeRecommendation) string {
	return fmt.Sprintf(`Action Alert: %s %s

Current Trend: %s
Current Price: %.2f
Market Date: %s

--- Trade Setup ---
Stoploss: %.2f
Target: %.2f

High Reference: %s
Low Reference: %s
`,
		rec.Action, rec.Symbol,
		rec.Trend,
		rec.CurrentPrice,
		rec.AsOf.Format(dateLayout),
		rec.Stoploss,
		rec.Target,
		rec.HighRefDate.Format(dateLayout),
		rec.LowRefDate.Format(dateLayout),
	)
}
