package scanner

import (
	"errors"
	"strings"
	"testing"
	"time"

	"TrendSentinel/internal/collector"
	"TrendSentinel/internal/model"
	"TrendSentinel/internal/recorder"
)

// stubNotifier captures deliveries and optionally fails them.
type stubNotifier struct {
	subjects   []string
	bodies     []string
	recipients []string
	err        error
}

func (s *stubNotifier) Deliver(subject, body, recipient string) error {
	if s.err != nil {
		return s.err
	}
	s.subjects = append(s.subjects, subject)
	s.bodies = append(s.bodies, body)
	s.recipients = append(s.recipients, recipient)
	return nil
}

func barsAt(base time.Time, n int, price float64) []model.Bar {
	bars := make([]model.Bar, n)
	for i := range bars {
		bars[i] = model.Bar{
			Date:  base.AddDate(0, 0, i),
			Open:  price,
			High:  price + 1,
			Low:   price - 1,
			Close: price,
		}
	}
	return bars
}

// triggeringWindow yields an uptrend whose last open sits on the low.
func triggeringWindow(base time.Time) []model.Bar {
	w := barsAt(base, 30, 100)
	w[9].High = 120
	w[24].Low = 80
	w[29].Open = 100
	w[29].Low = 99.5
	return w
}

// quietWindow yields an uptrend far from any breakout.
func quietWindow(base time.Time) []model.Bar {
	w := barsAt(base, 30, 100)
	w[9].High = 120
	w[24].Low = 40
	w[29].Open = 100
	w[29].Low = 50
	return w
}

func newTestScanner(fetcher collector.Fetcher, n *stubNotifier) *Scanner {
	col := collector.NewCollector(fetcher, recorder.NewNoopRecorder())
	return NewScanner(col, n, 30, 3, "alerts@example.com")
}

func TestRun_BatchIsolation(t *testing.T) {
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	fetcher := &collector.MockFetcher{Bars: map[string][]model.Bar{
		"AAA": triggeringWindow(base),
		"BBB": nil, // provider has nothing for this one
		"CCC": triggeringWindow(base),
	}}
	n := &stubNotifier{}
	outcomes := newTestScanner(fetcher, n).Run([]string{"AAA", "BBB", "CCC"})

	if len(outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
	}
	if outcomes[0].Status != model.StatusSignal {
		t.Errorf("AAA: expected signal, got %s", outcomes[0].Status)
	}
	if outcomes[1].Status != model.StatusNoData {
		t.Errorf("BBB: expected no_data, got %s", outcomes[1].Status)
	}
	if outcomes[2].Status != model.StatusSignal {
		t.Errorf("CCC: expected signal, got %s", outcomes[2].Status)
	}
	if len(n.subjects) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(n.subjects))
	}
	if n.subjects[0] != "Trade Signal: BUY AAA" || n.subjects[1] != "Trade Signal: BUY CCC" {
		t.Errorf("unexpected subjects: %v", n.subjects)
	}
	if n.recipients[0] != "alerts@example.com" {
		t.Errorf("unexpected recipient: %s", n.recipients[0])
	}
}

func TestRun_InputOrderAndDuplicates(t *testing.T) {
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	fetcher := &collector.MockFetcher{Bars: map[string][]model.Bar{
		"AAA": quietWindow(base),
	}}
	outcomes := newTestScanner(fetcher, &stubNotifier{}).Run([]string{"AAA", "AAA"})

	if len(outcomes) != 2 {
		t.Fatalf("duplicates must be scanned twice, got %d outcomes", len(outcomes))
	}
	for i, o := range outcomes {
		if o.Symbol != "AAA" || o.Status != model.StatusNoSignal || o.Trend != model.TrendUp {
			t.Errorf("outcome %d: %+v", i, o)
		}
	}
}

func TestRun_FetchErrorIsContained(t *testing.T) {
	fetcher := &collector.MockFetcher{Err: errors.New("connection refused")}
	outcomes := newTestScanner(fetcher, &stubNotifier{}).Run([]string{"AAA"})

	if outcomes[0].Status != model.StatusNoData {
		t.Errorf("fetch error should record no_data, got %s", outcomes[0].Status)
	}
	if outcomes[0].Err == nil {
		t.Error("expected error to be reported in the outcome")
	}
}

func TestRun_MalformedWindowIsUndetermined(t *testing.T) {
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	bad := barsAt(base, 5, 100)
	bad[2].Date = time.Time{}
	fetcher := &collector.MockFetcher{Bars: map[string][]model.Bar{
		"BAD":  bad,
		"GOOD": quietWindow(base),
	}}
	outcomes := newTestScanner(fetcher, &stubNotifier{}).Run([]string{"BAD", "GOOD"})

	if outcomes[0].Status != model.StatusUndetermined {
		t.Errorf("BAD: expected undetermined, got %s", outcomes[0].Status)
	}
	if outcomes[0].Trend != "" {
		t.Errorf("BAD: trend must be absent, got %q", outcomes[0].Trend)
	}
	if outcomes[1].Status != model.StatusNoSignal {
		t.Errorf("GOOD: expected no_signal, got %s", outcomes[1].Status)
	}
}

func TestRun_DeliveryFailureDoesNotAbort(t *testing.T) {
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	fetcher := &collector.MockFetcher{Bars: map[string][]model.Bar{
		"AAA": triggeringWindow(base),
		"BBB": quietWindow(base),
	}}
	n := &stubNotifier{err: errors.New("smtp: auth failed")}
	outcomes := newTestScanner(fetcher, n).Run([]string{"AAA", "BBB"})

	if outcomes[0].Status != model.StatusDeliveryFailed {
		t.Errorf("AAA: expected delivery_failed, got %s", outcomes[0].Status)
	}
	if outcomes[1].Status != model.StatusNoSignal {
		t.Errorf("BBB: expected no_signal after failed delivery, got %s", outcomes[1].Status)
	}
}

func TestRun_RecommendationCarriesSymbol(t *testing.T) {
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	fetcher := &collector.MockFetcher{Bars: map[string][]model.Bar{
		"XYZ": triggeringWindow(base),
	}}
	n := &stubNotifier{}
	newTestScanner(fetcher, n).Run([]string{"XYZ"})

	if len(n.bodies) != 1 {
		t.Fatalf("expected 1 delivery, got %d", len(n.bodies))
	}
	for _, want := range []string{"Action Alert: BUY XYZ", "Stoploss: 80.00", "Target: 120.00"} {
		if !strings.Contains(n.bodies[0], want) {
			t.Errorf("body missing %q:\n%s", want, n.bodies[0])
		}
	}
}
