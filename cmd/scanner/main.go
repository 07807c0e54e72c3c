package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"TrendSentinel/internal/collector"
	"TrendSentinel/internal/config"
	"TrendSentinel/internal/logging"
	"TrendSentinel/internal/model"
	"TrendSentinel/internal/notifier"
	"TrendSentinel/internal/recorder"
	"TrendSentinel/internal/scanner"
	"TrendSentinel/internal/scheduler"
	"TrendSentinel/internal/symbols"
)

func main() {
	// .env is optional; real deployments set the variables directly.
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	closeLog, err := logging.Setup(cfg.LogFile)
	if err != nil {
		log.Fatal().Err(err).Msg("init logging")
	}
	defer closeLog()

	log.Info().Msg("TrendSentinel starting: analyzing market conditions")

	// Load symbols from the ticker file
	syms, err := symbols.Load(cfg.DataSource.SymbolFile)
	if err != nil {
		log.Warn().Err(err).Str("file", cfg.DataSource.SymbolFile).Msg("could not read ticker file, exiting")
		return
	}
	if len(syms) == 0 {
		log.Warn().Str("file", cfg.DataSource.SymbolFile).Msg("no tickers found, exiting")
		return
	}
	log.Info().Int("count", len(syms)).Str("file", cfg.DataSource.SymbolFile).Msg("tickers loaded")

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewVsTraderFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Info().Str("source", fetcher.Name()).Msg("data source ready")

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	col := collector.NewCollector(fetcher, rec)
	mail := notifier.NewSMTPNotifier(cfg.Mail.SMTPHost, cfg.Mail.SMTPPort, cfg.Mail.Sender, cfg.Mail.Password)
	scan := scanner.NewScanner(col, mail, cfg.Scan.WindowDays, cfg.Scan.Threshold, cfg.Mail.Recipient)

	// Scheduled mode: keep running until a shutdown signal arrives.
	if cfg.Schedule.ScanCron != "" {
		runScheduled(scan, syms, cfg.Schedule.ScanCron)
		return
	}

	// Default: one top-to-bottom run.
	outcomes := scan.Run(syms)
	summarize(outcomes)
	log.Info().Msg("analysis complete")
}

func runScheduled(scan *scanner.Scanner, syms []string, cronSpec string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, scan, syms)
	if err := sched.Register(cronSpec); err != nil {
		log.Fatal().Err(err).Msg("register scan task")
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, executing scan now")
		go sched.RunNow()
	}

	log.Info().Str("cron", cronSpec).Msg("TrendSentinel is running, press Ctrl+C to stop")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	cancel()
}

func summarize(outcomes []model.SymbolOutcome) {
	counts := map[model.SymbolStatus]int{}
	for _, o := range outcomes {
		counts[o.Status]++
	}
	log.Info().
		Int("scanned", len(outcomes)).
		Int("signals", counts[model.StatusSignal]).
		Int("no_signal", counts[model.StatusNoSignal]).
		Int("no_data", counts[model.StatusNoData]).
		Int("undetermined", counts[model.StatusUndetermined]).
		Int("delivery_failed", counts[model.StatusDeliveryFailed]).
		Msg("run summary")
}
