package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"TrendScout/internal/collector"
	"TrendScout/internal/config"
	"TrendScout/internal/ftd"
	"TrendScout/internal/model"
	"TrendScout/internal/recorder"
	"TrendScout/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] TrendScout starting...")

	// .env is optional; real env always wins.
	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] loaded .env")
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Ingest FTD ledger
	ftdRecords := map[string]model.FTDRecord{}
	if cfg.FTD.FilePath != "" {
		records, warnings, err := ftd.IngestFile(cfg.FTD.FilePath, cfg.Tickers)
		if err != nil {
			log.Printf("[WARN] ingest FTD file: %v", err)
		} else {
			ftdRecords = records
			for _, w := range warnings {
				log.Printf("[WARN] ftd: %s", w)
			}
			log.Printf("[INFO] FTD ledger loaded: %d tickers", len(records))
		}
	}

	// Init fetcher and collector
	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())
	col := collector.NewCollector(fetcher, cfg.Poll.HistoryDays, ftdRecords)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init sinks
	logSink, err := recorder.NewLogSink(cfg.Sinks.LogPath)
	if err != nil {
		log.Fatalf("[FATAL] init log sink: %v", err)
	}
	defer logSink.Close()
	errSink := recorder.NewErrorSink(cfg.Sinks.ErrorLogPath)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, col, rec, logSink, errSink, cfg.Tickers)
	if err := sched.Start(cfg.Poll.Interval.Std(), cfg.Poll.Duration.Std()); err != nil {
		log.Fatalf("[FATAL] start scheduler: %v", err)
	}
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing scan cycle now")
		go sched.RunCycle()
	}

	log.Println("[INFO] TrendScout is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] TrendScout stopped")
}
