package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"TrendScout/internal/collector"
	"TrendScout/internal/model"
	"TrendScout/internal/notifier"
	"TrendScout/internal/recorder"
)

// Scheduler runs periodic scan cycles over a set of tickers. Each cycle
// evaluates every ticker in its own goroutine, joins the results, then
// reports and records. Cancellation stops scheduling new cycles;
// in-flight evaluations run to completion.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Recorder  recorder.Recorder
	LogSink   *recorder.LogSink
	ErrSink   *recorder.ErrorSink
	Tickers   []string
	Ctx       context.Context

	wg sync.WaitGroup
}

// NewScheduler creates a Scheduler over the given tickers.
func NewScheduler(ctx context.Context, col *collector.Collector, rec recorder.Recorder, logSink *recorder.LogSink, errSink *recorder.ErrorSink, tickers []string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(),
		Collector: col,
		Recorder:  rec,
		LogSink:   logSink,
		ErrSink:   errSink,
		Tickers:   tickers,
		Ctx:       ctx,
	}
}

// Start begins scheduling scan cycles every interval. When duration is
// positive the scheduler stops itself after it elapses.
func (s *Scheduler) Start(interval, duration time.Duration) error {
	spec := fmt.Sprintf("@every %s", interval)
	if _, err := s.Cron.AddFunc(spec, s.RunCycle); err != nil {
		return fmt.Errorf("register scan cycle: %w", err)
	}
	s.Cron.Start()
	log.Printf("[INFO] scheduler started: %d tickers every %s", len(s.Tickers), interval)

	if duration > 0 {
		time.AfterFunc(duration, func() {
			log.Printf("[INFO] run duration %s elapsed, stopping scheduler", duration)
			s.Stop()
		})
	}
	return nil
}

// Stop stops scheduling new cycles and waits for in-flight evaluations.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	s.wg.Wait()
	log.Println("[INFO] scheduler stopped")
}

// RunCycle executes one full scan over all tickers and prints the grouped
// report. Also used for manual trigger / RUN_ON_START.
func (s *Scheduler) RunCycle() {
	select {
	case <-s.Ctx.Done():
		return
	default:
	}

	s.wg.Add(1)
	defer s.wg.Done()

	log.Printf("[INFO] running scan cycle over %d tickers", len(s.Tickers))

	type result struct {
		eval *model.Evaluation
		err  error
		sym  string
	}
	results := make(chan result, len(s.Tickers))

	// One task per ticker; no shared mutable series across tasks.
	for _, symbol := range s.Tickers {
		go func(sym string) {
			eval, err := s.Collector.Evaluate(sym)
			results <- result{eval: eval, err: err, sym: sym}
		}(symbol)
	}

	evals := make([]*model.Evaluation, 0, len(s.Tickers))
	for range s.Tickers {
		r := <-results
		if r.err != nil {
			// Transient fetch failure: log, record, retry next cycle.
			log.Printf("[ERROR] evaluate %s: %v", r.sym, r.err)
			if err := s.ErrSink.Append(r.sym, r.err); err != nil {
				log.Printf("[WARN] append error sink: %v", err)
			}
			continue
		}
		evals = append(evals, r.eval)
	}

	for _, eval := range evals {
		if err := s.LogSink.Append(eval); err != nil {
			log.Printf("[ERROR] append log sink for %s: %v", eval.Symbol, err)
		}
		if err := s.Recorder.RecordEvaluation(eval); err != nil {
			log.Printf("[ERROR] record evaluation for %s: %v", eval.Symbol, err)
		}
		if eval.Squeeze.Label == model.SqueezeHigh || eval.Squeeze.Label == model.SqueezeModerate {
			if err := s.Recorder.RecordSqueezeEvent(eval); err != nil {
				log.Printf("[ERROR] record squeeze event for %s: %v", eval.Symbol, err)
			}
		}
	}

	fmt.Print(notifier.FormatReport(evals))
}
