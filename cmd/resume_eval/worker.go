package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-evaluator/internal/config"
	"github.com/jonathan/resume-evaluator/internal/pipeline"
	"github.com/jonathan/resume-evaluator/internal/store"
)

var workerCommand = &cobra.Command{
	Use:   "worker",
	Short: "Poll for new candidates and process them",
	Long:  "Runs the polling worker: claims candidates in the new status one atomic claim at a time, processes up to a bounded batch concurrently, and periodically sweeps runs stuck in processing back to the error status.",
	RunE:  runWorkerCmd,
}

var (
	workerFlags        sharedFlags
	workerBatch        int
	workerPollInterval string
	workerStaleAfter   string
)

func init() {
	workerFlags.register(workerCommand)
	workerCommand.Flags().IntVar(&workerBatch, "batch", 0, "Maximum concurrent runs per poll")
	workerCommand.Flags().StringVar(&workerPollInterval, "poll-interval", "", "Poll period, e.g. 5s")
	workerCommand.Flags().StringVar(&workerStaleAfter, "stale-after", "", "Mark processing runs older than this as failed, e.g. 30m")
	rootCmd.AddCommand(workerCommand)
}

func runWorkerCmd(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := workerFlags.load(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("batch") {
		cfg.WorkerBatch = workerBatch
	}
	if cmd.Flags().Changed("poll-interval") {
		cfg.PollInterval = workerPollInterval
	}
	if cmd.Flags().Changed("stale-after") {
		cfg.StaleAfter = workerStaleAfter
	}

	log, err := workerFlags.logger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	runner, st, cleanup, err := buildRunner(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	batch := cfg.WorkerBatch
	if batch <= 0 {
		batch = config.DefaultWorkerBatch
	}
	pollInterval := config.Duration(cfg.PollInterval, config.DefaultPollInterval)
	staleAfter := config.Duration(cfg.StaleAfter, config.DefaultStaleAfter)

	log.Info("worker started",
		zap.Int("batch", batch),
		zap.Duration("poll_interval", pollInterval),
		zap.Duration("stale_after", staleAfter))

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		pollOnce(ctx, runner, st, batch, staleAfter, log)

		select {
		case <-ctx.Done():
			log.Info("worker stopping")
			return nil
		case <-ticker.C:
		}
	}
}

// pollOnce sweeps stale runs, then claims and processes up to batch
// candidates concurrently. Individual run failures are logged; they already
// moved their candidate to the error status.
func pollOnce(ctx context.Context, runner *pipeline.Runner, st store.Store, batch int, staleAfter time.Duration, log *zap.Logger) {
	if swept, err := st.FailStale(ctx, staleAfter); err != nil {
		log.Error("stale sweep failed", zap.Error(err))
	} else if swept > 0 {
		log.Warn("swept stale candidates", zap.Int("count", swept))
	}

	var g errgroup.Group
	g.SetLimit(batch)

	for i := 0; i < batch; i++ {
		candidate, err := st.ClaimNext(ctx)
		if err != nil {
			log.Error("claim failed", zap.Error(err))
			break
		}
		if candidate == nil {
			break
		}

		id := candidate.ID
		g.Go(func() error {
			if err := runner.Run(ctx, id); err != nil {
				log.Warn("candidate run failed",
					zap.String("candidate_id", id.String()),
					zap.Error(err))
			}
			return nil
		})
	}
	_ = g.Wait()
}
