package health

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hamed0406/deephealth/internal/domain"
	"github.com/hamed0406/deephealth/internal/probe"
)

// Aggregator fans one check out per target and folds the results into a Report.
type Aggregator struct {
	Logger  *zap.Logger
	Checker probe.Checker
	Now     func() time.Time
}

func NewAggregator(logger *zap.Logger, checker probe.Checker) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		Logger:  logger,
		Checker: checker,
		Now:     time.Now,
	}
}

// Aggregate checks every target concurrently and waits for all of them.
// Checks come back in target order regardless of completion order, and the
// timestamp is taken once after the last check finishes.
func (a *Aggregator) Aggregate(ctx context.Context, targets []domain.Target) domain.Report {
	start := time.Now()
	checks := make([]domain.CheckResult, len(targets))

	// Checkers encode every failure in the result's Status, so no goroutine
	// returns an error and Wait only serves as the join.
	var g errgroup.Group
	for i, t := range targets {
		g.Go(func() error {
			checks[i] = a.Checker.Check(ctx, t)
			return nil
		})
	}
	_ = g.Wait()

	report := domain.Report{
		OverallStatus: domain.Overall(checks),
		Checks:        checks,
		Timestamp:     a.Now().UTC().Format(time.RFC3339),
	}

	for _, c := range checks {
		if !c.IsHealthy() {
			a.Logger.Warn("dependency_unhealthy",
				zap.String("service", c.Service),
				zap.String("status", c.Status),
				zap.Int64("latency_ms", c.LatencyMS),
			)
		}
	}
	a.Logger.Info("deep_health_checked",
		zap.String("overall_status", report.OverallStatus),
		zap.Int("checks", len(checks)),
		zap.Duration("took", time.Since(start)),
	)
	return report
}
