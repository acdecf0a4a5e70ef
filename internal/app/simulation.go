package app

import (
	"assetplanner/internal"
	"assetplanner/internal/calculator"
	"assetplanner/internal/config"
	"assetplanner/internal/domain"
	"assetplanner/internal/logger"
	"context"
	"fmt"
	"time"
)

type SimulationHandler struct{}

type RunSimulationInput struct {
	Inputs internal.RawInputs
	// the wall-clock anchor for snapshot dates; zero means time.Now()
	StartDate time.Time
}

type RunSimulationResult struct {
	Params       domain.SimulationParameters   `json:"params"`
	Snapshots    []domain.MonthlySnapshot      `json:"snapshots"`
	YearlyRollup []domain.YearlyRollupEntry    `json:"yearlyRollup"`
	Progress     domain.ProgressMetrics        `json:"progress"`
	Metrics      *calculator.SimulationMetrics `json:"metrics"`
}

// Run recomputes the full projection from raw inputs: normalize, walk
// the monthly ledger, then derive the yearly rollup, progress metrics
// and summary statistics. Every invocation is independent and returns
// fresh values; callers re-run it on every parameter change.
func (h SimulationHandler) Run(ctx context.Context, in RunSimulationInput) (*RunSimulationResult, error) {
	log := logger.FromContext(ctx)
	profile := domain.GetProfile(ctx)

	profile.StartNewSpan("normalize inputs")
	params, err := internal.NormalizeInputs(in.Inputs)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize inputs: %w", err)
	}

	startDate := in.StartDate
	if startDate.IsZero() {
		startDate = time.Now()
	}

	profile.StartNewSpan("project ledger")
	snapshots, err := internal.Project(params, startDate)
	if err != nil {
		return nil, fmt.Errorf("failed to project: %w", err)
	}

	_, endSpan := profile.StartNewSpan("derive views")
	progress, err := internal.ComputeProgress(params, snapshots)
	if err != nil {
		return nil, fmt.Errorf("failed to compute progress: %w", err)
	}

	metrics, err := calculator.CalculateMetrics(snapshots)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate metrics: %w", err)
	}
	endSpan()

	log.Debugw("simulation complete",
		"horizonMonths", params.HorizonMonths,
		"finalTotal", snapshots[len(snapshots)-1].TotalAssets,
	)

	return &RunSimulationResult{
		Params:       params,
		Snapshots:    snapshots,
		YearlyRollup: internal.YearlyRollup(snapshots),
		Progress:     progress,
		Metrics:      metrics,
	}, nil
}

// InputsFromConfig maps a persisted config document onto the raw input
// record the normalizer expects.
func InputsFromConfig(cfg config.Config) internal.RawInputs {
	return internal.RawInputs{
		Years:                cfg.Years,
		MonthlyStockMan:      cfg.MonthlyStockMan,
		MonthlyBondMan:       cfg.MonthlyBondMan,
		MonthlySavingsMan:    cfg.MonthlySavingsMan,
		StockReturnPercent:   cfg.StockReturnPercent,
		BondReturnPercent:    cfg.BondReturnPercent,
		SavingsReturnPercent: cfg.SavingsReturnPercent,
		InitialStockMan:      cfg.InitialStockMan,
		InitialBondMan:       cfg.InitialBondMan,
		InitialSavingsMan:    cfg.InitialSavingsMan,
		CurrentStockMan:      cfg.CurrentStockMan,
		CurrentBondMan:       cfg.CurrentBondMan,
		CurrentSavingsMan:    cfg.CurrentSavingsMan,
	}
}
