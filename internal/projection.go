package internal

import (
	"assetplanner/internal/domain"
	"assetplanner/internal/util"
	"time"
)

// Project walks the compounding recurrence forward one month at a time
// and returns horizonMonths+1 snapshots, index 0 being the starting
// state. Growth applies to the prior month's balance before the new
// contribution lands, so a contribution earns nothing in its first
// month.
func Project(params domain.SimulationParameters, startDate time.Time) ([]domain.MonthlySnapshot, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	snapshots := make([]domain.MonthlySnapshot, 0, params.HorizonMonths+1)

	first := domain.MonthlySnapshot{
		MonthIndex: 0,
		Balances:   map[domain.AssetClass]float64{},
		// month 0 keeps the run's start date as-is; only projected
		// months are normalized to month end
		Date: startDate,
	}
	for _, class := range domain.AssetClasses() {
		balance := float64(params.Classes[class].InitialBalance)
		first.Balances[class] = balance
		first.TotalAssets += balance
	}
	snapshots = append(snapshots, first)

	var monthlyTotal float64
	for _, class := range domain.AssetClasses() {
		monthlyTotal += float64(params.Classes[class].MonthlyContribution)
	}

	for i := 1; i <= params.HorizonMonths; i++ {
		prev := snapshots[i-1]
		snapshot := domain.MonthlySnapshot{
			MonthIndex:              i,
			Balances:                map[domain.AssetClass]float64{},
			CumulativeContributions: prev.CumulativeContributions + monthlyTotal,
			Date:                    util.AddMonthsEndOfMonth(startDate, i),
		}
		for _, class := range domain.AssetClasses() {
			cp := params.Classes[class]
			balance := prev.Balances[class]*(1+cp.AnnualReturnRate/12) + float64(cp.MonthlyContribution)
			snapshot.Balances[class] = balance
			snapshot.TotalAssets += balance
		}
		snapshot.InvestmentGain = snapshot.TotalAssets - snapshot.CumulativeContributions - float64(params.TotalInitialBalance)
		snapshots = append(snapshots, snapshot)
	}

	return snapshots, nil
}
