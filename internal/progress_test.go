package internal

import (
	"assetplanner/internal/domain"
	"assetplanner/internal/util"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeProgress(t *testing.T) {
	startDate := util.NewDate(2026, 8, 31)

	t.Run("zero actual total matches month 0 with zeroed percentages", func(t *testing.T) {
		params := mustNormalize(t, RawInputs{
			Years:           5,
			MonthlyStockMan: 3.0,
		})
		snapshots, err := Project(params, startDate)
		require.NoError(t, err)

		progress, err := ComputeProgress(params, snapshots)
		require.NoError(t, err)

		require.Equal(t, 0, progress.MatchedMonthIndex)
		require.Equal(t, float64(0), progress.MatchedYears)
		require.Equal(t, float64(0), progress.ProgressRatio)
		for _, class := range domain.AssetClasses() {
			require.Equal(t, float64(0), progress.ActualDistribution[class])
		}
	})

	t.Run("finds the first month at or above the actual total", func(t *testing.T) {
		params := mustNormalize(t, RawInputs{
			Years:           5,
			MonthlyStockMan: 1.0,
			CurrentStockMan: 2.5, // 25,000 yen, reached in month 3
		})
		snapshots, err := Project(params, startDate)
		require.NoError(t, err)

		progress, err := ComputeProgress(params, snapshots)
		require.NoError(t, err)

		require.Equal(t, 3, progress.MatchedMonthIndex)
		require.InDelta(t, 0.25, progress.MatchedYears, 1e-9)
		require.InDelta(t, 5.0, progress.HorizonPercent, 1e-9)
	})

	t.Run("falls back to the final month when never reached", func(t *testing.T) {
		params := mustNormalize(t, RawInputs{
			Years:           1,
			MonthlyStockMan: 1.0,
			CurrentStockMan: 1000, // far beyond a year of contributions
		})
		snapshots, err := Project(params, startDate)
		require.NoError(t, err)

		progress, err := ComputeProgress(params, snapshots)
		require.NoError(t, err)

		require.Equal(t, 12, progress.MatchedMonthIndex)
		require.Greater(t, progress.ProgressRatio, 1.0)
	})

	t.Run("computes distribution percentages", func(t *testing.T) {
		params := mustNormalize(t, RawInputs{
			Years:             5,
			InitialStockMan:   60,
			InitialBondMan:    30,
			InitialSavingsMan: 10,
			CurrentStockMan:   50,
			CurrentBondMan:    25,
			CurrentSavingsMan: 25,
		})
		snapshots, err := Project(params, startDate)
		require.NoError(t, err)

		progress, err := ComputeProgress(params, snapshots)
		require.NoError(t, err)

		require.InDelta(t, 50, progress.ActualDistribution[domain.AssetClassStock], 1e-9)
		require.InDelta(t, 25, progress.ActualDistribution[domain.AssetClassBond], 1e-9)
		require.InDelta(t, 25, progress.ActualDistribution[domain.AssetClassSavings], 1e-9)

		// zero rates, zero contributions: final distribution mirrors
		// the initial split
		require.InDelta(t, 60, progress.FinalDistribution[domain.AssetClassStock], 1e-9)
		require.InDelta(t, 30, progress.FinalDistribution[domain.AssetClassBond], 1e-9)
		require.InDelta(t, 10, progress.FinalDistribution[domain.AssetClassSavings], 1e-9)
	})

	t.Run("all-zero simulation reports zero ratio instead of failing", func(t *testing.T) {
		params := mustNormalize(t, RawInputs{Years: 1, CurrentStockMan: 10})
		snapshots, err := Project(params, startDate)
		require.NoError(t, err)

		progress, err := ComputeProgress(params, snapshots)
		require.NoError(t, err)

		require.Equal(t, float64(0), progress.ProgressRatio)
		for _, class := range domain.AssetClasses() {
			require.Equal(t, float64(0), progress.FinalDistribution[class])
		}
		// nothing simulated ever reaches 100,000 yen
		require.Equal(t, 12, progress.MatchedMonthIndex)
	})

	t.Run("empty sequence errors", func(t *testing.T) {
		params := mustNormalize(t, RawInputs{Years: 1})
		_, err := ComputeProgress(params, nil)
		require.Error(t, err)
	})
}
