package internal

import (
	"assetplanner/internal/domain"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManToYen(t *testing.T) {
	t.Run("whole man", func(t *testing.T) {
		require.Equal(t, int64(30000), ManToYen(3.0))
	})

	t.Run("fractional man keeps full precision", func(t *testing.T) {
		require.Equal(t, int64(30500), ManToYen(3.05))
	})

	t.Run("sub-yen fraction truncates toward zero", func(t *testing.T) {
		// 1.00009 man = 10000.9 yen
		require.Equal(t, int64(10000), ManToYen(1.00009))
	})

	t.Run("zero", func(t *testing.T) {
		require.Equal(t, int64(0), ManToYen(0))
	})
}

func TestNormalizeInputs(t *testing.T) {
	t.Run("converts units and sums totals", func(t *testing.T) {
		params, err := NormalizeInputs(RawInputs{
			Years:                10,
			MonthlyStockMan:      3.0,
			MonthlyBondMan:       1.0,
			MonthlySavingsMan:    1.0,
			StockReturnPercent:   5.0,
			BondReturnPercent:    1.0,
			SavingsReturnPercent: 0.1,
			InitialStockMan:      100,
			InitialBondMan:       50,
			InitialSavingsMan:    25,
			CurrentStockMan:      10,
			CurrentBondMan:       5,
			CurrentSavingsMan:    5,
		})
		require.NoError(t, err)

		require.Equal(t, 10, params.Years)
		require.Equal(t, 120, params.HorizonMonths)

		stock := params.Classes[domain.AssetClassStock]
		require.Equal(t, int64(30000), stock.MonthlyContribution)
		require.Equal(t, int64(1000000), stock.InitialBalance)
		require.InDelta(t, 0.05, stock.AnnualReturnRate, 1e-12)

		savings := params.Classes[domain.AssetClassSavings]
		require.InDelta(t, 0.001, savings.AnnualReturnRate, 1e-12)

		require.Equal(t, int64(1750000), params.TotalInitialBalance)
		require.Equal(t, int64(200000), params.TotalActualCurrent)
	})

	t.Run("rejects years below range", func(t *testing.T) {
		_, err := NormalizeInputs(RawInputs{Years: 0})
		var rangeErr domain.InvalidRangeError
		require.True(t, errors.As(err, &rangeErr))
		require.Equal(t, "years", rangeErr.Field)
	})

	t.Run("rejects years above range", func(t *testing.T) {
		_, err := NormalizeInputs(RawInputs{Years: 51})
		var rangeErr domain.InvalidRangeError
		require.True(t, errors.As(err, &rangeErr))
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := NormalizeInputs(RawInputs{
			Years:          10,
			InitialBondMan: -1,
		})
		var rangeErr domain.InvalidRangeError
		require.True(t, errors.As(err, &rangeErr))
		require.Equal(t, "initial_bond_man", rangeErr.Field)
	})

	t.Run("negative return rates are allowed", func(t *testing.T) {
		params, err := NormalizeInputs(RawInputs{
			Years:              5,
			StockReturnPercent: -5.0,
		})
		require.NoError(t, err)
		require.InDelta(t, -0.05, params.Classes[domain.AssetClassStock].AnnualReturnRate, 1e-12)
	})
}
