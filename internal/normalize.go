package internal

import (
	"assetplanner/internal/domain"
	"math"

	"github.com/shopspring/decimal"
)

// RawInputs carries the user-facing values exactly as entered: amounts
// in man (10,000 yen multiples) and return rates in percent.
type RawInputs struct {
	Years int

	MonthlyStockMan   float64
	MonthlyBondMan    float64
	MonthlySavingsMan float64

	StockReturnPercent   float64
	BondReturnPercent    float64
	SavingsReturnPercent float64

	InitialStockMan   float64
	InitialBondMan    float64
	InitialSavingsMan float64

	CurrentStockMan   float64
	CurrentBondMan    float64
	CurrentSavingsMan float64
}

// ManToYen converts a man-denominated amount to yen, truncating toward
// zero. The multiply runs through decimal so that values like 3.05 man
// land on exactly 30500 yen instead of losing a yen to float error.
func ManToYen(man float64) int64 {
	return decimal.NewFromFloat(man).Mul(decimal.NewFromInt(10000)).IntPart()
}

// NormalizeInputs converts raw man/percent inputs into a fully
// normalized parameter record. Pure; fails fast with
// domain.InvalidRangeError and produces nothing on invalid input.
func NormalizeInputs(in RawInputs) (domain.SimulationParameters, error) {
	if in.Years < domain.MinYears || in.Years > domain.MaxYears {
		return domain.SimulationParameters{}, domain.InvalidRangeError{
			Field: "years",
			Value: float64(in.Years),
			Min:   domain.MinYears,
			Max:   domain.MaxYears,
		}
	}

	manFields := []struct {
		name  string
		value float64
	}{
		{"monthly_stock_man", in.MonthlyStockMan},
		{"monthly_bond_man", in.MonthlyBondMan},
		{"monthly_savings_man", in.MonthlySavingsMan},
		{"initial_stock_man", in.InitialStockMan},
		{"initial_bond_man", in.InitialBondMan},
		{"initial_savings_man", in.InitialSavingsMan},
		{"current_stock_man", in.CurrentStockMan},
		{"current_bond_man", in.CurrentBondMan},
		{"current_savings_man", in.CurrentSavingsMan},
	}
	for _, f := range manFields {
		if f.value < 0 {
			return domain.SimulationParameters{}, domain.InvalidRangeError{
				Field: f.name,
				Value: f.value,
				Min:   0,
				Max:   math.Inf(1),
			}
		}
	}

	params := domain.SimulationParameters{
		Years:         in.Years,
		HorizonMonths: in.Years * 12,
		Classes: map[domain.AssetClass]domain.AssetClassParameters{
			domain.AssetClassStock: {
				MonthlyContribution: ManToYen(in.MonthlyStockMan),
				InitialBalance:      ManToYen(in.InitialStockMan),
				AnnualReturnRate:    in.StockReturnPercent / 100,
				CurrentBalance:      ManToYen(in.CurrentStockMan),
			},
			domain.AssetClassBond: {
				MonthlyContribution: ManToYen(in.MonthlyBondMan),
				InitialBalance:      ManToYen(in.InitialBondMan),
				AnnualReturnRate:    in.BondReturnPercent / 100,
				CurrentBalance:      ManToYen(in.CurrentBondMan),
			},
			domain.AssetClassSavings: {
				MonthlyContribution: ManToYen(in.MonthlySavingsMan),
				InitialBalance:      ManToYen(in.InitialSavingsMan),
				AnnualReturnRate:    in.SavingsReturnPercent / 100,
				CurrentBalance:      ManToYen(in.CurrentSavingsMan),
			},
		},
	}

	for _, class := range domain.AssetClasses() {
		params.TotalInitialBalance += params.Classes[class].InitialBalance
		params.TotalActualCurrent += params.Classes[class].CurrentBalance
	}

	return params, nil
}
