package domain

import (
	"fmt"
	"math"
	"time"
)

type AssetClass string

const (
	AssetClassStock   AssetClass = "stock"
	AssetClassBond    AssetClass = "bond"
	AssetClassSavings AssetClass = "savings"
)

// AssetClasses returns the classes in their stable display order.
func AssetClasses() []AssetClass {
	return []AssetClass{AssetClassStock, AssetClassBond, AssetClassSavings}
}

type AssetClassParameters struct {
	// yen per month, added at the end of each simulated month
	MonthlyContribution int64 `json:"monthlyContribution"`
	// yen held at month 0
	InitialBalance int64 `json:"initialBalance"`
	// simple annual rate, e.g. 0.05. applied monthly as rate/12
	AnnualReturnRate float64 `json:"annualReturnRate"`
	// the user's real holdings today, only used for progress comparison
	CurrentBalance int64 `json:"currentBalance"`
}

// SimulationParameters is the fully normalized input to the projection
// engine. Construct it through NormalizeInputs; the engine assumes the
// range checks already ran.
type SimulationParameters struct {
	Years         int                                 `json:"years"`
	HorizonMonths int                                 `json:"horizonMonths"`
	Classes       map[AssetClass]AssetClassParameters `json:"classes"`

	TotalInitialBalance int64 `json:"totalInitialBalance"`
	TotalActualCurrent  int64 `json:"totalActualCurrent"`
}

func (p SimulationParameters) Validate() error {
	if p.Years < MinYears || p.Years > MaxYears {
		return InvalidRangeError{Field: "years", Value: float64(p.Years), Min: MinYears, Max: MaxYears}
	}
	if p.HorizonMonths != p.Years*12 {
		return InvalidRangeError{Field: "horizonMonths", Value: float64(p.HorizonMonths), Min: float64(p.Years * 12), Max: float64(p.Years * 12)}
	}
	for _, class := range AssetClasses() {
		cp := p.Classes[class]
		if cp.MonthlyContribution < 0 {
			return InvalidRangeError{Field: fmt.Sprintf("%s.monthlyContribution", class), Value: float64(cp.MonthlyContribution), Min: 0, Max: math.Inf(1)}
		}
		if cp.InitialBalance < 0 {
			return InvalidRangeError{Field: fmt.Sprintf("%s.initialBalance", class), Value: float64(cp.InitialBalance), Min: 0, Max: math.Inf(1)}
		}
		if cp.CurrentBalance < 0 {
			return InvalidRangeError{Field: fmt.Sprintf("%s.currentBalance", class), Value: float64(cp.CurrentBalance), Min: 0, Max: math.Inf(1)}
		}
	}
	return nil
}

// MonthlySnapshot is the complete simulated state at one month index.
type MonthlySnapshot struct {
	MonthIndex int                    `json:"monthIndex"`
	Balances   map[AssetClass]float64 `json:"balances"`
	// sum of Balances
	TotalAssets float64 `json:"totalAssets"`
	// contributions paid in through this month; excludes initial balances
	CumulativeContributions float64 `json:"cumulativeContributions"`
	// TotalAssets - CumulativeContributions - total initial balance
	InvestmentGain float64 `json:"investmentGain"`
	// month-end date for projected months; the run's start date for month 0
	Date time.Time `json:"date"`
}

func (s MonthlySnapshot) DeepCopy() MonthlySnapshot {
	out := s
	out.Balances = make(map[AssetClass]float64, len(s.Balances))
	for class, balance := range s.Balances {
		out.Balances[class] = balance
	}
	return out
}

// YearlyRollupEntry is a monthly snapshot re-indexed by elapsed years.
// Entry k carries the snapshot at month index 12k.
type YearlyRollupEntry struct {
	ElapsedYears int `json:"elapsedYears"`
	MonthlySnapshot
}

// ProgressMetrics compares the user's real current holdings against the
// simulated trajectory.
type ProgressMetrics struct {
	// first month index where simulated total >= actual current total,
	// or the final index if never reached
	MatchedMonthIndex int     `json:"matchedMonthIndex"`
	MatchedYears      float64 `json:"matchedYears"`
	// MatchedYears as a percentage of the full horizon
	HorizonPercent float64 `json:"horizonPercent"`
	// actual current total / final simulated total; 0 when the final total is 0
	ProgressRatio float64 `json:"progressRatio"`
	// per-class share of the actual current holdings, in percent
	ActualDistribution map[AssetClass]float64 `json:"actualDistribution"`
	// per-class share of the final simulated balances, in percent
	FinalDistribution map[AssetClass]float64 `json:"finalDistribution"`
}
