package export

import (
	"assetplanner/internal/domain"
	"fmt"
	"time"

	"github.com/gocarina/gocsv"
)

// utf8Bom keeps Excel happy with the Japanese headers below.
var utf8Bom = []byte{0xEF, 0xBB, 0xBF}

type snapshotRow struct {
	Stock                   float64 `csv:"株式"`
	Bond                    float64 `csv:"債券"`
	Savings                 float64 `csv:"預金"`
	TotalAssets             float64 `csv:"総資産"`
	CumulativeContributions float64 `csv:"積立合計"`
	InvestmentGain          float64 `csv:"運用益"`
	Date                    string  `csv:"日付"`
	YearMonth               string  `csv:"年月"`
}

// MonthlyCSV encodes the ledger one row per month, UTF-8 with a
// byte-order mark, ready for download.
func MonthlyCSV(snapshots []domain.MonthlySnapshot) ([]byte, error) {
	rows := make([]snapshotRow, 0, len(snapshots))
	for _, snapshot := range snapshots {
		rows = append(rows, snapshotRow{
			Stock:                   snapshot.Balances[domain.AssetClassStock],
			Bond:                    snapshot.Balances[domain.AssetClassBond],
			Savings:                 snapshot.Balances[domain.AssetClassSavings],
			TotalAssets:             snapshot.TotalAssets,
			CumulativeContributions: snapshot.CumulativeContributions,
			InvestmentGain:          snapshot.InvestmentGain,
			Date:                    snapshot.Date.Format("2006-01-02"),
			YearMonth:               FormatYearMonth(snapshot.Date),
		})
	}

	bytes, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal csv: %w", err)
	}

	return append(append([]byte{}, utf8Bom...), bytes...), nil
}

// FormatYearMonth renders a date the way the yearly summary shows it,
// e.g. 2026年08月.
func FormatYearMonth(t time.Time) string {
	return fmt.Sprintf("%04d年%02d月", t.Year(), int(t.Month()))
}

// DefaultFilename names a download after the day it was generated.
func DefaultFilename(t time.Time) string {
	return fmt.Sprintf("資産形成シミュレーション_%s.csv", t.Format("20060102"))
}
