package internal

import "assetplanner/internal/domain"

// YearlyRollup selects every 12th snapshot (months 0, 12, 24, ...) and
// re-indexes the result by elapsed year count.
func YearlyRollup(snapshots []domain.MonthlySnapshot) []domain.YearlyRollupEntry {
	entries := []domain.YearlyRollupEntry{}
	for i := 0; i < len(snapshots); i += 12 {
		entries = append(entries, domain.YearlyRollupEntry{
			ElapsedYears:    i / 12,
			MonthlySnapshot: snapshots[i].DeepCopy(),
		})
	}
	return entries
}
