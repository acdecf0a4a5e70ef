package internal

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var yenPrinter = message.NewPrinter(language.Japanese)

// FormatJapaneseYen renders an amount in compact Japanese units:
// 億円 above 100,000,000, 万円 above 10,000, plain grouped 円 below.
func FormatJapaneseYen(value float64) string {
	switch {
	case value >= 100_000_000:
		return fmt.Sprintf("%.1f億円", value/100_000_000)
	case value >= 10_000:
		return fmt.Sprintf("%.1f万円", value/10_000)
	default:
		return yenPrinter.Sprintf("%d円", int64(math.Round(value)))
	}
}
