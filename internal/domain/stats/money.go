package stats

import "math"

// Amounts are accumulated in integer cents so that sums of 2-decimal
// values are exact.
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func fromCents(c int64) float64 {
	return float64(c) / 100
}

// AverageTicket is 0 when there are no cuts.
func AverageTicket(totalCents int64, count int) float64 {
	if count <= 0 {
		return 0
	}
	return math.Round(float64(totalCents)/float64(count)) / 100
}
