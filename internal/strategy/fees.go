package strategy

import "math"

// platformFees is the fixed sale-commission schedule per marketplace.
var platformFees = map[Platform]float64{
	PlatformDMarket: 0.05,
	PlatformWaxpeer: 0.06,
	PlatformSteam:   0.15,
}

// defaultFeeRate is charged when the sell platform is not in the schedule.
// Deliberately pessimistic so an unknown marketplace never inflates ROI.
const defaultFeeRate = 0.10

// PlatformFeeRate returns the sale commission rate for a marketplace.
func PlatformFeeRate(p Platform) float64 {
	if rate, ok := platformFees[p]; ok {
		return rate
	}
	return defaultFeeRate
}

// saleFee returns the commission, in minor units, charged on a sale.
func saleFee(sellPrice int64, p Platform) int64 {
	return int64(math.Round(float64(sellPrice) * PlatformFeeRate(p)))
}
