package fantasy

import "github.com/shopspring/decimal"

// DriverOffer is the price of a driver for one race.
type DriverOffer struct {
	RaceID        RaceID
	DriverID      DriverID
	ConstructorID ConstructorID
	Price         decimal.Decimal
}

type PriceIndex map[DriverID]decimal.Decimal

func IndexOffers(offers []DriverOffer) PriceIndex {
	out := make(PriceIndex, len(offers))
	for _, offer := range offers {
		out[offer.DriverID] = offer.Price
	}
	return out
}

// LineupPoints sums the points of the selected drivers. Missing drivers count as zero.
func LineupPoints(driverIDs []DriverID, points DriverPoints) decimal.Decimal {
	total := decimal.Zero
	for _, driverID := range driverIDs {
		total = total.Add(points.Of(driverID))
	}
	return total
}

type LineupScore struct {
	Points   decimal.Decimal
	Cost     decimal.Decimal
	Unpriced []DriverID
}

// ScoreLineup computes points and cost of a stored lineup. A driver without an
// offer row is inconsistent data: it is reported in Unpriced and contributes
// nothing to either total.
func ScoreLineup(driverIDs []DriverID, points DriverPoints, prices PriceIndex) LineupScore {
	out := LineupScore{Points: decimal.Zero, Cost: decimal.Zero}
	for _, driverID := range driverIDs {
		price, ok := prices[driverID]
		if !ok {
			out.Unpriced = append(out.Unpriced, driverID)
			continue
		}
		out.Points = out.Points.Add(points.Of(driverID))
		out.Cost = out.Cost.Add(price)
	}
	return out
}
