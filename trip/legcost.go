package trip

import (
	"math"

	"route-evaluator/entities"
	"route-evaluator/geo"
)

// LegCost prices travel from a to b. Duration is the distance over the
// average speed rounded up to whole hours, so any movement bills at least one
// hour and a zero-distance leg costs nothing. NaN and infinite distances carry
// through to Cost; DurationHours stays 0 when the hours do not fit an int.
func LegCost(a, b entities.Coordinate, p Params) entities.LegResult {
	miles := geo.Distance(a, b)
	hours := math.Ceil(miles / p.AverageSpeedMPH)

	fuelCost := hours * p.FuelPricePerGallon * p.GallonsPerHour
	laborCost := hours * p.HourlyLaborRate

	leg := entities.LegResult{
		DistanceMiles: miles,
		Cost:          fuelCost + laborCost,
	}
	if hours >= math.MinInt64 && hours < math.MaxInt64 {
		leg.DurationHours = int(hours)
	}
	return leg
}

func namedLeg(from, to string, a, b entities.Coordinate, p Params) entities.LegResult {
	leg := LegCost(a, b, p)
	leg.From = from
	leg.To = to
	return leg
}
