package trip

import (
	"route-evaluator/entities"
	"route-evaluator/geo"
)

// DistanceFromHome returns the straight-line miles between the home base and id.
func DistanceFromHome(table entities.LocationTable, p Params, id string) (float64, error) {
	home, err := resolve(table, p.HomeBase, "home base")
	if err != nil {
		return 0, err
	}
	c, err := resolve(table, id, "location")
	if err != nil {
		return 0, err
	}
	return geo.Distance(c, home), nil
}

// WithinRadius reports whether id lies no farther than maxMiles from the home base.
func WithinRadius(table entities.LocationTable, p Params, id string, maxMiles float64) (bool, error) {
	d, err := DistanceFromHome(table, p, id)
	if err != nil {
		return false, err
	}
	return d <= maxMiles, nil
}

// CanReturnHome reports whether the drive from id to the home base fits in
// hoursLeft. Unlike LegCost the hours are not rounded up.
func CanReturnHome(table entities.LocationTable, p Params, id string, hoursLeft float64) (bool, error) {
	d, err := DistanceFromHome(table, p, id)
	if err != nil {
		return false, err
	}
	return d/p.AverageSpeedMPH <= hoursLeft, nil
}
