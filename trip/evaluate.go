package trip

import "route-evaluator/entities"

// Evaluate prices the job home base -> origin -> destination -> home base
// against going home straight from origin. Every identifier is resolved
// before any arithmetic; a missing one yields *LocationNotFoundError and a
// zero result. Values keep full float precision.
func Evaluate(table entities.LocationTable, p Params, origin, destination string, payout float64) (entities.EvaluationResult, error) {
	home, err := resolve(table, p.HomeBase, "home base")
	if err != nil {
		return entities.EvaluationResult{}, err
	}
	src, err := resolve(table, origin, "pickup")
	if err != nil {
		return entities.EvaluationResult{}, err
	}
	dst, err := resolve(table, destination, "dropoff")
	if err != nil {
		return entities.EvaluationResult{}, err
	}

	// GoHome runs origin -> home; Return starts at destination.
	legs := entities.Legs{
		Deadhead: namedLeg(p.HomeBase, origin, home, src, p),
		Paid:     namedLeg(origin, destination, src, dst, p),
		Return:   namedLeg(destination, p.HomeBase, dst, home, p),
		GoHome:   namedLeg(origin, p.HomeBase, src, home, p),
	}

	total := legs.Deadhead.Cost + legs.Paid.Cost + legs.Return.Cost
	netGain := payout - total

	return entities.EvaluationResult{
		Origin:               origin,
		Destination:          destination,
		HomeBase:             p.HomeBase,
		Payout:               payout,
		TotalCostToComplete:  total,
		CostToReturnDirectly: legs.Deadhead.Cost + legs.GoHome.Cost,
		NetGain:              netGain,
		Accepted:             netGain >= 0,
		Legs:                 legs,
	}, nil
}

func resolve(table entities.LocationTable, id, role string) (entities.Coordinate, error) {
	c, ok := table.Lookup(id)
	if !ok {
		return entities.Coordinate{}, &LocationNotFoundError{ID: id, Role: role}
	}
	return c, nil
}
