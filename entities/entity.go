package entities

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// LocationTable maps a location identifier (a ZIP code) to its coordinate.
// It is filled once at startup and only read afterwards.
type LocationTable map[string]Coordinate

func (t LocationTable) Lookup(id string) (Coordinate, bool) {
	c, ok := t[id]
	return c, ok
}

type LegResult struct {
	From          string  `json:"from"`
	To            string  `json:"to"`
	DistanceMiles float64 `json:"distance_miles"`
	DurationHours int     `json:"duration_hours"`
	Cost          float64 `json:"cost"`
}

type Legs struct {
	Deadhead LegResult `json:"deadhead"`
	Paid     LegResult `json:"paid"`
	Return   LegResult `json:"return"`
	GoHome   LegResult `json:"go_home"`
}

type EvaluationResult struct {
	Origin               string  `json:"pickup"`
	Destination          string  `json:"dropoff"`
	HomeBase             string  `json:"home_base"`
	Payout               float64 `json:"payout"`
	TotalCostToComplete  float64 `json:"cost_to_complete"`
	CostToReturnDirectly float64 `json:"cost_to_go_home"`
	NetGain              float64 `json:"net_gain"`
	Accepted             bool    `json:"accepted"`
	Legs                 Legs    `json:"legs"`
}

type EvaluateInput struct {
	Pickup  string  `json:"pickup" binding:"required"`
	Dropoff string  `json:"dropoff" binding:"required"`
	Payout  float64 `json:"payout" binding:"min=0"`
}

type EvaluateOutput struct {
	RequestID string           `json:"request_id"`
	Verdict   string           `json:"verdict"`
	Summary   string           `json:"summary"`
	Result    EvaluationResult `json:"result"`
}

type ReachOutput struct {
	ID               string   `json:"id"`
	HomeBase         string   `json:"home_base"`
	DistanceFromHome float64  `json:"distance_from_home"`
	RadiusMiles      float64  `json:"radius_miles"`
	WithinRadius     bool     `json:"within_radius"`
	HoursLeft        *float64 `json:"hours_left,omitempty"`
	CanReturnHome    *bool    `json:"can_return_home,omitempty"`
}
