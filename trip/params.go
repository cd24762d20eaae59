// Package trip prices a delivery job as three legs that start and end at a
// home base and decides whether the payout covers them.
package trip

import "errors"

const (
	DefaultHomeBase           = "44107"
	DefaultFuelPricePerGallon = 2.79
	DefaultGallonsPerHour     = 1.0
	DefaultAverageSpeedMPH    = 25.0
	DefaultHourlyLaborRate    = 7.0
	DefaultRadiusMiles        = 150.0
)

// Params carries the home base and the rates of the time-based cost model.
type Params struct {
	HomeBase           string
	FuelPricePerGallon float64
	GallonsPerHour     float64
	AverageSpeedMPH    float64
	HourlyLaborRate    float64
}

// DefaultParams returns urban courier defaults anchored at ZIP 44107.
func DefaultParams() Params {
	return Params{
		HomeBase:           DefaultHomeBase,
		FuelPricePerGallon: DefaultFuelPricePerGallon,
		GallonsPerHour:     DefaultGallonsPerHour,
		AverageSpeedMPH:    DefaultAverageSpeedMPH,
		HourlyLaborRate:    DefaultHourlyLaborRate,
	}
}

// Validate rejects parameter sets the cost model cannot use.
func (p Params) Validate() error {
	if p.HomeBase == "" {
		return errors.New("trip params: home base is required")
	}
	if !(p.AverageSpeedMPH > 0) {
		return errors.New("trip params: average speed must be positive")
	}
	if p.FuelPricePerGallon < 0 || p.GallonsPerHour < 0 || p.HourlyLaborRate < 0 {
		return errors.New("trip params: rates must not be negative")
	}
	return nil
}

// HourlyCost is the combined fuel and labor cost of one hour on the road.
func (p Params) HourlyCost() float64 {
	return p.FuelPricePerGallon*p.GallonsPerHour + p.HourlyLaborRate
}
