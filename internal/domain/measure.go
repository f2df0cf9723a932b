package domain

import "github.com/ougirez/ecotrack/internal/pkg/constants"

// MeasureType says how the user expressed a disposal quantity: as a weight
// in some unit, or as a count of items.
type MeasureType string

const (
	MeasureWeight MeasureType = "weight"
	MeasureUnit   MeasureType = "unit"
)

// WeightUnit is the unit of a weight-mode measurement.
type WeightUnit string

const (
	UnitKilogram WeightUnit = "kg"
	UnitPound    WeightUnit = "lb"
	UnitQuintal  WeightUnit = "qq"
)

const (
	poundInKg   = 0.45359237
	quintalInKg = 45.359237
)

// Measurement is the transient user input for one disposal. It is consumed
// once by ConvertToKilograms and never persisted.
type Measurement struct {
	Type      MeasureType
	Magnitude float64
	Unit      WeightUnit
}

// ConvertToKilograms normalizes a measurement into the canonical stored
// weight in kilograms. Unit-count measurements need the waste's average item
// weight; a waste without one is a caller error, not a fault.
//
// Magnitude is expected to be positive; the validation layer enforces that.
// A zero magnitude simply converts to zero.
func ConvertToKilograms(m Measurement, waste *Waste) (float64, error) {
	switch m.Type {
	case MeasureWeight:
		switch m.Unit {
		case UnitKilogram:
			return m.Magnitude, nil
		case UnitPound:
			return m.Magnitude * poundInKg, nil
		case UnitQuintal:
			return m.Magnitude * quintalInKg, nil
		default:
			return 0, constants.ErrInvalidUnit
		}
	case MeasureUnit:
		if waste == nil || waste.AverageWeight == nil || *waste.AverageWeight <= 0 {
			return 0, constants.ErrMissingAverageWeight
		}
		return m.Magnitude * *waste.AverageWeight, nil
	default:
		return 0, constants.ErrInvalidMeasureType
	}
}
