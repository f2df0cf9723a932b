package domain

import (
	"testing"

	"github.com/ougirez/ecotrack/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestConvertToKilograms_Weight(t *testing.T) {
	tests := []struct {
		name      string
		magnitude float64
		unit      WeightUnit
		want      float64
	}{
		{"kilograms pass through", 10, UnitKilogram, 10},
		{"one pound", 1, UnitPound, 0.45359237},
		{"fifty pounds", 50, UnitPound, 22.6796185},
		{"one quintal", 1, UnitQuintal, 45.359237},
		{"two quintals", 2, UnitQuintal, 90.718474},
		{"zero magnitude", 0, UnitPound, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertToKilograms(Measurement{
				Type:      MeasureWeight,
				Magnitude: tt.magnitude,
				Unit:      tt.unit,
			}, nil)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestConvertToKilograms_WeightLinearity(t *testing.T) {
	one, err := ConvertToKilograms(Measurement{Type: MeasureWeight, Magnitude: 1, Unit: UnitPound}, nil)
	require.NoError(t, err)

	seven, err := ConvertToKilograms(Measurement{Type: MeasureWeight, Magnitude: 7, Unit: UnitPound}, nil)
	require.NoError(t, err)

	assert.InDelta(t, 7*one, seven, 1e-9)
}

func TestConvertToKilograms_UnitCount(t *testing.T) {
	waste := &Waste{AverageWeight: floatPtr(0.5)}

	got, err := ConvertToKilograms(Measurement{Type: MeasureUnit, Magnitude: 4}, waste)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-9)
}

func TestConvertToKilograms_UnitCountMissingAverageWeight(t *testing.T) {
	tests := []struct {
		name  string
		waste *Waste
	}{
		{"nil waste", nil},
		{"nil average weight", &Waste{}},
		{"zero average weight", &Waste{AverageWeight: floatPtr(0)}},
		{"negative average weight", &Waste{AverageWeight: floatPtr(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConvertToKilograms(Measurement{Type: MeasureUnit, Magnitude: 3}, tt.waste)
			assert.ErrorIs(t, err, constants.ErrMissingAverageWeight)
		})
	}
}

func TestConvertToKilograms_InvalidInputs(t *testing.T) {
	_, err := ConvertToKilograms(Measurement{Type: MeasureWeight, Magnitude: 1, Unit: "oz"}, nil)
	assert.ErrorIs(t, err, constants.ErrInvalidUnit)

	_, err = ConvertToKilograms(Measurement{Type: "volume", Magnitude: 1}, nil)
	assert.ErrorIs(t, err, constants.ErrInvalidMeasureType)
}
