package domain

import "time"

// WasteType is static reference data: a category of waste together with the
// per-kilogram environmental indices used by the analytics reports.
type WasteType struct {
	ID                int64     `db:"id" json:"id"`
	TypeName          string    `db:"type_name" json:"type_name"`
	WaterSavingsIndex float64   `db:"water_savings_index" json:"water_savings_index"`
	CO2EmissionIndex  float64   `db:"co2_emission_index" json:"co2_emission_index"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// Waste is a concrete disposable kind within a WasteType. AverageWeight is
// the weight of one item in kilograms and may be absent for kinds that are
// only ever logged by weight.
type Waste struct {
	ID            int64     `db:"id" json:"id"`
	WasteTypeID   int64     `db:"waste_type_id" json:"waste_type_id"`
	IsRecyclable  bool      `db:"is_recyclable" json:"is_recyclable"`
	AverageWeight *float64  `db:"average_weight" json:"average_weight,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
