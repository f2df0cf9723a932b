package domain

import "time"

// Disposal is one logged waste-disposal event. Weight is always the
// canonical weight in kilograms; no other unit reaches storage.
type Disposal struct {
	ID         int64     `db:"id" json:"id"`
	UserID     int64     `db:"user_id" json:"user_id"`
	WasteID    int64     `db:"waste_id" json:"waste_id"`
	Name       string    `db:"name" json:"name"`
	Weight     float64   `db:"weight" json:"weight"`
	Datetime   time.Time `db:"datetime" json:"datetime"`
	LocationID int64     `db:"location_id" json:"location_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// DisposalFact is a disposal row joined with the waste, waste-type and
// location attributes the analytics reports aggregate over.
type DisposalFact struct {
	UserID            int64     `db:"user_id"`
	Weight            float64   `db:"weight"`
	Datetime          time.Time `db:"datetime"`
	IsRecyclable      bool      `db:"is_recyclable"`
	WasteTypeName     string    `db:"waste_type_name"`
	WaterSavingsIndex float64   `db:"water_savings_index"`
	CO2EmissionIndex  float64   `db:"co2_emission_index"`
	LocationName      string    `db:"location_name"`
}
