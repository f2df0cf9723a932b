package domain

import "time"

// Area is an administrative zone a location belongs to.
type Area struct {
	ID        int64     `db:"id" json:"id"`
	City      string    `db:"city" json:"city"`
	Area      int       `db:"area" json:"area"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Location is a user-defined disposal place inside an area.
type Location struct {
	ID                 int64     `db:"id" json:"id"`
	UserID             int64     `db:"user_id" json:"user_id"`
	Name               string    `db:"name" json:"name"`
	AreaID             int64     `db:"area_id" json:"area_id"`
	HasWasteCollection string    `db:"has_waste_collection" json:"has_waste_collection"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}

// valid values for Location.HasWasteCollection
const (
	WasteCollectionYes     = "Yes"
	WasteCollectionNo      = "No"
	WasteCollectionNotSure = "Not sure"
)
