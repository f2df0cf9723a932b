package dto

import (
	"time"

	"github.com/ougirez/ecotrack/internal/domain"
)

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ServiceTokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name      string    `json:"name" validate:"required"`
	Lastname  string    `json:"lastname" validate:"required"`
	Birthdate time.Time `json:"birthdate" validate:"required"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type UploadProfilePhotoRequest struct {
	ProfilePhoto string `json:"profile_photo" validate:"required"`
}

type AreaRequest struct {
	City string `json:"city" validate:"required"`
	Area int    `json:"area" validate:"required"`
}

type LocationRequest struct {
	UserID             int64  `json:"user_id" validate:"required"`
	Name               string `json:"name" validate:"required"`
	AreaID             int64  `json:"area_id" validate:"required"`
	HasWasteCollection string `json:"has_waste_collection" validate:"omitempty,oneof='Yes' 'No' 'Not sure'"`
}

type WasteTypeRequest struct {
	TypeName          string  `json:"type_name" validate:"required"`
	WaterSavingsIndex float64 `json:"water_savings_index" validate:"gte=0"`
	CO2EmissionIndex  float64 `json:"co2_emission_index" validate:"gte=0"`
}

type WasteRequest struct {
	WasteTypeID   int64    `json:"waste_type_id" validate:"required"`
	IsRecyclable  *bool    `json:"is_recyclable" validate:"required"`
	AverageWeight *float64 `json:"average_weight" validate:"omitempty,gt=0"`
}

// RegisterDisposalRequest carries the raw user measurement. MeasureUnit is
// the magnitude (a weight value or an item count, per MeasureType);
// WeightUnit only applies in weight mode. Field names follow the mobile
// client's payload.
type RegisterDisposalRequest struct {
	UserID      int64              `json:"user_id" validate:"required"`
	WasteID     int64              `json:"waste_id" validate:"required"`
	Name        string             `json:"name" validate:"required"`
	MeasureType domain.MeasureType `json:"measure_type" validate:"required"`
	MeasureUnit float64            `json:"measure_unit" validate:"required,gt=0"`
	WeightUnit  domain.WeightUnit  `json:"weight_unit" validate:"omitempty"`
	Datetime    time.Time          `json:"datetime" validate:"required"`
	LocationID  int64              `json:"location_id" validate:"required"`
}

// UpdateDisposalRequest re-runs conversion over the stored record.
type UpdateDisposalRequest struct {
	MeasureType domain.MeasureType `json:"measure_type" validate:"required"`
	MeasureUnit float64            `json:"measure_unit" validate:"required,gt=0"`
	WeightUnit  domain.WeightUnit  `json:"weight_unit" validate:"omitempty"`
}

// Measurement builds the transient conversion input from a request.
func (r *RegisterDisposalRequest) Measurement() domain.Measurement {
	return domain.Measurement{Type: r.MeasureType, Magnitude: r.MeasureUnit, Unit: r.WeightUnit}
}

func (r *UpdateDisposalRequest) Measurement() domain.Measurement {
	return domain.Measurement{Type: r.MeasureType, Magnitude: r.MeasureUnit, Unit: r.WeightUnit}
}
