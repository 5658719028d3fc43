package dto

import "time"

type VehicleProfileResponse struct {
	CarrierID   string `json:"carrier_id"`
	UnitNumber  string `json:"unit_number"`
	VehicleType string `json:"vehicle_type"`
	Make        string `json:"make,omitempty"`
	Year        int    `json:"year,omitempty"`
	VIN         string `json:"vin,omitempty"`
	Plate       string `json:"plate,omitempty"`
	PlateState  string `json:"plate_state,omitempty"`
	AxleConfig  string `json:"axle_config,omitempty"`

	HeightFt       float64 `json:"height_ft"`
	WidthFt        float64 `json:"width_ft"`
	LengthFt       float64 `json:"length_ft"`
	EmptyWeightLbs int     `json:"empty_weight_lbs"`
	MaxPayloadLbs  int     `json:"max_payload_lbs,omitempty"`

	InsuranceExpiry    string `json:"insurance_expiry,omitempty"`
	RegistrationExpiry string `json:"registration_expiry,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	LastUsed    *time.Time `json:"last_used,omitempty"`
	PermitCount int        `json:"permit_count"`
}

type ListVehiclesResponse struct {
	CarrierID string                   `json:"carrier_id"`
	Vehicles  []VehicleProfileResponse `json:"vehicles"`
}
