package domain

import "time"

// Physical envelope of an empty unit. EmptyWeightLbs excludes cargo.
type VehicleDimensions struct {
	HeightFt       float64
	WidthFt        float64
	LengthFt       float64
	EmptyWeightLbs int
}

// Carrier-owned equipment record used to auto-fill permit requests.
// The core consumes it read-only; how it is stored and looked up is a
// collaborator concern.
type VehicleProfile struct {
	CarrierID   string
	UnitNumber  string
	VehicleType string
	Make        string
	Year        int
	VIN         string
	Plate       string
	PlateState  string
	AxleConfig  string

	Dimensions    VehicleDimensions
	MaxPayloadLbs int

	InsuranceExpiry    string
	RegistrationExpiry string

	CreatedAt   time.Time
	LastUsed    *time.Time
	PermitCount int
}
