package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Initialize the database schema.
// Placeholders and types are kept portable between SQLite and Postgres so the
// same statements serve both the server and the dbtool.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createVehicleProfilesQuery := `
	CREATE TABLE IF NOT EXISTS vehicle_profiles (
		carrier_id TEXT NOT NULL,
		unit_number TEXT NOT NULL,
		vehicle_type TEXT NOT NULL,
		make TEXT NOT NULL DEFAULT '',
		year INTEGER NOT NULL DEFAULT 0,
		vin TEXT NOT NULL DEFAULT '',
		plate TEXT NOT NULL DEFAULT '',
		plate_state TEXT NOT NULL DEFAULT '',
		axle_config TEXT NOT NULL DEFAULT '',
		height_ft REAL NOT NULL,
		width_ft REAL NOT NULL,
		length_ft REAL NOT NULL,
		empty_weight_lbs INTEGER NOT NULL,
		max_payload_lbs INTEGER NOT NULL DEFAULT 0,
		insurance_expiry TEXT NOT NULL DEFAULT '',
		registration_expiry TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		last_used TEXT,
		permit_count INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (carrier_id, unit_number)
	);
	`

	createDecisionsQuery := `
	CREATE TABLE IF NOT EXISTS decisions (
		record_id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		created_at TEXT NOT NULL,
		payload TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_decisions_kind_created
	ON decisions(kind, created_at);
	`

	statements := []string{
		createVehicleProfilesQuery,
		createDecisionsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type vehicleDimensionsSeed struct {
	HeightFt       float64 `json:"height_ft"`
	WidthFt        float64 `json:"width_ft"`
	LengthFt       float64 `json:"length_ft"`
	EmptyWeightLbs int     `json:"empty_weight_lbs"`
}

type VehicleSeed struct {
	CarrierID          string                `json:"carrier_id"`
	UnitNumber         string                `json:"unit_number"`
	VehicleType        string                `json:"vehicle_type"`
	Make               string                `json:"make"`
	Year               int                   `json:"year"`
	VIN                string                `json:"vin"`
	Plate              string                `json:"plate"`
	PlateState         string                `json:"plate_state"`
	AxleConfig         string                `json:"axle_config"`
	Dimensions         vehicleDimensionsSeed `json:"dimensions"`
	MaxPayloadLbs      int                   `json:"max_payload_lbs"`
	InsuranceExpiry    string                `json:"insurance_expiry"`
	RegistrationExpiry string                `json:"registration_expiry"`
}

// Populate the database with vehicle profiles from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed vehicles: read %q: %w", jsonPath, err)
	}

	var data []VehicleSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed vehicles: parse json: %w", err)
	}

	rows := make([]VehicleSeed, 0, len(data))
	for i, item := range data {
		carrier := strings.TrimSpace(item.CarrierID)
		unit := strings.TrimSpace(item.UnitNumber)
		if carrier == "" || unit == "" {
			return fmt.Errorf("seed vehicles: item at index %d: carrier_id and unit_number are required", i+1)
		}
		if item.Dimensions.EmptyWeightLbs <= 0 {
			return fmt.Errorf("seed vehicles: item at index %d: empty_weight_lbs must be positive", i+1)
		}

		item.CarrierID = carrier
		item.UnitNumber = unit
		rows = append(rows, item)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed vehicles: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO vehicle_profiles (
		carrier_id, unit_number, vehicle_type, make, year, vin,
		plate, plate_state, axle_config,
		height_ft, width_ft, length_ft, empty_weight_lbs, max_payload_lbs,
		insurance_expiry, registration_expiry, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	ON CONFLICT (carrier_id, unit_number) DO UPDATE
	SET vehicle_type = EXCLUDED.vehicle_type,
		make = EXCLUDED.make,
		year = EXCLUDED.year,
		vin = EXCLUDED.vin,
		plate = EXCLUDED.plate,
		plate_state = EXCLUDED.plate_state,
		axle_config = EXCLUDED.axle_config,
		height_ft = EXCLUDED.height_ft,
		width_ft = EXCLUDED.width_ft,
		length_ft = EXCLUDED.length_ft,
		empty_weight_lbs = EXCLUDED.empty_weight_lbs,
		max_payload_lbs = EXCLUDED.max_payload_lbs,
		insurance_expiry = EXCLUDED.insurance_expiry,
		registration_expiry = EXCLUDED.registration_expiry;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed vehicles: prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, v := range rows {
		_, err := stmt.Exec(
			v.CarrierID, v.UnitNumber, v.VehicleType, v.Make, v.Year, v.VIN,
			v.Plate, v.PlateState, v.AxleConfig,
			v.Dimensions.HeightFt, v.Dimensions.WidthFt, v.Dimensions.LengthFt,
			v.Dimensions.EmptyWeightLbs, v.MaxPayloadLbs,
			v.InsuranceExpiry, v.RegistrationExpiry, now,
		)
		if err != nil {
			return fmt.Errorf("seed vehicles: insert %s/%s: %w", v.CarrierID, v.UnitNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed vehicles: commit tx: %w", err)
	}

	return nil
}
