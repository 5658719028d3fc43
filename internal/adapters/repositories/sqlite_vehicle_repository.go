package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"osow-feasibility-service/internal/domain"
	"osow-feasibility-service/internal/ports"
)

// SQLite-backed implementation of the VehicleProfileRepository port.
// The statements use $1-style placeholders, which both modernc sqlite and
// the pgx stdlib driver accept.
type SqliteVehicleRepository struct{ DB *sql.DB }

func NewSqliteVehicleRepository(db *sql.DB) *SqliteVehicleRepository {
	return &SqliteVehicleRepository{DB: db}
}

const profileColumns = `
	carrier_id, unit_number, vehicle_type, make, year, vin,
	plate, plate_state, axle_config,
	height_ft, width_ft, length_ft, empty_weight_lbs, max_payload_lbs,
	insurance_expiry, registration_expiry,
	created_at, last_used, permit_count
`

// Resolve a single profile by carrier and unit number.
func (s *SqliteVehicleRepository) Lookup(ctx context.Context, carrierID, unitNumber string) (*domain.VehicleProfile, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite vehicle repository: DB is nil")
	}

	query := `
	SELECT ` + profileColumns + `
	FROM vehicle_profiles
	WHERE carrier_id = $1 AND unit_number = $2;
	`
	row := s.DB.QueryRowContext(ctx, query, carrierID, unitNumber)

	profile, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("lookup %s/%s: %w", carrierID, unitNumber, ports.ErrProfileNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("lookup %s/%s: %w", carrierID, unitNumber, err)
	}

	return profile, nil
}

// Return every profile registered to a carrier, ordered by unit number.
func (s *SqliteVehicleRepository) ListFleet(ctx context.Context, carrierID string) ([]*domain.VehicleProfile, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite vehicle repository: DB is nil")
	}

	query := `
	SELECT ` + profileColumns + `
	FROM vehicle_profiles
	WHERE carrier_id = $1
	ORDER BY unit_number;
	`
	rows, err := s.DB.QueryContext(ctx, query, carrierID)
	if err != nil {
		return nil, fmt.Errorf("list fleet %s: query vehicle_profiles: %w", carrierID, err)
	}
	defer rows.Close()

	profiles := make([]*domain.VehicleProfile, 0, 16)
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("list fleet %s: scan row: %w", carrierID, err)
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list fleet %s: row iteration: %w", carrierID, err)
	}

	return profiles, nil
}

// Bump the permit counter and last-used stamp in one statement, so concurrent
// quotes against the same unit never lose an increment.
func (s *SqliteVehicleRepository) RecordUse(ctx context.Context, carrierID, unitNumber string) error {
	if s.DB == nil {
		return errors.New("sqlite vehicle repository: DB is nil")
	}

	query := `
	UPDATE vehicle_profiles
	SET permit_count = permit_count + 1,
		last_used = $1
	WHERE carrier_id = $2 AND unit_number = $3;
	`
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.DB.ExecContext(ctx, query, now, carrierID, unitNumber)
	if err != nil {
		return fmt.Errorf("record use %s/%s: %w", carrierID, unitNumber, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("record use %s/%s: rows affected: %w", carrierID, unitNumber, err)
	}
	if affected == 0 {
		return fmt.Errorf("record use %s/%s: %w", carrierID, unitNumber, ports.ErrProfileNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*domain.VehicleProfile, error) {
	var (
		p         domain.VehicleProfile
		createdAt string
		lastUsed  sql.NullString
	)

	err := row.Scan(
		&p.CarrierID, &p.UnitNumber, &p.VehicleType, &p.Make, &p.Year, &p.VIN,
		&p.Plate, &p.PlateState, &p.AxleConfig,
		&p.Dimensions.HeightFt, &p.Dimensions.WidthFt, &p.Dimensions.LengthFt,
		&p.Dimensions.EmptyWeightLbs, &p.MaxPayloadLbs,
		&p.InsuranceExpiry, &p.RegistrationExpiry,
		&createdAt, &lastUsed, &p.PermitCount,
	)
	if err != nil {
		return nil, err
	}

	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		p.CreatedAt = t
	}
	if lastUsed.Valid {
		if t, err := time.Parse(time.RFC3339, lastUsed.String); err == nil {
			p.LastUsed = &t
		}
	}

	return &p, nil
}
