package repositories

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"osow-feasibility-service/internal/ports"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func seedTestFleet(t *testing.T, db *sql.DB) {
	t.Helper()

	seed := `[
		{
			"carrier_id": "ELITE_HEAVY_77",
			"unit_number": "TRK-101",
			"vehicle_type": "9-Axle Lowboy",
			"make": "Kenworth",
			"year": 2021,
			"axle_config": "9-axle",
			"dimensions": {"height_ft": 12.8, "width_ft": 8.5, "length_ft": 53.0, "empty_weight_lbs": 42000},
			"max_payload_lbs": 160000
		},
		{
			"carrier_id": "ELITE_HEAVY_77",
			"unit_number": "TRK-055",
			"vehicle_type": "Flatbed",
			"dimensions": {"height_ft": 8.5, "width_ft": 8.5, "length_ft": 48.0, "empty_weight_lbs": 33000}
		}
	]`

	path := filepath.Join(t.TempDir(), "vehicles.json")
	if err := os.WriteFile(path, []byte(seed), 0o644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	if err := SeedFromJSON(db, path); err != nil {
		t.Fatalf("seed vehicles: %v", err)
	}
}

func TestLookupAndListFleet(t *testing.T) {
	db := openTestDB(t)
	seedTestFleet(t, db)
	repo := NewSqliteVehicleRepository(db)
	ctx := context.Background()

	profile, err := repo.Lookup(ctx, "ELITE_HEAVY_77", "TRK-101")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if profile.VehicleType != "9-Axle Lowboy" {
		t.Errorf("vehicle type = %q", profile.VehicleType)
	}
	if profile.Dimensions.EmptyWeightLbs != 42000 {
		t.Errorf("empty weight = %d, want 42000", profile.Dimensions.EmptyWeightLbs)
	}
	if profile.LastUsed != nil {
		t.Error("fresh profile should have no last-used stamp")
	}

	fleet, err := repo.ListFleet(ctx, "ELITE_HEAVY_77")
	if err != nil {
		t.Fatalf("list fleet: %v", err)
	}
	if len(fleet) != 2 {
		t.Fatalf("fleet size = %d, want 2", len(fleet))
	}
	if fleet[0].UnitNumber != "TRK-055" || fleet[1].UnitNumber != "TRK-101" {
		t.Errorf("fleet order = [%s %s], want unit-number ascending", fleet[0].UnitNumber, fleet[1].UnitNumber)
	}
}

func TestLookupMissingProfile(t *testing.T) {
	db := openTestDB(t)
	repo := NewSqliteVehicleRepository(db)

	_, err := repo.Lookup(context.Background(), "NOBODY", "TRK-000")
	if !errors.Is(err, ports.ErrProfileNotFound) {
		t.Fatalf("error = %v, want ErrProfileNotFound in chain", err)
	}
}

func TestRecordUse(t *testing.T) {
	db := openTestDB(t)
	seedTestFleet(t, db)
	repo := NewSqliteVehicleRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.RecordUse(ctx, "ELITE_HEAVY_77", "TRK-101"); err != nil {
			t.Fatalf("record use #%d: %v", i+1, err)
		}
	}

	profile, err := repo.Lookup(ctx, "ELITE_HEAVY_77", "TRK-101")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if profile.PermitCount != 3 {
		t.Errorf("permit count = %d, want 3", profile.PermitCount)
	}
	if profile.LastUsed == nil {
		t.Error("last-used stamp missing after use")
	}

	if err := repo.RecordUse(ctx, "ELITE_HEAVY_77", "TRK-404"); !errors.Is(err, ports.ErrProfileNotFound) {
		t.Errorf("error = %v, want ErrProfileNotFound for unknown unit", err)
	}
}

func TestSeedFromJSONUpsertsExisting(t *testing.T) {
	db := openTestDB(t)
	seedTestFleet(t, db)
	repo := NewSqliteVehicleRepository(db)
	ctx := context.Background()

	if err := repo.RecordUse(ctx, "ELITE_HEAVY_77", "TRK-101"); err != nil {
		t.Fatalf("record use: %v", err)
	}

	// Reseeding must refresh the static fields without clobbering usage history.
	seedTestFleet(t, db)

	profile, err := repo.Lookup(ctx, "ELITE_HEAVY_77", "TRK-101")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if profile.PermitCount != 1 {
		t.Errorf("permit count = %d, want 1 after reseed", profile.PermitCount)
	}
}
