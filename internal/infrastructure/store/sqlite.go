package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/nutriscope/backend/internal/domain"
)

// SQLiteStore persists the cleaned food table as a local snapshot so
// restarts skip the USDA fetch. The dynamic nutrient map is stored as a JSON
// column; row order preserves table order.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore opens (or creates) the snapshot database at path.
// ":memory:" gives an ephemeral store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS foods (
        position INTEGER PRIMARY KEY,
        fdc_id INTEGER NOT NULL,
        description TEXT NOT NULL,
        data_type TEXT NOT NULL,
        serving_size REAL NOT NULL,
        serving_unit TEXT NOT NULL,
        nutrients TEXT NOT NULL
    );

    CREATE INDEX IF NOT EXISTS idx_foods_description ON foods(description);
    `

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

type foodRow struct {
	Position    int     `db:"position"`
	FdcID       int     `db:"fdc_id"`
	Description string  `db:"description"`
	DataType    string  `db:"data_type"`
	ServingSize float64 `db:"serving_size"`
	ServingUnit string  `db:"serving_unit"`
	Nutrients   string  `db:"nutrients"`
}

// Save replaces the snapshot with the given records.
func (s *SQLiteStore) Save(ctx context.Context, records []domain.FoodRecord) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM foods`); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}

	insert := `
    INSERT INTO foods (position, fdc_id, description, data_type, serving_size, serving_unit, nutrients)
    VALUES (:position, :fdc_id, :description, :data_type, :serving_size, :serving_unit, :nutrients)
    `

	for i, rec := range records {
		nutrients, err := json.Marshal(rec.Nutrients)
		if err != nil {
			return fmt.Errorf("failed to encode nutrients for %q: %w", rec.Description, err)
		}

		row := foodRow{
			Position:    i,
			FdcID:       rec.FdcID,
			Description: rec.Description,
			DataType:    rec.DataType,
			ServingSize: rec.ServingSize,
			ServingUnit: rec.ServingUnit,
			Nutrients:   string(nutrients),
		}
		if _, err := tx.NamedExecContext(ctx, insert, row); err != nil {
			return fmt.Errorf("failed to insert %q: %w", rec.Description, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}

	return nil
}

// Load returns the persisted records in saved order, or ErrNoSnapshot when
// the store is empty.
func (s *SQLiteStore) Load(ctx context.Context) ([]domain.FoodRecord, error) {
	var rows []foodRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT * FROM foods ORDER BY position`); err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}

	if len(rows) == 0 {
		return nil, domain.ErrNoSnapshot
	}

	records := make([]domain.FoodRecord, 0, len(rows))
	for _, row := range rows {
		var nutrients map[string]float64
		if err := json.Unmarshal([]byte(row.Nutrients), &nutrients); err != nil {
			return nil, fmt.Errorf("failed to decode nutrients for %q: %w", row.Description, err)
		}
		records = append(records, domain.FoodRecord{
			FdcID:       row.FdcID,
			Description: row.Description,
			DataType:    row.DataType,
			ServingSize: row.ServingSize,
			ServingUnit: row.ServingUnit,
			Nutrients:   nutrients,
		})
	}

	return records, nil
}
