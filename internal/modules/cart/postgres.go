package cart

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// storageKey is the single row the cart snapshot lives under, mirroring the
// one-key overwrite contract of the file store.
const storageKey = "gridstore-cart"

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository persists the cart snapshot as a single jsonb row,
// upserted wholesale on every save. Expects the carts table from
// migrations/001_carts.sql.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Load(ctx context.Context) ([]LineItem, error) {
	query := `
		SELECT snapshot
		FROM carts
		WHERE storage_key = $1
	`
	var data []byte
	err := r.db.QueryRowContext(ctx, query, storageKey).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cart snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode cart snapshot: %w", err)
	}
	if snap.SchemaVersion != snapshotVersion {
		return nil, fmt.Errorf("unsupported cart snapshot version %d", snap.SchemaVersion)
	}
	return snap.Items, nil
}

func (r *postgresRepository) Save(ctx context.Context, items []LineItem) error {
	if items == nil {
		items = []LineItem{}
	}
	data, err := json.Marshal(snapshot{SchemaVersion: snapshotVersion, Items: items})
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}

	query := `
		INSERT INTO carts (storage_key, snapshot, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (storage_key)
		DO UPDATE SET snapshot = EXCLUDED.snapshot, updated_at = now()
	`
	if _, err := r.db.ExecContext(ctx, query, storageKey, data); err != nil {
		return fmt.Errorf("write cart snapshot: %w", err)
	}
	return nil
}
