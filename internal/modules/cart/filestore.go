package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type fileRepository struct {
	path string
}

// NewFileRepository persists the cart snapshot as one JSON file. Writes go
// through a temp file and rename so a crash mid-write never leaves a torn
// snapshot behind.
func NewFileRepository(path string) Repository {
	return &fileRepository{path: path}
}

func (r *fileRepository) Load(ctx context.Context) ([]LineItem, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
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

func (r *fileRepository) Save(ctx context.Context, items []LineItem) error {
	if items == nil {
		items = []LineItem{}
	}
	data, err := json.Marshal(snapshot{SchemaVersion: snapshotVersion, Items: items})
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create cart dir: %w", err)
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write cart snapshot: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace cart snapshot: %w", err)
	}
	return nil
}
