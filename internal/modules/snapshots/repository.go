package snapshots

import (
	"fmt"
	"time"

	"github.com/foliolab/quant/internal/database"
)

// Repository stores and retrieves analysis snapshots.
type Repository struct {
	db *database.DB
}

// NewRepository creates a snapshots repository.
func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// Save inserts a snapshot and returns its ID.
func (r *Repository) Save(snap Snapshot) (int64, error) {
	result, err := r.db.Exec(
		`INSERT INTO snapshots (name, kind, expected_return, volatility, sharpe_ratio, payload)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		snap.Name, string(snap.Kind), snap.ExpectedReturn, snap.Volatility, snap.SharpeRatio, snap.Payload,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save snapshot: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get snapshot id: %w", err)
	}
	return id, nil
}

// ListByName returns snapshots for one portfolio name, newest first.
func (r *Repository) ListByName(name string, limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.Query(
		`SELECT id, name, kind, expected_return, volatility, sharpe_ratio, payload, created_at
		 FROM snapshots WHERE name = ? ORDER BY created_at DESC LIMIT ?`,
		name, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var result []Snapshot
	for rows.Next() {
		var snap Snapshot
		var kind string
		if err := rows.Scan(&snap.ID, &snap.Name, &kind, &snap.ExpectedReturn,
			&snap.Volatility, &snap.SharpeRatio, &snap.Payload, &snap.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snap.Kind = Kind(kind)
		result = append(result, snap)
	}
	return result, rows.Err()
}

// PruneOlderThan deletes snapshots older than the cutoff and returns the
// number of rows removed.
func (r *Repository) PruneOlderThan(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM snapshots WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune snapshots: %w", err)
	}
	return result.RowsAffected()
}
