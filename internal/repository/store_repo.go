package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/quickbasket/assistant/internal/domain"
)

// StoreRepository reads the store directory.
type StoreRepository struct {
	db *DB
}

// NewStoreRepository creates a new store repository.
func NewStoreRepository(db *DB) *StoreRepository {
	return &StoreRepository{db: db}
}

// List retrieves all store locations in insertion order.
func (r *StoreRepository) List() ([]domain.Store, error) {
	rows, err := r.db.Query(`SELECT name, address, hours, phone, features FROM stores ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stores []domain.Store
	for rows.Next() {
		var s domain.Store
		var featuresJSON sql.NullString
		if err := rows.Scan(&s.Name, &s.Address, &s.Hours, &s.Phone, &featuresJSON); err != nil {
			return nil, err
		}
		if featuresJSON.Valid && featuresJSON.String != "" {
			json.Unmarshal([]byte(featuresJSON.String), &s.Features)
		}
		stores = append(stores, s)
	}

	return stores, rows.Err()
}
