package repository

import (
	"database/sql"

	"github.com/quickbasket/assistant/internal/domain"
)

// PromotionRepository reads the active promotion list.
type PromotionRepository struct {
	db *DB
}

// NewPromotionRepository creates a new promotion repository.
func NewPromotionRepository(db *DB) *PromotionRepository {
	return &PromotionRepository{db: db}
}

// List retrieves all promotions.
func (r *PromotionRepository) List() ([]domain.Promotion, error) {
	rows, err := r.db.Query(`SELECT code, discount, description, brand FROM promotions ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var promotions []domain.Promotion
	for rows.Next() {
		var p domain.Promotion
		var brand sql.NullString
		if err := rows.Scan(&p.Code, &p.Discount, &p.Description, &brand); err != nil {
			return nil, err
		}
		if brand.Valid {
			p.Brand = brand.String
		}
		promotions = append(promotions, p)
	}

	return promotions, rows.Err()
}

// Count returns the number of promotions.
func (r *PromotionRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM promotions`).Scan(&count)
	return count, err
}
