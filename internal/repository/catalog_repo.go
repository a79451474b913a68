package repository

import (
	"encoding/json"

	"github.com/quickbasket/assistant/internal/domain"
)

// CatalogRepository reads the product catalog.
type CatalogRepository struct {
	db *DB
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Load returns the whole catalog keyed by lower-cased brand.
func (r *CatalogRepository) Load() (domain.Catalog, error) {
	rows, err := r.db.Query(`
		SELECT brand, model, price, sizes, colors, in_stock, description, image_url
		FROM products ORDER BY brand, model
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	catalog := make(domain.Catalog)
	for rows.Next() {
		var brand, model, sizesJSON, colorsJSON string
		var description, imageURL *string
		var details domain.ProductDetails

		if err := rows.Scan(&brand, &model, &details.Price, &sizesJSON, &colorsJSON,
			&details.InStock, &description, &imageURL); err != nil {
			return nil, err
		}

		json.Unmarshal([]byte(sizesJSON), &details.Sizes)
		json.Unmarshal([]byte(colorsJSON), &details.Colors)
		if description != nil {
			details.Description = *description
		}
		if imageURL != nil {
			details.ImageURL = *imageURL
		}

		if catalog[brand] == nil {
			catalog[brand] = make(map[string]domain.ProductDetails)
		}
		catalog[brand][model] = details
	}

	return catalog, rows.Err()
}

// Count returns the number of catalog entries.
func (r *CatalogRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count)
	return count, err
}
