package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/quickbasket/assistant/internal/domain"
)

// OrderRepository reads historical order records.
type OrderRepository struct {
	db *DB
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Get retrieves an order by ID. A miss returns (nil, nil).
func (r *OrderRepository) Get(id string) (*domain.Order, error) {
	order := &domain.Order{}
	var itemsJSON string
	var deliveryDate, address sql.NullString

	err := r.db.QueryRow(`
		SELECT id, order_date, items, total, status, delivery_date, address
		FROM orders WHERE id = ?
	`, id).Scan(&order.ID, &order.Date, &itemsJSON, &order.Total,
		&order.Status, &deliveryDate, &address)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	json.Unmarshal([]byte(itemsJSON), &order.Items)
	if deliveryDate.Valid {
		order.DeliveryDate = deliveryDate.String
	}
	if address.Valid {
		order.Address = address.String
	}

	return order, nil
}

// Count returns the number of order records.
func (r *OrderRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM orders`).Scan(&count)
	return count, err
}
