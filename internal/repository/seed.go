package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

type seedProduct struct {
	brand, model string
	price        float64
	sizes        []float64
	colors       []string
	inStock      bool
	description  string
}

type seedOrder struct {
	id, date     string
	items        []string
	total        float64
	status       string
	deliveryDate string
	address      string
}

type seedPromotion struct {
	code, discount, description, brand string
}

type seedStore struct {
	name, address, hours, phone string
	features                    []string
}

var seedProducts = []seedProduct{
	{"nike", "Air Max", 120, []float64{7, 8, 9, 10, 11}, []string{"black", "white", "red"}, true, "Iconic visible-air running shoe"},
	{"nike", "React", 130, []float64{8, 9, 10}, []string{"blue", "gray"}, true, "Soft, responsive everyday runner"},
	{"nike", "Dunk Low", 100, []float64{7, 8, 9}, []string{"green", "yellow"}, false, "Classic low-top court style"},
	{"adidas", "Ultraboost", 180, []float64{7, 8, 9, 10, 11, 12}, []string{"black", "white", "blue"}, true, "Energy-returning boost runner"},
	{"adidas", "Stan Smith", 80, []float64{8, 9, 10, 11}, []string{"white", "green"}, true, "Timeless leather tennis shoe"},
	{"adidas", "Gazelle", 90, []float64{7, 8, 9}, []string{"blue", "red", "black"}, true, "Retro suede trainer"},
	{"puma", "RS-X", 110, []float64{8, 9, 10, 11}, []string{"white", "black", "blue"}, true, "Chunky retro-future runner"},
	{"puma", "Suede", 70, []float64{7, 8, 9, 10}, []string{"black", "blue", "red"}, true, "Street classic since 1968"},
}

var seedOrders = []seedOrder{
	{"ORD12345", "2023-11-05", []string{"Nike Air Max - Black, Size 10", "Adidas Stan Smith - White, Size 9"}, 200, "Delivered", "2023-11-10", "123 Main St, Anytown, USA"},
	{"ORD67890", "2023-11-15", []string{"Puma RS-X - Blue, Size 8"}, 110, "Shipped", "2023-11-20", "456 Elm St, Somewhere, USA"},
	{"ORD54321", "2023-11-18", []string{"Nike React - Gray, Size 9", "Adidas Ultraboost - Black, Size 10"}, 310, "Processing", "Expected 2023-11-25", "789 Oak St, Nowhere, USA"},
}

var seedPromotions = []seedPromotion{
	{"WELCOME15", "15%", "New members get 15% off their first purchase", ""},
	{"ADIRUN23", "25%", "25% off all Adidas products this week", "adidas"},
	{"NIKEFLY10", "10%", "10% off Nike running styles", "nike"},
	{"SHIPFREE75", "free_shipping", "Free shipping on orders over $75", ""},
	{"CLEAR40", "40%", "Up to 40% off last season's styles", ""},
}

var seedStores = []seedStore{
	{"Quick Basket City Center", "123 Main Street, Downtown", "9 AM - 9 PM (Mon-Sat), 10 AM - 6 PM (Sun)", "555-123-4567", []string{"Nike Shop-in-shop", "Shoe fitting service", "Click & Collect"}},
	{"Quick Basket Mall Store", "456 Market Square, Metro Mall", "10 AM - 10 PM (Mon-Sun)", "555-765-4321", []string{"Adidas Shop-in-shop", "Running analysis", "Personal shopping"}},
	{"Quick Basket Outlet", "789 Shopping Plaza, near Central Station", "9 AM - 8 PM (Mon-Sat), Closed on Sun", "555-987-6543", []string{"Clearance items", "Bulk purchase discounts", "Large parking"}},
}

// seed inserts the demo storefront data on first open. An already-populated
// database is left untouched.
func seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, p := range seedProducts {
		sizesJSON, _ := json.Marshal(p.sizes)
		colorsJSON, _ := json.Marshal(p.colors)
		if _, err := db.Exec(`
			INSERT INTO products (brand, model, price, sizes, colors, in_stock, description)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, p.brand, p.model, p.price, string(sizesJSON), string(colorsJSON), p.inStock, p.description); err != nil {
			return fmt.Errorf("seed product %s %s: %w", p.brand, p.model, err)
		}
	}

	for _, o := range seedOrders {
		itemsJSON, _ := json.Marshal(o.items)
		if _, err := db.Exec(`
			INSERT INTO orders (id, order_date, items, total, status, delivery_date, address)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, o.id, o.date, string(itemsJSON), o.total, o.status, o.deliveryDate, o.address); err != nil {
			return fmt.Errorf("seed order %s: %w", o.id, err)
		}
	}

	for _, p := range seedPromotions {
		if _, err := db.Exec(`
			INSERT INTO promotions (code, discount, description, brand)
			VALUES (?, ?, ?, ?)
		`, p.code, p.discount, p.description, p.brand); err != nil {
			return fmt.Errorf("seed promotion %s: %w", p.code, err)
		}
	}

	for _, s := range seedStores {
		featuresJSON, _ := json.Marshal(s.features)
		if _, err := db.Exec(`
			INSERT INTO stores (name, address, hours, phone, features)
			VALUES (?, ?, ?, ?, ?)
		`, s.name, s.address, s.hours, s.phone, string(featuresJSON)); err != nil {
			return fmt.Errorf("seed store %s: %w", s.name, err)
		}
	}

	return nil
}
